package commands_test

import (
	"testing"

	"todo/internal/commands"
)

func TestDefaultRegistry_FindByNameAndAlias(t *testing.T) {
	tests := map[string]string{
		"add":      "add",
		"create":   "add",
		"list":     "list",
		"ls":       "list",
		"complete": "complete",
		"done":     "complete",
		"delete":   "delete",
		"rm":       "delete",
		"help":     "help",
		"version":  "version",
		"ADD":      "add",
		"Complete": "complete",
	}
	for name, want := range tests {
		cmd, ok := commands.DefaultRegistry.Find(name)
		if !ok {
			t.Errorf("Find(%q): not found", name)
			continue
		}
		if cmd.Name() != want {
			t.Errorf("Find(%q) = %s, want %s", name, cmd.Name(), want)
		}
	}
}

func TestDefaultRegistry_Unknown(t *testing.T) {
	if _, ok := commands.DefaultRegistry.Find("quit"); ok {
		t.Error("quit is handled by the console, not the registry")
	}
}

func TestRegistry_All(t *testing.T) {
	all := commands.DefaultRegistry.All()

	var names []string
	for _, cmd := range all {
		names = append(names, cmd.Name())
	}
	expected := []string{"add", "complete", "delete", "help", "list", "version"}
	if len(names) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("expected %v, got %v", expected, names)
			break
		}
	}
}

func TestRegistry_Duplicate(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.AddCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(&commands.AddCmd{}); err == nil {
		t.Error("expected error registering add twice")
	}
}
