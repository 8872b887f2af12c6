package output_test

import (
	"bytes"
	"testing"

	"todo/internal/output"
	"todo/internal/service"
	"todo/internal/testutil"
)

func TestFormatTask(t *testing.T) {
	tests := []struct {
		entry service.Entry
		want  string
	}{
		{service.Entry{Number: 1, Task: service.Task{Description: "Buy milk"}}, "1. [ ] Buy milk\n"},
		{service.Entry{Number: 12, Task: service.Task{Description: "Ship it", Completed: true}}, "12. [x] Ship it\n"},
		{service.Entry{Number: 3, Task: service.Task{Description: "   "}}, "3. [ ] (untitled)\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		output.FormatTask(&buf, tt.entry)
		if buf.String() != tt.want {
			t.Errorf("FormatTask(%+v) = %q, want %q", tt.entry, buf.String(), tt.want)
		}
	}
}

func TestDisplayTitle(t *testing.T) {
	if got := output.DisplayTitle(""); got != "(untitled)" {
		t.Errorf("expected (untitled), got %q", got)
	}
	if got := output.DisplayTitle("Buy milk"); got != "Buy milk" {
		t.Errorf("expected unchanged title, got %q", got)
	}
}

func TestFormatBanner(t *testing.T) {
	var buf bytes.Buffer
	output.FormatBanner(&buf)
	testutil.Golden(t, "banner", buf.Bytes())
}
