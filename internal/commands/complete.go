package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&CompleteCmd{})
}

// CompleteCmd implements the complete command.
type CompleteCmd struct{}

func (c *CompleteCmd) Name() string      { return "complete" }
func (c *CompleteCmd) Aliases() []string { return []string{"done"} }
func (c *CompleteCmd) Synopsis() string  { return "Mark a task as complete" }
func (c *CompleteCmd) Usage() string     { return "todo complete <number>" }
func (c *CompleteCmd) NeedsStore() bool  { return true }

func (c *CompleteCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CompleteCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	num, code, ok := taskNumber(args, errOut)
	if !ok {
		return code
	}

	// Users count from 1, the store from 0
	task, err := svc.Complete(ctx, num-1)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			fmt.Fprintf(errOut, "error: task not found: %d\n", num)
			return exitcode.UserError
		}
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "Task marked as complete: %s\n", output.DisplayTitle(task.Description))
	}
	return exitcode.Success
}

// taskNumber parses args into a task number, printing the error on failure.
func taskNumber(args []string, errOut io.Writer) (num, code int, ok bool) {
	num, err := ParseTaskNumber(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return 0, exitcode.UserError, false
	}
	if num < 1 {
		fmt.Fprintf(errOut, "error: task not found: %d\n", num)
		return 0, exitcode.UserError, false
	}
	return num, exitcode.Success, true
}
