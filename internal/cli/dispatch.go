// Package cli parses command lines and drives commands, either once from the
// process arguments or repeatedly from the interactive console.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/service"
)

// ShellCommand starts the interactive console explicitly.
const ShellCommand = "shell"

// ServiceFactory creates a Service from config.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
}

// NewDispatcher creates a new dispatcher with the given registry and service factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// With no arguments, only common flags, or "shell", it runs the interactive
// console on in. Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return d.runShell(ctx, args, in, out, errOut)
	}

	cmdName := args[0]
	if strings.EqualFold(cmdName, ShellCommand) {
		return d.runShell(ctx, args[1:], in, out, errOut)
	}

	// Look up command
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := newFlagSet(cmd.Name())

	var common commonFlags
	common.register(fs)
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return reportFlagError(errOut, err)
	}

	cfg, err := common.config(fs)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	logger := logging.New(errOut, cfg.Level())

	var svc service.Service
	if cmd.NeedsStore() {
		svc, err = d.openService(ctx, cfg, logger)
		if err != nil {
			return reportStartupError(errOut, err)
		}
		defer closeService(svc, logger)
	}

	logger.Debug().Str("command", cmd.Name()).Strs("args", fs.Args()).Msg("dispatch")
	return cmd.Run(ctx, cfg, svc, fs.Args(), out, errOut)
}

func (d *Dispatcher) runShell(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	fs := newFlagSet(ShellCommand)

	var common commonFlags
	common.register(fs)

	if err := fs.Parse(args); err != nil {
		return reportFlagError(errOut, err)
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", fs.Arg(0))
		return exitcode.UserError
	}

	cfg, err := common.config(fs)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	logger := logging.New(errOut, cfg.Level())

	// A task file that cannot be loaded aborts the session before it starts
	svc, err := d.openService(ctx, cfg, logger)
	if err != nil {
		return reportStartupError(errOut, err)
	}
	defer closeService(svc, logger)

	shell := NewShell(d.registry, cfg, svc, logger)
	return shell.Run(ctx, in, out, errOut)
}

func (d *Dispatcher) openService(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (service.Service, error) {
	if d.factory == nil {
		return nil, fmt.Errorf("no task store configured")
	}
	logger.Debug().Str("file", cfg.DataFile).Msg("opening task file")
	return d.factory(ctx, cfg, logger)
}

func reportStartupError(errOut io.Writer, err error) int {
	if service.IsStorageError(err) {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
	} else {
		fmt.Fprintf(errOut, "error: %v\n", err)
	}
	return exitcode.StorageError
}

func closeService(svc service.Service, logger zerolog.Logger) {
	if err := svc.Close(); err != nil {
		logger.Warn().Err(err).Msg("failed to release task file")
	}
}
