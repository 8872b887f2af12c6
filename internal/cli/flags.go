package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
)

// commonFlags are accepted by every command and by the console.
type commonFlags struct {
	configDir     string
	file          string
	quiet         bool
	debug         bool
	skipMalformed bool
}

func (f *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.configDir, "config", "", "")
	fs.StringVar(&f.file, "file", "", "")
	fs.BoolVar(&f.quiet, "quiet", false, "")
	fs.BoolVar(&f.debug, "debug", false, "")
	fs.BoolVar(&f.skipMalformed, "skip-malformed", false, "")
}

// config loads the configuration and applies the flags set on fs.
func (f *commonFlags) config(fs *flag.FlagSet) (*config.Config, error) {
	cfg, err := config.New(f.configDir)
	if err != nil {
		return nil, err
	}
	if f.file != "" {
		cfg.DataFile = f.file
	}
	// Only an explicit flag overrides the config file or environment
	fs.Visit(func(fl *flag.Flag) {
		if fl.Name == "skip-malformed" {
			cfg.SkipMalformed = f.skipMalformed
		}
	})
	cfg.Quiet = f.quiet
	cfg.Debug = f.debug
	return cfg, nil
}

// reportFlagError prints a flag parsing error and returns the exit code.
func reportFlagError(errOut io.Writer, err error) int {
	errStr := err.Error()

	// Check for missing flag value
	if strings.HasPrefix(errStr, "flag needs an argument:") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagName)
		return exitcode.UserError
	}

	// Check for unknown flag
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag provided but not defined:"))
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
		return exitcode.UserError
	}

	fmt.Fprintf(errOut, "error: %s\n", errStr)
	return exitcode.UserError
}

// parseCommandArgs separates cmd's own flags from its arguments. Commands
// that define no flags take their words verbatim, so a description such as
// "-5 degrees" stays an argument; a leading "--" is still dropped.
func parseCommandArgs(cmd commands.Command, args []string) ([]string, error) {
	fs := newFlagSet(cmd.Name())
	cmd.RegisterFlags(fs)

	defined := false
	fs.VisitAll(func(*flag.Flag) { defined = true })
	if !defined {
		if len(args) > 0 && args[0] == "--" {
			return args[1:], nil
		}
		return args, nil
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}

// newFlagSet returns a silent flag set; errors are reported by the caller.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
