package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

const (
	// Prompt is printed before each console line is read.
	Prompt = "> "

	// commandPrefix may lead any console line, as in "todo add ...".
	commandPrefix = "todo"
)

// Shell is the interactive console. It reads one command per line and keeps
// going after failed commands; only quit, exit, end of input or cancellation
// end it.
type Shell struct {
	registry *commands.Registry
	cfg      *config.Config
	svc      service.Service
	log      zerolog.Logger
}

// NewShell creates a console that runs commands from registry against svc.
func NewShell(registry *commands.Registry, cfg *config.Config, svc service.Service, logger zerolog.Logger) *Shell {
	return &Shell{
		registry: registry,
		cfg:      cfg,
		svc:      svc,
		log:      logger,
	}
}

// Run prints the banner and processes lines from in until the session ends,
// then saves the task file a final time. Cancelling ctx ends the session
// even while waiting for input.
func (s *Shell) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) int {
	if !s.cfg.Quiet {
		output.FormatBanner(out)
	}

	done := make(chan struct{})
	defer close(done)
	input := readLines(in, done)

	quit := false
loop:
	for !quit && ctx.Err() == nil {
		if !s.cfg.Quiet {
			fmt.Fprint(out, Prompt)
		}
		select {
		case <-ctx.Done():
			s.log.Debug().Msg("console interrupted")
			if !s.cfg.Quiet {
				fmt.Fprintln(out)
			}
			break loop
		case line, ok := <-input.lines:
			if !ok {
				if err := input.err; err != nil {
					fmt.Fprintf(errOut, "error: reading input: %v\n", err)
				}
				break loop
			}
			quit = s.Execute(ctx, line, out, errOut)
		}
	}

	// Every command already persisted; this mirrors the contents on the way out
	if err := s.svc.Save(context.WithoutCancel(ctx)); err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	if quit && !s.cfg.Quiet {
		fmt.Fprintln(out, "Exiting...")
	}
	return exitcode.Success
}

// lineReader scans input on its own goroutine. err is set before lines is
// closed.
type lineReader struct {
	lines chan string
	err   error
}

// readLines starts scanning in. The goroutine stops once done is closed and
// it has a line to hand over; a read blocked on in ends with in.
func readLines(in io.Reader, done <-chan struct{}) *lineReader {
	r := &lineReader{lines: make(chan string)}
	go func() {
		defer close(r.lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case r.lines <- scanner.Text():
			case <-done:
				return
			}
		}
		r.err = scanner.Err()
	}()
	return r
}

// Execute runs a single console line. It reports whether the line asked to
// end the session.
func (s *Shell) Execute(ctx context.Context, line string, out, errOut io.Writer) bool {
	words, err := SplitLine(line)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return false
	}
	if len(words) == 0 {
		return false
	}

	if strings.EqualFold(words[0], commandPrefix) {
		words = words[1:]
		if len(words) == 0 {
			fmt.Fprintln(errOut, "Invalid command.")
			return false
		}
	}

	name := strings.ToLower(words[0])
	if name == "quit" || name == "exit" {
		return true
	}

	cmd, ok := s.registry.Find(name)
	if !ok {
		fmt.Fprintln(errOut, "Invalid command.")
		return false
	}

	args, err := parseCommandArgs(cmd, words[1:])
	if err != nil {
		reportFlagError(errOut, err)
		return false
	}

	var svc service.Service
	if cmd.NeedsStore() {
		svc = s.svc
	}

	code := cmd.Run(ctx, s.cfg, svc, args, out, errOut)
	s.log.Debug().Str("command", cmd.Name()).Int("code", code).Msg("console command finished")
	return false
}
