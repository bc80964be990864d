package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/filemanager/internal/command"
	"github.com/GriffinCanCode/filemanager/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/filemanager/internal/logging"
	"github.com/GriffinCanCode/filemanager/internal/session"
)

const (
	maxLineSize = 1 << 20

	// drainTimeout bounds how long the goodbye waits for a write that an
	// interrupted command already started.
	drainTimeout = time.Second
)

// Config holds the collaborators of a Shell. Commands must write through
// the same Out.
type Config struct {
	In         io.Reader
	Out        *Output
	State      *session.State
	Dispatcher *command.Dispatcher
	Logger     *logging.Logger
	Metrics    *monitoring.Metrics
	Prompt     string
}

// Shell is the read-dispatch-print loop. One command runs at a time; the
// next line is read only after the previous command has finished.
type Shell struct {
	in         io.Reader
	out        *Output
	state      *session.State
	dispatcher *command.Dispatcher
	logger     *logging.Logger
	metrics    *monitoring.Metrics
	prompt     string
	drain      time.Duration
}

// New creates a shell. A nil Logger discards diagnostics and a nil Metrics
// records nothing.
func New(cfg Config) *Shell {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Shell{
		in:         cfg.In,
		out:        cfg.Out,
		state:      cfg.State,
		dispatcher: cfg.Dispatcher,
		logger:     logger.Session(cfg.State.ID().String()),
		metrics:    cfg.Metrics,
		prompt:     cfg.Prompt,
		drain:      drainTimeout,
	}
}

// Run greets the user and processes lines until .exit, end of input or ctx
// cancellation. Each ends with the goodbye message and a nil error. A
// command still running when ctx is canceled is abandoned, not awaited,
// and anything it writes afterwards is discarded.
func (s *Shell) Run(ctx context.Context) error {
	s.metrics.MarkSessionStart()
	s.println(welcomeMessage(s.state.Name()))
	s.println(cwdMessage(s.state.Dir()))

	stop := make(chan struct{})
	defer close(stop)
	lines := make(chan string)
	readErr := make(chan error, 1)
	go s.readLines(lines, readErr, stop)

	for {
		if s.prompt != "" {
			fmt.Fprint(s.out, s.prompt)
		}

		select {
		case <-ctx.Done():
			return s.farewell("interrupt")

		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					s.logger.Warn("input read failed", zap.Error(err))
				}
				return s.farewell("end of input")
			}

			if err := s.handle(ctx, line); err != nil {
				if errors.Is(err, ErrExit) {
					return s.farewell(".exit")
				}
				return s.farewell("interrupt")
			}
			s.println(cwdMessage(s.state.Dir()))
		}
	}
}

// handle dispatches one line. Errors are reported to the user here; only
// ErrExit and cancellation are returned.
func (s *Shell) handle(ctx context.Context, line string) error {
	bound, err := s.dispatcher.Parse(line)
	if err != nil {
		s.logger.Warn("invalid input", zap.String("line", line), zap.Error(err))
		s.metrics.RecordCommand("unknown", monitoring.OutcomeInvalid, 0)
		s.println(MsgInvalidInput)
		return nil
	}

	log := s.logger.Command(bound.Command, s.state.Dir())
	timer := monitoring.NewTimer(s.metrics, label(bound.Command))

	err = s.execute(ctx, bound)
	switch {
	case err == nil:
		elapsed := timer.Stop(monitoring.OutcomeOK)
		log.Debug("command completed", zap.Duration("elapsed", elapsed))
		return nil

	case errors.Is(err, ErrExit):
		timer.Stop(monitoring.OutcomeOK)
		return ErrExit

	case ctx.Err() != nil:
		timer.Stop(monitoring.OutcomeFailed)
		log.Warn("command interrupted", zap.Error(err))
		return ctx.Err()

	default:
		timer.Stop(monitoring.OutcomeFailed)
		log.Error("command failed",
			zap.String("args", bound.Args),
			zap.Error(fmt.Errorf("%w: %w", command.ErrOperationFailed, err)),
		)
		s.println(MsgOperationFailed)
		return nil
	}
}

// execute runs bound on its own goroutine so cancellation is observed even
// while the handler is blocked, and converts handler panics into errors.
func (s *Shell) execute(ctx context.Context, bound *command.Bound) error {
	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("panic in %s: %v", label(bound.Command), r)
			}
		}()
		done <- bound.Execute(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Shell) readLines(lines chan<- string, readErr chan<- error, stop <-chan struct{}) {
	defer close(lines)

	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	for scanner.Scan() {
		select {
		case lines <- strings.TrimRight(scanner.Text(), "\r"):
		case <-stop:
			return
		}
	}
	readErr <- scanner.Err()
}

// farewell seals the output so no command can write after the goodbye,
// then prints it.
func (s *Shell) farewell(reason string) error {
	w, drained := s.out.Seal(s.drain)
	if !drained {
		s.logger.Warn("output still busy at goodbye", zap.Duration("waited", s.drain))
	}
	fmt.Fprintln(w, goodbyeMessage(s.state.Name()))
	s.logger.Debug("session ended", zap.String("reason", reason))
	return nil
}

func (s *Shell) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

func label(name string) string {
	if name == "" {
		return "<empty>"
	}
	return name
}
