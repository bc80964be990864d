package command

import (
	"errors"
	"fmt"
)

// User-facing error kinds. Every error returned by Dispatcher.Parse satisfies
// errors.Is(err, ErrInvalidInput); handler failures are reported as
// ErrOperationFailed by the shell.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnknownCommand   = fmt.Errorf("%w: unknown command", ErrInvalidInput)
	ErrInvalidArguments = fmt.Errorf("%w: invalid arguments", ErrInvalidInput)
	ErrOperationFailed  = errors.New("operation failed")
)

// Registry errors.
var (
	ErrDuplicateCommand = errors.New("command already registered")
	ErrNilCommand       = errors.New("command cannot be nil")
)

// Grammar errors, wrapped into ErrInvalidArguments by Spec.Bind.
var (
	ErrUnexpectedArgs = errors.New("command takes no arguments")
	ErrMissingArg     = errors.New("argument required")
	ErrQuoteCount     = errors.New("expected exactly two quoted arguments")
	ErrTokenCount     = errors.New("expected exactly two arguments")
)
