package shell

import (
	"context"
	"errors"

	"github.com/GriffinCanCode/filemanager/internal/command"
)

// ErrExit is returned by the .exit command to end the session.
var ErrExit = errors.New("exit")

// CommandSource contributes commands to the registry.
type CommandSource interface {
	Commands() []command.Command
}

// Builtins returns the commands owned by the shell itself: the empty line
// no-op and .exit.
func Builtins() []command.Command {
	return []command.Command{
		command.Spec[struct{}]{
			Use:   "",
			Parse: command.NoArgs,
			Run:   func(context.Context, struct{}) error { return nil },
		},
		command.Spec[struct{}]{
			Use:   ".exit",
			Parse: command.NoArgs,
			Run:   func(context.Context, struct{}) error { return ErrExit },
		},
	}
}

// NewRegistry registers the builtins followed by every source's commands.
func NewRegistry(sources ...CommandSource) (*command.Registry, error) {
	r := command.NewRegistry()
	if err := r.RegisterAll(Builtins()...); err != nil {
		return nil, err
	}
	for _, src := range sources {
		if err := r.RegisterAll(src.Commands()...); err != nil {
			return nil, err
		}
	}
	return r, nil
}
