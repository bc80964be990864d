package command

import (
	"context"
	"fmt"
	"strings"
)

// Bound is a parsed input line ready to run.
type Bound struct {
	Command string
	Args    string
	Run     Operation
}

// Execute invokes the bound operation.
func (b *Bound) Execute(ctx context.Context) error {
	return b.Run(ctx)
}

// Dispatcher turns raw input lines into bound operations.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a dispatcher over registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Parse resolves line to a bound operation. It fails with ErrUnknownCommand
// when no name matches and with ErrInvalidArguments when the matched
// command rejects its arguments.
func (d *Dispatcher) Parse(line string) (*Bound, error) {
	line = strings.TrimRight(line, "\r\n")

	cmd, args, ok := d.registry.Lookup(line)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, firstToken(line))
	}

	op, err := cmd.Bind(args)
	if err != nil {
		return nil, err
	}

	return &Bound{
		Command: cmd.Name(),
		Args:    args,
		Run:     op,
	}, nil
}

func firstToken(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
