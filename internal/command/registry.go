package command

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Operation is a command bound to validated arguments.
type Operation func(ctx context.Context) error

// Command is a registry entry: a name plus the ability to validate an
// argument string and bind it to a handler.
type Command interface {
	Name() string
	Bind(args string) (Operation, error)
}

// Spec is a Command whose arguments are parsed into A before the handler
// ever sees them.
type Spec[A any] struct {
	Use   string
	Parse func(args string) (A, error)
	Run   func(ctx context.Context, args A) error
}

// Name returns the command name.
func (s Spec[A]) Name() string {
	return s.Use
}

// Bind validates args and closes over the parsed value.
func (s Spec[A]) Bind(args string) (Operation, error) {
	parsed, err := s.Parse(args)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidArguments, s.displayName(), err)
	}
	return func(ctx context.Context) error {
		return s.Run(ctx, parsed)
	}, nil
}

func (s Spec[A]) displayName() string {
	if s.Use == "" {
		return "<empty>"
	}
	return s.Use
}

// Registry is an ordered set of commands, built once at startup.
type Registry struct {
	commands []Command
	index    map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register appends cmd. Names must be unique.
func (r *Registry) Register(cmd Command) error {
	if cmd == nil {
		return ErrNilCommand
	}
	name := cmd.Name()
	if _, exists := r.index[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateCommand, name)
	}
	r.index[name] = len(r.commands)
	r.commands = append(r.commands, cmd)
	return nil
}

// RegisterAll registers cmds in order, stopping at the first error.
func (r *Registry) RegisterAll(cmds ...Command) error {
	for _, cmd := range cmds {
		if err := r.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the command registered under name.
func (r *Registry) Get(name string) (Command, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.commands[i], true
}

// Names returns command names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.commands))
	for i, cmd := range r.commands {
		names[i] = cmd.Name()
	}
	return names
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.commands)
}

// Lookup finds the command whose name prefixes line. A name only matches on
// a token boundary (end of line or whitespace) and the longest matching name
// wins, so "cp" never shadows a longer name that starts with it. The empty
// name matches only an empty line. Returns the matched command and the
// trimmed remainder of the line.
func (r *Registry) Lookup(line string) (Command, string, bool) {
	line = strings.TrimSpace(line)

	var (
		best    Command
		bestLen = -1
	)
	for _, cmd := range r.commands {
		name := cmd.Name()
		if len(name) <= bestLen || !matchesAt(line, name) {
			continue
		}
		best, bestLen = cmd, len(name)
	}
	if best == nil {
		return nil, "", false
	}
	return best, strings.TrimSpace(line[bestLen:]), true
}

func matchesAt(line, name string) bool {
	if name == "" {
		return line == ""
	}
	if !strings.HasPrefix(line, name) {
		return false
	}
	if len(line) == len(name) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(line[len(name):])
	return unicode.IsSpace(next)
}
