package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/GriffinCanCode/filemanager/internal/shared/id"
)

var (
	// ErrNotADirectory is returned when a target is missing or not a directory.
	ErrNotADirectory = errors.New("not a directory")

	// ErrEmptyName is returned when a session is created without a display name.
	ErrEmptyName = errors.New("display name cannot be empty")
)

// State is the per-process shell session: an immutable display name and the
// current directory every relative argument is resolved against.
//
// State is owned by the shell loop and is not safe for concurrent mutation.
type State struct {
	id   id.SessionID
	name string
	dir  string
}

// New creates a session rooted at dir. dir must be an existing, readable
// directory.
func New(name, dir string) (*State, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve start directory: %w", err)
	}
	if err := checkDir(abs); err != nil {
		return nil, err
	}

	return &State{
		id:   id.NewSessionID(),
		name: name,
		dir:  abs,
	}, nil
}

// ID returns the session identifier used to correlate log lines.
func (s *State) ID() id.SessionID {
	return s.id
}

// Name returns the display name.
func (s *State) Name() string {
	return s.name
}

// Dir returns the current directory.
func (s *State) Dir() string {
	return s.dir
}

// Resolve returns p as an absolute, cleaned path relative to the current
// directory. Absolute paths are only cleaned.
func (s *State) Resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(s.dir, p)
}

// Up moves to the parent directory. At a filesystem root it is a no-op.
func (s *State) Up() error {
	parent := filepath.Dir(s.dir)
	if parent == s.dir {
		return nil
	}
	return s.commit(parent)
}

// Cd changes the current directory to p. The directory is left unchanged
// when p does not resolve to a readable directory.
func (s *State) Cd(p string) error {
	return s.commit(s.Resolve(p))
}

func (s *State) commit(dir string) error {
	if err := checkDir(dir); err != nil {
		return err
	}
	s.dir = dir
	return nil
}

func checkDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNotADirectory, dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}

	f, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("open %s: %w", dir, err)
	}
	return f.Close()
}
