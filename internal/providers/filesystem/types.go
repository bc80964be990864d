package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/GriffinCanCode/filemanager/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/filemanager/internal/session"
	"github.com/GriffinCanCode/filemanager/internal/shared/utils"
)

var (
	// ErrNotADirectory is shared with the session so cd failures and
	// destination checks match the same sentinel.
	ErrNotADirectory = session.ErrNotADirectory

	ErrNotAFile     = errors.New("not a regular file")
	ErrNotArchive   = errors.New("source does not carry the archive suffix")
	ErrUnknownCodec = errors.New("unknown compression codec")
	ErrInvalidName  = errors.New("new name must be a plain file name")
)

// EntryKind distinguishes listing rows.
type EntryKind string

const (
	KindDirectory EntryKind = "directory"
	KindFile      EntryKind = "file"
)

// Entry is one row of a directory listing.
type Entry struct {
	Name string
	Kind EntryKind
}

// PartialFailureError reports a two-phase operation whose copy phase
// committed but whose source removal failed. Both paths exist afterwards.
type PartialFailureError struct {
	Op        string
	Source    string
	Committed string
	Err       error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("%s: copied to %s but could not remove %s: %v", e.Op, e.Committed, e.Source, e.Err)
}

func (e *PartialFailureError) Unwrap() error {
	return e.Err
}

// Options tunes the file operations.
type Options struct {
	BufferSize      int
	ListConcurrency int

	// Color styles the ls table header and separators.
	Color bool
}

// DefaultOptions returns the settings used when none are configured.
func DefaultOptions() Options {
	return Options{
		BufferSize:      64 * 1024,
		ListConcurrency: 16,
		Color:           true,
	}
}

// FilesystemOps is the state shared by every operation group: the session
// paths resolve against and the sink user-visible output is written to.
type FilesystemOps struct {
	State   *session.State
	Out     io.Writer
	Hasher  *utils.Hasher
	Metrics *monitoring.Metrics
	Options Options

	// remove deletes a single path; nil means os.Remove.
	remove func(string) error
}

func (ops *FilesystemOps) resolve(p string) string {
	return ops.State.Resolve(p)
}

func (ops *FilesystemOps) removePath(p string) error {
	if ops.remove != nil {
		return ops.remove(p)
	}
	return os.Remove(p)
}

func (ops *FilesystemOps) bufferSize() int {
	if ops.Options.BufferSize <= 0 {
		return DefaultOptions().BufferSize
	}
	return ops.Options.BufferSize
}

func (ops *FilesystemOps) listConcurrency() int {
	if ops.Options.ListConcurrency <= 0 {
		return DefaultOptions().ListConcurrency
	}
	return ops.Options.ListConcurrency
}
