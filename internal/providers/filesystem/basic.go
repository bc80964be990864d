package filesystem

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/GriffinCanCode/filemanager/internal/command"
)

// BasicOps handles single-file operations: cat, add, rm and hash.
type BasicOps struct {
	*FilesystemOps
}

// Commands returns the basic file commands.
func (b *BasicOps) Commands() []command.Command {
	return []command.Command{
		command.Spec[string]{Use: "cat", Parse: command.SingleArg, Run: b.Cat},
		command.Spec[string]{Use: "add", Parse: command.SingleArg, Run: b.Add},
		command.Spec[string]{Use: "rm", Parse: command.SingleArg, Run: b.Remove},
		command.Spec[string]{Use: "hash", Parse: command.SingleArg, Run: b.Hash},
	}
}

// Cat streams the file at path to the output, chunk by chunk. A newline is
// appended when the content does not end with one.
func (b *BasicOps) Cat(ctx context.Context, path string) error {
	return b.withSource(ctx, "cat", b.resolve(path), func(r io.Reader) error {
		w := &lineEndWriter{w: b.Out}
		if _, err := io.CopyBuffer(w, r, make([]byte, b.bufferSize())); err != nil {
			return err
		}
		return w.finish()
	})
}

// Add creates an empty file. An existing entry is never truncated.
func (b *BasicOps) Add(_ context.Context, name string) error {
	f, err := createExclusive(b.resolve(name))
	if err != nil {
		return err
	}
	return f.Close()
}

// Remove deletes a file. Directories are rejected.
func (b *BasicOps) Remove(_ context.Context, path string) error {
	target := b.resolve(path)
	info, err := os.Lstat(target)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotAFile, target)
	}
	return b.removePath(target)
}

// Hash prints the lowercase hex digest of the file at path.
func (b *BasicOps) Hash(ctx context.Context, path string) error {
	return b.withSource(ctx, "hash", b.resolve(path), func(r io.Reader) error {
		digest, _, err := b.Hasher.HashReaderContext(ctx, r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(b.Out, digest)
		return err
	})
}

// lineEndWriter remembers the last byte written.
type lineEndWriter struct {
	w    io.Writer
	last byte
	n    int64
}

func (l *lineEndWriter) Write(p []byte) (int, error) {
	n, err := l.w.Write(p)
	if n > 0 {
		l.last = p[n-1]
		l.n += int64(n)
	}
	return n, err
}

func (l *lineEndWriter) finish() error {
	if l.n == 0 || l.last == '\n' {
		return nil
	}
	_, err := io.WriteString(l.w, "\n")
	return err
}
