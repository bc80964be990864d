package filesystem

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"

	"github.com/GriffinCanCode/filemanager/internal/shared/utils"
)

// Transform wraps the read side, the write side, or both, of a stream.
// Writers are closed before the destination file so buffered output is
// flushed into it.
type Transform struct {
	Reader func(io.Reader) (io.ReadCloser, error)
	Writer func(io.Writer) (io.WriteCloser, error)
}

// countingReader counts bytes read from the underlying source.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// openSource opens path for streaming. Directories and other non-regular
// files are rejected before anything is read.
func openSource(path string) (*os.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotAFile, path)
	}
	return os.Open(path)
}

// createExclusive creates path, failing if anything already exists there.
func createExclusive(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
}

// withSource opens path, hands a context-aware reader to fn and always
// closes the file. The bytes fn consumed are recorded under command.
func (ops *FilesystemOps) withSource(ctx context.Context, command, path string, fn func(io.Reader) error) (err error) {
	f, err := openSource(path)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	counter := &countingReader{r: utils.ContextReader(ctx, f)}
	defer func() { ops.Metrics.AddBytes(command, counter.n) }()

	return fn(counter)
}

// transfer streams src into a new file at dst through t. dst is created
// exclusively and removed again if the stream fails; src is never modified.
func (ops *FilesystemOps) transfer(ctx context.Context, command, src, dst string, t Transform) error {
	created := false
	err := ops.withSource(ctx, command, src, func(r io.Reader) (err error) {
		out, err := createExclusive(dst)
		if err != nil {
			return err
		}
		created = true
		defer multierr.AppendInvoke(&err, multierr.Close(out))

		var w io.Writer = out
		if t.Writer != nil {
			wc, werr := t.Writer(out)
			if werr != nil {
				return werr
			}
			defer multierr.AppendInvoke(&err, multierr.Close(wc))
			w = wc
		}

		if t.Reader != nil {
			rc, rerr := t.Reader(r)
			if rerr != nil {
				return rerr
			}
			defer multierr.AppendInvoke(&err, multierr.Close(rc))
			r = rc
		}

		_, err = io.CopyBuffer(w, r, make([]byte, ops.bufferSize()))
		return err
	})

	if err != nil && created {
		if rmErr := ops.removePath(dst); rmErr != nil && !os.IsNotExist(rmErr) {
			err = multierr.Append(err, fmt.Errorf("remove partial %s: %w", dst, rmErr))
		}
	}
	return err
}
