package shell

import (
	"io"
	"sync"
	"time"
)

// Output is the writer shared by the shell and its commands. Once sealed,
// writes are discarded, so a command abandoned on interrupt cannot print
// after the goodbye.
type Output struct {
	w        io.Writer
	mu       sync.Mutex
	sealed   bool
	inflight sync.WaitGroup
}

// NewOutput wraps w.
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// Write forwards p unless the output is sealed, in which case it reports
// success and drops p.
func (o *Output) Write(p []byte) (int, error) {
	o.mu.Lock()
	if o.sealed {
		o.mu.Unlock()
		return len(p), nil
	}
	o.inflight.Add(1)
	o.mu.Unlock()
	defer o.inflight.Done()

	return o.w.Write(p)
}

// Seal stops forwarding writes and waits up to timeout for writes already
// in progress. It returns the underlying writer and whether those writes
// finished in time.
func (o *Output) Seal(timeout time.Duration) (io.Writer, bool) {
	o.mu.Lock()
	o.sealed = true
	o.mu.Unlock()

	done := make(chan struct{})
	go func() {
		o.inflight.Wait()
		close(done)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-done:
		return o.w, true
	case <-timer.C:
		return o.w, false
	}
}
