package monitoring

import "time"

// Timer measures one command execution.
type Timer struct {
	metrics *Metrics
	command string
	start   time.Time
}

// NewTimer starts timing command.
func NewTimer(metrics *Metrics, command string) *Timer {
	return &Timer{
		metrics: metrics,
		command: command,
		start:   time.Now(),
	}
}

// Stop records the command with outcome and returns the elapsed time.
func (t *Timer) Stop(outcome string) time.Duration {
	elapsed := time.Since(t.start)
	t.metrics.RecordCommand(t.command, outcome, elapsed)
	return elapsed
}
