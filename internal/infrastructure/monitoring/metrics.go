package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Command outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
)

// Metrics holds all Prometheus metrics. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	CommandsTotal   *prometheus.CounterVec
	CommandDuration *prometheus.HistogramVec
	BytesStreamed   *prometheus.CounterVec
	SessionStarted  prometheus.Gauge

	registry *prometheus.Registry
}

// NewMetrics creates a collector backed by its own registry, so several
// instances can coexist in one process.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		CommandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "filemanager_commands_total",
				Help: "Total number of dispatched input lines",
			},
			[]string{"command", "outcome"},
		),
		CommandDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "filemanager_command_duration_seconds",
				Help:    "Command execution duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"command"},
		),
		BytesStreamed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "filemanager_bytes_streamed_total",
				Help: "Bytes read from source files by streaming commands",
			},
			[]string{"command"},
		),
		SessionStarted: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "filemanager_session_start_time_seconds",
				Help: "Unix time the shell session started",
			},
		),
	}
}

// RecordCommand records one dispatched line.
func (m *Metrics) RecordCommand(command, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.CommandsTotal.WithLabelValues(command, outcome).Inc()
	if outcome != OutcomeInvalid {
		m.CommandDuration.WithLabelValues(command).Observe(duration.Seconds())
	}
}

// AddBytes records n streamed bytes for command.
func (m *Metrics) AddBytes(command string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.BytesStreamed.WithLabelValues(command).Add(float64(n))
}

// MarkSessionStart sets the session start gauge to now.
func (m *Metrics) MarkSessionStart() {
	if m == nil {
		return
	}
	m.SessionStarted.SetToCurrentTime()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
