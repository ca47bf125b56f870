package app

import (
	"log/slog"
	"time"

	"github.com/jsamuelsen11/taskboard-api/internal/platform/telemetry"
)

// Option configures an application service.
type Option func(*options)

type options struct {
	now     func() time.Time
	metrics *telemetry.Metrics
}

// WithClock sets the time source used for deadline checks and timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithMetrics enables domain counters. Services built without it record nothing.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func newOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
