package colgo

import "log/slog"

type options struct {
	maxConcurrency int
	logger         *Logger
	metrics        MetricsCollector
}

// Option configures batch execution behavior.
type Option func(*options)

// WithMaxConcurrency bounds the number of jobs RunAll executes in parallel.
// Values <= 0 fall back to the default of 4.
func WithMaxConcurrency(n int) Option {
	return func(o *options) {
		o.maxConcurrency = n
	}
}

// WithLogger configures structured logging for batch execution.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetrics configures a collector that records every visitor run.
// Pass nil to disable metrics.
func WithMetrics(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = noopMetrics{}
		}
		o.metrics = collector
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		maxConcurrency: 4,
		logger:         NoopLogger(),
		metrics:        noopMetrics{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.maxConcurrency <= 0 {
		o.maxConcurrency = 4
	}
	return o
}
