package colgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics
// from batch execution. Implement this interface to integrate with
// monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordRun is called after each visitor run driven by RunAll.
	// duration is the total time taken, err is nil if successful.
	RecordRun(duration time.Duration, err error)
}

// AtomicMetricsCollector is a built-in MetricsCollector backed by atomic
// counters. Safe for concurrent use with zero allocation per record.
type AtomicMetricsCollector struct {
	runs     atomic.Uint64
	failures atomic.Uint64
	nanos    atomic.Int64
}

// RecordRun implements MetricsCollector.
func (c *AtomicMetricsCollector) RecordRun(duration time.Duration, err error) {
	c.runs.Add(1)
	c.nanos.Add(int64(duration))

	if err != nil {
		c.failures.Add(1)
	}
}

// Runs returns the total number of recorded runs.
func (c *AtomicMetricsCollector) Runs() uint64 { return c.runs.Load() }

// Failures returns the number of recorded runs that failed.
func (c *AtomicMetricsCollector) Failures() uint64 { return c.failures.Load() }

// TotalDuration returns the accumulated run time across all runs.
func (c *AtomicMetricsCollector) TotalDuration() time.Duration {
	return time.Duration(c.nanos.Load())
}

// noopMetrics is used when no collector is configured.
type noopMetrics struct{}

func (noopMetrics) RecordRun(time.Duration, error) {}
