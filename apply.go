package colgo

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Job pairs a visitor with the column it should consume.
type Job struct {
	Visitor ColumnVisitor
	Index   []uint64
	Values  []float64
}

// RunAll drives the full lifecycle of every job, executing up to
// maxConcurrency jobs in parallel (see WithMaxConcurrency).
//
// Visitor instances own their state exclusively, so distinct jobs need no
// coordination as long as the underlying columns are not mutated while
// RunAll is in flight. The same visitor instance must not appear in more
// than one job.
//
// The first error cancels the remaining unstarted jobs and is returned.
func RunAll(ctx context.Context, jobs []Job, optFns ...Option) error {
	o := applyOptions(optFns)

	// Validate up front so no goroutine is left running on a bad batch.
	for _, job := range jobs {
		if job.Visitor == nil {
			return ErrNilVisitor
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(o.maxConcurrency))

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			start := time.Now()
			err := Run(job.Visitor, job.Index, job.Values)
			o.metrics.RecordRun(time.Since(start), err)

			if err != nil {
				o.logger.Error("job failed", "job", i, "error", err)
				return err
			}

			o.logger.Debug("job done", "job", i, "rows", len(job.Values))
			return nil
		})
	}

	return g.Wait()
}
