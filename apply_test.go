package colgo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/colgo"
	"github.com/hupe1980/colgo/stats"
)

func TestRunAll(t *testing.T) {
	accs := make([]*stats.Accumulator, 8)
	jobs := make([]colgo.Job, 8)

	for i := range accs {
		accs[i] = stats.NewAccumulator(false)
		jobs[i] = colgo.Job{
			Visitor: accs[i],
			Values:  []float64{float64(i), float64(i) + 2},
		}
	}

	require.NoError(t, colgo.RunAll(context.Background(), jobs, colgo.WithMaxConcurrency(3)))

	for i, acc := range accs {
		assert.InDelta(t, float64(i)+1, acc.Mean(), 1e-12)
	}
}

func TestRunAll_NilVisitor(t *testing.T) {
	jobs := []colgo.Job{{Visitor: nil, Values: []float64{1}}}

	err := colgo.RunAll(context.Background(), jobs)
	assert.ErrorIs(t, err, colgo.ErrNilVisitor)
}

func TestRunAll_NilVisitorRunsNothing(t *testing.T) {
	// A nil visitor anywhere in the batch rejects the whole batch before
	// any job starts.
	acc := stats.NewAccumulator(false)

	jobs := []colgo.Job{
		{Visitor: acc, Values: []float64{1, 2, 3}},
		{Visitor: nil, Values: []float64{4}},
	}

	err := colgo.RunAll(context.Background(), jobs)
	require.ErrorIs(t, err, colgo.ErrNilVisitor)

	assert.Zero(t, acc.Count())
}

type failingVisitor struct {
	err error
}

func (f *failingVisitor) Pre()  {}
func (f *failingVisitor) Post() {}

func (f *failingVisitor) Fit(index []uint64, values []float64) error {
	return f.err
}

func TestRunAll_PropagatesError(t *testing.T) {
	wantErr := errors.New("boom")

	jobs := []colgo.Job{
		{Visitor: stats.NewAccumulator(false), Values: []float64{1, 2}},
		{Visitor: &failingVisitor{err: wantErr}, Values: []float64{3}},
	}

	err := colgo.RunAll(context.Background(), jobs)
	assert.ErrorIs(t, err, wantErr)
}

func TestRunAll_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []colgo.Job{
		{Visitor: stats.NewAccumulator(false), Values: []float64{1}},
	}

	err := colgo.RunAll(ctx, jobs, colgo.WithMaxConcurrency(1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunAll_Metrics(t *testing.T) {
	var collector colgo.AtomicMetricsCollector

	jobs := []colgo.Job{
		{Visitor: stats.NewAccumulator(false), Values: []float64{1, 2}},
		{Visitor: stats.NewAccumulator(false), Values: []float64{3, 4}},
	}

	require.NoError(t, colgo.RunAll(context.Background(), jobs, colgo.WithMetrics(&collector)))

	failing := []colgo.Job{
		{Visitor: &failingVisitor{err: errors.New("boom")}, Values: []float64{5}},
	}

	require.Error(t, colgo.RunAll(context.Background(), failing, colgo.WithMetrics(&collector)))

	assert.Equal(t, uint64(3), collector.Runs())
	assert.Equal(t, uint64(1), collector.Failures())
	assert.GreaterOrEqual(t, collector.TotalDuration(), time.Duration(0))
}

func TestRunAll_Empty(t *testing.T) {
	assert.NoError(t, colgo.RunAll(context.Background(), nil))
}
