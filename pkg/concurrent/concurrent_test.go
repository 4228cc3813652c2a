package concurrent

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/voxkit/pkg/sequence"
)

func TestParallelMap_PreservesOrder(t *testing.T) {
	in := sequence.From([]int{5, 1, 4, 2, 3})

	out, err := ParallelMap(context.Background(), in, 3, func(_ context.Context, idx int, v int) (int, error) {
		time.Sleep(time.Duration(v) * time.Millisecond)
		return v*10 + idx, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{50, 11, 42, 23, 34}, out)
}

func TestParallelMap_RespectsWorkerLimit(t *testing.T) {
	var running, peak atomic.Int32

	_, err := ParallelMap(context.Background(), sequence.From(make([]int, 20)), 2,
		func(_ context.Context, _ int, _ int) (int, error) {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			running.Add(-1)
			return 0, nil
		})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestParallelMap_FirstError(t *testing.T) {
	boom := errors.New("boom")

	out, err := ParallelMap(context.Background(), sequence.From([]int{1, 2, 3}), 1,
		func(_ context.Context, _ int, v int) (int, error) {
			if v == 2 {
				return 0, boom
			}
			return v, nil
		})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, out)
}

func TestParallelMap_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	_, err := ParallelMap(ctx, sequence.From([]int{1, 2, 3}), 2, func(_ context.Context, _ int, v int) (int, error) {
		calls.Add(1)
		return v, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls.Load())
}

func TestParallelMap_Empty(t *testing.T) {
	out, err := ParallelMap(context.Background(), sequence.From([]string{}), 0,
		func(context.Context, int, string) (string, error) { return "", nil })
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestForEach(t *testing.T) {
	var sum atomic.Int64
	err := ForEach(context.Background(), sequence.From([]int64{1, 2, 3, 4}), 4, func(_ context.Context, v int64) error {
		sum.Add(v)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), sum.Load())
}
