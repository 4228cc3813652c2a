// Package concurrent runs per-element work on a bounded number of goroutines.
package concurrent

import (
	"context"

	"github.com/zeusync/voxkit/pkg/sequence"
	"golang.org/x/sync/errgroup"
)

// ParallelMap applies mapFn to each element of the iterator, preserving order.
// At most workers calls run at once; workers < 1 means one. The first error cancels
// the context handed to the remaining calls and is returned.
func ParallelMap[T any, R any](
	ctx context.Context,
	i *sequence.Iterator[T],
	workers int,
	mapFn func(ctx context.Context, idx int, value T) (R, error),
) ([]R, error) {
	in := i.Collect()
	out := make([]R, len(in))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for idx, val := range in {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := mapFn(gctx, idx, val)
			if err != nil {
				return err
			}
			out[idx] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ForEach is ParallelMap for actions without a result.
func ForEach[T any](
	ctx context.Context,
	i *sequence.Iterator[T],
	workers int,
	action func(ctx context.Context, value T) error,
) error {
	_, err := ParallelMap(ctx, i, workers, func(ctx context.Context, _ int, value T) (struct{}, error) {
		return struct{}{}, action(ctx, value)
	})
	return err
}
