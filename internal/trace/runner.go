// Package trace runs batches of voxel ray traces and encodes each path as a
// checksummed binary frame.
package trace

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/zeusync/voxkit/internal/config"
	"github.com/zeusync/voxkit/internal/core/events/bus"
	"github.com/zeusync/voxkit/internal/core/observability/log"
	"github.com/zeusync/voxkit/internal/core/systems/physics"
	"github.com/zeusync/voxkit/pkg/concurrent"
	"github.com/zeusync/voxkit/pkg/encoding"
	"github.com/zeusync/voxkit/pkg/errs"
	"github.com/zeusync/voxkit/pkg/raytrace"
	"github.com/zeusync/voxkit/pkg/sequence"
	"github.com/zeusync/voxkit/pkg/vector"
)

// Event types published for every finished job. Event data is the Result.
const (
	EventJobTraced = "trace.job.traced"
	EventJobFailed = "trace.job.failed"
)

type Options struct {
	Workers        int
	MaxVoxels      int
	StreamCapacity int
}

func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Workers:        cfg.Trace.Workers,
		MaxVoxels:      cfg.Trace.MaxVoxels,
		StreamCapacity: cfg.Trace.StreamCapacity,
	}
}

// Result is the outcome of one job. Err is set instead of the other fields when
// the job could not be traced.
type Result struct {
	JobID  uuid.UUID
	Voxels []vector.Vector3
	Hit    *physics.Hit
	Frame  []byte
	Digest uint64
	Err    error
}

type Runner struct {
	opts     Options
	log      log.Log
	events   bus.EventBus
	observer *deliveryLog
	streams  *encoding.StreamPool
}

// NewRunner creates a Runner. events may be nil.
func NewRunner(opts Options, logger log.Log, events bus.EventBus) *Runner {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.MaxVoxels < 1 {
		opts.MaxVoxels = config.Default().Trace.MaxVoxels
	}
	r := &Runner{
		opts:    opts,
		log:     logger.With(log.String("component", "trace")),
		events:  events,
		streams: encoding.NewStreamPool(opts.StreamCapacity, opts.Workers),
	}
	if events != nil {
		r.observer = &deliveryLog{log: r.log}
		events.AddObserver(r.observer)
	}
	return r
}

// Close detaches the runner from its event bus. The bus itself stays usable.
func (r *Runner) Close() {
	if r.observer != nil {
		r.events.RemoveObserver(r.observer)
		r.observer = nil
	}
}

// Run traces jobs on up to Options.Workers goroutines. Results keep the order of
// jobs. A failing job only sets its own Result.Err; Run itself fails only when ctx
// is done.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	started := time.Now()

	results, err := concurrent.ParallelMap(ctx, sequence.From(jobs), r.opts.Workers,
		func(ctx context.Context, _ int, job Job) (Result, error) {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
			res := r.Trace(job)
			if res.Err != nil {
				r.log.Warn("job failed", log.Stringer("job", job.ID), log.Error(res.Err))
			}
			r.publish(res)
			return res, nil
		})
	if err != nil {
		return nil, fmt.Errorf("run %d jobs: %w", len(jobs), err)
	}

	failed := sequence.From(results).Filter(func(res Result) bool { return res.Err != nil }).Count()
	fields := []log.Field{
		log.Int("jobs", len(jobs)),
		log.Int("failed", failed),
		log.Duration("took", time.Since(started)),
	}
	if r.events != nil {
		m := r.events.GetMetrics()
		fields = append(fields,
			log.Uint64("events_published", m.Published),
			log.Uint64("event_errors", m.Errors),
		)
	}
	r.log.Info("batch traced", fields...)
	return results, nil
}

func (r *Runner) publish(res Result) {
	if r.events == nil {
		return
	}
	typ := EventJobTraced
	if res.Err != nil {
		typ = EventJobFailed
	}
	if err := r.events.Publish(bus.NewEvent(typ, "trace.runner", res)); err != nil {
		r.log.Warn("event handler failed", log.String("event", typ), log.Error(err))
	}
}

// Trace runs a single job synchronously.
func (r *Runner) Trace(job Job) Result {
	res := Result{JobID: job.ID}

	tracer, err := job.tracer()
	if err != nil {
		res.Err = err
		return res
	}

	voxels, hit, err := r.walk(job, tracer)
	if err != nil {
		res.Err = err
		return res
	}
	res.Hit = hit

	frame := Frame{JobID: job.ID, Voxels: voxels}
	s := r.streams.Get()
	frame.Encode(s)
	res.Frame = bytes.Clone(s.Buffer())
	r.streams.Put(s)

	res.Voxels = voxels
	res.Digest = frame.Digest

	r.log.Debug("job traced",
		log.Stringer("job", job.ID),
		log.Int("voxels", len(voxels)),
		log.Bool("hit", res.Hit != nil),
		log.Uint64("digest", res.Digest),
	)
	return res
}

// walk collects the path in one pass, stopping at the first solid voxel of
// job.World. It gives up as soon as the path outgrows MaxVoxels.
func (r *Runner) walk(job Job, tracer *raytrace.Tracer) ([]vector.Vector3, *physics.Hit, error) {
	voxels := make([]vector.Vector3, 0, min(r.opts.MaxVoxels, 64))
	end := job.EndPoint()

	var prev vector.Vector3
	for block := range tracer.All() {
		if len(voxels) == r.opts.MaxVoxels {
			return nil, nil, errs.InvalidArgument("path crosses more than %d voxels", r.opts.MaxVoxels)
		}
		if err := checkRange(block); err != nil {
			return nil, nil, err
		}
		voxels = append(voxels, block)

		if job.World != nil && job.World.IsSolid(block.FloorX(), block.FloorY(), block.FloorZ()) {
			hit := physics.HitAt(job.Start, end, prev, block, len(voxels)-1)
			return voxels, &hit, nil
		}
		prev = block
	}
	return voxels, nil, nil
}

// Verify decodes res.Frame and checks it against the traced path.
func Verify(res Result) error {
	if res.Err != nil {
		return fmt.Errorf("job %s: %w", res.JobID, res.Err)
	}

	f, err := DecodeFrame(res.Frame)
	if err != nil {
		return fmt.Errorf("job %s: %w", res.JobID, err)
	}
	if f.JobID != res.JobID {
		return fmt.Errorf("job %s: frame belongs to %s", res.JobID, f.JobID)
	}
	if len(f.Voxels) != len(res.Voxels) {
		return fmt.Errorf("job %s: frame has %d voxels, path has %d", res.JobID, len(f.Voxels), len(res.Voxels))
	}
	for i, v := range f.Voxels {
		if !v.Equals(res.Voxels[i]) {
			return fmt.Errorf("job %s: voxel %d is %s, path has %s", res.JobID, i, v, res.Voxels[i])
		}
	}
	return nil
}

// WriteFrames writes the frames of all successful results back to back.
func WriteFrames(w io.Writer, results []Result) (int64, error) {
	var total int64
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		n, err := w.Write(res.Frame)
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("write frame for job %s: %w", res.JobID, err)
		}
	}
	return total, nil
}
