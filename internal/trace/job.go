package trace

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/zeusync/voxkit/internal/config"
	"github.com/zeusync/voxkit/internal/core/systems/physics"
	"github.com/zeusync/voxkit/pkg/errs"
	"github.com/zeusync/voxkit/pkg/raytrace"
	"github.com/zeusync/voxkit/pkg/vector"
)

// Job is one ray to trace. A Job either runs from Start to End, or, when
// ByDirection is set, from Start along Direction for Distance.
type Job struct {
	ID    uuid.UUID
	Start vector.Vector3
	End   vector.Vector3

	ByDirection bool
	Direction   vector.Vector3
	Distance    float64

	// World stops the path at the first solid voxel. Nil means empty space.
	World physics.World
}

func NewSegmentJob(start, end vector.Vector3) Job {
	return Job{ID: uuid.New(), Start: start, End: end}
}

func NewDirectionJob(start, direction vector.Vector3, distance float64) Job {
	return Job{ID: uuid.New(), Start: start, ByDirection: true, Direction: direction, Distance: distance}
}

// JobFromSpec converts a job file entry. Entries without an ID get a random one.
func JobFromSpec(spec config.JobSpec) (Job, error) {
	if err := spec.Validate(); err != nil {
		return Job{}, err
	}

	id := uuid.New()
	if spec.ID != "" {
		parsed, err := uuid.Parse(spec.ID)
		if err != nil {
			return Job{}, fmt.Errorf("job %q: %w", spec.ID, err)
		}
		id = parsed
	}

	job := Job{ID: id, Start: fromArray(spec.Start)}
	if spec.End != nil {
		job.End = fromArray(*spec.End)
	} else {
		job.ByDirection = true
		job.Direction = fromArray(*spec.Direction)
		job.Distance = spec.Distance
	}
	if len(spec.Solid) > 0 {
		job.World = physics.NewVoxelSet(spec.Solid...)
	}
	return job, nil
}

// JobsFromSpecs converts a whole job file, stopping at the first bad entry.
func JobsFromSpecs(specs []config.JobSpec) ([]Job, error) {
	jobs := make([]Job, 0, len(specs))
	for i, spec := range specs {
		job, err := JobFromSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("jobs[%d]: %w", i, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// EndPoint returns where the ray stops.
func (j Job) EndPoint() vector.Vector3 {
	if j.ByDirection {
		return j.Start.AddVector(j.Direction.Normalize().Multiply(j.Distance))
	}
	return j.End
}

func (j Job) tracer() (*raytrace.Tracer, error) {
	if j.ByDirection {
		if j.Distance < 0 {
			return nil, errs.InvalidArgument("distance must not be negative, got %v", j.Distance)
		}
		return raytrace.InDirection(j.Start, j.Direction, j.Distance)
	}
	return raytrace.BetweenPoints(j.Start, j.End)
}

func fromArray(a [3]float64) vector.Vector3 {
	return vector.New(a[0], a[1], a[2])
}
