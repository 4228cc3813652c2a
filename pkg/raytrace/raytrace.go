// Package raytrace walks the unit voxels crossed by a ray.
//
// It implements the grid traversal of Amanatides and Woo, "A Fast Voxel Traversal
// Algorithm for Ray Tracing" (http://www.cse.yorku.ca/~amana/research/grid.pdf).
package raytrace

import (
	"iter"
	"math"

	"github.com/zeusync/voxkit/pkg/errs"
	"github.com/zeusync/voxkit/pkg/sequence"
	"github.com/zeusync/voxkit/pkg/vector"
)

const (
	axisX = iota
	axisY
	axisZ
)

// Tracer yields the voxels crossed by a ray segment, starting with the voxel that
// contains the start point. A Tracer is single use and must not be shared between goroutines.
type Tracer struct {
	block  [3]int
	step   [3]int
	tMax   [3]float64
	tDelta [3]float64
	radius float64

	started bool
	done    bool
}

// InDirection traces from start along direction for maxDistance.
// direction does not need to be normalized but must not be the zero vector.
func InDirection(start, direction vector.Vector3, maxDistance float64) (*Tracer, error) {
	if direction.LengthSquared() == 0 {
		return nil, errs.InvalidArgument("direction must not be the zero vector")
	}
	return BetweenPoints(start, start.AddVector(direction.Normalize().Multiply(maxDistance)))
}

// BetweenPoints traces the segment from start to end.
func BetweenPoints(start, end vector.Vector3) (*Tracer, error) {
	dir := end.SubtractVector(start).Normalize()
	if dir.LengthSquared() <= 0 {
		return nil, errs.InvalidArgument("start and end points are the same, giving a zero direction vector")
	}

	s := [3]float64{start.X(), start.Y(), start.Z()}
	d := [3]float64{dir.X(), dir.Y(), dir.Z()}

	t := &Tracer{
		block:  [3]int{start.FloorX(), start.FloorY(), start.FloorZ()},
		radius: start.Distance(end),
	}
	for axis := range 3 {
		t.step[axis] = spaceship(d[axis], 0)
		t.tMax[axis] = distanceToBoundary(s[axis], d[axis])
		if d[axis] != 0 {
			t.tDelta[axis] = float64(t.step[axis]) / d[axis]
		}
	}

	return t, nil
}

// Next returns the next voxel on the ray, or false once the ray has ended.
func (t *Tracer) Next() (vector.Vector3, bool) {
	if t.done {
		return vector.Vector3{}, false
	}
	if !t.started {
		t.started = true
		return t.current(), true
	}

	axis := t.nextAxis()
	if t.tMax[axis] > t.radius {
		t.done = true
		return vector.Vector3{}, false
	}
	t.block[axis] += t.step[axis]
	t.tMax[axis] += t.tDelta[axis]

	return t.current(), true
}

// All returns the remaining voxels as a sequence.
func (t *Tracer) All() iter.Seq[vector.Vector3] {
	return sequence.FromNext(t.Next).Seq()
}

// Collect drains the remaining voxels into a slice.
func Collect(t *Tracer) []vector.Vector3 {
	return sequence.FromNext(t.Next).Collect()
}

func (t *Tracer) current() vector.Vector3 {
	return vector.New(float64(t.block[axisX]), float64(t.block[axisY]), float64(t.block[axisZ]))
}

// nextAxis picks the axis whose boundary is reached first. Ties go to X, then Y.
func (t *Tracer) nextAxis() int {
	switch {
	case t.tMax[axisX] <= t.tMax[axisY] && t.tMax[axisX] <= t.tMax[axisZ]:
		return axisX
	case t.tMax[axisY] <= t.tMax[axisZ]:
		return axisY
	default:
		return axisZ
	}
}

func spaceship(a, b float64) int {
	switch {
	case a == b:
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}

// distanceToBoundary returns the smallest t >= 0 such that s + t*ds crosses onto a
// different integer cell, or +Inf when ds is zero.
func distanceToBoundary(s, ds float64) float64 {
	if ds == 0 {
		return math.Inf(1)
	}
	if ds < 0 {
		s, ds = -s, -ds
		if math.Floor(s) == s {
			return 0
		}
	}
	return (1 - (s - math.Floor(s))) / ds
}
