package physics

import (
	"github.com/zeusync/voxkit/pkg/raytrace"
	"github.com/zeusync/voxkit/pkg/vector"
)

type Transform3D struct{ Pos vector.Vector3 }

func (t Transform3D) Position() vector.Vector3 { return t.Pos }

// Distance3 computes the Euclidean distance between two transforms.
func Distance3(a, b Transform) float64 {
	return a.Position().Distance(b.Position())
}

// Hit is the first solid voxel found along a ray.
type Hit struct {
	// Block is the integer position of the solid voxel.
	Block vector.Vector3
	// Face is the side of Block the ray entered through. Meaningless when Inside is set.
	Face vector.Facing
	// Point is where the ray crosses Face, or the ray start when Inside is set.
	Point vector.Vector3
	// Inside reports that the ray started within the solid voxel.
	Inside bool
	// Steps is the number of voxels visited before Block.
	Steps int
}

// FirstHit walks the ray from start to end and returns the first voxel that world
// reports solid. The end voxel is included.
func FirstHit(start, end vector.Vector3, world World) (Hit, bool, error) {
	tracer, err := raytrace.BetweenPoints(start, end)
	if err != nil {
		return Hit{}, false, err
	}

	var (
		prev  vector.Vector3
		steps int
	)
	for block := range tracer.All() {
		if world.IsSolid(block.FloorX(), block.FloorY(), block.FloorZ()) {
			return HitAt(start, end, prev, block, steps), true, nil
		}
		prev = block
		steps++
	}

	return Hit{}, false, nil
}

// HitAt describes a ray from start to end striking block after steps voxels. prev
// is the voxel walked just before block and is ignored when steps is 0.
func HitAt(start, end, prev, block vector.Vector3, steps int) Hit {
	if steps == 0 {
		return Hit{Block: block, Point: start, Inside: true}
	}
	face, point := entry(start, end, prev, block)
	return Hit{Block: block, Face: face, Point: point, Steps: steps}
}

// LineOfSight reports whether nothing solid lies strictly between a and b.
func LineOfSight(a, b vector.Vector3, world World) (bool, error) {
	target := [3]int{b.FloorX(), b.FloorY(), b.FloorZ()}
	blocked := WorldFunc(func(x, y, z int) bool {
		if [3]int{x, y, z} == target {
			return false
		}
		return world.IsSolid(x, y, z)
	})

	_, hit, err := FirstHit(a, b, blocked)
	if err != nil {
		return false, err
	}
	return !hit, nil
}

// entry finds the face of cur shared with prev and where the segment crosses it.
func entry(start, end, prev, cur vector.Vector3) (vector.Facing, vector.Vector3) {
	var (
		face  vector.Facing
		point vector.Vector3
		ok    bool
	)

	switch {
	case cur.X() > prev.X():
		face = vector.FacingWest
		point, ok = start.IntermediateWithXValue(end, cur.X())
	case cur.X() < prev.X():
		face = vector.FacingEast
		point, ok = start.IntermediateWithXValue(end, cur.X()+1)
	case cur.Y() > prev.Y():
		face = vector.FacingDown
		point, ok = start.IntermediateWithYValue(end, cur.Y())
	case cur.Y() < prev.Y():
		face = vector.FacingUp
		point, ok = start.IntermediateWithYValue(end, cur.Y()+1)
	case cur.Z() > prev.Z():
		face = vector.FacingNorth
		point, ok = start.IntermediateWithZValue(end, cur.Z())
	default:
		face = vector.FacingSouth
		point, ok = start.IntermediateWithZValue(end, cur.Z()+1)
	}

	if !ok {
		// numerically on the boundary; fall back to the face centre
		normal := vector.Zero().SidesArray(1)[face]
		point = cur.Add(0.5, 0.5, 0.5).AddVector(normal.Multiply(0.5))
	}
	return face, point
}
