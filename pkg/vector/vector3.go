// Package vector provides an immutable three-component vector used for world
// positions, block coordinates and directions.
package vector

import (
	"iter"
	"math"
	"strconv"

	"github.com/zeusync/voxkit/pkg/errs"
	"github.com/zeusync/voxkit/pkg/round"
)

// intermediateEpsilon is the squared axis delta below which a segment is treated
// as parallel to the plane being intersected.
const intermediateEpsilon = 1e-7

// Vector3 is a point or direction in 3D space. The zero value is the origin.
// Vector3 is a value type; every operation returns a new vector.
type Vector3 struct {
	x, y, z float64
}

// New creates a new vector
func New(x, y, z float64) Vector3 {
	return Vector3{x: x, y: y, z: z}
}

// Zero returns the origin.
func Zero() Vector3 {
	return Vector3{}
}

func (v Vector3) X() float64 { return v.x }
func (v Vector3) Y() float64 { return v.y }
func (v Vector3) Z() float64 { return v.z }

// FloorX returns the X component rounded toward negative infinity.
func (v Vector3) FloorX() int { return int(math.Floor(v.x)) }

// FloorY returns the Y component rounded toward negative infinity.
func (v Vector3) FloorY() int { return int(math.Floor(v.y)) }

// FloorZ returns the Z component rounded toward negative infinity.
func (v Vector3) FloorZ() int { return int(math.Floor(v.z)) }

// Add returns v offset by the given amounts.
func (v Vector3) Add(x, y, z float64) Vector3 {
	return Vector3{v.x + x, v.y + y, v.z + z}
}

// AddVector returns the sum of two vectors
func (v Vector3) AddVector(o Vector3) Vector3 {
	return v.Add(o.x, o.y, o.z)
}

// Subtract returns v offset by the negated amounts.
func (v Vector3) Subtract(x, y, z float64) Vector3 {
	return v.Add(-x, -y, -z)
}

// SubtractVector returns the difference between two vectors
func (v Vector3) SubtractVector(o Vector3) Vector3 {
	return v.Add(-o.x, -o.y, -o.z)
}

// Multiply multiplies the vector by a scalar
func (v Vector3) Multiply(s float64) Vector3 {
	return Vector3{v.x * s, v.y * s, v.z * s}
}

// Divide divides the vector by a scalar. Dividing by zero fails with errs.ErrDivisionByZero.
func (v Vector3) Divide(s float64) (Vector3, error) {
	if s == 0 {
		return Vector3{}, errs.DivisionByZero("vector divide")
	}
	return Vector3{v.x / s, v.y / s, v.z / s}, nil
}

func (v Vector3) Ceil() Vector3 {
	return Vector3{math.Ceil(v.x), math.Ceil(v.y), math.Ceil(v.z)}
}

func (v Vector3) Floor() Vector3 {
	return Vector3{math.Floor(v.x), math.Floor(v.y), math.Floor(v.z)}
}

// Round rounds each component to precision decimal places using mode for ties.
func (v Vector3) Round(precision int, mode round.Mode) Vector3 {
	return Vector3{
		round.Float(v.x, precision, mode),
		round.Float(v.y, precision, mode),
		round.Float(v.z, precision, mode),
	}
}

func (v Vector3) Abs() Vector3 {
	return Vector3{math.Abs(v.x), math.Abs(v.y), math.Abs(v.z)}
}

// Side returns the vector step blocks away in the given facing.
func (v Vector3) Side(f Facing, step int) (Vector3, error) {
	if !f.Valid() {
		return Vector3{}, errs.InvalidArgument("invalid side %d", f).WithContext("side", int(f))
	}
	return v.side(f, step), nil
}

func (v Vector3) side(f Facing, step int) Vector3 {
	s := float64(step)
	if !f.IsPositive() {
		s = -s
	}
	switch f.Axis() {
	case AxisY:
		return Vector3{v.x, v.y + s, v.z}
	case AxisZ:
		return Vector3{v.x, v.y, v.z + s}
	default:
		return Vector3{v.x + s, v.y, v.z}
	}
}

func (v Vector3) Down(step int) Vector3  { return v.side(FacingDown, step) }
func (v Vector3) Up(step int) Vector3    { return v.side(FacingUp, step) }
func (v Vector3) North(step int) Vector3 { return v.side(FacingNorth, step) }
func (v Vector3) South(step int) Vector3 { return v.side(FacingSouth, step) }
func (v Vector3) West(step int) Vector3  { return v.side(FacingWest, step) }
func (v Vector3) East(step int) Vector3  { return v.side(FacingEast, step) }

// Sides yields the six neighbours step blocks away, keyed by facing, in facing order.
func (v Vector3) Sides(step int) iter.Seq2[Facing, Vector3] {
	return func(yield func(Facing, Vector3) bool) {
		for _, f := range Facings() {
			if !yield(f, v.side(f, step)) {
				return
			}
		}
	}
}

// SidesArray returns the six neighbours step blocks away, indexed by facing.
func (v Vector3) SidesArray(step int) [6]Vector3 {
	var out [6]Vector3
	for _, f := range Facings() {
		out[f] = v.side(f, step)
	}
	return out
}

// SidesAroundAxis yields the four neighbours perpendicular to axis.
func (v Vector3) SidesAroundAxis(axis Axis, step int) (iter.Seq2[Facing, Vector3], error) {
	if !axis.Valid() {
		return nil, errs.InvalidArgument("invalid axis %d", axis).WithContext("axis", int(axis))
	}
	return func(yield func(Facing, Vector3) bool) {
		for _, f := range Facings() {
			if f.Axis() == axis {
				continue
			}
			if !yield(f, v.side(f, step)) {
				return
			}
		}
	}, nil
}

// Distance returns the distance between two points
func (v Vector3) Distance(o Vector3) float64 {
	return math.Sqrt(v.DistanceSquared(o))
}

func (v Vector3) DistanceSquared(o Vector3) float64 {
	dx, dy, dz := v.x-o.x, v.y-o.y, v.z-o.z
	return dx*dx + dy*dy + dz*dz
}

// MaxPlainDistance returns the larger of the horizontal deltas |dx| and |dz|.
func (v Vector3) MaxPlainDistance(x, z float64) float64 {
	return math.Max(math.Abs(v.x-x), math.Abs(v.z-z))
}

func (v Vector3) MaxPlainDistanceVector(o Vector3) float64 {
	return v.MaxPlainDistance(o.x, o.z)
}

// Length returns the magnitude of the vector
func (v Vector3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

func (v Vector3) LengthSquared() float64 {
	return v.x*v.x + v.y*v.y + v.z*v.z
}

// Normalize returns a unit vector in the same direction, or the zero vector if v has no length.
func (v Vector3) Normalize() Vector3 {
	lenSq := v.LengthSquared()
	if lenSq > 0 {
		return v.Multiply(1 / math.Sqrt(lenSq))
	}
	return Vector3{}
}

func (v Vector3) Dot(o Vector3) float64 {
	return v.x*o.x + v.y*o.y + v.z*o.z
}

// Cross returns the right-handed cross product v × o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.y*o.z - v.z*o.y,
		v.z*o.x - v.x*o.z,
		v.x*o.y - v.y*o.x,
	}
}

// Equals compares components exactly.
func (v Vector3) Equals(o Vector3) bool {
	return v.x == o.x && v.y == o.y && v.z == o.z
}

// EqualsApprox compares components allowing an absolute difference of epsilon.
func (v Vector3) EqualsApprox(o Vector3, epsilon float64) bool {
	return math.Abs(v.x-o.x) <= epsilon &&
		math.Abs(v.y-o.y) <= epsilon &&
		math.Abs(v.z-o.z) <= epsilon
}

// IntermediateWithXValue returns the point on the segment v→o whose X equals x.
// It reports false when the segment is parallel to that plane or does not reach it.
func (v Vector3) IntermediateWithXValue(o Vector3, x float64) (Vector3, bool) {
	d := o.SubtractVector(v)
	if d.x*d.x < intermediateEpsilon {
		return Vector3{}, false
	}
	f := (x - v.x) / d.x
	if f < 0 || f > 1 {
		return Vector3{}, false
	}
	return Vector3{x, v.y + d.y*f, v.z + d.z*f}, true
}

// IntermediateWithYValue is IntermediateWithXValue for the Y axis.
func (v Vector3) IntermediateWithYValue(o Vector3, y float64) (Vector3, bool) {
	d := o.SubtractVector(v)
	if d.y*d.y < intermediateEpsilon {
		return Vector3{}, false
	}
	f := (y - v.y) / d.y
	if f < 0 || f > 1 {
		return Vector3{}, false
	}
	return Vector3{v.x + d.x*f, y, v.z + d.z*f}, true
}

// IntermediateWithZValue is IntermediateWithXValue for the Z axis.
func (v Vector3) IntermediateWithZValue(o Vector3, z float64) (Vector3, bool) {
	d := o.SubtractVector(v)
	if d.z*d.z < intermediateEpsilon {
		return Vector3{}, false
	}
	f := (z - v.z) / d.z
	if f < 0 || f > 1 {
		return Vector3{}, false
	}
	return Vector3{v.x + d.x*f, v.y + d.y*f, z}, true
}

func (v Vector3) String() string {
	return "Vector3(x=" + formatComponent(v.x) +
		",y=" + formatComponent(v.y) +
		",z=" + formatComponent(v.z) + ")"
}

func formatComponent(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// MaxComponents returns the componentwise maximum of vs.
func MaxComponents(vs ...Vector3) (Vector3, error) {
	if len(vs) == 0 {
		return Vector3{}, errs.InvalidArgument("at least one vector is required")
	}
	out := vs[0]
	for _, v := range vs[1:] {
		out = Vector3{math.Max(out.x, v.x), math.Max(out.y, v.y), math.Max(out.z, v.z)}
	}
	return out, nil
}

// MinComponents returns the componentwise minimum of vs.
func MinComponents(vs ...Vector3) (Vector3, error) {
	if len(vs) == 0 {
		return Vector3{}, errs.InvalidArgument("at least one vector is required")
	}
	out := vs[0]
	for _, v := range vs[1:] {
		out = Vector3{math.Min(out.x, v.x), math.Min(out.y, v.y), math.Min(out.z, v.z)}
	}
	return out, nil
}

// Sum returns the componentwise sum of vs.
func Sum(vs ...Vector3) Vector3 {
	var out Vector3
	for _, v := range vs {
		out = out.AddVector(v)
	}
	return out
}
