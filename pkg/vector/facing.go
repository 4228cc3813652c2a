package vector

// Axis identifies one of the three grid axes.
type Axis uint8

const (
	AxisY Axis = iota
	AxisZ
	AxisX
)

func (a Axis) String() string {
	switch a {
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	case AxisX:
		return "x"
	default:
		return "unknown"
	}
}

// Valid reports whether a is one of the three known axes.
func (a Axis) Valid() bool {
	return a <= AxisX
}

// Facing identifies one of the six block faces. The low bit is the direction
// along the axis (1 = positive), the remaining bits are the Axis.
type Facing uint8

const (
	FacingDown Facing = iota
	FacingUp
	FacingNorth
	FacingSouth
	FacingWest
	FacingEast
)

var facingNames = [...]string{"down", "up", "north", "south", "west", "east"}

// Facings returns all six facings in id order.
func Facings() [6]Facing {
	return [6]Facing{FacingDown, FacingUp, FacingNorth, FacingSouth, FacingWest, FacingEast}
}

func (f Facing) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return facingNames[f]
}

// Valid reports whether f is one of the six known facings.
func (f Facing) Valid() bool {
	return f <= FacingEast
}

// Axis returns the axis the facing points along.
func (f Facing) Axis() Axis {
	return Axis(f >> 1)
}

// IsPositive reports whether the facing points toward increasing coordinates.
func (f Facing) IsPositive() bool {
	return f&1 == 1
}

// Opposite returns the facing pointing the other way along the same axis.
func (f Facing) Opposite() Facing {
	return f ^ 1
}
