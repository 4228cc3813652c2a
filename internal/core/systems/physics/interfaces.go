package physics

import "github.com/zeusync/voxkit/pkg/vector"

// Transform provides spatial information (rotation not used yet).
type Transform interface {
	Position() vector.Vector3
}

// World answers whether the voxel at integer coordinates blocks rays.
type World interface {
	IsSolid(x, y, z int) bool
}

// WorldFunc adapts a plain function to World.
type WorldFunc func(x, y, z int) bool

func (f WorldFunc) IsSolid(x, y, z int) bool { return f(x, y, z) }
