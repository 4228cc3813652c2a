package physics

// VoxelSet is a sparse World holding only the solid voxels.
type VoxelSet map[[3]int]struct{}

func NewVoxelSet(solid ...[3]int) VoxelSet {
	s := make(VoxelSet, len(solid))
	for _, v := range solid {
		s[v] = struct{}{}
	}
	return s
}

func (s VoxelSet) Add(x, y, z int) {
	s[[3]int{x, y, z}] = struct{}{}
}

func (s VoxelSet) Remove(x, y, z int) {
	delete(s, [3]int{x, y, z})
}

func (s VoxelSet) IsSolid(x, y, z int) bool {
	_, ok := s[[3]int{x, y, z}]
	return ok
}
