package rig

import (
	"github.com/ethaniccc/float32-cube/cube"

	"github.com/animus-rig/animus/motion"
)

// Bounds returns the axis-aligned bounding box enclosing every bone of the
// skeleton in world space. An empty skeleton yields a zero box.
func Bounds(s *Skeleton) cube.BBox {
	if s == nil || s.Len() == 0 {
		return cube.BBox{}
	}

	positions := s.WorldPositions()
	min := motion.MinVec3(positions)
	max := motion.MaxVec3(positions)
	return cube.Box(
		min.X(), min.Y(), min.Z(),
		max.X(), max.Y(), max.Z(),
	)
}
