package rig

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Bone is a single joint in a skeleton hierarchy. Position, Rotation and
// Scale are expressed local to the parent bone.
type Bone struct {
	Name string

	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3

	Parent   *Bone
	Children []*Bone
}

// NewBone returns a named bone with an identity transform.
func NewBone(name string) *Bone {
	return &Bone{
		Name:     name,
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// LocalMatrix returns the bone transform relative to its parent.
func (b *Bone) LocalMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(b.Position.X(), b.Position.Y(), b.Position.Z()).
		Mul4(b.Rotation.Mat4()).
		Mul4(mgl32.Scale3D(b.Scale.X(), b.Scale.Y(), b.Scale.Z()))
}

// Skeleton is a bone hierarchy flattened into parent-before-child order, with
// a name index for lookups. Bones keep their live hierarchy pointers, so
// writes to a bone are visible through the skeleton immediately.
type Skeleton struct {
	Root *Bone

	bones     []*Bone
	parentIdx []int
	index     map[string]*Bone
}

// NewSkeleton flattens the hierarchy under root into a skeleton. Traversal is
// depth-first, so a bone always appears after its parent. Bones with a
// zero-value rotation or scale are normalized to identity so unset fields
// cannot poison the transform chain.
func NewSkeleton(root *Bone) *Skeleton {
	s := &Skeleton{
		Root:  root,
		index: map[string]*Bone{},
	}
	if root == nil {
		return s
	}

	var walk func(b *Bone, parent int)
	walk = func(b *Bone, parent int) {
		if b.Rotation == (mgl32.Quat{}) {
			b.Rotation = mgl32.QuatIdent()
		}
		if b.Scale == (mgl32.Vec3{}) {
			b.Scale = mgl32.Vec3{1, 1, 1}
		}

		idx := len(s.bones)
		s.bones = append(s.bones, b)
		s.parentIdx = append(s.parentIdx, parent)
		if _, ok := s.index[b.Name]; !ok {
			s.index[b.Name] = b
		}
		for _, child := range b.Children {
			child.Parent = b
			walk(child, idx)
		}
	}
	walk(root, -1)

	return s
}

// Bones returns every bone in discovery order.
func (s *Skeleton) Bones() []*Bone {
	return s.bones
}

// Len returns the number of bones in the skeleton.
func (s *Skeleton) Len() int {
	return len(s.bones)
}

// Find returns the bone with the given name, or nil if the skeleton has no
// such bone. When names collide the first discovered bone wins.
func (s *Skeleton) Find(name string) *Bone {
	return s.index[name]
}

// WorldMatrices computes the world transform for each bone, indexed in
// discovery order. Parents are guaranteed to be computed before children.
func (s *Skeleton) WorldMatrices() []mgl32.Mat4 {
	worlds := make([]mgl32.Mat4, len(s.bones))
	for i, bone := range s.bones {
		local := bone.LocalMatrix()
		if parent := s.parentIdx[i]; parent >= 0 {
			worlds[i] = worlds[parent].Mul4(local)
		} else {
			worlds[i] = local
		}
	}
	return worlds
}

// WorldPositions returns the world-space position of each bone, indexed in
// discovery order.
func (s *Skeleton) WorldPositions() []mgl32.Vec3 {
	worlds := s.WorldMatrices()
	positions := make([]mgl32.Vec3, len(worlds))
	for i, w := range worlds {
		positions[i] = mgl32.Vec3{w[12], w[13], w[14]}
	}
	return positions
}
