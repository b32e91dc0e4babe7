package rig

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/animus-rig/animus/aerror"
)

// NodeKind tags what a scene node represents to the animation layers.
type NodeKind uint8

const (
	// KindNode is a plain transform node.
	KindNode NodeKind = iota
	// KindMesh is a renderable mesh node.
	KindMesh
	// KindBone is a joint of a skeleton.
	KindBone
)

// Node is the minimal view of a host scene node that skeleton discovery
// needs. Hosts wrap their own object tree in this interface; the rig layer
// never holds engine types directly.
type Node interface {
	// Name returns the name of the node.
	Name() string
	// Kind returns what the node represents.
	Kind() NodeKind
	// Position returns the node translation local to its parent.
	Position() mgl32.Vec3
	// Rotation returns the node rotation local to its parent.
	Rotation() mgl32.Quat
	// Scale returns the node scale local to its parent.
	Scale() mgl32.Vec3
	// Children returns the child nodes of the node.
	Children() []Node
}

// skeletonContainerKeywords mark nodes that hold a bone hierarchy in trees
// whose loader did not tag bones.
var skeletonContainerKeywords = []string{"skeleton", "armature", "rig"}

// FindSkeleton walks the tree under root and converts the first bone
// hierarchy it finds into a Skeleton. The topmost node tagged as a bone
// wins; trees without bone tags fall back to the first node named like a
// skeleton container, whose whole subtree is then read as bones. An error
// is returned when neither exists, and the caller is expected to run the
// pose layers degraded rather than fail.
func FindSkeleton(root Node) (*Skeleton, error) {
	if root == nil {
		return nil, aerror.New("rig: no node to search for a skeleton")
	}

	if bone := findBoneRoot(root); bone != nil {
		return NewSkeleton(convertNode(bone, true)), nil
	}
	if container := findContainer(root); container != nil {
		return NewSkeleton(convertNode(container, false)), nil
	}
	return nil, aerror.New("rig: no skeleton found under node %q", root.Name())
}

// findBoneRoot returns the first node in depth-first order tagged as a bone.
// Every bone below it belongs to the same skeleton, so the first hit is the
// topmost joint.
func findBoneRoot(n Node) Node {
	if n.Kind() == KindBone {
		return n
	}
	for _, child := range n.Children() {
		if found := findBoneRoot(child); found != nil {
			return found
		}
	}
	return nil
}

// findContainer returns the first node in depth-first order whose name marks
// it as a skeleton container, or nil.
func findContainer(n Node) Node {
	name := strings.ToLower(n.Name())
	for _, keyword := range skeletonContainerKeywords {
		if strings.Contains(name, keyword) {
			return n
		}
	}
	for _, child := range n.Children() {
		if found := findContainer(child); found != nil {
			return found
		}
	}
	return nil
}

// convertNode copies a node subtree into a bone subtree. With tagged set,
// recursion stops at children that are not bones, so a prop mesh parented
// to a hand never becomes a joint; untagged container subtrees are taken
// whole.
func convertNode(n Node, tagged bool) *Bone {
	b := &Bone{
		Name:     n.Name(),
		Position: n.Position(),
		Rotation: n.Rotation(),
		Scale:    n.Scale(),
	}
	for _, child := range n.Children() {
		if tagged && child.Kind() != KindBone {
			continue
		}
		cb := convertNode(child, tagged)
		cb.Parent = b
		b.Children = append(b.Children, cb)
	}
	return b
}
