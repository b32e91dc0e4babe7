package input

import "github.com/go-gl/mathgl/mgl32"

// State is one frame of control input.
type State struct {
	// MoveDir is the desired travel direction on the ground plane, already
	// camera-relative and normalized by the host.
	MoveDir mgl32.Vec2
	// Sprint requests the sprint speed tier while moving.
	Sprint bool
	// MouseDelta is the pointer movement since the last query. It is carried
	// for the host's camera; the animation core never reads it.
	MouseDelta mgl32.Vec2
}

// Moving reports whether the direction is large enough to count as movement
// intent. Both axes below the epsilon mean the stick is at rest.
func (s State) Moving() bool {
	return mgl32.Abs(s.MoveDir.X()) >= 0.01 || mgl32.Abs(s.MoveDir.Y()) >= 0.01
}

// Provider bridges the host's input polling. Implementations are queried once
// per frame at the top of the update pipeline.
type Provider interface {
	// State returns the input state for the current frame.
	State() State
}
