package character

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/animus-rig/animus/input"
)

// MovementComponent is a component that integrates movement intent into the
// position, heading and speed of the member character.
type MovementComponent interface {
	// Update integrates one frame of movement from the given input state.
	Update(in input.State, dt float32)

	// Pos returns the position of the movement component.
	Pos() mgl32.Vec3
	// LastPos returns the position of the movement component on the
	// previous frame.
	LastPos() mgl32.Vec3

	// Vel returns the velocity of the movement component.
	Vel() mgl32.Vec3
	// LastVel returns the velocity of the movement component on the
	// previous frame.
	LastVel() mgl32.Vec3

	// Speed returns the smoothed planar speed of the movement component.
	Speed() float32

	// Heading returns the facing angle of the movement component in radians
	// around the up axis.
	Heading() float32
	// LastHeading returns the facing angle of the movement component on the
	// previous frame.
	LastHeading() float32

	// Teleport moves the component to pos and clears its motion history so
	// the jump does not read as velocity.
	Teleport(pos mgl32.Vec3)
}

func (c *Character) SetMovement(mc MovementComponent) {
	c.movement = mc
}

func (c *Character) Movement() MovementComponent {
	return c.movement
}
