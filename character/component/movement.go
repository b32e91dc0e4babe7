package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/animus-rig/animus/assert"
	"github.com/animus-rig/animus/character"
	"github.com/animus-rig/animus/input"
	"github.com/animus-rig/animus/motion"
)

// MovementComponent integrates movement intent into position, heading and
// speed. Speed approaches its target exponentially with separate rates for
// starting and stopping, while direction changes apply immediately.
type MovementComponent struct {
	mCharacter *character.Character

	pos, lastPos mgl32.Vec3
	vel, lastVel mgl32.Vec3

	heading, lastHeading float32

	speed   float32
	moveDir mgl32.Vec3
}

// NewMovementComponent creates a movement component for the given character.
func NewMovementComponent(c *character.Character) *MovementComponent {
	return &MovementComponent{mCharacter: c}
}

// Update integrates one frame of movement from the given input state.
func (mc *MovementComponent) Update(in input.State, dt float32) {
	assert.IsTrue(mc.mCharacter != nil, "parent character is null")

	dt = motion.ClampDt(dt)
	conf := mc.mCharacter.Settings().Movement

	target := float32(0)
	if in.Moving() {
		dir := mgl32.Vec3{in.MoveDir.X(), 0, in.MoveDir.Y()}
		if l := dir.Len(); l > 0 {
			mc.moveDir = dir.Mul(1 / l)
		}

		target = conf.WalkSpeed
		if in.Sprint {
			target = conf.SprintSpeed
		}
	}

	rate := conf.AccelRate
	if target < mc.speed {
		rate = conf.DecelRate
	}
	mc.speed = motion.ApproachExp(mc.speed, target, rate, dt)
	if target == 0 && mc.speed < motion.StopEpsilon {
		mc.speed = 0
	}

	// The heading shift register advances every frame so turn rate reads
	// zero while holding still instead of going stale.
	heading := mc.heading
	if in.Moving() {
		heading = motion.TurnTowards(mc.heading, motion.HeadingFromDirection(mc.moveDir), dt)
	}
	mc.setHeading(heading)

	mc.SetVel(mc.moveDir.Mul(mc.speed))
	mc.SetPos(mc.pos.Add(mc.vel.Mul(dt)))
}

// Pos returns the position of the movement component.
func (mc *MovementComponent) Pos() mgl32.Vec3 {
	return mc.pos
}

// LastPos returns the previous position of the movement component.
func (mc *MovementComponent) LastPos() mgl32.Vec3 {
	return mc.lastPos
}

// SetPos sets the position of the movement component.
func (mc *MovementComponent) SetPos(newPos mgl32.Vec3) {
	mc.lastPos = mc.pos
	mc.pos = newPos
}

// Vel returns the velocity of the movement component.
func (mc *MovementComponent) Vel() mgl32.Vec3 {
	return mc.vel
}

// LastVel returns the previous velocity of the movement component.
func (mc *MovementComponent) LastVel() mgl32.Vec3 {
	return mc.lastVel
}

// SetVel sets the velocity of the movement component.
func (mc *MovementComponent) SetVel(newVel mgl32.Vec3) {
	mc.lastVel = mc.vel
	mc.vel = newVel
}

// Speed returns the smoothed planar speed of the movement component.
func (mc *MovementComponent) Speed() float32 {
	return mc.speed
}

// Heading returns the facing angle of the movement component.
func (mc *MovementComponent) Heading() float32 {
	return mc.heading
}

// LastHeading returns the previous facing angle of the movement component.
func (mc *MovementComponent) LastHeading() float32 {
	return mc.lastHeading
}

// setHeading sets the facing angle of the movement component.
func (mc *MovementComponent) setHeading(newHeading float32) {
	mc.lastHeading = mc.heading
	mc.heading = newHeading
}

// Teleport moves the component to pos and clears its motion history so the
// jump does not read as velocity.
func (mc *MovementComponent) Teleport(pos mgl32.Vec3) {
	mc.pos, mc.lastPos = pos, pos
	mc.vel, mc.lastVel = mgl32.Vec3{}, mgl32.Vec3{}
	mc.speed = 0
	mc.lastHeading = mc.heading
}
