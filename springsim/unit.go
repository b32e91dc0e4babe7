package springsim

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/animus-rig/animus/motion"
)

// State carries the integrated offset of one spring and its velocity. The
// offset is an axis-angle vector: its direction is the swing axis and its
// magnitude the swing angle in radians, relative to the animated rest pose.
type State struct {
	Offset   mgl32.Vec3
	Velocity mgl32.Vec3
}

// Amplitude returns the current swing angle in radians.
func (s State) Amplitude() float32 {
	return s.Offset.Len()
}

// Options define integration behavior.
type Options struct {
	// VelocityRetain scales velocity when the offset hits the stretch limit.
	// Zero means the default retain factor.
	VelocityRetain float32

	// Debugf receives internal integration trace logs for callers that need
	// deep diagnostics.
	Debugf func(format string, args ...any)
}

// Simulator integrates damped rotational springs with a shared profile. It is
// pure state-in, state-out; callers own where drives come from and how the
// resulting offsets are applied to a pose.
type Simulator struct {
	Profile Profile
	Options Options
}

// Step advances a spring by dt under the given external drive force and
// returns the new state. Integration is semi-implicit Euler, which stays
// stable at any delta ClampDt allows. A state that comes out non-finite is
// replaced with a rest state rather than poisoning later frames.
func (s *Simulator) Step(state State, drive mgl32.Vec3, dt float32) State {
	force := state.Offset.Mul(-s.Profile.Stiffness).
		Sub(state.Velocity.Mul(s.Profile.Damping)).
		Add(drive)

	state.Velocity = state.Velocity.Add(force.Mul(dt))
	state.Offset = state.Offset.Add(state.Velocity.Mul(dt))

	if !finiteVec(state.Offset) || !finiteVec(state.Velocity) {
		if s.Options.Debugf != nil {
			s.Options.Debugf("spring state reset after non-finite values")
		}
		return State{}
	}

	if stretch := state.Offset.Len(); stretch > s.Profile.MaxStretch {
		state.Offset = state.Offset.Mul(s.Profile.MaxStretch / stretch)

		retain := s.Options.VelocityRetain
		if retain == 0 {
			retain = motion.ClampVelocityRetain
		}
		state.Velocity = state.Velocity.Mul(retain)

		if s.Options.Debugf != nil {
			s.Options.Debugf("spring clamped to %v rad (stretch %v)", s.Profile.MaxStretch, stretch)
		}
	}

	return state
}

func finiteVec(v mgl32.Vec3) bool {
	for _, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}
