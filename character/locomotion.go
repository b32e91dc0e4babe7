package character

import "github.com/animus-rig/animus/motion"

// LocomotionComponent is a component that maps the speed of the member
// character to a gait state and keeps the mixer playing the matching clip.
type LocomotionComponent interface {
	// Update retargets the gait for the given planar speed.
	Update(speed float32, dt float32)

	// State returns the locomotion state of the locomotion component.
	State() motion.LocomotionState
	// ActiveClip returns the name of the clip currently driving the gait,
	// empty when the library had nothing usable.
	ActiveClip() string

	// Rate returns the playback rate currently applied to the gait clip.
	Rate() float32
	// SetRateOverride pins the playback rate of the locomotion component,
	// bypassing speed matching until cleared.
	SetRateOverride(rate float32)
	// ClearRateOverride returns the locomotion component to speed-matched
	// playback rates.
	ClearRateOverride()
}

func (c *Character) SetLocomotion(lc LocomotionComponent) {
	c.locomotion = lc
}

func (c *Character) Locomotion() LocomotionComponent {
	return c.locomotion
}
