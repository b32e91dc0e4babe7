package component

import (
	"github.com/animus-rig/animus/anim"
	"github.com/animus-rig/animus/character"
	"github.com/animus-rig/animus/motion"
)

// LocomotionComponent drives gait playback: it maps planar speed to a
// locomotion state, crossfades the mixer between gait clips on state
// changes, and keeps the playback rate matched to travel speed.
type LocomotionComponent struct {
	mCharacter *character.Character

	set    anim.ClipSet
	state  motion.LocomotionState
	action anim.Action

	rate         float32
	rateOverride float32

	missingLogged map[motion.LocomotionState]bool
}

// NewLocomotionComponent creates a locomotion component for the given
// character and starts the idle pose at full weight. Startup is the only
// transition without a fade; there is no previous pose to blend from.
func NewLocomotionComponent(c *character.Character) *LocomotionComponent {
	lc := &LocomotionComponent{
		mCharacter:    c,
		rate:          1,
		missingLogged: map[motion.LocomotionState]bool{},
	}

	mixer := c.Mixer()
	if mixer == nil {
		c.Log().Debugf("locomotion has no mixer, tracking state only")
		return lc
	}

	lc.set = anim.ResolveClips(mixer.Clips())
	if clip := lc.set.StartupClip(); clip != nil {
		lc.action = mixer.Action(clip)
		lc.action.SetLooping(true)
		lc.action.Play()
	} else {
		c.Log().Debugf("locomotion found no usable clips")
	}
	return lc
}

// Update retargets the gait for the given planar speed.
func (lc *LocomotionComponent) Update(speed float32, dt float32) {
	conf := lc.mCharacter.Settings().Locomotion
	lc.transition(motion.StateForSpeedIn(speed, conf.WalkThreshold, conf.RunThreshold))

	// The rate tracks speed continuously within a state, not only on
	// transitions, so a slowing walk visibly shortens its stride.
	lc.rate = motion.RateForStateIn(lc.state, speed, lc.mCharacter.Settings().Movement.WalkSpeed, conf.RunThreshold)
	if lc.rateOverride > 0 {
		lc.rate = lc.rateOverride
	}
	if lc.action != nil {
		lc.action.SetTimeScale(lc.rate)
	}
}

// transition switches to the given state, crossfading the mixer to the
// matching clip. Same-state calls are strict no-ops so repeated updates
// never restart a fade.
func (lc *LocomotionComponent) transition(next motion.LocomotionState) {
	if next == lc.state {
		return
	}
	from := lc.state
	lc.state = next

	mixer := lc.mCharacter.Mixer()
	if mixer == nil {
		lc.mCharacter.NotifyTransition(from, next, "")
		return
	}

	clip := lc.set.ClipFor(next)
	if clip == nil {
		if !lc.missingLogged[next] {
			lc.mCharacter.Log().Debugf("no clip resolves for %s, holding current pose", next)
			lc.missingLogged[next] = true
		}
		lc.mCharacter.NotifyTransition(from, next, "")
		return
	}

	// Gait fallback can land on the clip that is already playing, e.g. run
	// falling back to walk. The state still changes but the fade is skipped.
	if lc.action != nil && lc.action.Clip() == clip {
		lc.mCharacter.NotifyTransition(from, next, clip.Name())
		return
	}

	act := mixer.Action(clip)
	act.SetLooping(true)
	if lc.action == nil {
		act.Play()
	} else {
		crossfade := lc.mCharacter.Settings().Locomotion.Crossfade
		lc.action.FadeOut(crossfade)
		act.Reset()
		act.FadeIn(crossfade)
		act.Play()
	}
	lc.action = act

	lc.mCharacter.NotifyTransition(from, next, clip.Name())
}

// State returns the locomotion state of the locomotion component.
func (lc *LocomotionComponent) State() motion.LocomotionState {
	return lc.state
}

// ActiveClip returns the name of the clip currently driving the gait.
func (lc *LocomotionComponent) ActiveClip() string {
	if lc.action == nil {
		return ""
	}
	return lc.action.Clip().Name()
}

// Rate returns the playback rate currently applied to the gait clip.
func (lc *LocomotionComponent) Rate() float32 {
	return lc.rate
}

// SetRateOverride pins the playback rate of the locomotion component.
func (lc *LocomotionComponent) SetRateOverride(rate float32) {
	lc.rateOverride = rate
}

// ClearRateOverride returns the locomotion component to speed-matched
// playback rates.
func (lc *LocomotionComponent) ClearRateOverride() {
	lc.rateOverride = 0
}
