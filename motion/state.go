package motion

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// LocomotionState identifies the gait a character is currently in.
type LocomotionState uint8

const (
	StateIdle LocomotionState = iota
	StateWalk
	StateRun
)

// String ...
func (s LocomotionState) String() string {
	switch s {
	case StateWalk:
		return "walk"
	case StateRun:
		return "run"
	default:
		return "idle"
	}
}

// StateForSpeed returns the locomotion state for a planar speed using the
// default thresholds. Speeds exactly on a threshold stay in the slower state.
func StateForSpeed(speed float32) LocomotionState {
	return StateForSpeedIn(speed, WalkThreshold, RunThreshold)
}

// StateForSpeedIn is StateForSpeed with caller-supplied thresholds.
func StateForSpeedIn(speed, walkThreshold, runThreshold float32) LocomotionState {
	if speed > runThreshold {
		return StateRun
	}
	if speed > walkThreshold {
		return StateWalk
	}
	return StateIdle
}

// RateForState returns the playback rate that keeps stride frequency
// visually matched to travel speed. Idle always plays at its authored rate.
func RateForState(state LocomotionState, speed float32) float32 {
	return RateForStateIn(state, speed, WalkSpeed, RunThreshold)
}

// RateForStateIn is RateForState with caller-supplied reference speeds. The
// walk rate is the ratio of the current speed to the nominal walk speed,
// clamped to its authored band; the run rate scales off the run threshold
// and is capped so fast sprints do not look comical.
func RateForStateIn(state LocomotionState, speed, walkSpeed, runThreshold float32) float32 {
	switch state {
	case StateWalk:
		return mgl32.Clamp(speed/walkSpeed, WalkRateMin, WalkRateMax)
	case StateRun:
		return math32.Min(RunRateMax, speed/runThreshold)
	default:
		return 1
	}
}
