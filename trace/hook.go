package trace

import (
	"time"

	"github.com/animus-rig/animus/character"
	"github.com/animus-rig/animus/motion"
)

// Hook adapts a Recorder into a character handler. It records one frame
// event per update, a transition event per state change, and the skeleton
// anomalies found at attach time.
type Hook struct {
	character.NopHandler
	rec *Recorder
}

// NewHook creates a handler recording the given character. The character's
// skeleton anomalies are written up front so a replay carries the rig
// context the frames ran under.
func NewHook(rec *Recorder, c *character.Character) *Hook {
	for _, a := range c.Anomalies() {
		rec.Record(AnomalyEvent{
			NopEvent: NopEvent{EvTime: time.Now().UnixNano()},
			Kind:     a.Type,
			Bone:     a.Bone,
			Detail:   a.String(),
		})
	}
	return &Hook{rec: rec}
}

// HandleTransition records the locomotion state change.
func (h *Hook) HandleTransition(c *character.Character, from, to motion.LocomotionState, clip string) {
	h.rec.Record(TransitionEvent{
		NopEvent: NopEvent{EvTime: time.Now().UnixNano()},
		From:     byte(from),
		To:       byte(to),
		Clip:     clip,
	})
}

// HandleFrameEnd samples the character at the end of the frame.
func (h *Hook) HandleFrameEnd(c *character.Character, dt float32) {
	rate := float32(1)
	if lc := c.Locomotion(); lc != nil {
		rate = lc.Rate()
	}
	stats := c.SecondaryStats()

	h.rec.Record(FrameEvent{
		NopEvent: NopEvent{EvTime: time.Now().UnixNano()},

		Frame:    c.Frame(),
		State:    byte(c.State()),
		Speed:    c.Speed(),
		Heading:  c.Heading(),
		Position: c.Position(),
		Rate:     rate,

		Springs:       int32(stats.ActiveSprings),
		SpringVel:     stats.Velocity,
		SpringAcc:     stats.Acceleration,
		PeakAmplitude: stats.PeakAmplitude,
	})
}
