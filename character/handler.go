package character

import "github.com/animus-rig/animus/motion"

// Handler handles events dispatched by a character during its update loop.
type Handler interface {
	// HandleTransition handles a locomotion state change. clip is the name
	// of the clip faded in for the new state, empty when the library had
	// nothing usable and the previous pose is held.
	HandleTransition(c *Character, from, to motion.LocomotionState, clip string)
	// HandleFrameEnd is called after all animation layers ran for a frame.
	HandleFrameEnd(c *Character, dt float32)
}

// NopHandler implements Handler with no-op methods. Embed it to handle only
// the events you care about.
type NopHandler struct{}

// Compile time check to make sure NopHandler implements Handler.
var _ Handler = NopHandler{}

func (NopHandler) HandleTransition(c *Character, from, to motion.LocomotionState, clip string) {}
func (NopHandler) HandleFrameEnd(c *Character, dt float32)                                    {}
