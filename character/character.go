package character

import (
	"sync"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"github.com/animus-rig/animus/anim"
	"github.com/animus-rig/animus/input"
	"github.com/animus-rig/animus/motion"
	"github.com/animus-rig/animus/rig"
	"github.com/animus-rig/animus/settings"
)

// Config holds the pieces a character animates with. Skeleton, Mixer and
// Input may each be nil; a missing piece disables only the layers that need
// it, never the whole character.
type Config struct {
	// Skeleton is the bone hierarchy the pose layers write to.
	Skeleton *rig.Skeleton
	// Mixer plays and blends the host's animation clips.
	Mixer anim.Mixer
	// Input supplies the movement intent sampled at the top of every frame.
	Input input.Provider
	// Settings tunes the animation layers. Zero-valued fields use defaults.
	Settings settings.Settings
}

// Character runs the animation layers of one rig in a fixed order every
// frame: input, movement, locomotion, clip mixing, turn lag, then spring
// secondary motion.
type Character struct {
	log *logrus.Logger

	skeleton *rig.Skeleton
	mixer    anim.Mixer
	input    input.Provider

	settings settings.Settings

	keyBones  *orderedmap.OrderedMap[string, *rig.Bone]
	anomalies []rig.Anomaly

	movement   MovementComponent
	locomotion LocomotionComponent
	procedural ProceduralComponent
	secondary  SecondaryMotionComponent

	frame uint64

	ticker *time.Ticker

	hMutex sync.RWMutex
	h      Handler

	closed atomic.Bool
}

// New creates a character for the given config. The returned character has
// no components yet; register an implementation for each layer before the
// first Update.
func New(log *logrus.Logger, conf Config) *Character {
	if log == nil {
		log = logrus.New()
	}
	c := &Character{
		log: log,

		skeleton: conf.Skeleton,
		mixer:    conf.Mixer,
		input:    conf.Input,

		settings: conf.Settings.Normalized(),

		h: NopHandler{},

		ticker: time.NewTicker(time.Second / 60),
	}

	if c.skeleton != nil {
		c.keyBones = rig.KeyBones(c.skeleton)
		c.anomalies = rig.Validate(c.skeleton)
		for _, a := range c.anomalies {
			log.Warnf("skeleton anomaly: %s", a)
		}
	} else {
		c.keyBones = orderedmap.NewOrderedMap[string, *rig.Bone]()
		log.Debugf("character has no skeleton, pose layers disabled")
	}
	return c
}

// Update advances every animation layer by dt seconds. The layer order is
// fixed so later layers always see the output of earlier ones: movement
// integrates input first, locomotion retargets the mixer, the mixer writes
// the base pose, and the turn-lag and spring layers stack on top of it.
func (c *Character) Update(dt float32) {
	if c.closed.Load() {
		return
	}
	dt = motion.ClampDt(dt)
	c.frame++

	var in input.State
	if c.input != nil {
		in = c.input.State()
	}

	if c.movement != nil {
		c.movement.Update(in, dt)
	}
	if c.locomotion != nil {
		c.locomotion.Update(c.Speed(), dt)
	}
	if c.mixer != nil {
		c.mixer.Advance(dt)
	}
	if c.procedural != nil {
		c.procedural.Update(dt)
	}
	if c.secondary != nil {
		c.secondary.Update(dt)
	}

	c.handler().HandleFrameEnd(c, dt)
}

// State returns the current locomotion state, idle when no locomotion
// component is registered.
func (c *Character) State() motion.LocomotionState {
	if c.locomotion == nil {
		return motion.StateIdle
	}
	return c.locomotion.State()
}

// Speed returns the current planar speed in units per second.
func (c *Character) Speed() float32 {
	if c.movement == nil {
		return 0
	}
	return c.movement.Speed()
}

// Heading returns the current facing angle in radians around the up axis.
func (c *Character) Heading() float32 {
	if c.movement == nil {
		return 0
	}
	return c.movement.Heading()
}

// Position returns the current world position.
func (c *Character) Position() mgl32.Vec3 {
	if c.movement == nil {
		return mgl32.Vec3{}
	}
	return c.movement.Pos()
}

// Teleport moves the character to pos without traversing the space in
// between. Movement and spring history are reset so neither layer reacts to
// the jump as if it were velocity.
func (c *Character) Teleport(pos mgl32.Vec3) {
	if c.movement != nil {
		c.movement.Teleport(pos)
	}
	if c.secondary != nil {
		c.secondary.Reset()
	}
}

// SetPlaybackRate overrides the speed-matched playback rate of the current
// gait clip. The override sticks across state changes until cleared.
func (c *Character) SetPlaybackRate(rate float32) {
	if c.locomotion != nil {
		c.locomotion.SetRateOverride(rate)
	}
}

// ClearPlaybackRate removes a playback rate override and returns the gait
// clips to speed-matched rates.
func (c *Character) ClearPlaybackRate() {
	if c.locomotion != nil {
		c.locomotion.ClearRateOverride()
	}
}

// SecondaryStats summarises the spring layer for dashboards and traces.
type SecondaryStats struct {
	// ActiveSprings is the number of simulated spring bones.
	ActiveSprings int
	// Velocity is the magnitude of the velocity driving the springs.
	Velocity float32
	// Acceleration is the magnitude of the acceleration driving the springs.
	Acceleration float32
	// MeanAmplitude is the mean of the peak swing angles over recent frames.
	MeanAmplitude float32
	// PeakAmplitude is the largest swing angle seen over recent frames.
	PeakAmplitude float32
}

// SecondaryStats returns a snapshot of the spring layer, zero when no
// secondary motion component is registered.
func (c *Character) SecondaryStats() SecondaryStats {
	if c.secondary == nil {
		return SecondaryStats{}
	}
	mean, peak := c.secondary.AmplitudeStats()
	return SecondaryStats{
		ActiveSprings: c.secondary.ActiveSprings(),
		Velocity:      c.secondary.Velocity().Len(),
		Acceleration:  c.secondary.Acceleration().Len(),
		MeanAmplitude: mean,
		PeakAmplitude: peak,
	}
}

// Skeleton returns the skeleton the character animates, nil when none was
// attached.
func (c *Character) Skeleton() *rig.Skeleton {
	return c.skeleton
}

// KeyBones returns the resolved key bone roles in role order.
func (c *Character) KeyBones() *orderedmap.OrderedMap[string, *rig.Bone] {
	return c.keyBones
}

// Anomalies returns the skeleton anomalies found at attach time.
func (c *Character) Anomalies() []rig.Anomaly {
	return c.anomalies
}

// Mixer returns the clip mixer of the character, nil when none was attached.
func (c *Character) Mixer() anim.Mixer {
	return c.mixer
}

// Settings returns the normalized settings the character runs with.
func (c *Character) Settings() settings.Settings {
	return c.settings
}

// Log returns the logger of the character.
func (c *Character) Log() *logrus.Logger {
	return c.log
}

// Frame returns the number of updates the character has run.
func (c *Character) Frame() uint64 {
	return c.frame
}

// Handle sets the handler of the character.
func (c *Character) Handle(h Handler) {
	c.hMutex.Lock()
	c.h = h
	c.hMutex.Unlock()
}

// NotifyTransition dispatches a locomotion state change to the handler and
// the debug log. Locomotion components call this whenever they change state.
func (c *Character) NotifyTransition(from, to motion.LocomotionState, clip string) {
	c.handler().HandleTransition(c, from, to, clip)
	if clip == "" {
		c.log.Debugf("state %s -> %s (no clip, holding pose)", from, to)
		return
	}
	c.log.Debugf("state %s -> %s (%s)", from, to, clip)
}

// Close stops the ticker and makes further updates no-ops.
func (c *Character) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	c.ticker.Stop()
	return nil
}

// handler returns the handler of the character.
func (c *Character) handler() Handler {
	c.hMutex.RLock()
	defer c.hMutex.RUnlock()
	return c.h
}
