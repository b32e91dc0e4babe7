package character

import "github.com/go-gl/mathgl/mgl32"

// SpringInfo describes one simulated spring bone for dashboards.
type SpringInfo struct {
	// Name is the bone name, suffixed when several bones share it.
	Name string
	// Group is the spring group the bone was classified into.
	Group string
	// Amplitude is the current swing angle of the spring in radians.
	Amplitude float32
}

// SecondaryMotionComponent is a component that swings the dangly bones of
// the member character with damped springs driven by its motion.
type SecondaryMotionComponent interface {
	// Update advances all springs by one frame and writes their offsets
	// over the animated pose.
	Update(dt float32)
	// Reset returns every spring to rest and clears the kinematic history,
	// used after teleports and rig swaps.
	Reset()

	// ActiveSprings returns the number of simulated spring bones.
	ActiveSprings() int
	// Velocity returns the velocity of the secondary motion component,
	// derived from position history.
	Velocity() mgl32.Vec3
	// Acceleration returns the acceleration of the secondary motion
	// component, derived from velocity history.
	Acceleration() mgl32.Vec3

	// Springs returns a snapshot of every spring in registration order.
	Springs() []SpringInfo
	// AmplitudeStats returns the mean and peak swing amplitude over recent
	// frames.
	AmplitudeStats() (mean, peak float32)
}

func (c *Character) SetSecondaryMotion(sc SecondaryMotionComponent) {
	c.secondary = sc
}

func (c *Character) SecondaryMotion() SecondaryMotionComponent {
	return c.secondary
}
