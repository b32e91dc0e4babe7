package component

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/animus-rig/animus/character"
	"github.com/animus-rig/animus/motion"
	"github.com/animus-rig/animus/rig"
	"github.com/animus-rig/animus/springsim"
)

// amplitudeWindowSize is the number of recent frames the amplitude stats
// aggregate over.
const amplitudeWindowSize = 120

// springUnit binds one bone to a spring simulator and remembers the rest
// rotation the spring swings around.
type springUnit struct {
	bone  *rig.Bone
	group string

	sim   springsim.Simulator
	state springsim.State

	rest        mgl32.Quat
	lastWritten mgl32.Quat
	hasWritten  bool
}

// rebase re-snapshots the rest rotation from the bone. A rotation matching
// the unit's own last write means the mixer left the bone alone this frame,
// and the previous rest stays so spring output never feeds back into rest.
func (u *springUnit) rebase() {
	cur := u.bone.Rotation
	if u.hasWritten && cur.ApproxEqualThreshold(u.lastWritten, rebaseEpsilon) {
		return
	}
	u.rest = cur
}

// apply writes the spring offset over the rest rotation. Offsets below the
// pose epsilon write the rest exactly, so a settled spring is bit-identical
// to having no spring at all.
func (u *springUnit) apply() {
	q := u.rest.Mul(motion.QuatFromOffset(u.state.Offset))
	u.bone.Rotation = q
	u.lastWritten = q
	u.hasWritten = true
}

// SecondaryMotionComponent swings hair, cloth and upper body bones with
// damped springs. It derives the drive from position history rather than
// the movement component's reported velocity, so springs react to every way
// the character can move, scripted or integrated.
type SecondaryMotionComponent struct {
	mCharacter *character.Character

	units *orderedmap.OrderedMap[string, *springUnit]

	lastPos      mgl32.Vec3
	vel, lastVel mgl32.Vec3
	acc          mgl32.Vec3
	primed       bool

	amplitudes *motion.Window
}

// NewSecondaryMotionComponent creates a secondary motion component for the
// given character, classifying its spring bones by name. Bones sharing a
// name get a numeric suffix so each keeps its own spring.
func NewSecondaryMotionComponent(c *character.Character) *SecondaryMotionComponent {
	sc := &SecondaryMotionComponent{
		mCharacter: c,
		units:      orderedmap.NewOrderedMap[string, *springUnit](),
		amplitudes: motion.NewWindow(amplitudeWindowSize),
	}

	conf := c.Settings().Springs
	if conf.Disabled {
		c.Log().Debugf("secondary motion disabled by settings")
		return sc
	}

	for _, target := range rig.SpringTargets(c.Skeleton()) {
		profile := conf.Cloth
		switch target.Group {
		case rig.GroupHair:
			profile = conf.Hair
		case rig.GroupUpper:
			profile = conf.Upper
		}

		name := target.Bone.Name
		for n := 2; ; n++ {
			if _, ok := sc.units.Get(name); !ok {
				break
			}
			name = fmt.Sprintf("%s#%d", target.Bone.Name, n)
		}

		sc.units.Set(name, &springUnit{
			bone:  target.Bone,
			group: target.Group,
			sim: springsim.Simulator{
				Profile: profile,
				Options: springsim.Options{Debugf: c.Log().Debugf},
			},
			rest: target.Bone.Rotation,
		})
	}

	if sc.units.Len() > 0 {
		c.Log().Debugf("secondary motion simulating %v spring(s)", sc.units.Len())
	}
	return sc
}

// Update advances all springs by one frame and writes their offsets over
// the animated pose.
func (sc *SecondaryMotionComponent) Update(dt float32) {
	dt = motion.ClampDt(dt)

	pos := mgl32.Vec3{}
	if mv := sc.mCharacter.Movement(); mv != nil {
		pos = mv.Pos()
	}
	if !sc.primed {
		// The first frame has no history; priming here keeps a character
		// spawned far from the origin from reading as a violent jerk.
		sc.lastPos = pos
		sc.primed = true
	}

	vel := pos.Sub(sc.lastPos).Mul(1 / dt)
	sc.acc = vel.Sub(sc.vel).Mul(1 / dt)
	sc.lastPos = pos
	sc.lastVel = sc.vel
	sc.vel = vel

	if sc.units.Len() == 0 {
		return
	}

	// Rest rotations re-snapshot for every unit before any spring writes,
	// then all springs step. Both passes iterate in registration order.
	for el := sc.units.Front(); el != nil; el = el.Next() {
		el.Value.rebase()
	}

	drive := sc.vel.Mul(motion.VelocityDriveFactor).Add(sc.acc.Mul(motion.AccelDriveFactor))
	peak := float32(0)
	for el := sc.units.Front(); el != nil; el = el.Next() {
		u := el.Value
		u.state = u.sim.Step(u.state, drive, dt)
		u.apply()
		peak = math32.Max(peak, u.state.Amplitude())
	}
	sc.amplitudes.Push(peak)
}

// Reset returns every spring to rest and clears the kinematic history.
func (sc *SecondaryMotionComponent) Reset() {
	sc.primed = false
	sc.vel, sc.lastVel, sc.acc = mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{}
	for el := sc.units.Front(); el != nil; el = el.Next() {
		el.Value.state = springsim.State{}
	}
	sc.amplitudes.Clear()
}

// ActiveSprings returns the number of simulated spring bones.
func (sc *SecondaryMotionComponent) ActiveSprings() int {
	return sc.units.Len()
}

// Velocity returns the velocity of the secondary motion component.
func (sc *SecondaryMotionComponent) Velocity() mgl32.Vec3 {
	return sc.vel
}

// Acceleration returns the acceleration of the secondary motion component.
func (sc *SecondaryMotionComponent) Acceleration() mgl32.Vec3 {
	return sc.acc
}

// Springs returns a snapshot of every spring in registration order.
func (sc *SecondaryMotionComponent) Springs() []character.SpringInfo {
	infos := make([]character.SpringInfo, 0, sc.units.Len())
	for el := sc.units.Front(); el != nil; el = el.Next() {
		infos = append(infos, character.SpringInfo{
			Name:      el.Key,
			Group:     el.Value.group,
			Amplitude: el.Value.state.Amplitude(),
		})
	}
	return infos
}

// AmplitudeStats returns the mean and peak swing amplitude over recent
// frames.
func (sc *SecondaryMotionComponent) AmplitudeStats() (mean, peak float32) {
	return sc.amplitudes.Mean(), sc.amplitudes.Max()
}
