package component

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/animus-rig/animus/character"
	"github.com/animus-rig/animus/motion"
	"github.com/animus-rig/animus/rig"
)

// rebaseEpsilon decides whether the mixer rewrote a bone rotation since the
// last frame. Rotations closer than this to what a layer wrote itself are
// treated as stale, and the layer reuses its cached base instead of
// compounding its own output.
const rebaseEpsilon = 1e-6

// lagTarget is one bone the procedural layer counter-rotates, with its
// signed strength against turn rate.
type lagTarget struct {
	bone   *rig.Bone
	factor float32

	base        mgl32.Quat
	lastWritten mgl32.Quat
	hasWritten  bool
}

// ProceduralComponent counter-rotates the upper body against turns. The
// offsets lag the heading so fast turns read as weight shifting through the
// spine rather than the whole rig yawing as one piece.
type ProceduralComponent struct {
	mCharacter *character.Character
	targets    []*lagTarget
}

// NewProceduralComponent creates a procedural component for the given
// character, resolving its lag targets from the key bones. Missing roles
// just drop their target; a rig with no spine still lags its head.
func NewProceduralComponent(c *character.Character) *ProceduralComponent {
	pc := &ProceduralComponent{mCharacter: c}
	conf := c.Settings().Procedural
	if conf.Disabled {
		c.Log().Debugf("procedural lag disabled by settings")
		return pc
	}

	keyBones := c.KeyBones()
	add := func(role string, factor float32) {
		if bone, ok := keyBones.Get(role); ok {
			pc.targets = append(pc.targets, &lagTarget{bone: bone, factor: factor})
		}
	}
	add(rig.RoleSpine, -conf.SpineFactor)
	add(rig.RoleHead, -conf.HeadFactor)
	add(rig.RoleLeftShoulder, -conf.ShoulderFactor)
	add(rig.RoleRightShoulder, conf.ShoulderFactor)

	if len(pc.targets) > 0 {
		c.Log().Debugf("procedural lag targeting %v bone(s)", len(pc.targets))
	}
	return pc
}

// Update applies the lag offsets for the current turn rate.
func (pc *ProceduralComponent) Update(dt float32) {
	if len(pc.targets) == 0 {
		return
	}
	mv := pc.mCharacter.Movement()
	if mv == nil {
		return
	}
	dt = motion.ClampDt(dt)

	omega := motion.WrapAngle(mv.Heading()-mv.LastHeading()) / dt
	if math32.Abs(omega) < pc.mCharacter.Settings().Procedural.TurnGate {
		// Below the gate no offsets are written at all, so a standing
		// character holds the exact mixer pose without micro jitter.
		return
	}

	for _, t := range pc.targets {
		base := t.bone.Rotation
		if t.hasWritten && base.ApproxEqualThreshold(t.lastWritten, rebaseEpsilon) {
			// The mixer did not advance this bone since our last write;
			// offset the animated base we cached, not our own output.
			base = t.base
		}

		q := base.Mul(mgl32.QuatRotate(t.factor*omega, mgl32.Vec3{0, 1, 0}))
		t.bone.Rotation = q
		t.base = base
		t.lastWritten = q
		t.hasWritten = true
	}
}

// ActiveTargets returns the number of bones the procedural component writes
// to.
func (pc *ProceduralComponent) ActiveTargets() int {
	return len(pc.targets)
}
