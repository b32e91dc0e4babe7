package component

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/animus-rig/animus/character"
	"github.com/animus-rig/animus/input"
	"github.com/animus-rig/animus/rig"
	"github.com/animus-rig/animus/settings"
)

type fakeMovement struct {
	pos, lastPos         mgl32.Vec3
	vel, lastVel         mgl32.Vec3
	heading, lastHeading float32
	speed                float32
}

func (m *fakeMovement) Update(in input.State, dt float32) {}
func (m *fakeMovement) Pos() mgl32.Vec3                   { return m.pos }
func (m *fakeMovement) LastPos() mgl32.Vec3               { return m.lastPos }
func (m *fakeMovement) Vel() mgl32.Vec3                   { return m.vel }
func (m *fakeMovement) LastVel() mgl32.Vec3               { return m.lastVel }
func (m *fakeMovement) Speed() float32                    { return m.speed }
func (m *fakeMovement) Heading() float32                  { return m.heading }
func (m *fakeMovement) LastHeading() float32              { return m.lastHeading }
func (m *fakeMovement) Teleport(pos mgl32.Vec3)           { m.pos, m.lastPos = pos, pos }

// turn primes the heading history for a constant angular speed.
func (m *fakeMovement) turn(omega float32) {
	m.lastHeading = m.heading
	m.heading += omega * frameDt
}

func lagFixture() *rig.Skeleton {
	hips := rig.NewBone("Hips")
	spine := rig.NewBone("Spine")
	head := rig.NewBone("Head")
	left := rig.NewBone("LeftShoulder")
	right := rig.NewBone("RightShoulder")
	hips.Children = []*rig.Bone{spine}
	spine.Children = []*rig.Bone{head, left, right}
	return rig.NewSkeleton(hips)
}

func newLagFixture(t *testing.T) (*rig.Skeleton, *fakeMovement, *ProceduralComponent) {
	t.Helper()
	sk := lagFixture()
	c := character.New(testLog(), character.Config{Skeleton: sk})
	fm := &fakeMovement{}
	c.SetMovement(fm)
	pc := NewProceduralComponent(c)
	c.SetProcedural(pc)
	return sk, fm, pc
}

func TestProceduralResolvesTargets(t *testing.T) {
	_, _, pc := newLagFixture(t)
	if pc.ActiveTargets() != 4 {
		t.Fatalf("expected spine, head and both shoulders as targets, got %v", pc.ActiveTargets())
	}
}

func TestProceduralRestWritesNothing(t *testing.T) {
	sk, fm, pc := newLagFixture(t)
	spine := sk.Find("Spine")

	for i := 0; i < 10; i++ {
		fm.turn(0)
		pc.Update(frameDt)
	}
	if spine.Rotation != mgl32.QuatIdent() {
		t.Fatalf("expected no writes at rest, got %v", spine.Rotation)
	}
}

func TestProceduralSlowTurnGated(t *testing.T) {
	sk, fm, pc := newLagFixture(t)
	head := sk.Find("Head")

	fm.turn(0.05)
	pc.Update(frameDt)
	if head.Rotation != mgl32.QuatIdent() {
		t.Fatalf("expected turn rates below the gate to write nothing, got %v", head.Rotation)
	}
}

func TestProceduralCounterRotation(t *testing.T) {
	sk, fm, pc := newLagFixture(t)

	fm.turn(3)
	pc.Update(frameDt)

	up := mgl32.Vec3{0, 1, 0}
	cases := []struct {
		bone string
		want mgl32.Quat
	}{
		{bone: "Spine", want: mgl32.QuatRotate(-0.3, up)},
		{bone: "Head", want: mgl32.QuatRotate(-0.45, up)},
		{bone: "LeftShoulder", want: mgl32.QuatRotate(-0.24, up)},
		{bone: "RightShoulder", want: mgl32.QuatRotate(0.24, up)},
	}
	for _, c := range cases {
		got := sk.Find(c.bone).Rotation
		if !got.ApproxEqualThreshold(c.want, 1e-5) {
			t.Fatalf("expected %v on %s, got %v", c.want, c.bone, got)
		}
	}
}

func TestProceduralOppositeTurnFlipsOffsets(t *testing.T) {
	sk, fm, pc := newLagFixture(t)

	fm.turn(-3)
	pc.Update(frameDt)

	want := mgl32.QuatRotate(0.3, mgl32.Vec3{0, 1, 0})
	if got := sk.Find("Spine").Rotation; !got.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("expected a flipped spine offset %v, got %v", want, got)
	}
}

func TestProceduralOffsetsDoNotCompound(t *testing.T) {
	sk, fm, pc := newLagFixture(t)
	spine := sk.Find("Spine")

	fm.turn(3)
	pc.Update(frameDt)
	first := spine.Rotation

	// The mixer never rewrites the bone between these frames, so the same
	// turn rate must produce the same rotation instead of stacking.
	for i := 0; i < 10; i++ {
		fm.turn(3)
		pc.Update(frameDt)
	}
	if !spine.Rotation.ApproxEqualThreshold(first, 1e-5) {
		t.Fatalf("expected a stable offset without mixer rewrites, got %v after %v", spine.Rotation, first)
	}
}

func TestProceduralRebasesOnAnimatedPose(t *testing.T) {
	sk, fm, pc := newLagFixture(t)
	spine := sk.Find("Spine")

	fm.turn(3)
	pc.Update(frameDt)

	// Simulate the mixer writing a fresh animated rotation.
	base := mgl32.QuatRotate(0.5, mgl32.Vec3{1, 0, 0})
	spine.Rotation = base

	fm.turn(3)
	pc.Update(frameDt)

	want := base.Mul(mgl32.QuatRotate(-0.3, mgl32.Vec3{0, 1, 0}))
	if !spine.Rotation.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("expected the offset over the fresh animated pose, got %v instead of %v", spine.Rotation, want)
	}
}

func TestProceduralDisabledBySettings(t *testing.T) {
	sk := lagFixture()
	conf := settings.Settings{}
	conf.Procedural.Disabled = true
	c := character.New(testLog(), character.Config{Skeleton: sk, Settings: conf})
	c.SetMovement(&fakeMovement{})

	pc := NewProceduralComponent(c)
	if pc.ActiveTargets() != 0 {
		t.Fatalf("expected no targets when disabled, got %v", pc.ActiveTargets())
	}

	pc.Update(frameDt)
	if sk.Find("Spine").Rotation != mgl32.QuatIdent() {
		t.Fatal("expected no writes when disabled")
	}
}

func TestProceduralWithoutKeyBones(t *testing.T) {
	sk := rig.NewSkeleton(rig.NewBone("root"))
	c := character.New(testLog(), character.Config{Skeleton: sk})
	c.SetMovement(&fakeMovement{})

	pc := NewProceduralComponent(c)
	if pc.ActiveTargets() != 0 {
		t.Fatalf("expected no targets on a roleless rig, got %v", pc.ActiveTargets())
	}
	pc.Update(frameDt)
}
