package main

import (
	"os"
	"sync"

	"github.com/chewxy/math32"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/animus-rig/animus"
	"github.com/animus-rig/animus/anim"
	"github.com/animus-rig/animus/input"
	"github.com/animus-rig/animus/motion"
	"github.com/animus-rig/animus/rig"
	"github.com/animus-rig/animus/settings"
	"github.com/animus-rig/animus/snapshot"
	"github.com/animus-rig/animus/trace"
)

const frameDt = float32(1.0 / 60.0)

// The following program runs a scripted locomotion session against a
// synthetic rig with no rendering engine attached: idle, walk, sprint, a
// hard turn and a stop. It records a motion trace, snapshots the pose twice
// and replays the trace into a run summary.
func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	logger.Level = logrus.DebugLevel

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			logger.Warnf("sentry init failed: %v", err)
		}
	}
	if os.Getenv("ANIMUS_STATSVIEW") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
	}

	confPath := "animus.toml"
	if len(os.Args) > 1 {
		confPath = os.Args[1]
	}
	conf, err := settings.Load(confPath)
	if err != nil {
		logger.Fatalf("loading settings: %v", err)
	}

	v := animus.New(logger, conf)
	defer v.Close()

	script := newScript()
	c := v.Attach(buildModel(), newDemoMixer("Breathing_Idle", "Walking01", "Fast Run"), script)

	rec, err := trace.NewRecorder(logger, "motion.trc")
	if err != nil {
		logger.Fatalf("opening trace: %v", err)
	}
	c.Handle(trace.NewHook(rec, c))

	logger.Infof("rig: %d bones, %d key roles, %d springs",
		c.Skeleton().Len(), c.KeyBones().Len(), c.SecondaryStats().ActiveSprings)

	var snaps sync.WaitGroup
	sprintSnapped := false
	for frame := 0; frame < script.totalFrames(); frame++ {
		script.seek(frame)
		v.Update(frameDt)

		if !sprintSnapped && c.State() == motion.StateRun {
			// Capture the pose mid-sprint; encoding happens off the loop.
			sprintSnapped = true
			snaps.Add(1)
			snapshot.SaveAsync("pose_sprint.webp", c.Skeleton(), snapshot.Options{}, func(err error) {
				defer snaps.Done()
				if err != nil {
					logger.Warnf("sprint snapshot: %v", err)
				}
			})
		}
	}

	if err := snapshot.Save("pose_final.webp", c.Skeleton(), snapshot.Options{}); err != nil {
		logger.Warnf("final snapshot: %v", err)
	}
	snaps.Wait()

	if err := rec.Close(); err != nil {
		logger.Errorf("closing trace: %v", err)
	}
	summarize(logger, "motion.trc")
}

// summarize replays a recorded trace and prints what the run did.
func summarize(logger *logrus.Logger, path string) {
	trc, err := trace.DecodeTrace(path)
	if err != nil {
		logger.Errorf("replaying trace: %v", err)
		return
	}

	var speeds []float32
	frames := 0
	peak := float32(0)
	for _, ev := range trc.Events {
		switch ev := ev.(type) {
		case trace.FrameEvent:
			frames++
			speeds = append(speeds, ev.Speed)
			peak = math32.Max(peak, ev.PeakAmplitude)
		case trace.TransitionEvent:
			logger.Infof("transition %s -> %s (%s)",
				motion.LocomotionState(ev.From), motion.LocomotionState(ev.To), ev.Clip)
		case trace.AnomalyEvent:
			logger.Warnf("anomaly %s", ev.Detail)
		}
	}

	logger.Infof("replayed %d frames over %.1fs", frames, float32(frames)*frameDt)
	logger.Infof("speed mean %.2f stddev %.2f, peak spring swing %.3f rad",
		motion.Mean(speeds), motion.StandardDeviation(speeds), peak)
}

// script drives the character through fixed input phases.
type script struct {
	phases []phase
	state  input.State
}

type phase struct {
	frames int
	dir    mgl32.Vec2
	sprint bool
}

func newScript() *script {
	return &script{phases: []phase{
		{frames: 60},
		{frames: 180, dir: mgl32.Vec2{0, 1}},
		{frames: 180, dir: mgl32.Vec2{0, 1}, sprint: true},
		{frames: 120, dir: mgl32.Vec2{1, 0}, sprint: true},
		{frames: 120},
	}}
}

func (s *script) totalFrames() (total int) {
	for _, p := range s.phases {
		total += p.frames
	}
	return total
}

// seek sets the input state for the given frame index.
func (s *script) seek(frame int) {
	for _, p := range s.phases {
		if frame < p.frames {
			s.state = input.State{MoveDir: p.dir, Sprint: p.sprint}
			return
		}
		frame -= p.frames
	}
	s.state = input.State{}
}

func (s *script) State() input.State {
	return s.state
}

// buildModel assembles a synthetic humanoid scene tree the way a loader
// would hand it over: a mesh node next to a tagged bone hierarchy with hair
// and cape chains for the spring layer.
func buildModel() rig.Node {
	return node("Character", rig.KindNode, mgl32.Vec3{},
		node("Body", rig.KindMesh, mgl32.Vec3{}),
		node("Hips", rig.KindBone, mgl32.Vec3{0, 0.95, 0},
			node("Spine", rig.KindBone, mgl32.Vec3{0, 0.15, 0},
				node("Chest", rig.KindBone, mgl32.Vec3{0, 0.25, 0},
					node("Neck", rig.KindBone, mgl32.Vec3{0, 0.2, 0},
						node("Head", rig.KindBone, mgl32.Vec3{0, 0.12, 0},
							node("hair_01", rig.KindBone, mgl32.Vec3{0, 0.1, -0.05},
								node("hair_02", rig.KindBone, mgl32.Vec3{0, 0.12, -0.04}),
							),
						),
					),
					node("LeftShoulder", rig.KindBone, mgl32.Vec3{0.12, 0.18, 0}),
					node("RightShoulder", rig.KindBone, mgl32.Vec3{-0.12, 0.18, 0}),
				),
			),
			node("cape_01", rig.KindBone, mgl32.Vec3{0, 0.1, -0.08},
				node("cape_02", rig.KindBone, mgl32.Vec3{0, -0.25, -0.02}),
			),
		),
	)
}

type sceneNode struct {
	name     string
	kind     rig.NodeKind
	pos      mgl32.Vec3
	children []rig.Node
}

func node(name string, kind rig.NodeKind, pos mgl32.Vec3, children ...rig.Node) *sceneNode {
	return &sceneNode{name: name, kind: kind, pos: pos, children: children}
}

func (n *sceneNode) Name() string         { return n.name }
func (n *sceneNode) Kind() rig.NodeKind   { return n.kind }
func (n *sceneNode) Position() mgl32.Vec3 { return n.pos }
func (n *sceneNode) Rotation() mgl32.Quat { return mgl32.QuatIdent() }
func (n *sceneNode) Scale() mgl32.Vec3    { return mgl32.Vec3{1, 1, 1} }
func (n *sceneNode) Children() []rig.Node { return n.children }

// demoMixer is an in-memory stand-in for a host animation system. It tracks
// playback time and crossfade weights per action but samples no keyframes;
// the procedural and spring layers still pose the rig on top.
type demoMixer struct {
	clips   []anim.Clip
	actions map[anim.Clip]*demoAction
}

func newDemoMixer(names ...string) *demoMixer {
	m := &demoMixer{actions: map[anim.Clip]*demoAction{}}
	for _, name := range names {
		m.clips = append(m.clips, &demoClip{name: name, duration: 1})
	}
	return m
}

func (m *demoMixer) Clips() []anim.Clip { return m.clips }

func (m *demoMixer) Action(clip anim.Clip) anim.Action {
	if a, ok := m.actions[clip]; ok {
		return a
	}
	a := &demoAction{clip: clip, scale: 1, weight: 1, weightTarget: 1}
	m.actions[clip] = a
	return a
}

func (m *demoMixer) Advance(dt float32) {
	for _, a := range m.actions {
		a.advance(dt)
	}
}

type demoClip struct {
	name     string
	duration float32
}

func (c *demoClip) Name() string      { return c.name }
func (c *demoClip) Duration() float32 { return c.duration }

type demoAction struct {
	clip    anim.Clip
	playing bool
	loop    bool

	time  float32
	scale float32

	weight, weightTarget float32
	fadeRate             float32
}

func (a *demoAction) advance(dt float32) {
	if !a.playing {
		return
	}
	a.time += dt * a.scale
	if a.loop && a.time > a.clip.Duration() {
		a.time -= a.clip.Duration()
	}

	if a.fadeRate > 0 && a.weight != a.weightTarget {
		step := a.fadeRate * dt
		if diff := a.weightTarget - a.weight; diff > step {
			a.weight += step
		} else if diff < -step {
			a.weight -= step
		} else {
			a.weight = a.weightTarget
		}
	}
}

func (a *demoAction) Clip() anim.Clip { return a.clip }
func (a *demoAction) Play()           { a.playing = true }
func (a *demoAction) Stop()           { a.playing = false }
func (a *demoAction) Reset()          { a.time = 0 }

func (a *demoAction) SetTimeScale(scale float32) { a.scale = scale }
func (a *demoAction) SetLooping(loop bool)       { a.loop = loop }

func (a *demoAction) FadeIn(duration float32) {
	a.weight, a.weightTarget = 0, 1
	a.fadeRate = 1 / duration
}

func (a *demoAction) FadeOut(duration float32) {
	a.weightTarget = 0
	a.fadeRate = 1 / duration
}

func (a *demoAction) Weight() float32 { return a.weight }
