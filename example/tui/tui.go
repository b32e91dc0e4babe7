package main

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/animus-rig/animus"
	"github.com/animus-rig/animus/anim"
	"github.com/animus-rig/animus/character"
	"github.com/animus-rig/animus/input"
	"github.com/animus-rig/animus/motion"
	"github.com/animus-rig/animus/rig"
	"github.com/animus-rig/animus/settings"
)

// The following program runs a character in the terminal and shows the
// animation layers' internals live: locomotion state, speed, playback rate,
// and the amplitude of every spring bone. Drive it with WASD, toggle sprint
// with r, stop with space, quit with q.
func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}

	logger := logrus.New()
	logger.SetOutput(logFile())

	v := animus.New(logger, settings.Settings{})
	in := &keyInput{}
	c := v.Attach(buildModel(), newWeightMixer("Breathing_Idle", "Walking01", "Fast Run"), in)

	d := &dashboard{
		screen: screen,
		viewer: v,
		char:   c,
		in:     in,
		speeds: motion.NewWindow(120),
	}
	d.run()

	screen.Fini()
	v.Close()
}

// logFile keeps logrus output off the tcell screen.
func logFile() *os.File {
	f, err := os.OpenFile("animus_tui.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stderr
	}
	return f
}

// keyInput adapts terminal key presses into the per-frame input state. Keys
// latch a direction until space releases it, since terminals deliver no
// key-up events.
type keyInput struct {
	mu     sync.Mutex
	dir    mgl32.Vec2
	sprint bool
}

func (k *keyInput) State() input.State {
	k.mu.Lock()
	defer k.mu.Unlock()
	return input.State{MoveDir: k.dir, Sprint: k.sprint}
}

func (k *keyInput) set(dir mgl32.Vec2) {
	k.mu.Lock()
	k.dir = dir
	k.mu.Unlock()
}

func (k *keyInput) toggleSprint() {
	k.mu.Lock()
	k.sprint = !k.sprint
	k.mu.Unlock()
}

type dashboard struct {
	screen tcell.Screen
	viewer *animus.Viewer
	char   *character.Character
	in     *keyInput
	speeds *motion.Window

	rateOverride float32
}

func (d *dashboard) run() {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- d.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !d.handleInput(ev) {
				return
			}

		case <-ticker.C:
			now := time.Now()
			d.viewer.Update(float32(now.Sub(last).Seconds()))
			last = now

			d.speeds.Push(d.char.Speed())
			d.draw()
		}
	}
}

func (d *dashboard) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}

		switch ev.Rune() {
		case 'q':
			return false
		case 'w':
			d.in.set(mgl32.Vec2{0, 1})
		case 's':
			d.in.set(mgl32.Vec2{0, -1})
		case 'a':
			d.in.set(mgl32.Vec2{-1, 0})
		case 'd':
			d.in.set(mgl32.Vec2{1, 0})
		case ' ':
			d.in.set(mgl32.Vec2{})
		case 'r':
			d.in.toggleSprint()
		case '+':
			d.rateOverride += 0.25
			d.char.SetPlaybackRate(d.rateOverride)
		case '-':
			if d.rateOverride > 0.25 {
				d.rateOverride -= 0.25
				d.char.SetPlaybackRate(d.rateOverride)
			}
		case '0':
			d.rateOverride = 0
			d.char.ClearPlaybackRate()
		}
	}
	return true
}

var (
	headerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	labelStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	valueStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	barStyle    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	groupStyles = map[string]tcell.Style{
		rig.GroupHair:  tcell.StyleDefault.Foreground(tcell.ColorOrange),
		rig.GroupCloth: tcell.StyleDefault.Foreground(tcell.ColorBlue),
		rig.GroupUpper: tcell.StyleDefault.Foreground(tcell.ColorGreen),
	}
)

func (d *dashboard) draw() {
	d.screen.Clear()

	conf := d.char.Settings()
	stats := d.char.SecondaryStats()

	d.text(0, 0, headerStyle, "animus")
	d.text(0, 1, labelStyle, "wasd move  space stop  r sprint  +/-/0 rate  q quit")

	row := 3
	d.field(row, "state", d.char.State().String())
	row++
	d.field(row, "speed", fmt.Sprintf("%5.2f u/s  mean %4.2f", d.char.Speed(), d.speeds.Mean()))
	d.bar(24, row, d.char.Speed(), conf.Movement.SprintSpeed, 20)
	row++
	d.field(row, "heading", fmt.Sprintf("%+5.2f rad", d.char.Heading()))
	row++

	pos := d.char.Position()
	d.field(row, "position", fmt.Sprintf("%6.1f %6.1f %6.1f", pos.X(), pos.Y(), pos.Z()))
	row++

	if lc := d.char.Locomotion(); lc != nil {
		rate := fmt.Sprintf("%4.2fx  %s", lc.Rate(), lc.ActiveClip())
		if d.rateOverride > 0 {
			rate += "  (override)"
		}
		d.field(row, "playback", rate)
		row++
	}

	row++
	d.text(0, row, headerStyle, fmt.Sprintf("springs (%d)  drive vel %4.2f acc %5.2f",
		stats.ActiveSprings, stats.Velocity, stats.Acceleration))
	row++

	if sm := d.char.SecondaryMotion(); sm != nil {
		for _, info := range sm.Springs() {
			style, ok := groupStyles[info.Group]
			if !ok {
				style = valueStyle
			}
			d.text(2, row, style, fmt.Sprintf("%-14s %-6s %5.3f", info.Name, info.Group, info.Amplitude))
			d.bar(32, row, info.Amplitude, 0.5, 16)
			row++
		}
	}

	d.screen.Show()
}

func (d *dashboard) field(row int, label, value string) {
	d.text(0, row, labelStyle, label)
	d.text(10, row, valueStyle, value)
}

func (d *dashboard) text(x, y int, style tcell.Style, text string) {
	for i, r := range text {
		d.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (d *dashboard) bar(x, y int, value, maxValue float32, width int) {
	filled := int(mgl32.Clamp(value/maxValue, 0, 1) * float32(width))
	d.text(x, y, barStyle, strings.Repeat("█", filled)+strings.Repeat("░", width-filled))
}

// buildModel assembles the same synthetic humanoid the headless example
// uses, with hair and cape chains for the spring layer to move.
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

// weightMixer tracks crossfade weights per action without sampling any
// keyframes, enough for the dashboard to show real blend behavior.
type weightMixer struct {
	clips   []anim.Clip
	actions map[anim.Clip]*weightAction
}

func newWeightMixer(names ...string) *weightMixer {
	m := &weightMixer{actions: map[anim.Clip]*weightAction{}}
	for _, name := range names {
		m.clips = append(m.clips, &memClip{name: name})
	}
	return m
}

func (m *weightMixer) Clips() []anim.Clip { return m.clips }

func (m *weightMixer) Action(clip anim.Clip) anim.Action {
	if a, ok := m.actions[clip]; ok {
		return a
	}
	a := &weightAction{clip: clip, scale: 1, weight: 1, target: 1}
	m.actions[clip] = a
	return a
}

func (m *weightMixer) Advance(dt float32) {
	for _, a := range m.actions {
		if a.fadeRate <= 0 || a.weight == a.target {
			continue
		}
		step := a.fadeRate * dt
		if diff := a.target - a.weight; diff > step {
			a.weight += step
		} else if diff < -step {
			a.weight -= step
		} else {
			a.weight = a.target
		}
	}
}

type memClip struct{ name string }

func (c *memClip) Name() string      { return c.name }
func (c *memClip) Duration() float32 { return 1 }

type weightAction struct {
	clip  anim.Clip
	scale float32

	weight, target float32
	fadeRate       float32
}

func (a *weightAction) Clip() anim.Clip            { return a.clip }
func (a *weightAction) Play()                      {}
func (a *weightAction) Stop()                      {}
func (a *weightAction) Reset()                     {}
func (a *weightAction) SetTimeScale(scale float32) { a.scale = scale }
func (a *weightAction) SetLooping(loop bool)       {}
func (a *weightAction) Weight() float32            { return a.weight }

func (a *weightAction) FadeIn(duration float32) {
	a.weight, a.target = 0, 1
	a.fadeRate = 1 / duration
}

func (a *weightAction) FadeOut(duration float32) {
	a.target = 0
	a.fadeRate = 1 / duration
}
