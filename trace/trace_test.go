package trace

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/animus-rig/animus/character"
	"github.com/animus-rig/animus/motion"
	"github.com/animus-rig/animus/rig"
)

func testLog() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func sampleEvents() []Event {
	return []Event{
		AnomalyEvent{
			NopEvent: NopEvent{EvTime: 1},
			Kind:     rig.AnomalyInvalidTransform,
			Bone:     "cloth_tail",
			Detail:   "invalid_transform on cloth_tail",
		},
		TransitionEvent{
			NopEvent: NopEvent{EvTime: 2},
			From:     byte(motion.StateIdle),
			To:       byte(motion.StateWalk),
			Clip:     "Walk",
		},
		FrameEvent{
			NopEvent: NopEvent{EvTime: 3},

			Frame:    17,
			State:    byte(motion.StateWalk),
			Speed:    1.5,
			Heading:  0.25,
			Position: mgl32.Vec3{1, 0, -2},
			Rate:     0.9,

			Springs:       4,
			SpringVel:     1.5,
			SpringAcc:     12,
			PeakAmplitude: 0.05,
		},
	}
}

func TestEventRoundTrip(t *testing.T) {
	want := sampleEvents()

	var dat []byte
	for _, ev := range want {
		dat = append(dat, ev.Encode()...)
	}

	got, err := DecodeEvents(dat)
	if err != nil {
		t.Fatalf("expected events to decode, got %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected event %d to be %#v, got %#v", i, want[i], got[i])
		}
	}
}

func TestDecodeUnknownEvent(t *testing.T) {
	ev := NopEvent{EvTime: 1}

	buf := &bytes.Buffer{}
	WriteEventHeader(unknownEvent{ev}, buf)

	if _, err := DecodeEvent(buf); err == nil {
		t.Fatalf("expected an unknown event id to fail decoding")
	}
}

type unknownEvent struct {
	NopEvent
}

func (unknownEvent) ID() byte {
	return 99
}

func (ev unknownEvent) Encode() []byte {
	buf := &bytes.Buffer{}
	WriteEventHeader(ev, buf)
	return buf.Bytes()
}

func TestDecodeTruncatedEvent(t *testing.T) {
	if _, err := DecodeEvent(bytes.NewBuffer([]byte{1, 2, 3})); err == nil {
		t.Fatalf("expected a truncated event to fail decoding")
	}
}

func TestRecorderRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "session.trace")

	rec, err := NewRecorder(testLog(), file)
	if err != nil {
		t.Fatalf("expected recorder to open, got %v", err)
	}
	want := sampleEvents()
	for _, ev := range want {
		rec.Record(ev)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("expected recorder to close, got %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("expected a second close to be a no-op, got %v", err)
	}

	trc, err := DecodeTrace(file)
	if err != nil {
		t.Fatalf("expected trace to decode, got %v", err)
	}
	if len(trc.Events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(trc.Events))
	}
	for i := range want {
		if trc.Events[i] != want[i] {
			t.Fatalf("expected event %d to be %#v, got %#v", i, want[i], trc.Events[i])
		}
	}
}

func TestDecodeTraceDetectsCorruption(t *testing.T) {
	file := filepath.Join(t.TempDir(), "session.trace")

	rec, err := NewRecorder(testLog(), file)
	if err != nil {
		t.Fatalf("expected recorder to open, got %v", err)
	}
	for _, ev := range sampleEvents() {
		rec.Record(ev)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("expected recorder to close, got %v", err)
	}

	dat, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("expected trace file to read, got %v", err)
	}
	dat[len(Magic)+2] ^= 0xFF
	if err := os.WriteFile(file, dat, 0644); err != nil {
		t.Fatalf("expected trace file to write, got %v", err)
	}

	if _, err := DecodeTrace(file); err == nil {
		t.Fatalf("expected a corrupted trace to fail decoding")
	}
}

func TestDecodeTraceRejectsForeignFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-trace.bin")
	if err := os.WriteFile(file, []byte("definitely not a trace file"), 0644); err != nil {
		t.Fatalf("expected file to write, got %v", err)
	}

	if _, err := DecodeTrace(file); err == nil {
		t.Fatalf("expected a foreign file to fail decoding")
	}
}

func TestHookRecordsCharacter(t *testing.T) {
	root := rig.NewBone("Hips")
	head := rig.NewBone("Head")
	tail := rig.NewBone("cloth_tail")
	tail.Position = mgl32.Vec3{0, math32.NaN(), 0}
	root.Children = append(root.Children, head, tail)

	c := character.New(testLog(), character.Config{Skeleton: rig.NewSkeleton(root)})
	defer c.Close()

	file := filepath.Join(t.TempDir(), "session.trace")
	rec, err := NewRecorder(testLog(), file)
	if err != nil {
		t.Fatalf("expected recorder to open, got %v", err)
	}

	h := NewHook(rec, c)
	h.HandleTransition(c, motion.StateIdle, motion.StateWalk, "Walk")
	h.HandleFrameEnd(c, 1.0/60.0)
	if err := rec.Close(); err != nil {
		t.Fatalf("expected recorder to close, got %v", err)
	}

	trc, err := DecodeTrace(file)
	if err != nil {
		t.Fatalf("expected trace to decode, got %v", err)
	}
	if len(trc.Events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(trc.Events))
	}

	anom, ok := trc.Events[0].(AnomalyEvent)
	if !ok {
		t.Fatalf("expected the first event to be an anomaly, got %#v", trc.Events[0])
	}
	if anom.Kind != rig.AnomalyInvalidTransform || anom.Bone != "cloth_tail" {
		t.Fatalf("expected the cloth_tail transform anomaly, got %#v", anom)
	}

	trans, ok := trc.Events[1].(TransitionEvent)
	if !ok {
		t.Fatalf("expected the second event to be a transition, got %#v", trc.Events[1])
	}
	if trans.From != byte(motion.StateIdle) || trans.To != byte(motion.StateWalk) || trans.Clip != "Walk" {
		t.Fatalf("expected an idle to walk transition, got %#v", trans)
	}

	frame, ok := trc.Events[2].(FrameEvent)
	if !ok {
		t.Fatalf("expected the third event to be a frame, got %#v", trc.Events[2])
	}
	if frame.State != byte(motion.StateIdle) || frame.Rate != 1 || frame.Springs != 0 {
		t.Fatalf("expected an idle frame sample with no components, got %#v", frame)
	}
}
