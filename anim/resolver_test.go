package anim

import (
	"testing"

	"github.com/animus-rig/animus/motion"
)

type fakeClip struct {
	name string
}

func (c *fakeClip) Name() string      { return c.name }
func (c *fakeClip) Duration() float32 { return 1 }

func clips(names ...string) []Clip {
	out := make([]Clip, 0, len(names))
	for _, name := range names {
		out = append(out, &fakeClip{name: name})
	}
	return out
}

func TestResolveClips(t *testing.T) {
	set := ResolveClips(clips("TPose", "Idle_Breathing", "Walking", "Running", "Jump"))

	if set.Idle == nil || set.Idle.Name() != "Idle_Breathing" {
		t.Fatalf("expected idle clip resolved, got %v", set.Idle)
	}
	if set.Walk == nil || set.Walk.Name() != "Walking" {
		t.Fatalf("expected walk clip resolved, got %v", set.Walk)
	}
	if set.Run == nil || set.Run.Name() != "Running" {
		t.Fatalf("expected run clip resolved, got %v", set.Run)
	}
	if set.First == nil || set.First.Name() != "TPose" {
		t.Fatalf("expected first discovered clip kept, got %v", set.First)
	}
}

func TestResolveClipsFirstMatchWins(t *testing.T) {
	set := ResolveClips(clips("walk_in_place", "walk_forward", "sprint_fast", "run_cycle"))
	if set.Walk.Name() != "walk_in_place" {
		t.Fatalf("expected library order to settle ties, got %v", set.Walk.Name())
	}
	if set.Run.Name() != "sprint_fast" {
		t.Fatalf("expected sprint to claim the run gait, got %v", set.Run.Name())
	}
}

func TestClipForFallbackChain(t *testing.T) {
	set := ResolveClips(clips("idle", "walk"))

	if clip := set.ClipFor(motion.StateRun); clip == nil || clip.Name() != "walk" {
		t.Fatalf("expected run to fall back on walk, got %v", clip)
	}
	if clip := set.ClipFor(motion.StateWalk); clip.Name() != "walk" {
		t.Fatalf("expected walk clip for walk state, got %v", clip)
	}

	idleOnly := ResolveClips(clips("idle"))
	if clip := idleOnly.ClipFor(motion.StateRun); clip == nil || clip.Name() != "idle" {
		t.Fatalf("expected run to fall back on idle, got %v", clip)
	}
}

func TestClipForExhaustedChain(t *testing.T) {
	set := ResolveClips(clips("dance"))
	if clip := set.ClipFor(motion.StateWalk); clip != nil {
		t.Fatalf("expected no walk clip for a gaitless library, got %v", clip)
	}
	if clip := set.StartupClip(); clip == nil || clip.Name() != "dance" {
		t.Fatalf("expected startup to hold the first clip, got %v", clip)
	}
	if set := ResolveClips(nil); set.StartupClip() != nil {
		t.Fatalf("expected no startup clip for an empty library")
	}
}
