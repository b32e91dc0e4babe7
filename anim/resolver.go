package anim

import (
	"strings"

	"github.com/animus-rig/animus/motion"
)

var (
	idleKeywords = []string{"idle", "stand", "breath"}
	walkKeywords = []string{"walk"}
	runKeywords  = []string{"run", "sprint", "jog"}
)

// ClipSet holds the locomotion clips resolved from a mixer's library.
type ClipSet struct {
	Idle Clip
	Walk Clip
	Run  Clip

	// First is the first clip discovered in the library. It stands in as a
	// startup pose for libraries without anything idle-like.
	First Clip
}

// ResolveClips scans a clip library and picks the locomotion clips by fuzzy
// name match. The first clip whose lowercased name contains a gait keyword
// claims that gait, so library order settles ties.
func ResolveClips(clips []Clip) ClipSet {
	var set ClipSet
	for _, clip := range clips {
		if clip == nil {
			continue
		}
		if set.First == nil {
			set.First = clip
		}

		name := strings.ToLower(clip.Name())
		switch {
		case set.Idle == nil && containsAny(name, idleKeywords):
			set.Idle = clip
		case set.Walk == nil && containsAny(name, walkKeywords):
			set.Walk = clip
		case set.Run == nil && containsAny(name, runKeywords):
			set.Run = clip
		}
	}
	return set
}

// ClipFor returns the clip to play for a locomotion state, walking down the
// gait chain when the preferred clip is missing. Nil means the library has
// nothing usable for the state and the caller should hold its current action.
func (c ClipSet) ClipFor(state motion.LocomotionState) Clip {
	switch state {
	case motion.StateRun:
		if c.Run != nil {
			return c.Run
		}
		fallthrough
	case motion.StateWalk:
		if c.Walk != nil {
			return c.Walk
		}
		fallthrough
	default:
		return c.Idle
	}
}

// StartupClip returns the clip to hold before the first update. Only startup
// may fall back to an arbitrary clip; once running, ClipFor keeps gaits on
// gait-like clips.
func (c ClipSet) StartupClip() Clip {
	if c.Idle != nil {
		return c.Idle
	}
	return c.First
}

func containsAny(name string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(name, keyword) {
			return true
		}
	}
	return false
}
