package animus

import (
	"slices"
	"sync"

	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"github.com/animus-rig/animus/anim"
	"github.com/animus-rig/animus/character"
	"github.com/animus-rig/animus/character/component"
	"github.com/animus-rig/animus/input"
	"github.com/animus-rig/animus/rig"
	"github.com/animus-rig/animus/settings"
)

// Viewer represents an instance of the animus animation layer. It sits
// between a host's scene graph and its render loop: the host attaches loaded
// models, calls Update once per frame, and reads the posed skeletons back out
// through the characters.
type Viewer struct {
	log  *logrus.Logger
	conf settings.Settings

	characterMutex sync.Mutex
	characters     []*character.Character

	closed atomic.Bool
}

// New returns a new Viewer instance. Attached characters share the given
// settings; zero-valued tunables fall back to their defaults.
func New(log *logrus.Logger, conf settings.Settings) *Viewer {
	if log == nil {
		log = logrus.New()
	}
	return &Viewer{
		log:  log,
		conf: conf.Normalized(),
	}
}

// Attach builds a character for a loaded model and adds it to the viewer. The
// skeleton is discovered under the model root and inspected, key bones and
// gait clips resolve by name, and all animation components are registered.
// Any of model, mixer and in may be nil; missing pieces disable only the
// layers that need them, so a model without a skeleton still plays clips and
// a mixer-less rig still gets spring motion.
func (v *Viewer) Attach(model rig.Node, mixer anim.Mixer, in input.Provider) *character.Character {
	var skeleton *rig.Skeleton
	if model != nil {
		s, err := rig.FindSkeleton(model)
		if err != nil {
			v.log.Warnf("attach %q: %v", model.Name(), err)
		} else {
			skeleton = s
		}
	}

	c := character.New(v.log, character.Config{
		Skeleton: skeleton,
		Mixer:    mixer,
		Input:    in,
		Settings: v.conf,
	})
	component.Register(c)

	v.characterMutex.Lock()
	v.characters = append(v.characters, c)
	v.characterMutex.Unlock()
	return c
}

// Detach removes a character from the viewer and closes it. Detaching a
// character that was never attached is a no-op.
func (v *Viewer) Detach(c *character.Character) {
	v.characterMutex.Lock()
	idx := slices.Index(v.characters, c)
	if idx >= 0 {
		v.characters = slices.Delete(v.characters, idx, idx+1)
	}
	v.characterMutex.Unlock()

	if idx >= 0 {
		_ = c.Close()
	}
}

// Update advances every attached character by dt seconds. Hosts call this
// from their per-frame callback with the engine-supplied delta time.
func (v *Viewer) Update(dt float32) {
	if v.closed.Load() {
		return
	}
	for _, c := range v.Characters() {
		c.Update(dt)
	}
}

// Characters returns the characters currently attached to the viewer.
func (v *Viewer) Characters() []*character.Character {
	v.characterMutex.Lock()
	defer v.characterMutex.Unlock()
	return slices.Clone(v.characters)
}

// Log returns the logger of the viewer.
func (v *Viewer) Log() *logrus.Logger {
	return v.log
}

// Close closes every attached character and makes further updates no-ops.
func (v *Viewer) Close() error {
	if !v.closed.CompareAndSwap(false, true) {
		return nil
	}

	v.characterMutex.Lock()
	characters := v.characters
	v.characters = nil
	v.characterMutex.Unlock()

	for _, c := range characters {
		_ = c.Close()
	}
	return nil
}
