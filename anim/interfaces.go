package anim

// Clip is a single animation exported by the authoring tool, as seen through
// the host's animation system. Only the name is ever inspected; timing and
// keyframe data stay opaque.
type Clip interface {
	// Name returns the clip name.
	Name() string
	// Duration returns the clip length in seconds.
	Duration() float32
}

// Action is a live playback instance of a clip on a mixer. A freshly created
// action plays at full weight; fades adjust the weight over the following
// mixer advances.
type Action interface {
	// Clip returns the clip the action plays.
	Clip() Clip
	// Play starts playback. Playing an already playing action does nothing.
	Play()
	// Stop halts playback and removes the action's influence on the pose.
	Stop()
	// Reset rewinds the action to the start of its clip.
	Reset()
	// SetTimeScale sets the playback rate multiplier of the action.
	SetTimeScale(scale float32)
	// SetLooping sets whether the action repeats when it reaches the end of
	// its clip.
	SetLooping(loop bool)
	// FadeIn ramps the action weight from zero to one over the duration.
	FadeIn(duration float32)
	// FadeOut ramps the action weight from its current value to zero over
	// the duration.
	FadeOut(duration float32)
	// Weight returns the current blend weight of the action.
	Weight() float32
}

// Mixer bridges the host's animation playback and blending. The locomotion
// layer only drives actions through it; sampling and skinning stay on the
// host side.
type Mixer interface {
	// Clips returns every clip available to the mixer, in discovery order.
	Clips() []Clip
	// Action returns the playback action for the given clip, creating it on
	// first use.
	Action(clip Clip) Action
	// Advance moves playback forward by dt seconds and writes the blended
	// pose to the skeleton. It is called exactly once per frame.
	Advance(dt float32)
}
