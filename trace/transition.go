package trace

import (
	"bytes"

	"github.com/animus-rig/animus/internal"
)

// TransitionEvent records a locomotion state change and the clip that faded
// in for it.
type TransitionEvent struct {
	NopEvent

	From byte
	To   byte
	Clip string
}

func (TransitionEvent) ID() byte {
	return EventIDTransition
}

func (ev TransitionEvent) Encode() []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	WriteEventHeader(ev, buf)
	buf.WriteByte(ev.From)
	buf.WriteByte(ev.To)

	internal.WriteLInt32(buf, int32(len(ev.Clip)))
	buf.WriteString(ev.Clip)

	return append([]byte(nil), buf.Bytes()...)
}
