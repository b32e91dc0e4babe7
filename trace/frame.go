package trace

import (
	"bytes"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/animus-rig/animus/internal"
)

// FrameEvent samples the animation layers at the end of one update.
type FrameEvent struct {
	NopEvent

	Frame   uint64
	State   byte
	Speed   float32
	Heading float32

	Position mgl32.Vec3
	Rate     float32

	Springs       int32
	SpringVel     float32
	SpringAcc     float32
	PeakAmplitude float32
}

func (FrameEvent) ID() byte {
	return EventIDFrame
}

func (ev FrameEvent) Encode() []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	WriteEventHeader(ev, buf)
	internal.WriteLInt64(buf, int64(ev.Frame))
	buf.WriteByte(ev.State)

	internal.WriteLFloat32(buf, ev.Speed)
	internal.WriteLFloat32(buf, ev.Heading)
	internal.WriteVec32(buf, ev.Position)
	internal.WriteLFloat32(buf, ev.Rate)

	internal.WriteLInt32(buf, ev.Springs)
	internal.WriteLFloat32(buf, ev.SpringVel)
	internal.WriteLFloat32(buf, ev.SpringAcc)
	internal.WriteLFloat32(buf, ev.PeakAmplitude)

	return append([]byte(nil), buf.Bytes()...)
}
