package trace

import (
	"bytes"

	"github.com/animus-rig/animus/internal"
)

// AnomalyEvent records a skeleton anomaly found at attach time, so replays
// can explain why a layer ran degraded.
type AnomalyEvent struct {
	NopEvent

	Kind   string
	Bone   string
	Detail string
}

func (AnomalyEvent) ID() byte {
	return EventIDAnomaly
}

func (ev AnomalyEvent) Encode() []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	WriteEventHeader(ev, buf)

	internal.WriteLInt32(buf, int32(len(ev.Kind)))
	buf.WriteString(ev.Kind)

	internal.WriteLInt32(buf, int32(len(ev.Bone)))
	buf.WriteString(ev.Bone)

	internal.WriteLInt32(buf, int32(len(ev.Detail)))
	buf.WriteString(ev.Detail)

	return append([]byte(nil), buf.Bytes()...)
}
