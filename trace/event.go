package trace

import (
	"bytes"
	"encoding/binary"

	"github.com/animus-rig/animus/aerror"
	"github.com/animus-rig/animus/internal"
)

// Event is one timestamped record in a motion trace.
type Event interface {
	ID() byte
	Encode() []byte

	Time() int64
}

// NopEvent carries the timestamp shared by all events.
type NopEvent struct {
	EvTime int64
}

func (n NopEvent) Time() int64 {
	return n.EvTime
}

// WriteEventHeader writes the id and timestamp every encoded event starts
// with.
func WriteEventHeader(ev Event, buf *bytes.Buffer) {
	binary.Write(buf, binary.LittleEndian, uint64(ev.ID()))
	binary.Write(buf, binary.LittleEndian, uint64(ev.Time()))
}

// DecodeEvents decodes a concatenation of encoded events.
func DecodeEvents(dat []byte) ([]Event, error) {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	buf.Write(dat)
	defer internal.BufferPool.Put(buf)

	events := []Event{}
	for buf.Len() > 0 {
		ev, err := DecodeEvent(buf)
		if err != nil {
			return events, aerror.New("error decoding event: %v", err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// DecodeEvent decodes a single event from the head of buf.
func DecodeEvent(buf *bytes.Buffer) (Event, error) {
	if buf.Len() < 16 {
		return nil, aerror.New("truncated event header (%d bytes left)", buf.Len())
	}
	id := byte(binary.LittleEndian.Uint64(buf.Next(8)))
	t := int64(binary.LittleEndian.Uint64(buf.Next(8)))

	switch id {
	case EventIDFrame:
		ev := FrameEvent{}
		ev.EvTime = t
		ev.Frame = uint64(internal.LInt64(buf.Next(8)))

		state, err := buf.ReadByte()
		if err != nil {
			return nil, aerror.New("error reading state from FrameEvent: %v", err)
		}
		ev.State = state

		ev.Speed = internal.LFloat32(buf.Next(4))
		ev.Heading = internal.LFloat32(buf.Next(4))
		ev.Position = internal.Vec32(buf.Next(12))
		ev.Rate = internal.LFloat32(buf.Next(4))

		ev.Springs = internal.LInt32(buf.Next(4))
		ev.SpringVel = internal.LFloat32(buf.Next(4))
		ev.SpringAcc = internal.LFloat32(buf.Next(4))
		ev.PeakAmplitude = internal.LFloat32(buf.Next(4))
		return ev, nil
	case EventIDTransition:
		ev := TransitionEvent{}
		ev.EvTime = t

		from, err := buf.ReadByte()
		if err != nil {
			return nil, aerror.New("error reading states from TransitionEvent: %v", err)
		}
		to, err := buf.ReadByte()
		if err != nil {
			return nil, aerror.New("error reading states from TransitionEvent: %v", err)
		}
		ev.From, ev.To = from, to

		clipLen := int(internal.LInt32(buf.Next(4)))
		ev.Clip = string(buf.Next(clipLen))
		return ev, nil
	case EventIDAnomaly:
		ev := AnomalyEvent{}
		ev.EvTime = t

		kindLen := int(internal.LInt32(buf.Next(4)))
		ev.Kind = string(buf.Next(kindLen))

		boneLen := int(internal.LInt32(buf.Next(4)))
		ev.Bone = string(buf.Next(boneLen))

		detailLen := int(internal.LInt32(buf.Next(4)))
		ev.Detail = string(buf.Next(detailLen))
		return ev, nil
	default:
		return nil, aerror.New("unknown event: %d", id)
	}
}

const (
	_ = iota
	EventIDFrame
	EventIDTransition
	EventIDAnomaly
)
