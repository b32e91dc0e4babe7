package trace

import (
	"bytes"
	"encoding/binary"
	"os"

	"github.com/zeebo/xxh3"

	"github.com/animus-rig/animus/aerror"
	"github.com/animus-rig/animus/internal"
)

// Trace is a decoded trace file.
type Trace struct {
	// Events holds the decoded events in the order they were recorded.
	Events []Event
}

// DecodeTrace reads a trace file, verifies its checksum and decodes every
// event in it.
func DecodeTrace(file string) (*Trace, error) {
	rawDat, err := os.ReadFile(file)
	if err != nil {
		return nil, aerror.New("unable to read trace file: %v", err)
	}
	if len(rawDat) < len(Magic)+8 {
		return nil, aerror.New("trace file too short (%d bytes)", len(rawDat))
	}
	if !bytes.Equal(rawDat[:len(Magic)], Magic) {
		return nil, aerror.New("not a trace file")
	}

	body := rawDat[len(Magic) : len(rawDat)-8]
	sum := binary.LittleEndian.Uint64(rawDat[len(rawDat)-8:])
	if got := xxh3.Hash(body); got != sum {
		return nil, aerror.New("trace checksum mismatch: %x != %x", got, sum)
	}

	trc := &Trace{Events: []Event{}}
	buf := bytes.NewBuffer(body)
	for buf.Len() > 0 {
		if buf.Len() < 4 {
			return nil, aerror.New("truncated event length")
		}
		evLen := int(internal.LInt32(buf.Next(4)))
		if evLen < 0 || evLen > buf.Len() {
			return nil, aerror.New("event length %d exceeds remaining %d bytes", evLen, buf.Len())
		}
		ev, err := DecodeEvent(bytes.NewBuffer(buf.Next(evLen)))
		if err != nil {
			return nil, err
		}
		trc.Events = append(trc.Events, ev)
	}
	return trc, nil
}
