package trace

import (
	"bytes"
	"encoding/binary"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zeebo/xxh3"
	"go.uber.org/atomic"

	"github.com/animus-rig/animus/aerror"
	"github.com/animus-rig/animus/internal"
)

// Magic starts every trace file; the final byte is the container version.
var Magic = []byte("ANIMTRC\x01")

// Recorder appends events to a trace file from its own goroutine so the
// frame loop never blocks on disk. The file is length-prefixed per event
// and sealed with a checksum footer on close.
type Recorder struct {
	log *logrus.Logger

	f    *os.File
	hash *xxh3.Hasher

	events chan Event
	stop   chan struct{}
	done   chan struct{}

	closed atomic.Bool
}

// NewRecorder creates a trace file at path, replacing any previous file,
// and starts the flush goroutine.
func NewRecorder(log *logrus.Logger, path string) (*Recorder, error) {
	os.Remove(path)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, aerror.New("unable to open trace file: %v", err)
	}

	r := &Recorder{
		log: log,

		f:    f,
		hash: xxh3.New(),

		events: make(chan Event, 256),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	if _, err := f.Write(Magic); err != nil {
		f.Close()
		return nil, aerror.New("unable to write trace header: %v", err)
	}

	go r.flush()
	return r, nil
}

// Record queues an event for writing. When the queue is full the event is
// dropped with a debug log; recording never stalls a frame.
func (r *Recorder) Record(ev Event) {
	if r.closed.Load() {
		return
	}
	select {
	case r.events <- ev:
	default:
		r.log.Debugf("trace queue full, dropping event %d", ev.ID())
	}
}

// Close drains the queue, writes the checksum footer and closes the file.
func (r *Recorder) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	select {
	case r.stop <- struct{}{}:
	case <-time.After(time.Second * 5):
		return aerror.New("unable to stop trace recorder")
	}
	<-r.done
	return nil
}

// flush writes queued events until stopped, then drains what is left and
// seals the file.
func (r *Recorder) flush() {
	for {
		select {
		case ev := <-r.events:
			r.write(ev)
		case <-r.stop:
			for {
				select {
				case ev := <-r.events:
					r.write(ev)
				default:
					r.finish()
					close(r.done)
					return
				}
			}
		}
	}
}

func (r *Recorder) write(ev Event) {
	enc := ev.Encode()

	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	internal.WriteLInt32(buf, int32(len(enc)))
	buf.Write(enc)

	dat := buf.Bytes()
	r.hash.Write(dat)
	if _, err := r.f.Write(dat); err != nil {
		r.log.Errorf("unable to write trace event: %v", err)
	}
	internal.BufferPool.Put(buf)
}

func (r *Recorder) finish() {
	footer := make([]byte, 8)
	binary.LittleEndian.PutUint64(footer, r.hash.Sum64())
	if _, err := r.f.Write(footer); err != nil {
		r.log.Errorf("unable to write trace footer: %v", err)
	}
	if err := r.f.Close(); err != nil {
		r.log.Errorf("unable to close trace file: %v", err)
	}
}
