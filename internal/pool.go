package internal

import (
	"bytes"
	"sync"
)

// BufferPool hands out scratch byte buffers for trace encoding so the per-frame
// recording path does not allocate.
var BufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer([]byte{})
	},
}
