package internal

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// WriteLInt32 writes a little-endian int32 to the buffer.
func WriteLInt32(buf *bytes.Buffer, v int32) {
	binary.Write(buf, binary.LittleEndian, v)
}

// WriteLInt64 writes a little-endian int64 to the buffer.
func WriteLInt64(buf *bytes.Buffer, v int64) {
	binary.Write(buf, binary.LittleEndian, v)
}

// WriteLFloat32 writes a little-endian float32 to the buffer.
func WriteLFloat32(buf *bytes.Buffer, v float32) {
	binary.Write(buf, binary.LittleEndian, v)
}

// WriteVec32 writes the three components of a vector to the buffer.
func WriteVec32(buf *bytes.Buffer, v mgl32.Vec3) {
	WriteLFloat32(buf, v.X())
	WriteLFloat32(buf, v.Y())
	WriteLFloat32(buf, v.Z())
}

// LInt32 reads a little-endian int32 from the head of b.
func LInt32(b []byte) int32 {
	return int32(binary.LittleEndian.Uint32(b))
}

// LInt64 reads a little-endian int64 from the head of b.
func LInt64(b []byte) int64 {
	return int64(binary.LittleEndian.Uint64(b))
}

// LFloat32 reads a little-endian float32 from the head of b.
func LFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

// Vec32 reads three little-endian float32 components from the head of b.
func Vec32(b []byte) mgl32.Vec3 {
	return mgl32.Vec3{LFloat32(b), LFloat32(b[4:]), LFloat32(b[8:])}
}
