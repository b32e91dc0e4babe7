package motion

import "github.com/chewxy/math32"

// Window is a fixed-size circular buffer of samples for rolling statistics
type Window struct {
	buffer   []float32
	capacity int
	head     int // Points to the next write position
	size     int // Current number of elements
}

// NewWindow creates a new window with the specified capacity
func NewWindow(capacity int) *Window {
	if capacity <= 0 {
		capacity = 1
	}
	return &Window{
		buffer:   make([]float32, capacity),
		capacity: capacity,
		head:     0,
		size:     0,
	}
}

// Push inserts a new sample into the window, evicting the oldest once full
func (w *Window) Push(v float32) {
	w.buffer[w.head] = v
	w.head = (w.head + 1) % w.capacity
	if w.size < w.capacity {
		w.size++
	}
}

// Samples returns the stored samples ordered oldest to newest
func (w *Window) Samples() []float32 {
	result := make([]float32, 0, w.size)
	for i := 0; i < w.size; i++ {
		idx := (w.head - w.size + i + w.capacity) % w.capacity
		result = append(result, w.buffer[idx])
	}
	return result
}

// Mean returns the mean of the stored samples
func (w *Window) Mean() float32 {
	if w.size == 0 {
		return 0
	}
	var sum float32
	for i := 0; i < w.size; i++ {
		idx := (w.head - 1 - i + w.capacity) % w.capacity
		sum += w.buffer[idx]
	}
	return sum / float32(w.size)
}

// Max returns the largest stored sample
func (w *Window) Max() float32 {
	if w.size == 0 {
		return 0
	}
	max := -math32.MaxFloat32
	for i := 0; i < w.size; i++ {
		idx := (w.head - 1 - i + w.capacity) % w.capacity
		if w.buffer[idx] > max {
			max = w.buffer[idx]
		}
	}
	return max
}

// Latest returns the most recently pushed sample
func (w *Window) Latest() (float32, bool) {
	if w.size == 0 {
		return 0, false
	}
	idx := (w.head - 1 + w.capacity) % w.capacity
	return w.buffer[idx], true
}

// Size returns the current number of elements in the window
func (w *Window) Size() int {
	return w.size
}

// Capacity returns the maximum capacity of the window
func (w *Window) Capacity() int {
	return w.capacity
}

// Clear removes all elements from the window
func (w *Window) Clear() {
	w.head = 0
	w.size = 0
}
