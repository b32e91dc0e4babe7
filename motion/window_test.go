package motion

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestWindowEviction(t *testing.T) {
	w := NewWindow(3)
	for _, v := range []float32{1, 2, 3, 4, 5} {
		w.Push(v)
	}
	if w.Size() != 3 {
		t.Fatalf("expected window size 3, got %v", w.Size())
	}
	samples := w.Samples()
	if len(samples) != 3 || samples[0] != 3 || samples[1] != 4 || samples[2] != 5 {
		t.Fatalf("expected oldest samples evicted, got %v", samples)
	}
}

func TestWindowStats(t *testing.T) {
	w := NewWindow(4)
	for _, v := range []float32{2, 4, 6} {
		w.Push(v)
	}
	if mean := w.Mean(); math32.Abs(mean-4) > 1e-5 {
		t.Fatalf("expected mean 4, got %v", mean)
	}
	if max := w.Max(); max != 6 {
		t.Fatalf("expected max 6, got %v", max)
	}
	latest, ok := w.Latest()
	if !ok || latest != 6 {
		t.Fatalf("expected latest sample 6, got %v", latest)
	}
}

func TestWindowEmpty(t *testing.T) {
	w := NewWindow(2)
	if w.Mean() != 0 || w.Max() != 0 {
		t.Fatalf("expected zero stats on empty window")
	}
	if _, ok := w.Latest(); ok {
		t.Fatalf("expected no latest sample on empty window")
	}
	w.Push(1)
	w.Clear()
	if w.Size() != 0 {
		t.Fatalf("expected cleared window to be empty, got %v", w.Size())
	}
}

func TestStatistics(t *testing.T) {
	nums := []float32{2, 4, 4, 4, 5, 5, 7, 9}
	if mean := Mean(nums); math32.Abs(mean-5) > 1e-5 {
		t.Fatalf("expected mean 5, got %v", mean)
	}
	if sd := StandardDeviation(nums); math32.Abs(sd-2) > 1e-5 {
		t.Fatalf("expected standard deviation 2, got %v", sd)
	}
	if v := Variance(nil); v != 0 {
		t.Fatalf("expected zero variance on empty input, got %v", v)
	}
}
