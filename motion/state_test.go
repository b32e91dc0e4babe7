package motion

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestStateForSpeed(t *testing.T) {
	cases := []struct {
		speed float32
		want  LocomotionState
	}{
		{0, StateIdle},
		{StopEpsilon, StateIdle},
		{WalkThreshold, StateIdle},
		{0.11, StateWalk},
		{1.5, StateWalk},
		{RunThreshold, StateWalk},
		{4.01, StateRun},
		{SprintSpeed, StateRun},
	}
	for _, c := range cases {
		if got := StateForSpeed(c.speed); got != c.want {
			t.Fatalf("expected state %v at speed %v, got %v", c.want, c.speed, got)
		}
	}
}

func TestRateForState(t *testing.T) {
	if rate := RateForState(StateIdle, 3); rate != 1 {
		t.Fatalf("expected idle to play at authored rate, got %v", rate)
	}

	// Walk rate tracks speed but stays inside the readable band.
	if rate := RateForState(StateWalk, WalkSpeed); math32.Abs(rate-1) > 1e-5 {
		t.Fatalf("expected nominal walk rate at walk speed, got %v", rate)
	}
	if rate := RateForState(StateWalk, 0.2); rate != WalkRateMin {
		t.Fatalf("expected walk rate floor, got %v", rate)
	}
	if rate := RateForState(StateWalk, 50); rate != WalkRateMax {
		t.Fatalf("expected walk rate ceiling, got %v", rate)
	}

	if rate := RateForState(StateRun, RunThreshold); math32.Abs(rate-1) > 1e-5 {
		t.Fatalf("expected nominal run rate, got %v", rate)
	}
	if rate := RateForState(StateRun, 100); rate != RunRateMax {
		t.Fatalf("expected run rate ceiling, got %v", rate)
	}
}
