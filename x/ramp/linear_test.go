package ramp

import (
	"testing"
	"time"
)

func collect(codes *[]uint8) Step {
	return func(code uint8) { *codes = append(*codes, code) }
}

func instantTick(d time.Duration) bool { return true }

func TestLinearReachesTarget(t *testing.T) {
	var codes []uint8
	Linear(0, 100, 127, 1000, 10, instantTick, collect(&codes))

	if len(codes) == 0 || codes[len(codes)-1] != 100 {
		t.Fatalf("codes = %v, want final 100", codes)
	}
	prev := uint8(0)
	for _, c := range codes {
		if c < prev {
			t.Fatalf("non-monotonic ramp: %v", codes)
		}
		prev = c
	}
}

func TestLinearRampsDown(t *testing.T) {
	var codes []uint8
	Linear(100, 0, 127, 500, 5, instantTick, collect(&codes))
	if codes[len(codes)-1] != 0 {
		t.Fatalf("codes = %v, want final 0", codes)
	}
}

func TestLinearSnapsWithoutSteps(t *testing.T) {
	var codes []uint8
	Linear(0, 80, 127, 0, 10, instantTick, collect(&codes))
	if len(codes) != 1 || codes[0] != 80 {
		t.Fatalf("codes = %v, want a single snap to 80", codes)
	}
}

func TestLinearClampsToTop(t *testing.T) {
	var codes []uint8
	Linear(0, 200, 127, 0, 0, instantTick, collect(&codes))
	if len(codes) != 1 || codes[0] != 127 {
		t.Fatalf("codes = %v, want clamp to 127", codes)
	}
}

func TestLinearCancellation(t *testing.T) {
	var codes []uint8
	ticks := 0
	tick := func(d time.Duration) bool {
		ticks++
		return ticks <= 2
	}
	Linear(0, 100, 127, 1000, 10, tick, collect(&codes))

	for _, c := range codes {
		if c == 100 {
			t.Fatalf("ramp completed despite cancellation: %v", codes)
		}
	}
}
