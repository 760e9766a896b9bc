// Package ramp provides a caller-driven linear ramp over 7-bit LED
// brightness codes, for smooth torch transitions beyond the part's fixed
// 1 ms hardware ramp. The caller owns all timing and cancellation through
// the Tick callback; the package itself never sleeps.
package ramp

import (
	"time"

	"github.com/claytonkimber/LM36011/x/mathx"
)

// Step applies a new brightness code in [0..top], e.g. by wrapping
// (*lm36011.Device).SetTorchCurrentCode.
type Step func(code uint8)

// Tick waits for d and reports whether to continue (false => cancelled).
type Tick func(d time.Duration) bool

// Linear runs a synchronous integer ramp from cur to to, clamped to
// [0..top], spread over durationMs in the given number of steps.
// steps==0 or durationMs==0 snaps to 'to'.
func Linear(cur, to, top uint8, durationMs uint32, steps uint8, tick Tick, set Step) {
	if steps == 0 || durationMs == 0 {
		set(mathx.Min(to, top))
		return
	}
	d := int16(to) - int16(cur)
	st := int16(steps)
	acc := int16(0)
	level := int16(cur)
	stepDurMs := durationMs / uint32(steps)
	if stepDurMs == 0 {
		stepDurMs = 1
	}
	stepDur := time.Duration(stepDurMs) * time.Millisecond

	for i := uint8(1); i < steps; i++ {
		if !tick(stepDur) {
			return
		}
		acc += d
		inc := acc / st
		if inc != 0 {
			acc -= inc * st
			level = mathx.Clamp(level+inc, 0, int16(top))
			set(uint8(level))
		}
	}
	set(mathx.Min(to, top))
}
