// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"testing"
)

func TestBump_Endpoints(t *testing.T) {
	t.Parallel()

	for _, x := range []float64{-1, 0, 1, 1.5} {
		if got := Bump(x); got != 0 {
			t.Errorf("Bump(%v) = %v, want 0", x, got)
		}
	}

	// the polynomial itself vanishes at 1, so the window closes smoothly
	if got := Bump(math.Nextafter(1, 0)); math.Abs(got) > 1e-9 {
		t.Errorf("Bump just below 1 = %v, want ~0", got)
	}
}

func TestBump_Shape(t *testing.T) {
	t.Parallel()

	var peak, at float64
	for i := 1; i < 10000; i++ {
		x := float64(i) / 10000
		v := Bump(x)
		if v < 0 || v > 1 {
			t.Fatalf("Bump(%v) = %v, outside [0, 1]", x, v)
		}
		if v > peak {
			peak, at = v, x
		}
	}

	if peak < 0.99 {
		t.Errorf("peak = %v, want close to 1", peak)
	}
	if at > 0.5 {
		t.Errorf("peak at %v, want an early attack", at)
	}
}
