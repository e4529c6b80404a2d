// SPDX-License-Identifier: EPL-2.0

package synth

// Bump is the transient window: a degree-6 polynomial in the elapsed
// fraction x of an event that rises from 0, peaks just under 1 early on,
// and decays back to 0 at x = 1. Outside [0, 1] it is 0.
func Bump(x float64) float64 {
	if x <= 0 || x >= 1 {
		return 0
	}

	return x * (21.02 + x*(-149.55+x*(433.75+x*(-622.64+x*(437.84-120.42*x)))))
}
