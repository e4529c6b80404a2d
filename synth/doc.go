// SPDX-License-Identifier: EPL-2.0

// Package synth implements the sample-level math of sonification: waveform
// evaluation, the stereo pan law and the transient envelope, all under an
// explicit Config.
//
// # Waveforms
//
// Five shapes are available: Sine, Square, Saw, Heart and Funnel. Square and
// Saw use closed forms while their fundamental stays under
// Config.AliasThreshold; above it, and always for Heart and Funnel, they are
// built as band-limited partial sums whose partials never exceed
// Config.HarmonicCeiling:
//
//	osc := synth.NewOscillator(synth.DefaultConfig())
//	v := osc.Value(synth.Square, cfg.Period(440), float64(i))
//
// Values are saturated to [-1, 1].
//
// # Panning
//
// Pan maps a balance angle in [-π/4, π/4] to left/right gains with
// L² + R² = 1. Placement overrides the law with hard left, center or hard
// right gains.
package synth
