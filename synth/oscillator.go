// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/ik5/sonify/utils"
)

// Oscillator evaluates waveforms under one Config. It holds no phase: Value
// is a pure function of its arguments, so one Oscillator serves any number
// of voices.
type Oscillator struct {
	rate      float64
	ceiling   float64
	threshold float64
}

// NewOscillator binds cfg to an Oscillator.
func NewOscillator(cfg Config) Oscillator {
	return Oscillator{
		rate:      float64(cfg.FrameRate),
		ceiling:   cfg.HarmonicCeiling,
		threshold: cfg.AliasThreshold,
	}
}

type evalFunc func(o Oscillator, period, x float64) float64

// one evaluation function per shape, indexed by Shape
var evaluators = [shapeCount]evalFunc{
	Sine:   func(_ Oscillator, p, x float64) float64 { return sine(p, x) },
	Square: Oscillator.square,
	Saw:    Oscillator.saw,
	Heart:  func(o Oscillator, p, x float64) float64 { return o.harmonicSum(p, x, Heart.Stride()) },
	Funnel: func(o Oscillator, p, x float64) float64 { return o.harmonicSum(p, x, Funnel.Stride()) },
}

// Value returns the amplitude of shape at sample position x for a period of
// `period` cycles per sample. The result is saturated to [-1, 1]: partial
// sums overshoot near discontinuities and are cut there.
// Shapes that fail Valid evaluate to silence.
func (o Oscillator) Value(shape Shape, period, x float64) float64 {
	if !shape.Valid() {
		return 0
	}

	return utils.Clamp(evaluators[shape](o, period, x))
}

// HarmonicCount returns how many terms the partial sum of the given stride
// is built from at a fundamental of frequency Hz. Terms above the harmonic
// ceiling are skipped while summing, so fewer partials may sound.
func (o Oscillator) HarmonicCount(frequency float64, stride int) int {
	if frequency <= 0 || stride <= 0 {
		return 0
	}

	return int(math.Floor((o.ceiling/frequency+1)/float64(stride))) + 1
}

func sine(period, x float64) float64 {
	return math.Sin(2 * math.Pi * period * x)
}

func (o Oscillator) square(period, x float64) float64 {
	if o.fundamental(period) >= o.threshold {
		return o.harmonicSum(period, x, Square.Stride())
	}

	return squareClosed(period, x)
}

func (o Oscillator) saw(period, x float64) float64 {
	if o.fundamental(period) >= o.threshold {
		return o.harmonicSum(period, x, Saw.Stride())
	}

	return sawClosed(period, x)
}

func squareClosed(period, x float64) float64 {
	s := sine(period, x)
	switch {
	case s > 0:
		return 1
	case s < 0:
		return -1
	default:
		return 0
	}
}

func sawClosed(period, x float64) float64 {
	return (2 / math.Pi) * math.Atan(math.Tan(math.Pi*period*x))
}

// fundamental recovers the frequency in Hz from a period, rounded to a
// micro-hertz so frequency/rate*rate lands back on the value it came from.
func (o Oscillator) fundamental(period float64) float64 {
	return math.Round(period*o.rate*1e6) / 1e6
}

// harmonicSum is the truncated Fourier series
//
//	(4m/2π) Σ (-1)^(k·m) sin(2π·p·x·(m·k+1)) / (m·k+1)
//
// over the first HarmonicCount terms, stopping at the first partial above
// the ceiling.
func (o Oscillator) harmonicSum(period, x float64, stride int) float64 {
	fundamental := o.fundamental(period)
	n := o.HarmonicCount(fundamental, stride)
	theta := 2 * math.Pi * period * x

	var sum float64
	for k := range n {
		h := float64(stride*k + 1)
		if h*fundamental > o.ceiling {
			break
		}

		term := math.Sin(theta*h) / h
		if (k*stride)%2 == 1 {
			term = -term
		}
		sum += term
	}

	return 4 * float64(stride) * sum / (2 * math.Pi)
}
