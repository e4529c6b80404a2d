// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"fmt"
	"math"

	"github.com/ik5/sonify/audio"
	"github.com/ik5/sonify/synth"
	"github.com/ik5/sonify/utils"
)

const (
	DefaultFrequency = 432.0
	DefaultAmplitude = 0.12

	// DefaultBlipDuration is the length, in seconds, of Blip and Plop.
	DefaultBlipDuration = 1.0
)

// Params describes a voice before validation. Times are in seconds.
type Params struct {
	Shape     synth.Shape
	Frequency float64
	// Amplitude outside [-1, 1] is clamped.
	Amplitude float64
	// Offset is the silence before the voice starts.
	Offset float64
	// Balance is the pan angle, see synth.Pan. Ignored when Placement is set.
	Balance   float64
	Placement synth.Placement
	// Duration bounds the voice; zero leaves it unbounded.
	Duration float64
	// Envelope shapes a bounded voice with synth.Bump.
	Envelope bool
}

// Wave returns the parameters of an unbounded voice at the default
// amplitude.
func Wave(shape synth.Shape, frequency float64) Params {
	return Params{
		Shape:     shape,
		Frequency: frequency,
		Amplitude: DefaultAmplitude,
	}
}

// Blip is a Wave cut off after duration seconds.
func Blip(shape synth.Shape, frequency, duration float64) Params {
	p := Wave(shape, frequency)
	p.Duration = duration

	return p
}

// Plop is a Blip that fades in and out.
func Plop(shape synth.Shape, frequency, duration float64) Params {
	p := Blip(shape, frequency, duration)
	p.Envelope = true

	return p
}

// Voice is one validated sound event. It is immutable: Inverted and Placed
// return modified copies, and every call to Stream starts a new rendering
// from the first sample.
type Voice struct {
	cfg    synth.Config
	osc    synth.Oscillator
	open   Opener
	params Params

	period    float64
	amplitude float64
	gains     synth.Gains
	offset    int
	duration  int
}

// New validates p against cfg and builds a synthesized voice.
func New(cfg synth.Config, p Params) (Voice, error) {
	if !p.Shape.Valid() {
		return Voice{}, fmt.Errorf("%w: %d", synth.ErrUnknownShape, p.Shape)
	}
	if !(p.Frequency > 0) || math.IsInf(p.Frequency, 0) {
		return Voice{}, fmt.Errorf("%w: frequency %v Hz", ErrInvalidParams, p.Frequency)
	}

	v, err := build(cfg, p)
	if err != nil {
		return Voice{}, err
	}
	v.period = cfg.Period(p.Frequency)

	return v, nil
}

func build(cfg synth.Config, p Params) (Voice, error) {
	if err := cfg.Validate(); err != nil {
		return Voice{}, err
	}

	switch {
	case math.IsNaN(p.Amplitude):
		return Voice{}, fmt.Errorf("%w: amplitude is NaN", ErrInvalidParams)
	case !finite(p.Offset) || p.Offset < 0:
		return Voice{}, fmt.Errorf("%w: offset %v s", ErrInvalidParams, p.Offset)
	case !finite(p.Duration) || p.Duration < 0:
		return Voice{}, fmt.Errorf("%w: duration %v s", ErrInvalidParams, p.Duration)
	case !finite(p.Balance):
		return Voice{}, fmt.Errorf("%w: balance %v", ErrInvalidParams, p.Balance)
	case p.Envelope && p.Duration == 0:
		return Voice{}, fmt.Errorf("%w: envelope needs a duration", ErrInvalidParams)
	case p.Placement > synth.HardRight:
		return Voice{}, fmt.Errorf("%w: placement %d", ErrInvalidParams, p.Placement)
	}

	gains := synth.Pan(p.Balance)
	if p.Placement != 0 {
		gains = p.Placement.Gains()
	}

	return Voice{
		cfg:       cfg,
		osc:       synth.NewOscillator(cfg),
		params:    p,
		amplitude: utils.Clamp(p.Amplitude),
		gains:     gains,
		offset:    cfg.Samples(p.Offset),
		duration:  cfg.Samples(p.Duration),
	}, nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// Params returns the parameters the voice was built from.
func (v Voice) Params() Params { return v.params }

// Shape of a synthesized voice. Meaningless for tracks.
func (v Voice) Shape() synth.Shape { return v.params.Shape }

// Amplitude after clamping, negative when the voice is inverted.
func (v Voice) Amplitude() float64 { return v.amplitude }

func (v Voice) Gains() synth.Gains { return v.gains }

// Offset in frames.
func (v Voice) Offset() int { return v.offset }

// Duration in frames; ok is false for unbounded voices.
func (v Voice) Duration() (frames int, ok bool) {
	return v.duration, v.params.Duration > 0
}

func (v Voice) Bounded() bool   { return v.params.Duration > 0 }
func (v Voice) Enveloped() bool { return v.params.Envelope }
func (v Voice) IsTrack() bool   { return v.open != nil }

// Inverted returns v with its phase flipped.
func (v Voice) Inverted() Voice {
	v.amplitude = -v.amplitude
	return v
}

// Placed returns v pinned to a fixed pan position.
func (v Voice) Placed(p synth.Placement) Voice {
	v.params.Placement = p
	v.gains = p.Gains()

	return v
}

// Stream starts a new stereo rendering of v at the config frame rate.
// The caller closes it.
func (v Voice) Stream() (audio.Source, error) {
	var (
		base audio.Source
		err  error
	)

	if v.open != nil {
		base, err = v.openTrack()
		if err != nil {
			return nil, err
		}
	} else {
		base = &tone{
			osc:    v.osc,
			shape:  v.params.Shape,
			period: v.period,
			rate:   v.cfg.FrameRate,
		}
	}

	if v.Bounded() {
		base = &bounded{src: base, remaining: v.duration}
		if v.params.Envelope {
			base = &enveloped{src: base, length: v.duration}
		}
	}

	return newStereo(base, v.offset, v.amplitude, v.gains), nil
}
