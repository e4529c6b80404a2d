// SPDX-License-Identifier: EPL-2.0

package sonification

import (
	"fmt"
	"math"
	"slices"

	"github.com/ik5/sonify/voice"
)

// Sonification is an unordered bundle of voices rendered together for a
// fixed duration. Like Voice it is a value: Union and FlipPhase return new
// sonifications and leave their operands alone.
type Sonification struct {
	name     string
	duration float64
	voices   []voice.Voice
}

// New bundles voices under name. duration is in seconds and bounds every
// voice, unbounded ones included.
func New(name string, duration float64, voices ...voice.Voice) (Sonification, error) {
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return Sonification{}, fmt.Errorf("%w: %v s", ErrInvalidDuration, duration)
	}

	return Sonification{
		name:     name,
		duration: duration,
		voices:   slices.Clone(voices),
	}, nil
}

// Empty is a silent sonification of the given duration.
func Empty(name string, duration float64) (Sonification, error) {
	return New(name, duration)
}

func (s Sonification) Name() string      { return s.name }
func (s Sonification) Duration() float64 { return s.duration }
func (s Sonification) Len() int          { return len(s.voices) }

// Voices returns a copy of the voices.
func (s Sonification) Voices() []voice.Voice { return slices.Clone(s.voices) }

// Union plays s and o together: the voices of both, the longer of the two
// durations and the name of s.
func (s Sonification) Union(o Sonification) Sonification {
	return Sonification{
		name:     s.name,
		duration: max(s.duration, o.duration),
		voices:   slices.Concat(s.voices, o.voices),
	}
}

// Union is the function form of Sonification.Union.
func Union(a, b Sonification) Sonification { return a.Union(b) }

// FlipPhase inverts every voice.
func (s Sonification) FlipPhase() Sonification {
	flipped := make([]voice.Voice, len(s.voices))
	for i, v := range s.voices {
		flipped[i] = v.Inverted()
	}

	return Sonification{name: s.name, duration: s.duration, voices: flipped}
}

// Difference is a united with the phase-flipped voices of b, named name.
// Rendering a sonification against itself this way yields silence.
func Difference(a, b Sonification, name string) Sonification {
	d := a.Union(b.FlipPhase())
	d.name = name

	return d
}

// Renamed returns s under another name.
func (s Sonification) Renamed(name string) Sonification {
	s.voices = slices.Clone(s.voices)
	s.name = name

	return s
}
