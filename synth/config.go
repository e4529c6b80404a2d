// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

const (
	// DefaultFrameRate is the canonical output frame rate in Hz.
	DefaultFrameRate = 48000

	// DefaultHarmonicCeiling is the highest partial frequency, in Hz, that a
	// harmonic sum may synthesize.
	DefaultHarmonicCeiling = 20000.0

	// DefaultAliasThreshold is the fundamental, in Hz, from which square and
	// saw switch from their closed forms to harmonic sums.
	DefaultAliasThreshold = 3456.0

	// DefaultChunkFrames is how many frames the encoder pulls per write.
	DefaultChunkFrames = 2048
)

// Config carries the constants of one rendering setup. It is a plain value:
// copy it freely, two renders with different configs never interfere.
type Config struct {
	FrameRate       int
	HarmonicCeiling float64
	AliasThreshold  float64
	ChunkFrames     int
}

// DefaultConfig returns the canonical 48 kHz configuration.
func DefaultConfig() Config {
	return Config{
		FrameRate:       DefaultFrameRate,
		HarmonicCeiling: DefaultHarmonicCeiling,
		AliasThreshold:  DefaultAliasThreshold,
		ChunkFrames:     DefaultChunkFrames,
	}
}

// Validate reports whether every field holds a usable value. The harmonic
// ceiling has to stay at or below the Nyquist frequency.
func (c Config) Validate() error {
	switch {
	case c.FrameRate <= 0:
		return fmt.Errorf("%w: frame rate %d", ErrInvalidConfig, c.FrameRate)
	case c.HarmonicCeiling <= 0 || c.HarmonicCeiling > float64(c.FrameRate)/2:
		return fmt.Errorf("%w: harmonic ceiling %v Hz at %d Hz", ErrInvalidConfig, c.HarmonicCeiling, c.FrameRate)
	case c.AliasThreshold <= 0:
		return fmt.Errorf("%w: alias threshold %v Hz", ErrInvalidConfig, c.AliasThreshold)
	case c.ChunkFrames <= 0:
		return fmt.Errorf("%w: chunk of %d frames", ErrInvalidConfig, c.ChunkFrames)
	}

	return nil
}

// Samples converts seconds to a whole number of frames. Every conversion in
// the module goes through here so offsets and durations round the same way.
func (c Config) Samples(seconds float64) int {
	return int(math.Round(seconds * float64(c.FrameRate)))
}

// Seconds converts a frame count back to seconds.
func (c Config) Seconds(frames int) float64 {
	return float64(frames) / float64(c.FrameRate)
}

// Period returns the per-sample phase increment of frequency, in cycles.
func (c Config) Period(frequency float64) float64 {
	return frequency / float64(c.FrameRate)
}
