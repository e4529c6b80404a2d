// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.FrameRate != 48000 || cfg.HarmonicCeiling != 20000 || cfg.ChunkFrames != 2048 {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }},
		{"ceiling above nyquist", func(c *Config) { c.FrameRate = 22050 }},
		{"negative ceiling", func(c *Config) { c.HarmonicCeiling = -1 }},
		{"zero threshold", func(c *Config) { c.AliasThreshold = 0 }},
		{"zero chunk", func(c *Config) { c.ChunkFrames = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_Conversions(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if got := cfg.Samples(0.5); got != 24000 {
		t.Errorf("Samples(0.5) = %d, want 24000", got)
	}
	if got := cfg.Samples(1.0 / 3); got != 16000 {
		t.Errorf("Samples(1/3) = %d, want 16000", got)
	}
	if got := cfg.Seconds(96000); got != 2 {
		t.Errorf("Seconds(96000) = %v, want 2", got)
	}
	if got := cfg.Period(480); got != 0.01 {
		t.Errorf("Period(480) = %v, want 0.01", got)
	}
}
