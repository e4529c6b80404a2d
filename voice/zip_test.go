// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"errors"
	"testing"

	"github.com/ik5/sonify/synth"
)

func TestZip(t *testing.T) {
	t.Parallel()

	template := Plop(synth.Sine, DefaultFrequency, 0.5)
	voices, err := Zip(cfg, template, Series{
		Frequency: []float64{220, 330, 440},
		Offset:    []float64{0, 0.5, 1},
	})
	if err != nil {
		t.Fatalf("Zip() error = %v", err)
	}
	if len(voices) != 3 {
		t.Fatalf("Zip() built %d voices, want 3", len(voices))
	}

	for i, v := range voices {
		p := v.Params()
		if want := []float64{220, 330, 440}[i]; p.Frequency != want {
			t.Errorf("voice %d frequency = %v, want %v", i, p.Frequency, want)
		}
		if want := []int{0, 24000, 48000}[i]; v.Offset() != want {
			t.Errorf("voice %d offset = %d frames, want %d", i, v.Offset(), want)
		}
		if v.Amplitude() != DefaultAmplitude || !v.Enveloped() {
			t.Errorf("voice %d lost template values: %+v", i, p)
		}
	}
}

func TestZip_TemplateOnlyFields(t *testing.T) {
	t.Parallel()

	voices, err := Zip(cfg, Wave(synth.Saw, 100), Series{Amplitude: []float64{0.1, 3}})
	if err != nil {
		t.Fatalf("Zip() error = %v", err)
	}

	if len(voices) != 2 || voices[0].Params().Frequency != 100 {
		t.Fatalf("Zip() = %d voices", len(voices))
	}
	if voices[1].Amplitude() != 1 {
		t.Errorf("amplitude 3 was not clamped: %v", voices[1].Amplitude())
	}
}

func TestZip_LengthMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		series Series
		field  string
	}{
		{
			name:   "offset short",
			series: Series{Frequency: []float64{1, 2, 3}, Offset: []float64{0, 1}},
			field:  "offset",
		},
		{
			name:   "amplitude long",
			series: Series{Balance: []float64{0}, Amplitude: []float64{0.1, 0.2}},
			field:  "amplitude",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			voices, err := Zip(cfg, Wave(synth.Sine, 440), tt.series)
			if !errors.Is(err, ErrParameterLength) {
				t.Fatalf("Zip() error = %v, want ErrParameterLength", err)
			}
			if voices != nil {
				t.Errorf("Zip() returned %d voices with an error", len(voices))
			}

			var perr *ParameterError
			if !errors.As(err, &perr) {
				t.Fatalf("error %T is not a *ParameterError", err)
			}
			if perr.Field != tt.field {
				t.Errorf("Field = %q, want %q", perr.Field, tt.field)
			}
		})
	}
}

func TestZip_Empty(t *testing.T) {
	t.Parallel()

	voices, err := Zip(cfg, Wave(synth.Sine, 440), Series{})
	if err != nil || len(voices) != 0 {
		t.Errorf("Zip(empty) = %d voices, %v", len(voices), err)
	}
}

func TestZip_InvalidValue(t *testing.T) {
	t.Parallel()

	_, err := Zip(cfg, Wave(synth.Sine, 440), Series{Frequency: []float64{440, -1}})
	if !errors.Is(err, ErrInvalidParams) {
		t.Errorf("Zip() error = %v, want ErrInvalidParams", err)
	}
}
