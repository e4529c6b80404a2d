// SPDX-License-Identifier: EPL-2.0

package score

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ik5/sonify/audio"
	"github.com/ik5/sonify/formats/aiff"
	"github.com/ik5/sonify/formats/mp3"
	"github.com/ik5/sonify/formats/vorbis"
	"github.com/ik5/sonify/formats/wav"
	"github.com/ik5/sonify/sonification"
	"github.com/ik5/sonify/synth"
	"github.com/ik5/sonify/voice"
)

// DefaultRegistry returns a registry with every bundled decoder, keyed by
// file extension.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})

	return r
}

// Option adjusts loading.
type Option func(*loader)

// WithLogger reports loaded scores at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(l *loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

type loader struct {
	cfg      synth.Config
	registry *audio.Registry
	logger   *slog.Logger
	// absolute paths of the scores being loaded
	stack []string
}

func newLoader(cfg synth.Config, registry *audio.Registry, opts []Option) *loader {
	if registry == nil {
		registry = DefaultRegistry()
	}

	l := &loader{
		cfg:      cfg,
		registry: registry,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load reads the score at path. A nil registry means DefaultRegistry. The
// name defaults to the file name without its extension.
func Load(path string, cfg synth.Config, registry *audio.Registry, opts ...Option) (sonification.Sonification, error) {
	return newLoader(cfg, registry, opts).load(path)
}

// Parse builds a sonification from YAML data. Tracks and layers are
// resolved relative to dir.
func Parse(data []byte, dir string, cfg synth.Config, registry *audio.Registry, opts ...Option) (sonification.Sonification, error) {
	return newLoader(cfg, registry, opts).parse(data, dir, "")
}

func (l *loader) load(path string) (sonification.Sonification, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return sonification.Sonification{}, fmt.Errorf("resolving %s: %w", path, err)
	}
	if slices.Contains(l.stack, abs) {
		return sonification.Sonification{}, fmt.Errorf("%w: %s", ErrLayerCycle, strings.Join(append(l.stack, abs), " -> "))
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return sonification.Sonification{}, fmt.Errorf("reading score: %w", err)
	}

	l.stack = append(l.stack, abs)
	defer func() { l.stack = l.stack[:len(l.stack)-1] }()

	name := strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))

	s, err := l.parse(data, filepath.Dir(abs), name)
	if err != nil {
		return sonification.Sonification{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

func (l *loader) parse(data []byte, dir, fallbackName string) (sonification.Sonification, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return sonification.Sonification{}, fmt.Errorf("parsing score: %w", err)
	}

	name := f.Name
	if name == "" {
		name = fallbackName
	}

	var voices []voice.Voice
	for i, spec := range f.Voices {
		v, err := l.voice(spec, dir)
		if err != nil {
			return sonification.Sonification{}, fmt.Errorf("voice %d: %w", i, err)
		}
		voices = append(voices, v)
	}

	for i, spec := range f.Series {
		vs, err := l.series(spec)
		if err != nil {
			return sonification.Sonification{}, fmt.Errorf("series %d: %w", i, err)
		}
		voices = append(voices, vs...)
	}

	duration, err := resolveDuration(f.Duration, voices, l.cfg)
	if err != nil {
		return sonification.Sonification{}, err
	}

	s, err := sonification.New(name, duration, voices...)
	if err != nil {
		return sonification.Sonification{}, err
	}
	if f.Invert {
		s = s.FlipPhase()
	}

	for _, layer := range f.Layers {
		if !filepath.IsAbs(layer) {
			layer = filepath.Join(dir, layer)
		}

		sub, err := l.load(layer)
		if err != nil {
			return sonification.Sonification{}, fmt.Errorf("layer: %w", err)
		}
		s = s.Union(sub)
	}

	l.logger.Debug("score loaded",
		slog.String("name", s.Name()),
		slog.Int("voices", s.Len()),
		slog.Int("layers", len(f.Layers)),
		slog.Float64("duration", s.Duration()))

	return s, nil
}

// resolveDuration falls back to the end of the last bounded voice when the
// score gives no duration.
func resolveDuration(declared *float64, voices []voice.Voice, cfg synth.Config) (float64, error) {
	if declared != nil {
		return *declared, nil
	}

	end := 0
	for _, v := range voices {
		frames, ok := v.Duration()
		if !ok {
			return 0, ErrMissingDuration
		}
		end = max(end, v.Offset()+frames)
	}

	return cfg.Seconds(end), nil
}

func placement(pan string) (synth.Placement, error) {
	if pan == "" {
		return 0, nil
	}

	return synth.ParsePlacement(pan)
}

func shape(name string) (synth.Shape, error) {
	if name == "" {
		return synth.Sine, nil
	}

	return synth.ParseShape(name)
}

func (l *loader) voice(spec VoiceSpec, dir string) (voice.Voice, error) {
	p := voice.Params{
		Frequency: voice.DefaultFrequency,
		Amplitude: voice.DefaultAmplitude,
		Offset:    spec.Offset,
		Balance:   spec.Balance,
		Duration:  spec.Duration,
		Envelope:  spec.Envelope,
	}
	if spec.Frequency != nil {
		p.Frequency = *spec.Frequency
	}
	if spec.Amplitude != nil {
		p.Amplitude = *spec.Amplitude
	}

	var err error
	if p.Placement, err = placement(spec.Pan); err != nil {
		return voice.Voice{}, err
	}

	if spec.Track == "" {
		if p.Shape, err = shape(spec.Shape); err != nil {
			return voice.Voice{}, err
		}

		return voice.New(l.cfg, p)
	}

	track := spec.Track
	if !filepath.IsAbs(track) {
		track = filepath.Join(dir, track)
	}
	if _, ok := l.registry.ForPath(track); !ok {
		return voice.Voice{}, fmt.Errorf("%w: %s", ErrNoDecoder, spec.Track)
	}

	open, err := voice.FileOpener(l.registry, track)
	if err != nil {
		return voice.Voice{}, err
	}

	return voice.NewTrack(l.cfg, open, p)
}

func (l *loader) series(spec SeriesSpec) ([]voice.Voice, error) {
	template := voice.Params{
		Frequency: voice.DefaultFrequency,
		Amplitude: voice.DefaultAmplitude,
		Duration:  spec.Duration,
		Envelope:  spec.Envelope,
	}

	var err error
	if template.Shape, err = shape(spec.Shape); err != nil {
		return nil, err
	}
	if template.Placement, err = placement(spec.Pan); err != nil {
		return nil, err
	}

	return voice.Zip(l.cfg, template, voice.Series{
		Frequency: spec.Frequency,
		Offset:    spec.Offset,
		Balance:   spec.Balance,
		Amplitude: spec.Amplitude,
	})
}
