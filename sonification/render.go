// SPDX-License-Identifier: EPL-2.0

package sonification

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ik5/sonify/audio"
	"github.com/ik5/sonify/formats/wav"
	"github.com/ik5/sonify/synth"
)

// Extension is appended to the name of a sonification to form its file
// name.
const Extension = ".wav"

type renderOptions struct {
	cfg    synth.Config
	path   string
	dir    string
	logger *slog.Logger
}

// Option adjusts a render.
type Option func(*renderOptions)

// WithPath writes to path instead of <name>.wav.
func WithPath(path string) Option {
	return func(o *renderOptions) { o.path = path }
}

// WithDir places <name>.wav in dir. Ignored when WithPath is given.
func WithDir(dir string) Option {
	return func(o *renderOptions) { o.dir = dir }
}

// WithConfig renders with cfg instead of synth.DefaultConfig. Voices must
// have been built for the same frame rate.
func WithConfig(cfg synth.Config) Option {
	return func(o *renderOptions) { o.cfg = cfg }
}

// WithLogger sets the logger render progress is reported to. Renders are
// silent by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *renderOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyOptions(opts []Option) renderOptions {
	o := renderOptions{
		cfg:    synth.DefaultConfig(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Path returns where Render writes s with the given options.
func (s Sonification) Path(opts ...Option) (string, error) {
	o := applyOptions(opts)

	return s.path(o)
}

func (s Sonification) path(o renderOptions) (string, error) {
	if o.path != "" {
		return o.path, nil
	}
	if s.name == "" {
		return "", ErrNoName
	}

	return filepath.Join(o.dir, s.name+Extension), nil
}

// Frames is the length of a render of s under cfg.
func (s Sonification) Frames(cfg synth.Config) int {
	return cfg.Samples(s.duration)
}

// Render writes s as a 16-bit stereo WAV file and returns its path. The
// file appears only once it is complete; on error nothing is left at the
// path.
func (s Sonification) Render(opts ...Option) (string, error) {
	o := applyOptions(opts)

	path, err := s.path(o)
	if err != nil {
		return "", err
	}

	mix, err := s.mixer(o)
	if err != nil {
		return "", err
	}

	o.logger.Debug("render start",
		slog.String("name", s.name),
		slog.Int("voices", len(s.voices)),
		slog.Int("frames", s.Frames(o.cfg)),
		slog.String("path", path))

	frames, err := wav.EncodeFile(path, mix, o.cfg.ChunkFrames)
	if cerr := mix.Close(); cerr != nil {
		if err == nil {
			// the sources did not release cleanly; do not publish
			if rerr := os.Remove(path); rerr != nil {
				cerr = errors.Join(cerr, rerr)
			}
		}
		err = errors.Join(err, cerr)
	}
	if err != nil {
		o.logger.Debug("render failed", slog.String("name", s.name), slog.Any("error", err))
		return "", fmt.Errorf("rendering %s: %w", s.name, err)
	}

	o.logger.Debug("render done",
		slog.String("name", s.name),
		slog.Int("frames", frames),
		slog.String("path", path))

	return path, nil
}

// RenderTo encodes s into w and returns the number of frames written.
// Name and path options are ignored.
func (s Sonification) RenderTo(w io.WriteSeeker, opts ...Option) (int, error) {
	o := applyOptions(opts)

	mix, err := s.mixer(o)
	if err != nil {
		return 0, err
	}

	frames, err := wav.Encode(w, mix, o.cfg.ChunkFrames)
	err = errors.Join(err, mix.Close())
	if err != nil {
		return frames, fmt.Errorf("rendering %s: %w", s.name, err)
	}
	o.logger.Debug("render done", slog.String("name", s.name), slog.Int("frames", frames))

	return frames, nil
}

// Stream returns the mixed stereo stream of s, bounded to its duration.
// The caller closes it.
func (s Sonification) Stream(opts ...Option) (audio.Source, error) {
	return s.mixer(applyOptions(opts))
}

func (s Sonification) mixer(o renderOptions) (*audio.Mixer, error) {
	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}

	streams := make([]audio.Source, 0, len(s.voices))
	closeAll := func() error {
		var errs []error
		for _, src := range streams {
			errs = append(errs, src.Close())
		}
		return errors.Join(errs...)
	}

	for i, v := range s.voices {
		src, err := v.Stream()
		if err != nil {
			return nil, errors.Join(fmt.Errorf("voice %d: %w", i, err), closeAll())
		}
		streams = append(streams, src)
	}

	mix, err := audio.NewMixer(o.cfg.FrameRate, s.Frames(o.cfg), streams...)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("mixing %s: %w", s.name, err), closeAll())
	}

	return mix, nil
}
