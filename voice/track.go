// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"fmt"
	"os"

	"github.com/ik5/sonify/audio"
	"github.com/ik5/sonify/synth"
)

// Opener opens a fresh decoded stream of a track. It is called once per
// Stream, so it must be able to start over every time.
type Opener func() (audio.Source, error)

// NewTrack builds a voice that plays the stream returned by open. Shape and
// frequency of p are ignored; every other parameter applies as for a
// synthesized voice.
func NewTrack(cfg synth.Config, open Opener, p Params) (Voice, error) {
	if open == nil {
		return Voice{}, fmt.Errorf("%w: nil track opener", ErrInvalidParams)
	}

	v, err := build(cfg, p)
	if err != nil {
		return Voice{}, err
	}
	v.open = open

	return v, nil
}

// FileOpener returns an Opener decoding path with the decoder registered
// for its extension.
func FileOpener(registry *audio.Registry, path string) (Opener, error) {
	dec, ok := registry.ForPath(path)
	if !ok {
		return nil, fmt.Errorf("%w: no decoder for %q", ErrInvalidParams, path)
	}

	return func() (audio.Source, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening track: %w", err)
		}

		src, err := dec.Decode(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}

		return &fileSource{Source: src, file: f}, nil
	}, nil
}

// fileSource closes the underlying file together with the decoder.
type fileSource struct {
	audio.Source
	file *os.File
}

func (f *fileSource) Close() error {
	err := f.Source.Close()
	if cerr := f.file.Close(); err == nil {
		err = cerr
	}

	return err
}

// openTrack adapts a decoded stream to the mono signal a voice is built
// on: resampled to the frame rate, then folded to one channel.
func (v Voice) openTrack() (audio.Source, error) {
	src, err := v.open()
	if err != nil {
		return nil, err
	}

	if src.SampleRate() != v.cfg.FrameRate {
		src = audio.NewResampler(src, v.cfg.FrameRate)
	}
	if src.Channels() != 1 {
		src = audio.NewMonoMixer(src)
	}

	return src, nil
}
