// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"fmt"
	"io"

	"github.com/ik5/sonify/audio"
	"github.com/ik5/sonify/synth"
)

// The stages below are mono sources stacked by Voice.Stream:
// tone or track, then bounded, then enveloped, and finally stereo.

const streamBufSize = 4096

// tone is an endless oscillator. Sample index 0 is the first sample after
// the offset.
type tone struct {
	osc    synth.Oscillator
	shape  synth.Shape
	period float64
	rate   int
	index  int
}

func (t *tone) SampleRate() int { return t.rate }
func (t *tone) Channels() int   { return 1 }
func (t *tone) BufSize() int    { return streamBufSize }
func (t *tone) Close() error    { return nil }

func (t *tone) ReadSamples(dst []float32) (int, error) {
	for i := range dst {
		dst[i] = float32(t.osc.Value(t.shape, t.period, float64(t.index)))
		t.index++
	}

	return len(dst), nil
}

// bounded ends src after remaining samples.
type bounded struct {
	src       audio.Source
	remaining int
}

func (b *bounded) SampleRate() int { return b.src.SampleRate() }
func (b *bounded) Channels() int   { return 1 }
func (b *bounded) BufSize() int    { return b.src.BufSize() }
func (b *bounded) Close() error    { return b.src.Close() }

func (b *bounded) ReadSamples(dst []float32) (int, error) {
	if b.remaining <= 0 {
		return 0, io.EOF
	}

	n, err := b.src.ReadSamples(dst[:min(len(dst), b.remaining)])
	b.remaining -= n
	if err != nil {
		return n, err
	}
	if b.remaining == 0 {
		return n, io.EOF
	}

	return n, nil
}

// enveloped scales a bounded source of length samples by synth.Bump.
type enveloped struct {
	src     audio.Source
	length  int
	elapsed int
}

func (e *enveloped) SampleRate() int { return e.src.SampleRate() }
func (e *enveloped) Channels() int   { return 1 }
func (e *enveloped) BufSize() int    { return e.src.BufSize() }
func (e *enveloped) Close() error    { return e.src.Close() }

func (e *enveloped) ReadSamples(dst []float32) (int, error) {
	n, err := e.src.ReadSamples(dst)

	length := float64(e.length)
	for i := range dst[:n] {
		dst[i] *= float32(synth.Bump(float64(e.elapsed) / length))
		e.elapsed++
	}

	return n, err
}

// stereo emits offset frames of silence, then the mono source scaled by
// amplitude and split by the pan gains.
type stereo struct {
	src     audio.Source
	silence int
	left    float32
	right   float32
	mono    []float32
	done    bool
}

func newStereo(src audio.Source, offset int, amplitude float64, gains synth.Gains) *stereo {
	return &stereo{
		src:     src,
		silence: offset,
		left:    float32(amplitude * gains.Left),
		right:   float32(amplitude * gains.Right),
	}
}

func (s *stereo) SampleRate() int { return s.src.SampleRate() }
func (s *stereo) Channels() int   { return 2 }
func (s *stereo) BufSize() int    { return 2 * s.src.BufSize() }

func (s *stereo) Close() error {
	if err := s.src.Close(); err != nil {
		return fmt.Errorf("closing voice: %w", err)
	}

	return nil
}

func (s *stereo) ReadSamples(dst []float32) (int, error) {
	if len(dst)%2 != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if s.done {
		return 0, io.EOF
	}

	frames := len(dst) / 2

	quiet := min(frames, s.silence)
	clear(dst[:2*quiet])
	s.silence -= quiet
	if quiet == frames {
		return len(dst), nil
	}

	want := frames - quiet
	if cap(s.mono) < want {
		s.mono = make([]float32, want)
	}
	mono := s.mono[:want]

	n, err := audio.ReadFull(s.src, mono)
	out := dst[2*quiet:]
	for i, v := range mono[:n] {
		out[2*i] = v * s.left
		out[2*i+1] = v * s.right
	}

	total := 2 * (quiet + n)
	if err == io.EOF {
		s.done = true
		return total, io.EOF
	}
	if err != nil {
		return total, fmt.Errorf("voice stream: %w", err)
	}

	return total, nil
}
