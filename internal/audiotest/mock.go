// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides deterministic sources for tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates a fixed number of frames from a waveform function.
// It implements the audio.Source interface (without importing it to avoid
// cycles) and records whether it was closed.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	waveform    func(frame int, channel int) float32

	// MaxRead, when positive, caps the frames returned by one ReadSamples
	// call to exercise short reads.
	MaxRead int

	closed int
}

// NewMockSource creates a source of totalFrames frames; waveform gives the
// value of every (frame, channel) pair.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource creates a mock source that generates silence.
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewConstantSource(sampleRate, channels, totalFrames, 0)
}

// NewSineSource creates a mock source with the same sine on every channel.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return value
	})
}

// NewStereoSource creates a two-channel source with distinct constant
// left and right values.
func NewStereoSource(sampleRate, totalFrames int, left, right float32) *MockSource {
	return NewMockSource(sampleRate, 2, totalFrames, func(_ int, channel int) float32 {
		if channel == 0 {
			return left
		}
		return right
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed++
	return nil
}

// Closed reports how many times Close was called.
func (m *MockSource) Closed() int { return m.closed }

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalFrames-m.generated)
	if m.MaxRead > 0 {
		frames = min(frames, m.MaxRead)
	}

	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}

	m.generated += frames
	n := frames * m.channels

	if m.generated >= m.totalFrames {
		return n, io.EOF
	}

	return n, nil
}

// FailingSource yields Frames frames of silence and then fails with Err.
// CloseErr, when set, is returned by Close.
type FailingSource struct {
	Rate     int
	Chans    int
	Frames   int
	Err      error
	CloseErr error
	produced int
	closed   int
}

func (f *FailingSource) SampleRate() int { return f.Rate }
func (f *FailingSource) Channels() int   { return f.Chans }
func (f *FailingSource) BufSize() int    { return 4096 }

func (f *FailingSource) Close() error {
	f.closed++
	return f.CloseErr
}

// Closed reports how many times Close was called.
func (f *FailingSource) Closed() int { return f.closed }

func (f *FailingSource) ReadSamples(dst []float32) (int, error) {
	if f.produced >= f.Frames {
		return 0, f.Err
	}

	frames := min(len(dst)/f.Chans, f.Frames-f.produced)
	clear(dst[:frames*f.Chans])
	f.produced += frames

	return frames * f.Chans, nil
}
