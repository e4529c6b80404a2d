// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer folds a multi-channel source to mono by averaging the channels
// of every frame. Mono sources pass through untouched.
type MonoMixer struct {
	src      Source
	channels int
	gain     float32
	frame    []float32
}

// NewMonoMixer wraps src. Its channel count is read once.
func NewMonoMixer(src Source) *MonoMixer {
	channels := max(src.Channels(), 1)

	return &MonoMixer{
		src:      src,
		channels: channels,
		gain:     1 / float32(channels),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("closing mono source: %w", err)
	}

	return nil
}

// ReadSamples fills dst with one sample per source frame. Source reads are
// gathered until whole frames are available, so a short read never splits
// a frame.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if m.channels == 1 {
		return m.src.ReadSamples(dst)
	}

	need := len(dst) * m.channels
	if cap(m.frame) < need {
		m.frame = make([]float32, need)
	}
	buf := m.frame[:need]

	n, err := ReadFull(m.src, buf)
	frames := n / m.channels

	for f := range frames {
		var sum float32
		for _, v := range buf[f*m.channels : (f+1)*m.channels] {
			sum += v
		}
		dst[f] = sum * m.gain
	}

	return frames, err
}
