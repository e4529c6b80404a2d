// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/ik5/sonify/utils"
)

// NoLimit makes a Mixer run until its longest source ends.
const NoLimit = -1

const mixerChannels = 2

// Mixer sums any number of stereo sources into one stereo stream and
// saturates every sample to [-1, 1]. Overlapping loud sources clip; the mix
// is never rescaled.
//
// Sources are pulled in step, one read at a time, so memory is bounded by
// the size of the caller's buffer no matter how long the mix runs. A source
// that ends contributes silence from then on and is closed and dropped.
type Mixer struct {
	rate    int
	sources []Source
	limit   int
	emitted int

	scratch []float32
	acc     []float64
	done    bool
}

// NewMixer creates a Mixer of sources at rate Hz that ends after
// limitFrames frames, or with its longest source when limitFrames is
// NoLimit. With a limit the mix is padded with silence up to it.
// Every source must be stereo at rate.
func NewMixer(rate int, limitFrames int, sources ...Source) (*Mixer, error) {
	for i, src := range sources {
		if src.Channels() != mixerChannels || src.SampleRate() != rate {
			return nil, fmt.Errorf("%w: source %d is %d ch at %d Hz, mixer is %d ch at %d Hz",
				ErrFormatMismatch, i, src.Channels(), src.SampleRate(), mixerChannels, rate)
		}
	}

	if limitFrames < 0 {
		limitFrames = NoLimit
	}

	return &Mixer{
		rate:    rate,
		sources: slices.Clone(sources),
		limit:   limitFrames,
	}, nil
}

func (m *Mixer) SampleRate() int { return m.rate }
func (m *Mixer) Channels() int   { return mixerChannels }
func (m *Mixer) BufSize() int    { return 4096 }

// Active returns the number of sources that have not ended yet.
func (m *Mixer) Active() int { return len(m.sources) }

// Close closes the sources that are still active.
func (m *Mixer) Close() error {
	var errs []error
	for _, src := range m.sources {
		if err := src.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	m.sources = nil

	return errors.Join(errs...)
}

func (m *Mixer) ReadSamples(dst []float32) (int, error) {
	if len(dst)%mixerChannels != 0 {
		return 0, ErrInvalidDstSize
	}
	if m.done {
		return 0, io.EOF
	}

	frames := len(dst) / mixerChannels
	if m.limit != NoLimit {
		frames = min(frames, m.limit-m.emitted)
	}
	if frames == 0 || (m.limit == NoLimit && len(m.sources) == 0) {
		m.done = true
		return 0, io.EOF
	}

	n := frames * mixerChannels
	m.grow(n)
	acc := m.acc[:n]
	clear(acc)

	produced := 0
	live := m.sources[:0]
	var errs []error
	for _, src := range m.sources {
		got, err := ReadFull(src, m.scratch[:n])
		for i, v := range m.scratch[:got] {
			acc[i] += float64(v)
		}
		produced = max(produced, got)

		switch {
		case err == io.EOF:
			// ended sources leave the mix even when closing them fails
			if cerr := src.Close(); cerr != nil {
				errs = append(errs, fmt.Errorf("closing mixed source: %w", cerr))
			}
		case err != nil:
			errs = append(errs, fmt.Errorf("mixing: %w", err))
			live = append(live, src)
		default:
			live = append(live, src)
		}
	}
	clear(m.sources[len(live):])
	m.sources = live

	if err := errors.Join(errs...); err != nil {
		return 0, err
	}

	if m.limit == NoLimit {
		// unbounded mixes end with their longest source
		n = produced - produced%mixerChannels
	} else {
		m.emitted += frames
	}

	for i, v := range acc[:n] {
		dst[i] = float32(utils.Clamp(v))
	}

	if (m.limit != NoLimit && m.emitted >= m.limit) || (m.limit == NoLimit && len(m.sources) == 0) {
		m.done = true
		return n, io.EOF
	}

	return n, nil
}

func (m *Mixer) grow(n int) {
	if cap(m.scratch) < n {
		m.scratch = make([]float32, n)
		m.acc = make([]float64, n)
	}
	m.scratch = m.scratch[:n]
	m.acc = m.acc[:n]
}
