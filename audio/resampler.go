// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/sonify/utils"
)

// Resampler streams src at a different sample rate using Catmull-Rom
// interpolation. Works on interleaved samples; preserves channel count.
// When downsampling, incoming frames pass a one-pole low-pass first.
//
// Output positions are computed from integer frame counters, so the number
// of frames produced is exactly ceil(inputFrames * dstRate / srcRate).
type Resampler struct {
	src      Source
	srcRate  int64
	dstRate  int64
	channels int

	// window[1] is the source frame at cursor; window[0] the one before it,
	// window[2] and window[3] the two after it.
	window [4][]float32
	// real source frames held in window[1:]; edges are duplicated
	ahead  int
	cursor int64
	out    int64

	in     []float32
	primed bool
	eof    bool
	done   bool

	smooth  bool
	alpha   float32
	lowpass []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	r := &Resampler{
		src:      src,
		srcRate:  int64(src.SampleRate()),
		dstRate:  int64(dstRate),
		channels: channels,
		in:       make([]float32, channels),
		smooth:   src.SampleRate() > dstRate,
		alpha:    0.5,
		lowpass:  make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// next pulls one source frame into frame. It reports false once the
// source is exhausted.
func (r *Resampler) next(frame []float32) (bool, error) {
	if r.eof {
		return false, nil
	}

	n, err := ReadFull(r.src, r.in)
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("%w", err)
	}
	if err == io.EOF || n < r.channels {
		r.eof = true
	}
	if n < r.channels {
		return false, nil
	}

	copy(frame, r.in)
	if r.smooth {
		for c := range r.channels {
			frame[c] = r.alpha*frame[c] + (1-r.alpha)*r.lowpass[c]
			r.lowpass[c] = frame[c]
		}
	}

	return true, nil
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.next(r.window[1])
	if err != nil || !ok {
		return err
	}
	r.ahead = 1
	if r.smooth {
		// start the filter from the first frame to avoid a warm-up ramp
		copy(r.lowpass, r.in)
		copy(r.window[1], r.in)
	}
	copy(r.window[0], r.window[1])

	for i := 2; i < 4; i++ {
		ok, err := r.next(r.window[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.window[i], r.window[i-1])
			continue
		}
		r.ahead++
	}

	return nil
}

// advance slides the window one source frame forward.
func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:], r.window[1:])
	r.window[3] = first
	r.cursor++
	r.ahead--

	ok, err := r.next(r.window[3])
	if err != nil {
		return err
	}
	if ok {
		r.ahead++
	} else {
		copy(r.window[3], r.window[2])
	}

	return nil
}

// ReadSamples produces dst samples at the destination rate.
// dst length should be a multiple of r.channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.done {
		return 0, io.EOF
	}
	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		pos := r.out * r.srcRate
		whole := pos / r.dstRate

		for r.cursor < whole && r.ahead > 0 {
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}
		if r.ahead == 0 {
			r.done = true
			break
		}

		x := float32(pos%r.dstRate) / float32(r.dstRate)
		base := written * r.channels
		for c := range r.channels {
			dst[base+c] = utils.CubicInterpolate(
				r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}

		written++
		r.out++
	}

	if r.done {
		return written * r.channels, io.EOF
	}

	return written * r.channels, nil
}
