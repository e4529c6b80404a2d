// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/sonify/audio"
	"github.com/ik5/sonify/utils"
)

// BitDepth is the only sample resolution the encoder writes.
const BitDepth = 16

// Encoder writes float samples as a 16-bit linear PCM WAV stream. The RIFF
// header goes out with the first write (or at Close when nothing was
// written) and its sizes are patched on Close, which is why it needs a
// seekable destination.
type Encoder struct {
	enc      *gowav.Encoder
	channels int
	frames   int
	ints     *goaudio.IntBuffer
	started  bool
	closed   bool
}

// NewEncoder prepares an encoder writing sampleRate Hz audio with the given
// number of interleaved channels to w.
func NewEncoder(w io.WriteSeeker, sampleRate, channels int) (*Encoder, error) {
	if sampleRate <= 0 || channels <= 0 {
		return nil, fmt.Errorf("%w: %d Hz, %d channels", ErrUnsupportedWavLayout, sampleRate, channels)
	}

	return &Encoder{
		enc:      gowav.NewEncoder(w, sampleRate, BitDepth, channels, pcmFormat),
		channels: channels,
		ints: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: BitDepth,
		},
	}, nil
}

// Frames is the number of frames written so far.
func (e *Encoder) Frames() int { return e.frames }

// Write encodes interleaved samples. Every sample is clamped to [-1, 1]
// and scaled by 32767, truncating toward zero.
func (e *Encoder) Write(samples []float32) error {
	if e.closed {
		return ErrEncoderClosed
	}
	if len(samples)%e.channels != 0 {
		return audio.ErrInvalidDstSize
	}

	if cap(e.ints.Data) < len(samples) {
		e.ints.Data = make([]int, len(samples))
	}
	e.ints.Data = e.ints.Data[:len(samples)]

	for i, s := range samples {
		e.ints.Data[i] = int(utils.Float32ToInt16(s))
	}

	// go-audio emits the header on the first Write, empty or not
	if err := e.enc.Write(e.ints); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}
	e.started = true
	e.frames += len(samples) / e.channels

	return nil
}

// Close finalizes the header with the true sizes. It does not close the
// underlying writer.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	if !e.started {
		if err := e.Write(nil); err != nil {
			return err
		}
	}
	e.closed = true

	if err := e.enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav header: %w", err)
	}

	return nil
}

// Encode drains src into w, pulling chunkFrames frames at a time, and
// finalizes the file. It returns the number of frames written. src is not
// closed.
func Encode(w io.WriteSeeker, src audio.Source, chunkFrames int) (int, error) {
	if chunkFrames <= 0 {
		return 0, fmt.Errorf("%w: chunk of %d frames", ErrUnsupportedWavLayout, chunkFrames)
	}

	enc, err := NewEncoder(w, src.SampleRate(), src.Channels())
	if err != nil {
		return 0, err
	}

	buf := make([]float32, chunkFrames*src.Channels())
	for {
		n, err := audio.ReadFull(src, buf)
		if n > 0 {
			if werr := enc.Write(buf[:n]); werr != nil {
				return enc.Frames(), werr
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return enc.Frames(), fmt.Errorf("encoding: %w", err)
		}
		if n == 0 {
			return enc.Frames(), fmt.Errorf("encoding: %w", io.ErrNoProgress)
		}
	}

	if err := enc.Close(); err != nil {
		return enc.Frames(), err
	}

	return enc.Frames(), nil
}
