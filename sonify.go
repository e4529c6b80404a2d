// SPDX-License-Identifier: EPL-2.0

package sonify

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/ik5/sonify/audio"
	"github.com/ik5/sonify/score"
	"github.com/ik5/sonify/sonification"
	"github.com/ik5/sonify/synth"
	"github.com/ik5/sonify/utils"
	"github.com/ik5/sonify/voice"
)

// Write renders voices for duration seconds into dir/<name>.wav and
// returns the path of the file.
func Write(dir, name string, duration float64, voices ...voice.Voice) (string, error) {
	s, err := sonification.New(name, duration, voices...)
	if err != nil {
		return "", err
	}

	return s.Render(sonification.WithDir(dir))
}

// RenderScore loads the score at path with the default configuration and
// decoders and renders it next to the score file. Options given override
// the destination.
func RenderScore(path string, opts ...sonification.Option) (string, error) {
	s, err := score.Load(path, synth.DefaultConfig(), score.DefaultRegistry())
	if err != nil {
		return "", err
	}

	opts = append([]sonification.Option{sonification.WithDir(filepath.Dir(path))}, opts...)

	return s.Render(opts...)
}

// PCM16 drains src into interleaved 16-bit samples. bufferSize is the read
// chunk in samples and defaults to 4096 when not positive. src is closed.
func PCM16(src audio.Source, bufferSize int) (samples []int16, err error) {
	if bufferSize <= 0 {
		bufferSize = 4096
	}

	ch := src.Channels()
	if ch <= 0 {
		return nil, audio.ErrFormatMismatch
	}
	bufferSize -= bufferSize % ch
	if bufferSize == 0 {
		bufferSize = ch
	}

	defer func() {
		if cerr := src.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	pcm16 := make([]int16, 0, bufferSize)
	buf := make([]float32, bufferSize)

	for {
		n, rerr := src.ReadSamples(buf)
		for _, x := range buf[:n] {
			pcm16 = append(pcm16, utils.Float32ToInt16(x))
		}

		if rerr == io.EOF {
			break
		}

		if rerr != nil {
			return nil, fmt.Errorf("reading samples: %w", rerr)
		}
		if n == 0 {
			return nil, fmt.Errorf("reading samples: %w", io.ErrNoProgress)
		}
	}

	return pcm16, nil
}
