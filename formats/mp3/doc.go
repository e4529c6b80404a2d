// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files into audio sources.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always produces
// interleaved stereo 16-bit PCM at the sample rate of the file. The source
// converts it to float32 in [-1, 1) and only ever returns whole frames.
//
//	f, _ := os.Open("take.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//
// As a voice track the stream is resampled to the frame rate of the render
// and folded to mono:
//
//	registry.Register("mp3", mp3.Decoder{})
//	open, _ := voice.FileOpener(registry, "take.mp3")
//	under, _ := voice.NewTrack(cfg, open, voice.Params{Amplitude: 0.4})
//
// Encoding is not supported.
package mp3
