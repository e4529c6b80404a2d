// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes 16-bit linear PCM WAV files.
//
// Both directions are built on github.com/go-audio/wav.
//
// # Encoding
//
// Encode drains an audio.Source into any io.WriteSeeker, a fixed number
// of frames at a time, so memory stays bounded by one chunk whatever the
// length of the stream:
//
//	frames, err := wav.Encode(w, src, 2048)
//
// Samples are clamped to [-1, 1] and scaled by 32767 with truncation toward
// zero. The RIFF header is written before the first chunk with provisional
// sizes and patched with the real frame count when the stream ends, so a
// stream of zero frames still produces a valid 44-byte file.
//
// EncodeFile does the same into a file. The data is written to a temporary
// file next to the target and renamed over it only after the header was
// finalized: readers never see a half-written file, and a failed render
// leaves whatever was at the path before.
//
//	if _, err := wav.EncodeFile("out.wav", src, 2048); err != nil {
//	    return err
//	}
//
// For finer control, NewEncoder returns an Encoder that accepts interleaved
// float samples through Write; Close finalizes the header.
//
// # Decoding
//
// Decoder implements audio.Decoder for PCM 16-bit files of any sample rate
// and channel count:
//
//	source, err := wav.Decoder{}.Decode(file)
//
// go-audio needs to seek, so inputs that are not an io.ReadSeeker are read
// into memory first. Samples come out as float32 in [-1, 1).
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrOnlyPCM16bitSupported: compressed, float or non 16-bit data
//   - ErrUnsupportedWavLayout: unusable header or encoder settings
//   - ErrEncoderClosed: Write after Close
package wav
