// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into audio sources.
//
// Parsing is done by github.com/go-audio/aiff. Only 16-bit PCM is accepted;
// samples are big endian on disk and come out as float32 in [-1, 1),
// interleaved, whole frames per read.
//
// go-audio needs an io.ReadSeeker. Other readers are buffered in memory
// before decoding, so prefer passing an *os.File.
//
//	f, _ := os.Open("loop.aiff")
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrOnlyPCM16bitSupported) {
//	    // 8, 24 or 32-bit file
//	}
//
// # Errors
//
//   - ErrNotAiffFile: not a FORM/AIFF container
//   - ErrOnlyPCM16bitSupported: any bit depth other than 16
//   - ErrUnsupportedAiffLayout: missing or empty COMM chunk
package aiff
