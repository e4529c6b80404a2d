// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files into audio sources.
//
// It wraps github.com/jfreymuth/oggvorbis. Vorbis decodes to float32
// natively, so samples pass through without conversion, interleaved, at
// the channel count and sample rate of the stream. One ReadSamples call
// may span several Vorbis packets and always returns whole frames.
//
//	f, _ := os.Open("field.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//
// Register it under "ogg" to use Ogg files as voice tracks.
package vorbis
