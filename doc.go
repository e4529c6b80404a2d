// SPDX-License-Identifier: EPL-2.0

// Package sonify turns data into sound: per-datum oscillator voices are
// mixed into a fixed-length 16-bit stereo WAV file.
//
// # Pipeline
//
// A render pulls sample chunks through four stages:
//
//	synth.Oscillator -> voice.Voice -> audio.Mixer -> wav.Encoder
//
// The synth package holds the canonical configuration (48000 Hz, 16-bit,
// stereo), the waveform shapes, the pan law and the bump envelope. A
// voice.Voice is an immutable description of one sound; its Stream method
// yields interleaved stereo frames with the offset, envelope, amplitude and
// pan applied. The mixer sums any number of streams, saturates to [-1, 1]
// and pads or truncates to the requested length. The encoder in
// formats/wav writes PCM16 and publishes the file only once it is complete.
//
// # Quick start
//
//	cfg := synth.DefaultConfig()
//	a, _ := voice.New(cfg, voice.Blip(synth.Sine, 440, 0.25))
//	b, _ := voice.New(cfg, voice.Plop(synth.Square, 660, 0.25))
//	path, err := sonify.Write(".", "ping", 1, a, b)
//
// # Data mapped to voices
//
// Upstream mapping code usually produces one series per parameter.
// voice.Zip turns equal-length series into voices and reports a
// *voice.ParameterError before anything is generated when they differ:
//
//	voices, err := voice.Zip(cfg, voice.Blip(synth.Heart, 0, 0.1), voice.Series{
//		Frequency: []float64{220, 330, 440},
//		Offset:    []float64{0, 0.1, 0.2},
//	})
//
// # Sonifications
//
// A sonification.Sonification bundles voices with a duration and a name.
// Union merges two of them, FlipPhase inverts every voice and Difference
// combines both so identical material cancels. Render writes <name>.wav.
//
// # Tracks and scores
//
// Recorded material can be mixed in with voice.NewTrack; decoders for
// WAV, MP3, Ogg Vorbis and AIFF live under formats/. A score file in YAML
// describes a whole sonification, including layered sub-scores:
//
//	path, err := sonify.RenderScore("song.yaml")
//
// See the individual subpackages for more detailed documentation.
package sonify
