// SPDX-License-Identifier: EPL-2.0

/*
Package voice builds the individual sound events of a sonification.

A Voice is an immutable description: waveform shape and frequency (or a
decoded track), amplitude, pan gains, a start offset, an optional duration
and an optional transient envelope. Nothing is generated until Stream is
called; each call returns a new stereo audio.Source that starts from the
first sample, so the same voice can be rendered any number of times.

# Building voices

	cfg := synth.DefaultConfig()

	v, err := voice.New(cfg, voice.Plop(synth.Square, 440, 0.25))
	if err != nil {
		return err
	}

	left := v.Placed(synth.HardLeft)
	cancel := v.Inverted()

Wave, Blip and Plop return Params for an unbounded voice, a voice cut off
after a duration, and a bounded voice shaped by synth.Bump. Amplitudes
outside [-1, 1] are clamped without error.

# Streams

A voice stream is assembled from small mono stages:

	tone | track -> bounded -> enveloped -> stereo

The stereo stage emits the offset as silence first, then the mono signal
multiplied by the amplitude and the left and right gains. The oscillator
index starts at zero after the offset. Unbounded streams never end; the
mixer bounds them.

# Tracks

NewTrack plays a decoded file as a voice. The decoded stream is resampled
to the frame rate when needed and folded to mono, after which amplitude,
pan, offset, duration and envelope apply as usual:

	open, err := voice.FileOpener(registry, "previous.wav")
	if err != nil {
		return err
	}
	under, err := voice.NewTrack(cfg, open, voice.Params{Amplitude: 0.5})

# Parameter series

Zip turns parallel series of frequencies, offsets, balances and amplitudes
into voices. All non-empty series must have the same length; otherwise a
*ParameterError wrapping ErrParameterLength is returned before any voice is
built.
*/
package voice
