// SPDX-License-Identifier: EPL-2.0

/*
Package sonification bundles voices into a named, fixed-length piece and
renders it to a WAV file.

	cfg := synth.DefaultConfig()

	voices, err := voice.Zip(cfg, voice.Plop(synth.Sine, 432, 0.5), voice.Series{
	    Frequency: []float64{220, 330, 440},
	    Offset:    []float64{0, 0.5, 1},
	})
	if err != nil {
	    return err
	}

	s, err := sonification.New("demo", 2, voices...)
	if err != nil {
	    return err
	}

	path, err := s.Render() // demo.wav

# Algebra

Union plays two sonifications together: voices are concatenated, the
duration is the longer of the two and the name is that of the receiver.
FlipPhase inverts every voice, and Difference(a, b, name) is a united with
b flipped, which renders a sonification against itself as silence.

# Rendering

Render builds a fresh stream for every voice, so a Sonification can be
rendered any number of times. The streams are summed by an audio.Mixer
limited to the duration, which bounds unbounded voices and pads with
silence when every voice ended early. Mixed samples are saturated to
[-1, 1], never normalized.

The output goes to a temporary file beside the destination and is renamed
into place once the header has been finalized; a failed render leaves no
file behind. RenderTo encodes into any io.WriteSeeker instead.

Progress is reported at debug level to the logger passed with WithLogger;
without one renders are silent.
*/
package sonification
