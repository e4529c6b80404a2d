// SPDX-License-Identifier: EPL-2.0

/*
Package score reads sonifications from YAML files.

	name: demo
	duration: 6
	invert: false
	voices:
	  - {shape: square, frequency: 440, amplitude: 0.3, offset: 0.5, balance: 0.2, duration: 1, envelope: true}
	  - {track: previous.wav, amplitude: 0.5, pan: left}
	series:
	  - {shape: sine, duration: 0.5, envelope: true, frequency: [220, 330], offset: [0, 0.5]}
	layers: [drone.yaml]

Times are in seconds. A voice without shape is a sine; frequency and
amplitude default to 432 Hz and 0.12. pan (left, center or right) overrides
balance. A series entry zips its lists into voices; all non-empty lists must
have the same length.

Tracks and layers are resolved relative to the score. Layers are loaded
recursively and united into the score; a score that reaches itself through
its layers fails with ErrLayerCycle. When duration is omitted it is the end
of the last bounded voice, and ErrMissingDuration is returned if any voice
is unbounded.

Unknown keys are rejected, as are unknown shapes and pan names, so typos
fail at load time instead of rendering the wrong thing.

	s, err := score.Load("demo.yaml", synth.DefaultConfig(), nil)
	if err != nil {
	    return err
	}
	_, err = s.Render()
*/
package score
