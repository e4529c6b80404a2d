// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives the renderer is built on.
//
// This package contains:
//   - Source, the pull interface every pipeline stage implements
//   - Mixer, which sums stereo sources with saturation
//   - Resampler for sample rate conversion
//   - MonoMixer for folding channels
//   - Registry for looking up decoders by format
//
// # Source Interface
//
// A Source hands out interleaved float32 samples in [-1, 1] on demand:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Nothing is computed ahead of a read, so a chain of sources holds at most a
// buffer's worth of samples per stage.
//
// # Mixing
//
// The Mixer combines stereo sources, clipping the sum per sample:
//
//	mix, err := audio.NewMixer(48000, 48000*5, voices...)
//	buf := make([]float32, 4096)
//	n, err := mix.ReadSamples(buf)
//
// The second argument bounds the mix in frames; audio.NoLimit lets it run
// until the longest source ends. Saturation is lossy by design: loud,
// overlapping sources distort instead of being attenuated.
//
// # Resampling and Channel Folding
//
// File-backed material is brought to the render rate and folded to mono:
//
//	mono := audio.NewMonoMixer(audio.NewResampler(decoded, 48000))
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.ForPath("take.wav")
//
// # Error Handling
//
// Sources return io.EOF when no more data is available, possibly together
// with the last samples:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // process n samples from buf
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
