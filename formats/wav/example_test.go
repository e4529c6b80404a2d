// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/sonify/formats/wav"
	"github.com/ik5/sonify/internal/audiotest"
)

// ExampleEncodeFile renders a stream to disk and reads it back.
func ExampleEncodeFile() {
	dir, err := os.MkdirTemp("", "wav-example")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "tone.wav")
	src := audiotest.NewSineSource(48000, 2, 24000, 440)

	frames, err := wav.EncodeFile(path, src, 2048)
	if err != nil {
		fmt.Println("encode:", err)
		return
	}

	info, _ := os.Stat(path)
	fmt.Printf("%d frames, %d bytes\n", frames, info.Size())

	f, err := os.Open(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	decoded, err := wav.Decoder{}.Decode(f)
	if err != nil {
		fmt.Println("decode:", err)
		return
	}
	fmt.Printf("%d Hz, %d channels\n", decoded.SampleRate(), decoded.Channels())
	// Output:
	// 24000 frames, 96044 bytes
	// 48000 Hz, 2 channels
}
