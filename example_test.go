// SPDX-License-Identifier: EPL-2.0

package sonify_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/sonify"
	"github.com/ik5/sonify/synth"
	"github.com/ik5/sonify/voice"
)

func ExampleWrite() {
	dir, err := os.MkdirTemp("", "sonify")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	cfg := synth.DefaultConfig()
	root, _ := voice.New(cfg, voice.Blip(synth.Sine, 261.63, 1))
	fifth, _ := voice.New(cfg, voice.Blip(synth.Sine, 392, 1))

	path, err := sonify.Write(dir, "fifth", 1, root, fifth)
	if err != nil {
		panic(err)
	}

	info, _ := os.Stat(path)
	fmt.Println(filepath.Base(path), info.Size())
	// Output: fifth.wav 192044
}

func ExampleRenderScore() {
	dir, err := os.MkdirTemp("", "sonify")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	score := filepath.Join(dir, "pulse.yaml")
	body := "duration: 0.5\nseries:\n  - {shape: square, duration: 0.1, frequency: [220, 440], offset: [0, 0.25]}\n"
	if err := os.WriteFile(score, []byte(body), 0o644); err != nil {
		panic(err)
	}

	path, err := sonify.RenderScore(score)
	if err != nil {
		panic(err)
	}

	fmt.Println(filepath.Base(path))
	// Output: pulse.wav
}
