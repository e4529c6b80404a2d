// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"slices"
	"sync"
	"testing"

	"github.com/ik5/sonify/internal/audiotest"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}
	registry.Register("WAV", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}
	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}

	if _, ok := registry.Get("flac"); ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestRegistry_ForPath(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	mp3 := &mockDecoder{name: "mp3"}
	registry.Register("mp3", mp3)

	tests := []struct {
		path string
		ok   bool
	}{
		{"take.mp3", true},
		{"dir.d/Take.MP3", true},
		{"take.wav", false},
		{"noext", false},
	}

	for _, tt := range tests {
		got, ok := registry.ForPath(tt.path)
		if ok != tt.ok {
			t.Errorf("ForPath(%q) ok = %v, want %v", tt.path, ok, tt.ok)
		}
		if ok && got != mp3 {
			t.Errorf("ForPath(%q) returned wrong decoder", tt.path)
		}
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	for _, f := range []string{"ogg", "aiff", "wav", "mp3"} {
		registry.Register(f, &mockDecoder{name: f})
	}

	want := []string{"aiff", "mp3", "ogg", "wav"}
	if got := registry.Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "test"}

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Register("format", decoder)
		}()
		go func() {
			defer wg.Done()
			_, _ = registry.Get("format")
		}()
	}
	wg.Wait()

	if got, ok := registry.Get("format"); !ok || got != decoder {
		t.Error("Registry returned wrong decoder after concurrent operations")
	}
}

func TestReadFull_ShortReads(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 2, 100, 0.5)
	src.MaxRead = 7

	buf := make([]float32, 64)
	n, err := ReadFull(src, buf)
	if err != nil {
		t.Fatalf("ReadFull() error = %v", err)
	}
	if n != 64 {
		t.Errorf("ReadFull() n = %d, want 64", n)
	}

	// 100 frames = 200 samples, 64 consumed
	total := n
	for {
		n, err = ReadFull(src, buf)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadFull() error = %v", err)
		}
	}

	if total != 200 {
		t.Errorf("total = %d, want 200", total)
	}
}

func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	registry.Register("wav", &mockDecoder{name: "wav"})

	b.ReportAllocs()
	for range b.N {
		_, _ = registry.Get("wav")
	}
}
