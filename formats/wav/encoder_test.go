// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/sonify/audio"
	"github.com/ik5/sonify/internal/audiotest"
)

// memFile is an in-memory io.WriteSeeker.
type memFile struct {
	data []byte
	pos  int64
}

func (m *memFile) Write(p []byte) (int, error) {
	if end := m.pos + int64(len(p)); end > int64(len(m.data)) {
		m.data = append(m.data, make([]byte, end-int64(len(m.data)))...)
	}
	copy(m.data[m.pos:], p)
	m.pos += int64(len(p))

	return len(p), nil
}

func (m *memFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		offset += m.pos
	case io.SeekEnd:
		offset += int64(len(m.data))
	}
	if offset < 0 {
		return 0, errors.New("negative position")
	}
	m.pos = offset

	return offset, nil
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(48000, 2, 4800, func(frame, ch int) float32 {
		return float32(math.Sin(2*math.Pi*440*float64(frame)/48000)) * []float32{0.9, -0.3}[ch]
	})

	var out memFile
	frames, err := Encode(&out, src, 2048)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if frames != 4800 {
		t.Errorf("Encode() = %d frames, want 4800", frames)
	}

	if got := len(out.data); got != 44+4800*4 {
		t.Fatalf("file is %d bytes, want %d", got, 44+4800*4)
	}
	if got := binary.LittleEndian.Uint32(out.data[40:44]); got != 4800*4 {
		t.Errorf("data chunk size = %d, want %d", got, 4800*4)
	}
	if got := binary.LittleEndian.Uint32(out.data[4:8]); got != 36+4800*4 {
		t.Errorf("RIFF size = %d, want %d", got, 36+4800*4)
	}

	dec := gowav.NewDecoder(bytes.NewReader(out.data))
	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer() error = %v", err)
	}
	if dec.NumChans != 2 || dec.SampleRate != 48000 || dec.BitDepth != 16 {
		t.Fatalf("header = %d ch, %d Hz, %d bit", dec.NumChans, dec.SampleRate, dec.BitDepth)
	}
	if len(pcm.Data) != 2*4800 {
		t.Fatalf("decoded %d samples, want %d", len(pcm.Data), 2*4800)
	}

	src.Reset()
	want := make([]float32, 2*4800)
	if _, err := audio.ReadFull(src, want); err != nil && err != io.EOF {
		t.Fatal(err)
	}
	for i, v := range pcm.Data {
		if diff := math.Abs(float64(v) - float64(want[i])*32767); diff > 1 {
			t.Fatalf("sample %d = %d, want %v ± 1", i, v, float64(want[i])*32767)
		}
	}
}

func TestEncode_ZeroFrames(t *testing.T) {
	t.Parallel()

	var out memFile
	frames, err := Encode(&out, audiotest.NewSilentSource(48000, 2, 0), 2048)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if frames != 0 {
		t.Errorf("Encode() = %d frames, want 0", frames)
	}

	if len(out.data) != 44 {
		t.Fatalf("file is %d bytes, want 44", len(out.data))
	}
	if string(out.data[0:4]) != "RIFF" || string(out.data[8:12]) != "WAVE" || string(out.data[36:40]) != "data" {
		t.Errorf("bad header % x", out.data)
	}
	if got := binary.LittleEndian.Uint32(out.data[40:44]); got != 0 {
		t.Errorf("data chunk size = %d, want 0", got)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(out.data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if n, err := src.ReadSamples(make([]float32, 8)); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = %d, %v; want 0, EOF", n, err)
	}
}

func TestEncode_Saturates(t *testing.T) {
	t.Parallel()

	src := audiotest.NewStereoSource(8000, 3, 1.5, -2)

	var out memFile
	if _, err := Encode(&out, src, 2); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		left := int16(binary.LittleEndian.Uint16(out.data[44+4*i:]))
		right := int16(binary.LittleEndian.Uint16(out.data[46+4*i:]))
		if left != 32767 || right != -32767 {
			t.Errorf("frame %d = (%d, %d), want (32767, -32767)", i, left, right)
		}
	}
}

func TestEncode_Truncates(t *testing.T) {
	t.Parallel()

	enc, err := NewEncoder(&memFile{}, 8000, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := enc.Write([]float32{0.5, -0.5, 1.0 / 32767 * 0.99}); err != nil {
		t.Fatal(err)
	}

	want := []int{16383, -16383, 0}
	for i, v := range enc.ints.Data {
		if v != want[i] {
			t.Errorf("sample %d = %d, want %d", i, v, want[i])
		}
	}
}

func TestEncode_SourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := &audiotest.FailingSource{Rate: 48000, Chans: 2, Frames: 100, Err: boom}

	if _, err := Encode(&memFile{}, src, 64); !errors.Is(err, boom) {
		t.Errorf("Encode() error = %v, want %v", err, boom)
	}
}

func TestEncode_InvalidChunk(t *testing.T) {
	t.Parallel()

	_, err := Encode(&memFile{}, audiotest.NewSilentSource(48000, 2, 10), 0)
	if !errors.Is(err, ErrUnsupportedWavLayout) {
		t.Errorf("Encode() error = %v, want ErrUnsupportedWavLayout", err)
	}
}

func TestEncoder_Misuse(t *testing.T) {
	t.Parallel()

	if _, err := NewEncoder(&memFile{}, 0, 2); !errors.Is(err, ErrUnsupportedWavLayout) {
		t.Errorf("NewEncoder(0 Hz) error = %v", err)
	}

	enc, err := NewEncoder(&memFile{}, 48000, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := enc.Write([]float32{0.1, 0.2, 0.3}); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("Write(odd) error = %v, want ErrInvalidDstSize", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := enc.Write([]float32{0, 0}); !errors.Is(err, ErrEncoderClosed) {
		t.Errorf("Write after Close error = %v, want ErrEncoderClosed", err)
	}
}

func BenchmarkEncode(b *testing.B) {
	b.ReportAllocs()

	for range b.N {
		src := audiotest.NewSineSource(48000, 2, 48000, 440)
		out := memFile{data: make([]byte, 0, 44+48000*4)}
		if _, err := Encode(&out, src, 2048); err != nil {
			b.Fatal(err)
		}
	}
}
