// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/sonify/audio"
)

// EncodeFile renders src into the WAV file at path. The data goes to a
// temporary file in the same directory, which replaces path only once the
// header has been finalized; on any failure path is left untouched and the
// temporary file is removed.
func EncodeFile(path string, src audio.Source, chunkFrames int) (frames int, err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", path, err)
	}
	tmp := f.Name()

	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	out := newBufferedFile(f)
	frames, err = Encode(out, src, chunkFrames)
	if err != nil {
		return frames, err
	}

	if err = out.Flush(); err != nil {
		return frames, fmt.Errorf("writing %s: %w", path, err)
	}
	if err = f.Sync(); err != nil {
		return frames, fmt.Errorf("syncing %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return frames, fmt.Errorf("closing %s: %w", path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return frames, fmt.Errorf("publishing %s: %w", path, err)
	}

	return frames, nil
}

// bufferedFile batches the encoder's per-sample writes. Pending bytes are
// flushed before every seek.
type bufferedFile struct {
	f *os.File
	w *bufio.Writer
}

func newBufferedFile(f *os.File) *bufferedFile {
	return &bufferedFile{f: f, w: bufio.NewWriterSize(f, 64*1024)}
}

func (b *bufferedFile) Write(p []byte) (int, error) { return b.w.Write(p) }

func (b *bufferedFile) Seek(offset int64, whence int) (int64, error) {
	if err := b.w.Flush(); err != nil {
		return 0, err
	}

	return b.f.Seek(offset, whence)
}

func (b *bufferedFile) Flush() error { return b.w.Flush() }

var _ io.WriteSeeker = (*bufferedFile)(nil)
