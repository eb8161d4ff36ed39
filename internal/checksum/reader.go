package checksum

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/sync/semaphore"

	"github.com/JakeFAU/filecheck/internal/hash"
)

// initialBufferSize is the first allocation for a worker's read buffer.
const initialBufferSize = 1 << 20

// fileReader reads whole files into a buffer it owns. One fileReader belongs
// to exactly one worker; the buffer grows to the largest file seen and is
// never shrunk.
type fileReader struct {
	buf []byte
	// handles bounds open files across all workers. nil means unbounded.
	handles *semaphore.Weighted
}

func newFileReader(handles *semaphore.Weighted) *fileReader {
	return &fileReader{handles: handles}
}

// Canonicalize returns the absolute, symlink-free form of path.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("evaluate symlinks: %w", err)
	}
	return resolved, nil
}

// digest hashes the file at path and returns the digest and the number of
// bytes read. Errors are always *TaskError, except context errors raised
// while waiting for a handle slot.
func (r *fileReader) digest(ctx context.Context, path string, h hash.Hasher) ([]byte, int64, error) {
	canonical, err := Canonicalize(path)
	if err != nil {
		return nil, 0, newTaskError(KindPathResolution, path, err)
	}
	info, err := os.Stat(canonical)
	if err != nil {
		return nil, 0, newTaskError(KindPathResolution, path, fmt.Errorf("stat: %w", err))
	}
	if !info.Mode().IsRegular() {
		return nil, 0, newTaskError(KindOpen, path, fmt.Errorf("not a regular file: %s", info.Mode().Type()))
	}
	size := info.Size()
	if size > math.MaxInt {
		return nil, 0, newTaskError(KindRead, path, fmt.Errorf("file too large: %d bytes", size))
	}

	if r.handles != nil {
		if err := r.handles.Acquire(ctx, 1); err != nil {
			return nil, 0, fmt.Errorf("wait for file handle: %w", err)
		}
		defer r.handles.Release(1)
	}

	f, err := os.Open(canonical)
	if err != nil {
		return nil, 0, newTaskError(KindOpen, path, err)
	}
	defer f.Close() //nolint:errcheck // read-only handle, close failure is not actionable

	// Empty files digest to all zeros without invoking the hasher.
	if size == 0 {
		return make([]byte, h.Size()), 0, nil
	}

	data := r.grow(int(size))
	if _, err := readExact(f, data); err != nil {
		return nil, 0, newTaskError(KindRead, path, err)
	}
	return h.Sum(data), size, nil
}

// grow returns a size-length view of the reusable buffer, reallocating only
// when the current capacity is too small.
func (r *fileReader) grow(size int) []byte {
	if cap(r.buf) < size {
		r.buf = make([]byte, max(size, initialBufferSize))
	}
	return r.buf[:size]
}

// readExact fills buf from src. Each Read asks for exactly the bytes still
// missing; short reads resume at the new offset. Hitting EOF before buf is
// full is reported as io.ErrUnexpectedEOF.
func readExact(src io.Reader, buf []byte) (int, error) {
	n, err := io.ReadFull(src, buf)
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return n, fmt.Errorf("read %d of %d bytes: %w", n, len(buf), err)
	}
	return n, nil
}
