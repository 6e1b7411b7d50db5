package rotate

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/kei2100/rotatelog/internal"
	"github.com/kei2100/rotatelog/internal/state"
)

var (
	// ErrClosed is returned when the Writer is used after Close
	ErrClosed = errors.New("rotate: writer is closed")
	// ErrIsDirectory is returned by NewWriter when the path names a directory
	ErrIsDirectory = errors.New("rotate: path is a directory")
)

// NewWriter creates a *rotate.Writer appending to the file at path.
// An existing file is appended to and its size counts toward the rotate policy,
// otherwise the file is created.
func NewWriter(path string, opts ...OptionFunc) (*Writer, error) {
	var opt option
	opt.apply(opts...)

	f, size, err := openFile(opt.fs, path, opt.permission)
	if err != nil {
		return nil, err
	}
	return &Writer{
		f:     internal.NewOnceCloseFile(f),
		state: state.NewState(time.Now().Unix(), size),
		path:  path,
		opt:   opt,
	}, nil
}

func openFile(fs afero.Fs, path string, perm os.FileMode) (afero.File, uint64, error) {
	fi, err := fs.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, 0, fmt.Errorf("rotate: failed to get stat %s: %w", path, err)
		}
		f, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
		if err != nil {
			return nil, 0, fmt.Errorf("rotate: failed to create %s: %w", path, err)
		}
		return f, 0, nil
	}
	if fi.IsDir() {
		return nil, 0, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_APPEND, perm)
	if err != nil {
		return nil, 0, fmt.Errorf("rotate: failed to open %s: %w", path, err)
	}
	fi, err = f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("rotate: failed to get stat %s: %w", path, err)
	}
	return f, uint64(fi.Size()), nil
}

// Writer is a size gated file writer.
// Before each write it consults the rotate policy and, when it fires, rotates
// the file into numbered backups (or truncates it when max rotations is 0).
//
// Any I/O error on the live file is fatal: the Writer keeps returning it.
// Rotation warnings are reported to the Logger and never fail a write.
type Writer struct {
	mu    sync.Mutex
	f     *internal.OnceCloseFile
	state *state.State
	err   error

	path string
	opt  option
}

// Size returns the size of the live file
func (w *Writer) Size() uint64 {
	return w.state.Size()
}

// Write implements io.Writer
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.usable(); err != nil {
		return 0, err
	}
	if err := w.rotateIfNeeded(); err != nil {
		return 0, err
	}
	return w.write(p)
}

// ReadFrom implements io.ReaderFrom.
// It copies r into the live file one chunk at a time until r returns io.EOF,
// checking the rotate policy before every read. The live file is synced on io.EOF.
func (w *Writer) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, w.opt.chunkSize)
	var total int64
	var eof bool
	for {
		if err := w.lockedDo(w.rotateIfNeeded); err != nil {
			return total, err
		}
		if eof {
			return total, w.Sync()
		}

		n, rerr := r.Read(buf)
		if n > 0 {
			var wn int
			err := w.lockedDo(func() error {
				var err error
				wn, err = w.write(buf[:n])
				return err
			})
			total += int64(wn)
			if err != nil {
				return total, err
			}
		}
		if rerr == io.EOF {
			if n == 0 {
				return total, w.Sync()
			}
			eof = true
			continue
		}
		if rerr != nil {
			return total, fmt.Errorf("rotate: failed to read: %w", rerr)
		}
	}
}

// Sync commits the live file to stable storage
func (w *Writer) Sync() error {
	return w.lockedDo(func() error {
		if err := w.f.Sync(); err != nil {
			return w.fail(fmt.Errorf("rotate: failed to sync %s: %w", w.path, err))
		}
		return nil
	})
}

// Close syncs and closes the live file. Closing twice is a no-op.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state.IsClosed() {
		return nil
	}
	w.state.StoreAsClosed()

	var err error
	if w.err == nil {
		if serr := w.f.Sync(); serr != nil {
			err = fmt.Errorf("rotate: failed to sync %s: %w", w.path, serr)
		}
	}
	if cerr := w.f.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("rotate: failed to close %s: %w", w.path, cerr)
	}
	return err
}

// lockedDo runs fn under the lock once the writer is known to be usable
func (w *Writer) lockedDo(fn func() error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.usable(); err != nil {
		return err
	}
	return fn()
}

func (w *Writer) usable() error {
	if w.state.IsClosed() {
		return ErrClosed
	}
	return w.err
}

func (w *Writer) fail(err error) error {
	w.err = err
	return err
}

func (w *Writer) write(p []byte) (int, error) {
	n, err := w.f.Write(p)
	w.state.AddSize(uint64(n))
	if err != nil {
		return n, w.fail(fmt.Errorf("rotate: failed to write %s: %w", w.path, err))
	}
	return n, nil
}

func (w *Writer) rotateIfNeeded() error {
	if !w.opt.policy.NeedRotate(FileState{OpenedAt: w.state.OpenedAt(), Size: w.state.Size()}) {
		return nil
	}
	if err := w.f.Sync(); err != nil {
		return w.fail(fmt.Errorf("rotate: failed to sync %s: %w", w.path, err))
	}

	if w.opt.maxRotations > 0 {
		if err := w.f.Close(); err != nil {
			w.opt.logger.Printf("failed to close %s: %v", w.path, err)
			// not return
		}
		Rotate(w.opt.fs, w.path, w.opt.maxRotations, w.opt.logger)
		next, err := w.opt.fs.OpenFile(w.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, w.opt.permission)
		if err != nil {
			return w.fail(fmt.Errorf("rotate: failed to open %s after rotation: %w", w.path, err))
		}
		w.f = internal.NewOnceCloseFile(next)
	} else {
		if err := w.f.Truncate(0); err != nil {
			return w.fail(fmt.Errorf("rotate: failed to truncate %s: %w", w.path, err))
		}
		if _, err := w.f.Seek(0, io.SeekStart); err != nil {
			return w.fail(fmt.Errorf("rotate: failed to seek %s: %w", w.path, err))
		}
	}
	w.state.Reset(time.Now().Unix())
	return nil
}
