package internal

import (
	"sync"

	"github.com/spf13/afero"
)

// OnceCloseFile is an afero.File whose Close closes the underlying file only once.
// Subsequent calls return nil.
type OnceCloseFile struct {
	once sync.Once
	afero.File
}

// NewOnceCloseFile wraps f
func NewOnceCloseFile(f afero.File) *OnceCloseFile {
	return &OnceCloseFile{File: f}
}

// Close closes the file once
func (ocf *OnceCloseFile) Close() error {
	var err error
	ocf.once.Do(func() {
		err = ocf.File.Close()
	})
	return err
}
