package file

import (
	"os"

	"github.com/spf13/afero"
)

// Fs is the operating system filesystem.
// Files are opened through OpenFile, everything else is delegated to afero.OsFs.
type Fs struct {
	afero.OsFs
}

// NewFs creates a Fs
func NewFs() afero.Fs {
	return &Fs{}
}

// Name returns the name of this filesystem
func (fs *Fs) Name() string {
	return "rotatelog.Fs"
}

// Create creates or truncates the named file
func (fs *Fs) Create(name string) (afero.File, error) {
	return fs.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0666)
}

// Open opens the named file for reading
func (fs *Fs) Open(name string) (afero.File, error) {
	return fs.OpenFile(name, os.O_RDONLY, 0)
}

// OpenFile opens the named file
func (fs *Fs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	f, err := OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return f, nil
}
