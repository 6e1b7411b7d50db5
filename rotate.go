package rotate

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/kei2100/rotatelog/logger"
)

// SplitPath splits path into its parent directory, its stem and its extension.
// ext has a leading dot, or is empty when the file name has no extension.
// A leading dot alone does not start an extension (".bashrc" has stem ".bashrc").
func SplitPath(path string) (dir, stem, ext string) {
	dir = filepath.Dir(path)
	base := filepath.Base(path)
	ext = filepath.Ext(base)
	stem = strings.TrimSuffix(base, ext)
	if stem == "" {
		stem, ext = base, ""
	}
	return dir, stem, ext
}

// BackupPath returns the path of the n-th backup of path.
//
//	e.g. BackupPath("/var/log/app.log", 2) == "/var/log/app.2.log"
func BackupPath(path string, n int) string {
	dir, stem, ext := SplitPath(path)
	return formatRotatedPath(dir, stem, ext, n)
}

func formatRotatedPath(dir, stem, ext string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("%s.%d%s", stem, n, ext))
}

// Rotate shifts the backups of path by one slot and moves path itself into slot 1.
// The backup in slot maxRotations is removed first. No handle on path may be open.
//
// Rotate is best effort: failures are reported to l and the remaining slots are
// still processed. A missing slot is skipped. If l is nil the package logger is used.
//
//	e.g. path "app.log", maxRotations 3
//	- app.3.log > remove | app.2.log > app.3.log | app.1.log > app.2.log | app.log > app.1.log
//	-                    | app.2.log > noop      | app.1.log > app.2.log | app.log > app.1.log
//	-                    |                       |                       | app.log > app.1.log
func Rotate(fs afero.Fs, path string, maxRotations int, l Logger) {
	if l == nil {
		l = logger.Default()
	}
	dir, stem, ext := SplitPath(path)
	for n := maxRotations; n > 0; n-- {
		to := formatRotatedPath(dir, stem, ext, n)
		if n == maxRotations && exists(fs, to) {
			if err := fs.Remove(to); err != nil {
				l.Printf("failed to remove %s: %v", to, err)
			}
		}

		from := path
		if n > 1 {
			from = formatRotatedPath(dir, stem, ext, n-1)
		}
		if !exists(fs, from) {
			continue
		}
		if err := fs.Rename(from, to); err != nil {
			l.Printf("failed to rotate %s to %s: %v", from, to, err)
		}
	}
}

func exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}
