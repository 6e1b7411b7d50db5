// Package logger is the diagnostic output of rotatelog.
// Everything goes to stderr by default; the data stream itself is never logged.
package logger

import (
	"io"
	"log"
	"os"
)

var std = log.New(os.Stderr, "", 0)

// Default returns the package logger
func Default() *log.Logger {
	return std
}

// SetOutput sets the output destination of the package logger
func SetOutput(w io.Writer) {
	Default().SetOutput(w)
}

// SetPrefix sets the prefix of the package logger
func SetPrefix(prefix string) {
	Default().SetPrefix(prefix)
}

// Println calls Println of the package logger
func Println(v ...interface{}) {
	Default().Println(v...)
}
