package rotate

import (
	"os"

	"github.com/spf13/afero"

	"github.com/kei2100/rotatelog/internal/file"
	"github.com/kei2100/rotatelog/logger"
)

// Logger receives the warnings reported while rotating
type Logger interface {
	Printf(format string, v ...interface{})
}

type option struct {
	permission   os.FileMode
	maxRotations int
	chunkSize    int
	policy       PolicyFunc
	fs           afero.Fs
	logger       Logger
}

// OptionFunc let you change rotate.Writer behavior.
type OptionFunc func(o *option)

// Default values
const (
	DefaultPermission   = 0644
	DefaultMaxRotations = 5
	DefaultMaxSize      = 1024 * 1024 * 5
	DefaultChunkSize    = 1024 * 8
)

func (o *option) apply(opts ...OptionFunc) {
	o.permission = DefaultPermission
	o.maxRotations = DefaultMaxRotations
	o.chunkSize = DefaultChunkSize
	o.policy = SizeBasedPolicy(DefaultMaxSize)
	o.fs = file.NewFs()
	o.logger = logger.Default()
	for _, fn := range opts {
		fn(o)
	}
	if o.maxRotations < 0 {
		o.maxRotations = 0
	}
	if o.chunkSize <= 0 {
		o.chunkSize = DefaultChunkSize
	}
	if o.policy == nil {
		o.policy = SizeBasedPolicy(DefaultMaxSize)
	}
	if o.fs == nil {
		o.fs = file.NewFs()
	}
	if o.logger == nil {
		o.logger = logger.Default()
	}
}

// WithPermission sets the permission of newly created files
func WithPermission(v os.FileMode) OptionFunc {
	return func(o *option) {
		o.permission = v
	}
}

// WithMaxRotations sets the number of backups to keep.
// 0 disables rotation, the file is truncated in place instead.
func WithMaxRotations(v int) OptionFunc {
	return func(o *option) {
		o.maxRotations = v
	}
}

// WithMaxSize is a shorthand for WithPolicy(SizeBasedPolicy(v))
func WithMaxSize(v uint64) OptionFunc {
	return WithPolicy(SizeBasedPolicy(v))
}

// WithPolicy sets the rotate policy
func WithPolicy(f PolicyFunc) OptionFunc {
	return func(o *option) {
		o.policy = f
	}
}

// WithChunkSize sets the buffer size used by Writer.ReadFrom
func WithChunkSize(v int) OptionFunc {
	return func(o *option) {
		o.chunkSize = v
	}
}

// WithFs sets the filesystem on which the file and its backups live
func WithFs(fs afero.Fs) OptionFunc {
	return func(o *option) {
		o.fs = fs
	}
}

// WithLogger sets the destination of rotation warnings
func WithLogger(l Logger) OptionFunc {
	return func(o *option) {
		o.logger = l
	}
}
