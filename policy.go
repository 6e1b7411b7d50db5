package rotate

// FileState holds the state of the current write destination file
type FileState struct {
	// OpenedAt Unix time
	OpenedAt int64
	// file size (when opened) + written bytes
	Size uint64
}

// PolicyFunc is a type of rotate policy function.
// It is consulted before each write, never after.
type PolicyFunc func(fileState FileState) bool

// NeedRotate reports whether need rotate
func (f PolicyFunc) NeedRotate(fileState FileState) bool {
	return f(fileState)
}

// SizeBasedPolicy returns size based rotate policy.
// The file is rotated once its size is strictly greater than size, so the
// file may grow past size by up to one write before it is rotated.
func SizeBasedPolicy(size uint64) PolicyFunc {
	return func(fileState FileState) bool {
		return fileState.Size > size
	}
}
