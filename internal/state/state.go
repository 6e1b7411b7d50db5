package state

import (
	"sync/atomic"
)

const (
	stateOpen = iota
	stateClosed
)

// State of the live file written by rotate.Writer
type State struct {
	// openedAt Unix time
	openedAt int64
	// file size (when opened) + written bytes
	size  uint64
	state uint32
}

// NewState creates a State
func NewState(openedAt int64, size uint64) *State {
	return &State{openedAt: openedAt, size: size}
}

// OpenedAt returns openedAt
func (s *State) OpenedAt() int64 {
	return atomic.LoadInt64(&s.openedAt)
}

// Size returns `file size (when opened) + written bytes`
func (s *State) Size() uint64 {
	return atomic.LoadUint64(&s.size)
}

// AddSize atomically
func (s *State) AddSize(value uint64) {
	atomic.AddUint64(&s.size, value)
}

// Reset is called when the live file is recreated or truncated.
// The size goes back to zero and openedAt moves to the given time.
func (s *State) Reset(openedAt int64) {
	atomic.StoreInt64(&s.openedAt, openedAt)
	atomic.StoreUint64(&s.size, 0)
}

// StoreAsClosed set state to closed atomically
func (s *State) StoreAsClosed() {
	atomic.StoreUint32(&s.state, stateClosed)
}

// IsClosed reports whether the state is closed
func (s *State) IsClosed() bool {
	return atomic.LoadUint32(&s.state) == stateClosed
}
