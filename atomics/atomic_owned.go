// Package atomics provides single-cell atomic slots for holding pointers to
// heap-allocated payloads. Three flavors are exposed, distinguished by their
// mutation protocol rather than by payload type:
//
//   - AtomicOwned: freely replaceable, no fill-once restriction.
//   - FillOnceOwned: transitions at most once from empty to occupied.
//   - FillOnceShared: same contract as FillOnceOwned; kept as a separate
//     type to make "this slot is visible to more than one owner" legible
//     at the call site.
//
// All three are thin wrappers around atomic.Pointer[P]; Go's memory model
// guarantees sequential consistency for Load/Store/Swap/CompareAndSwap, so
// no additional fences are required here.
package atomics

import "sync/atomic"

// AtomicOwned is an atomic cell that may be replaced any number of times.
type AtomicOwned[P any] struct {
	ptr atomic.Pointer[P]
}

// NewAtomicOwned returns a slot initialized to p.
func NewAtomicOwned[P any](p *P) *AtomicOwned[P] {
	a := &AtomicOwned[P]{}
	a.ptr.Store(p)
	return a
}

// NewEmptyAtomicOwned returns a slot initialized to empty.
func NewEmptyAtomicOwned[P any]() *AtomicOwned[P] {
	return &AtomicOwned[P]{}
}

// Load returns the current payload, or nil if empty.
func (a *AtomicOwned[P]) Load() *P {
	return a.ptr.Load()
}

// Store unconditionally installs p.
func (a *AtomicOwned[P]) Store(p *P) {
	a.ptr.Store(p)
}

// Swap atomically installs p and returns the prior payload.
func (a *AtomicOwned[P]) Swap(p *P) *P {
	return a.ptr.Swap(p)
}

// Take atomically empties the slot and returns the prior payload.
func (a *AtomicOwned[P]) Take() *P {
	return a.ptr.Swap(nil)
}

// CompareAndSwap atomically replaces old with new if the slot currently
// holds old, reporting whether it did.
func (a *AtomicOwned[P]) CompareAndSwap(old, new *P) bool {
	return a.ptr.CompareAndSwap(old, new)
}

// DangerousLoad returns the raw pointer currently installed, with no
// ownership contract attached: the caller must not assume it remains
// installed past any concurrent Swap/Take/CompareAndSwap. List and
// Iterator do not call it (Append uses Load), and it must never be exposed
// through them.
func (a *AtomicOwned[P]) DangerousLoad() *P {
	return a.ptr.Load()
}
