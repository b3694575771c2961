package atomics

import "sync/atomic"

// FillOnceOwned is an atomic cell that transitions at most once from empty
// to occupied. Once occupied, the payload never changes, so reading it back
// is always safe without further synchronization.
type FillOnceOwned[P any] struct {
	ptr atomic.Pointer[P]
}

// NewEmptyFillOnceOwned returns an empty slot.
func NewEmptyFillOnceOwned[P any]() *FillOnceOwned[P] {
	return &FillOnceOwned[P]{}
}

// NewFillOnceOwned returns a slot pre-filled with p.
func NewFillOnceOwned[P any](p *P) *FillOnceOwned[P] {
	f := &FillOnceOwned[P]{}
	f.ptr.Store(p)
	return f
}

// TryFill attempts to install p, succeeding only if the slot is still
// empty. On failure it returns the payload some other caller installed
// instead; p itself is discarded in that case.
func (f *FillOnceOwned[P]) TryFill(p *P) (*P, bool) {
	if f.ptr.CompareAndSwap(nil, p) {
		return p, true
	}
	return f.ptr.Load(), false
}

// Get returns the payload and true if the slot is occupied, or nil and
// false if it is still empty.
func (f *FillOnceOwned[P]) Get() (*P, bool) {
	p := f.ptr.Load()
	return p, p != nil
}
