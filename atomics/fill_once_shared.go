package atomics

import "sync/atomic"

// FillOnceShared has the exact same fill-once contract as FillOnceOwned. It
// is kept as a distinct type, rather than folded into FillOnceOwned,
// purely so a declaration like node.next FillOnceShared[node[T]] documents
// at the call site that the slot's payload is expected to be aliased by
// more than one owner (the list's tail pointer and any number of
// iterators) for the rest of its life. In Go both are backed by the same
// atomic.Pointer[P] and rely on the garbage collector, not reference
// counting, to keep a shared payload alive for as long as any holder
// references it.
type FillOnceShared[P any] struct {
	ptr atomic.Pointer[P]
}

// NewEmptyFillOnceShared returns an empty slot.
func NewEmptyFillOnceShared[P any]() *FillOnceShared[P] {
	return &FillOnceShared[P]{}
}

// NewFillOnceShared returns a slot pre-filled with p.
func NewFillOnceShared[P any](p *P) *FillOnceShared[P] {
	f := &FillOnceShared[P]{}
	f.ptr.Store(p)
	return f
}

// TryFill attempts to install p, succeeding only if the slot is still
// empty. On failure it returns the payload some other caller installed.
func (f *FillOnceShared[P]) TryFill(p *P) (*P, bool) {
	if f.ptr.CompareAndSwap(nil, p) {
		return p, true
	}
	return f.ptr.Load(), false
}

// Get returns the payload and true if the slot is occupied, or nil and
// false if it is still empty.
func (f *FillOnceShared[P]) Get() (*P, bool) {
	p := f.ptr.Load()
	return p, p != nil
}
