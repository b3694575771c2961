// Package ffi implements the opaque-handle bookkeeping behind snaplist's
// foreign-function boundary: a handle table over runtime/cgo.Handle, plus
// the status codes a non-Go caller sees in place of a Go error value.
//
// This package holds no //export directives itself — cgo only processes
// those in package main — and is imported by cmd/snaplistffi, the thin
// package-main shim that actually exports the C ABI. Keeping the logic
// here means it is unit-testable with ordinary `go test`, unlike code that
// only exists behind a cgo export.
//
// Only the current, neutral generation of this surface is implemented
// here; an earlier, differently-named generation existed upstream and is
// deliberately not carried forward.
package ffi

import (
	"runtime"
	"runtime/cgo"
	"unsafe"

	"github.com/google/uuid"
	"github.com/johnietre/snaplist"
)

// Status codes returned in place of a Go error across the C boundary. Zero
// always means success.
type Status int

const (
	StatusOK Status = iota
	StatusNullHandle
	StatusDoubleDestroy
	StatusInvalidHandle
	// StatusAllocation is reserved for parity with the native surface's
	// AllocationError; Go has no recoverable allocation-failure path, so
	// nothing in this package ever returns it today.
	StatusAllocation
)

// Destructor is called, best-effort, on each stored pointer once its
// owning node becomes unreachable. The Go runtime invokes it sometime
// after that point, on an unspecified goroutine — this is NOT the same
// guarantee as "called when the owning node is destroyed." Callers needing
// a precise destruction point should drain a side-channel after Clear or
// Destroy instead of relying on finalizer timing.
type Destructor func(unsafe.Pointer)

// ptrBox is what actually gets stored as a list element instead of a bare
// unsafe.Pointer. A bare unsafe.Pointer has no identity of its own to hang
// a finalizer off of; ptrBox does, and it is only reachable for as long as
// the node holding it is, so SetFinalizer on *ptrBox fires sometime after
// the owning node becomes unreachable (see Destructor), not the moment
// Append returns.
type ptrBox struct {
	ptr unsafe.Pointer
}

type handle struct {
	id    uuid.UUID
	list  *snaplist.List[*ptrBox]
	destr Destructor
}

// String gives the handle a debuggable identity, used by DebugString for
// logging on the Go side; it is never part of the C ABI.
func (h *handle) String() string {
	return "snaplist(" + h.id.String() + ")"
}

type iterHandle struct {
	it *snaplist.Iterator[*ptrBox]
}

// New mints a handle for a fresh list with no destructor.
func New() uintptr {
	return NewWithDestructor(nil)
}

// NewWithDestructor mints a handle for a fresh list whose stored pointers
// are passed to destr, best-effort, once unreachable.
func NewWithDestructor(destr Destructor) uintptr {
	h := &handle{id: uuid.New(), list: snaplist.New[*ptrBox](), destr: destr}
	return uintptr(cgo.NewHandle(h))
}

// DebugString returns a human-readable identity for a list handle. It is
// for Go-side logging only and is never part of the C ABI.
func DebugString(h uintptr) string {
	l, ok := loadHandle(h)
	if !ok {
		return "snaplist(invalid)"
	}
	return l.String()
}

// Destroy releases a list handle. Returns StatusNullHandle if it is the
// zero value, StatusDoubleDestroy if it is not a live handle (already
// released, or never issued), and StatusInvalidHandle if it is a live
// handle of another kind, such as an iterator handle.
func Destroy(h uintptr) Status {
	if h == 0 {
		return StatusNullHandle
	}
	ch := cgo.Handle(h)
	v, ok := safeValue(ch)
	if !ok {
		return StatusDoubleDestroy
	}
	if _, ok := v.(*handle); !ok {
		return StatusInvalidHandle
	}
	ch.Delete()
	return StatusOK
}

// Len returns the list's current length, or 0 if the handle is invalid.
func Len(h uintptr) uintptr {
	l, ok := loadHandle(h)
	if !ok {
		return 0
	}
	return uintptr(l.list.Len())
}

// Append stores ptr at the end of the list named by h. If the list was
// created with a destructor, it is registered against the freshly boxed
// element so it fires once that element is no longer reachable from any
// live snapshot.
func Append(h uintptr, ptr unsafe.Pointer) Status {
	l, ok := loadHandle(h)
	if !ok {
		return statusFor(h)
	}
	box := &ptrBox{ptr: ptr}
	if l.destr != nil {
		destr := l.destr
		runtime.SetFinalizer(box, func(b *ptrBox) {
			destr(b.ptr)
		})
	}
	l.list.Append(box)
	return StatusOK
}

// Clear empties the list named by h.
func Clear(h uintptr) Status {
	l, ok := loadHandle(h)
	if !ok {
		return statusFor(h)
	}
	l.list.Clear()
	return StatusOK
}

// Iter mints a snapshot-iterator handle over the list named by h, or 0 if
// h is invalid.
func Iter(h uintptr) uintptr {
	l, ok := loadHandle(h)
	if !ok {
		return 0
	}
	it := &iterHandle{it: l.list.Iter()}
	return uintptr(cgo.NewHandle(it))
}

// IterNext returns the next stored pointer, or nil once the iterator named
// by h is exhausted or invalid.
func IterNext(h uintptr) unsafe.Pointer {
	it, ok := loadIter(h)
	if !ok {
		return nil
	}
	v, ok := it.it.Next()
	if !ok {
		return nil
	}
	return v.ptr
}

// IterLen returns the snapshot length of the iterator named by h.
func IterLen(h uintptr) uintptr {
	it, ok := loadIter(h)
	if !ok {
		return 0
	}
	return uintptr(it.it.Len())
}

// IterIndex returns the count of elements already yielded by the iterator
// named by h.
func IterIndex(h uintptr) uintptr {
	it, ok := loadIter(h)
	if !ok {
		return 0
	}
	return uintptr(it.it.Index())
}

// IterDestroy releases an iterator handle.
func IterDestroy(h uintptr) Status {
	if h == 0 {
		return StatusNullHandle
	}
	ch := cgo.Handle(h)
	v, ok := safeValue(ch)
	if !ok {
		return StatusDoubleDestroy
	}
	if _, ok := v.(*iterHandle); !ok {
		return StatusInvalidHandle
	}
	ch.Delete()
	return StatusOK
}

func loadHandle(h uintptr) (*handle, bool) {
	if h == 0 {
		return nil, false
	}
	v, ok := safeValue(cgo.Handle(h))
	if !ok {
		return nil, false
	}
	l, ok := v.(*handle)
	return l, ok
}

func loadIter(h uintptr) (*iterHandle, bool) {
	if h == 0 {
		return nil, false
	}
	v, ok := safeValue(cgo.Handle(h))
	if !ok {
		return nil, false
	}
	it, ok := v.(*iterHandle)
	return it, ok
}

func statusFor(h uintptr) Status {
	if h == 0 {
		return StatusNullHandle
	}
	return StatusInvalidHandle
}

// safeValue recovers from cgo.Handle.Value's panic on a deleted or unknown
// handle, translating "already destroyed" into a plain boolean instead of
// letting it cross back into C as a runtime panic.
func safeValue(h cgo.Handle) (v any, ok bool) {
	defer func() {
		if recover() != nil {
			v, ok = nil, false
		}
	}()
	return h.Value(), true
}
