package ffi

import (
	"runtime"
	"strings"
	"sync/atomic"
	"testing"
	"unsafe"
)

func TestHandleRoundTrip(t *testing.T) {
	h := New()
	defer Destroy(h)

	one := 1
	if st := Append(h, unsafe.Pointer(&one)); st != StatusOK {
		t.Fatalf("expected StatusOK, got %v", st)
	}
	if n := Len(h); n != 1 {
		t.Fatalf("expected len 1, got %d", n)
	}
}

func TestIterNilAtExhaustion(t *testing.T) {
	h := New()
	defer Destroy(h)

	one, two := 1, 2
	Append(h, unsafe.Pointer(&one))
	Append(h, unsafe.Pointer(&two))

	it := Iter(h)
	defer IterDestroy(it)

	if IterLen(it) != 2 {
		t.Fatalf("expected iterator len 2, got %d", IterLen(it))
	}
	first := IterNext(it)
	if first != unsafe.Pointer(&one) {
		t.Fatal("expected first element to be &one")
	}
	second := IterNext(it)
	if second != unsafe.Pointer(&two) {
		t.Fatal("expected second element to be &two")
	}
	if p := IterNext(it); p != nil {
		t.Fatalf("expected nil at exhaustion, got %v", p)
	}
	if p := IterNext(it); p != nil {
		t.Fatalf("expected nil to persist past exhaustion, got %v", p)
	}
	if IterIndex(it) != 2 {
		t.Fatalf("expected index 2, got %d", IterIndex(it))
	}
}

func TestDoubleDestroyIsDistinguished(t *testing.T) {
	h := New()
	if st := Destroy(h); st != StatusOK {
		t.Fatalf("expected first destroy to succeed, got %v", st)
	}
	if st := Destroy(h); st != StatusDoubleDestroy {
		t.Fatalf("expected StatusDoubleDestroy, got %v", st)
	}
}

func TestNullHandleIsDistinguished(t *testing.T) {
	if st := Destroy(0); st != StatusNullHandle {
		t.Fatalf("expected StatusNullHandle, got %v", st)
	}
	if n := Len(0); n != 0 {
		t.Fatalf("expected len 0 for null handle, got %d", n)
	}
	if st := Append(0, nil); st != StatusNullHandle {
		t.Fatalf("expected StatusNullHandle, got %v", st)
	}
}

// TestDestructorFiresAfterUnreachable mirrors scenarios_test.go's
// TestScenarioIteratorSurvivesListDestruction: the destructor must not run
// merely because Append returned, only once the stored element is no
// longer reachable from any live snapshot.
func TestDestructorFiresAfterUnreachable(t *testing.T) {
	var fired atomic.Bool
	one := 1

	func() {
		h := NewWithDestructor(func(unsafe.Pointer) {
			fired.Store(true)
		})
		defer Destroy(h)
		Append(h, unsafe.Pointer(&one))
		if fired.Load() {
			t.Fatal("destructor fired before the element became unreachable")
		}
	}()

	runtime.GC()
	runtime.GC()

	if !fired.Load() {
		t.Fatal("expected destructor to fire once the list was destroyed")
	}
}

// TestDestructorSkippedWhileIteratorHoldsSnapshot exercises the same
// unreachability contract from the other direction: an outstanding
// iterator snapshot keeps the boxed element reachable, so the destructor
// must not fire while it does.
func TestDestructorSkippedWhileIteratorHoldsSnapshot(t *testing.T) {
	var fired atomic.Bool
	one := 1

	h := NewWithDestructor(func(unsafe.Pointer) {
		fired.Store(true)
	})
	defer Destroy(h)
	Append(h, unsafe.Pointer(&one))

	it := Iter(h)
	defer IterDestroy(it)

	runtime.GC()
	runtime.GC()

	if fired.Load() {
		t.Fatal("destructor fired while an iterator still held the snapshot")
	}
	if p := IterNext(it); p != unsafe.Pointer(&one) {
		t.Fatal("expected iterator to still yield the boxed element")
	}
}

func TestDebugStringFormat(t *testing.T) {
	h := New()
	defer Destroy(h)

	s := DebugString(h)
	if !strings.HasPrefix(s, "snaplist(") || !strings.HasSuffix(s, ")") {
		t.Fatalf("expected snaplist(<uuid>) format, got %q", s)
	}
}

func TestDebugStringForInvalidHandle(t *testing.T) {
	if s := DebugString(0); s != "snaplist(invalid)" {
		t.Fatalf("expected snaplist(invalid) for null handle, got %q", s)
	}
	h := New()
	Destroy(h)
	if s := DebugString(h); s != "snaplist(invalid)" {
		t.Fatalf("expected snaplist(invalid) for destroyed handle, got %q", s)
	}
}

func TestInvalidHandleIsDistinguished(t *testing.T) {
	it := Iter(0)
	if it != 0 {
		t.Fatalf("expected 0 iterator handle for null list handle, got %d", it)
	}

	// An iterator handle is not a list handle and vice versa.
	h := New()
	defer Destroy(h)
	ih := Iter(h)
	defer IterDestroy(ih)

	if st := Append(ih, nil); st != StatusInvalidHandle {
		t.Fatalf("expected StatusInvalidHandle when using an iterator handle as a list handle, got %v", st)
	}
}
