// Command snaplistffi builds as a C archive/shared library (`go build
// -buildmode=c-archive` or `-buildmode=c-shared`) exposing snaplist's
// opaque-handle surface. All the actual bookkeeping lives in package ffi;
// this file only adapts it to the C.uintptr_t/unsafe.Pointer shapes cgo's
// //export pragma requires, since //export is only honored in package
// main.
package main

/*
#include <stddef.h>
#include <stdint.h>

typedef void (*snaplist_destructor)(void *);

// call_snaplist_destructor exists because Go cannot invoke a C function
// pointer value directly; cgo only lets Go call C functions named at
// compile time, so this trampoline is the fixed call site Go code uses to
// reach whatever destructor the caller registered.
static inline void call_snaplist_destructor(snaplist_destructor fn, void *ptr) {
	fn(ptr);
}
*/
import "C"

import (
	"unsafe"

	"github.com/johnietre/snaplist/ffi"
)

//export snaplist_new
func snaplist_new() C.uintptr_t {
	return C.uintptr_t(ffi.New())
}

//export snaplist_new_with_destructor
func snaplist_new_with_destructor(fn C.uintptr_t) C.uintptr_t {
	if fn == 0 {
		return C.uintptr_t(ffi.New())
	}
	cfn := C.snaplist_destructor(unsafe.Pointer(uintptr(fn)))
	destr := func(ptr unsafe.Pointer) {
		C.call_snaplist_destructor(cfn, ptr)
	}
	return C.uintptr_t(ffi.NewWithDestructor(destr))
}

//export snaplist_destroy
func snaplist_destroy(handle C.uintptr_t) C.int {
	return C.int(ffi.Destroy(uintptr(handle)))
}

//export snaplist_len
func snaplist_len(handle C.uintptr_t) C.size_t {
	return C.size_t(ffi.Len(uintptr(handle)))
}

//export snaplist_append
func snaplist_append(handle C.uintptr_t, ptr unsafe.Pointer) C.int {
	return C.int(ffi.Append(uintptr(handle), ptr))
}

//export snaplist_clear
func snaplist_clear(handle C.uintptr_t) C.int {
	return C.int(ffi.Clear(uintptr(handle)))
}

//export snaplist_iter
func snaplist_iter(handle C.uintptr_t) C.uintptr_t {
	return C.uintptr_t(ffi.Iter(uintptr(handle)))
}

//export snaplist_iter_next
func snaplist_iter_next(iterHandle C.uintptr_t) unsafe.Pointer {
	return ffi.IterNext(uintptr(iterHandle))
}

//export snaplist_iter_len
func snaplist_iter_len(iterHandle C.uintptr_t) C.size_t {
	return C.size_t(ffi.IterLen(uintptr(iterHandle)))
}

//export snaplist_iter_index
func snaplist_iter_index(iterHandle C.uintptr_t) C.size_t {
	return C.size_t(ffi.IterIndex(uintptr(iterHandle)))
}

//export snaplist_iter_destroy
func snaplist_iter_destroy(iterHandle C.uintptr_t) C.int {
	return C.int(ffi.IterDestroy(uintptr(iterHandle)))
}

func main() {}
