package snaplist

import "github.com/johnietre/snaplist/atomics"

// node couples an immutable value with a fill-once slot pointing at its
// successor. Nodes never expose next directly; List and Iterator are the
// only callers that touch it, and always through the fill-once API.
//
// A node carries no destructor and no reference count. Once neither
// List.head/tail nor any Iterator.current still points into a node's
// suffix, it is unreachable and the garbage collector reclaims the whole
// chain from that point on, exactly the way tests/long's AtomicList relies
// on plain atomic.Pointer fields with no manual bookkeeping. This is the
// one place the Go runtime changes the mechanism — not the observable
// guarantee — behind keeping a snapshotted chain alive.
type node[T any] struct {
	value T
	next  atomics.FillOnceShared[node[T]]
}

func newNode[T any](value T) *node[T] {
	return &node[T]{value: value}
}
