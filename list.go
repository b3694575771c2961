// Package snaplist provides a concurrent, append-only list with lock-free
// append/iterate and wait-free length/clear. Any number of goroutines may
// append concurrently; any number of goroutines may each hold an
// independent Iterator that traverses a stable snapshot of the elements
// appended up to the moment the iterator was created, unaffected by later
// appends or clears.
package snaplist

import (
	"sync/atomic"

	"github.com/johnietre/snaplist/atomics"
)

// List is a concurrent append-only list of T. The zero value is an empty
// list ready for use; New returns a pointer to one and NewFrom one
// pre-populated. A *List[T] is safe to share across goroutines by ordinary
// pointer sharing.
type List[T any] struct {
	length atomic.Uint64
	head   atomics.AtomicOwned[node[T]]
	tail   atomics.AtomicOwned[node[T]]
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// NewFrom returns a list pre-populated with values, in order. It is the
// construction convenience a Go program reaches for where another language
// might offer a list-literal macro.
func NewFrom[T any](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.Append(v)
	}
	return l
}

// Append adds value to the end of the list. It never blocks on other
// appenders or iterators beyond the duration of its own atomic operations,
// and composes correctly with a concurrent Clear.
func (l *List[T]) Append(value T) {
	n := newNode(value)

	// Fast path: list currently empty.
	if l.head.CompareAndSwap(nil, n) {
		l.tail.Swap(n)
		l.length.Add(1)
		return
	}

	for {
		t := l.tail.Load()
		if t == nil {
			// A concurrent Clear emptied the list between our CAS attempt
			// above and here; retry the empty-list fast path.
			if l.head.CompareAndSwap(nil, n) {
				l.tail.Swap(n)
				l.length.Add(1)
				return
			}
			continue
		}
		if _, ok := t.next.TryFill(n); ok {
			l.tail.Swap(n)
			l.length.Add(1)
			return
		}
		// Lost the race for this tail; another appender already advanced
		// it. Reload tail and contend against the new frontier.
	}
}

// Len returns the number of elements reachable from head at some moment
// during the call. Concurrent appends/clears may move the true count
// before or after the value is observed by the caller.
func (l *List[T]) Len() uint64 {
	return l.length.Load()
}

// Clear detaches the list's current contents. After Clear returns, a fresh
// Iter observes an empty list. Iterators created before Clear continue to
// observe the chain they captured, kept alive purely by holding a pointer
// into it.
func (l *List[T]) Clear() {
	l.head.Swap(nil)
	l.tail.Swap(nil)
	l.length.Store(0)
}

// Iter returns a snapshot iterator over the list's current contents. The
// snapshot is the (head, len) pair observed between the two loads below;
// subsequent appends and clears never affect what it yields.
func (l *List[T]) Iter() *Iterator[T] {
	size := l.length.Load()
	current := l.head.Load()
	return &Iterator[T]{current: current, size: size}
}
