package snaplist

// Iterator is a cursor over a snapshot of a List's contents, captured at
// the moment Iter was called. It is intended to be owned by a single
// goroutine at a time; handing one to another goroutine is safe as long as
// the handoff itself is synchronized.
type Iterator[T any] struct {
	current *node[T]
	size    uint64
	index   uint64
}

// Next returns the next element and true, or the zero value and false once
// the snapshot is exhausted. Once exhausted, every subsequent call returns
// the same (zero, false) and Index stops advancing. The iterator stops after
// Len() elements even if later appends have linked more nodes onto the
// captured chain.
func (it *Iterator[T]) Next() (T, bool) {
	if it.current == nil || it.index >= it.size {
		var zero T
		return zero, false
	}
	n := it.current
	next, _ := n.next.Get()
	it.current = next
	if it.index < it.size {
		it.index++
	}
	return n.value, true
}

// Len returns the length of the snapshot this iterator was created from.
// It never changes over the iterator's lifetime.
func (it *Iterator[T]) Len() uint64 {
	return it.size
}

// Index returns the count of elements already yielded; 0 <= Index() <=
// Len() always.
func (it *Iterator[T]) Index() uint64 {
	return it.index
}

// ForEach calls f with each remaining element in order, stopping early if f
// returns false. It is a thin convenience wrapper over Next, in the spirit
// of a Range callback over the remainder of the snapshot.
func (it *Iterator[T]) ForEach(f func(T) bool) {
	for {
		v, ok := it.Next()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}
