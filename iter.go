package oncelist

import "iter"

// All returns an iterator over the values in insertion order, walking from
// the head to the first empty slot. It needs only shared access; values
// pushed concurrently past the current position are observed.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.get(); n != nil; n = n.next.get() {
			if !yield(n.val) {
				return
			}
		}
	}
}

// Refs returns an iterator over pointers to the stored values in insertion
// order. Mutating values through the pointers requires exclusive access.
func (l *List[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := l.head.get(); n != nil; n = n.next.get() {
			if !yield(&n.val) {
				return
			}
		}
	}
}

// Drain returns an iterator that removes values from the front as it yields
// them. Requires exclusive access. Breaking out early leaves the remaining
// values, and the cache state, intact.
func (l *List[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			val, ok := l.PopFront()
			if !ok {
				return
			}
			if !yield(val) {
				return
			}
		}
	}
}
