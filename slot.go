package oncelist

import "sync/atomic"

// node is a single chain link owning one value and the slot pointing at its
// successor. A node is owned by whichever slot first referenced it: the
// list's head slot or the previous node's next slot.
type node[T any] struct {
	next nextSlot[T]
	val  T
}

// nextSlot is a write-once holder for the next node. The same type serves as
// the list's head pointer and as every node's forward link. Once claimed, a
// slot is never cleared in place; removal and truncation replace the content
// of the owning slot instead (see List.Remove and List.Clear).
type nextSlot[T any] struct {
	p atomic.Pointer[node[T]]
}

func (s *nextSlot[T]) get() *node[T] {
	return s.p.Load()
}

// trySet makes a single attempt to claim the slot. On contention it returns
// the occupying node and false, leaving n untouched so the caller can retry
// further down the chain without losing the value.
func (s *nextSlot[T]) trySet(n *node[T]) (*node[T], bool) {
	if s.p.CompareAndSwap(nil, n) {
		return n, true
	}
	return s.p.Load(), false
}

// replace overwrites the slot content. The caller must hold exclusive access
// to the list; this is the only way a claimed slot ever changes.
func (s *nextSlot[T]) replace(n *node[T]) {
	s.p.Store(n)
}
