// Package oncelist implements an append-only singly linked list whose links
// are written at most once. Pushing never needs exclusive access: the
// insertion slot is claimed with a single compare-and-swap, and a losing
// writer retries further down the chain, so no value is ever lost under
// contention. Destructive operations (Remove, PopFront, Clear) and in-place
// mutation through returned pointers require exclusive access, enforced by
// the caller rather than by internal locking.
package oncelist

import (
	"fmt"
	"iter"
	"slices"

	"github.com/pkg/errors"
)

// List is an append-only singly linked list. Concurrent pushes are safe with
// the NoCache mode; the caching modes keep unsynchronized auxiliary state and
// restrict the list to a single goroutine.
type List[T any] struct {
	head  nextSlot[T]
	mode  CacheMode[T]
	alloc Allocator[T]
}

// New creates an empty list with no caching and the heap allocator.
func New[T any]() *List[T] {
	return NewWithIn[T](NoCache[T](), HeapAllocator[T]())
}

// NewWith creates an empty list with the given cache mode.
func NewWith[T any](mode CacheMode[T]) *List[T] {
	return NewWithIn[T](mode, HeapAllocator[T]())
}

// NewIn creates an empty list with no caching and the given allocator.
func NewIn[T any](alloc Allocator[T]) *List[T] {
	return NewWithIn[T](NoCache[T](), alloc)
}

// NewWithIn creates an empty list with the given cache mode and allocator.
func NewWithIn[T any](mode CacheMode[T], alloc Allocator[T]) *List[T] {
	if mode == nil {
		panic(errors.New("oncelist: nil cache mode"))
	}
	if alloc == nil {
		panic(errors.New("oncelist: nil allocator"))
	}
	return &List[T]{
		mode:  mode,
		alloc: alloc,
	}
}

// Push appends val and returns a pointer to the stored value. It never fails:
// if another goroutine claims the tail slot first, the insertion point is
// advanced past the winner and the claim is retried. The loop terminates
// because every retry observes strictly more occupied slots.
func (l *List[T]) Push(val T) *T {
	n := l.alloc.newNode(val)
	slot := l.startSlot()
	for {
		occupant, ok := slot.trySet(n)
		if ok {
			l.mode.onPushSuccess(&n.next)
			return &n.val
		}
		slot = &occupant.next
	}
}

// PushBack is an alias of Push.
func (l *List[T]) PushBack(val T) *T {
	return l.Push(val)
}

// Append pushes the values in order.
func (l *List[T]) Append(vals ...T) {
	l.Extend(slices.Values(vals))
}

// Extend pushes every value produced by the sequence, in order. The slot
// claimed by each insertion is reused as the starting point of the next one,
// amortizing the tail scan across the batch. Each insertion follows the same
// retry protocol as Push.
func (l *List[T]) Extend(values iter.Seq[T]) {
	slot := l.startSlot()
	for val := range values {
		n := l.alloc.newNode(val)
		for {
			occupant, ok := slot.trySet(n)
			if ok {
				l.mode.onPushSuccess(&n.next)
				slot = &n.next
				break
			}
			slot = &occupant.next
		}
	}
}

func (l *List[T]) startSlot() *nextSlot[T] {
	if slot := l.mode.tailSlot(); slot != nil {
		return slot
	}
	return &l.head
}

// Front returns a pointer to the first value, or nil if the list is empty.
// Mutating the value through the pointer requires exclusive access.
func (l *List[T]) Front() *T {
	if n := l.head.get(); n != nil {
		return &n.val
	}
	return nil
}

// Back returns a pointer to the last value, or nil if the list is empty.
// It always walks the chain: a cached tail slot narrows insertion scans but
// cannot answer Back, since pushes may have raced past it.
func (l *List[T]) Back() *T {
	var last *T
	for n := l.head.get(); n != nil; n = n.next.get() {
		last = &n.val
	}
	return last
}

// Len returns the number of values. O(1) with a len-caching mode, O(n)
// otherwise.
func (l *List[T]) Len() int {
	if n, ok := l.mode.cachedLen(); ok {
		return n
	}
	var count int
	for n := l.head.get(); n != nil; n = n.next.get() {
		count++
	}
	return count
}

// IsEmpty reports whether the list holds no values.
func (l *List[T]) IsEmpty() bool {
	return l.head.get() == nil
}

// Remove unlinks the first value matching pred and returns it. The second
// result is false if nothing matched. Requires exclusive access.
func (l *List[T]) Remove(pred func(T) bool) (T, bool) {
	// Any structural change may leave a cached tail pointing into a detached
	// chain, so invalidate it up front.
	l.mode.onStructureChange()

	slot := &l.head
	for n := slot.get(); n != nil; n = slot.get() {
		if !pred(n.val) {
			slot = &n.next
			continue
		}
		slot.replace(n.next.get())
		l.mode.onRemoveSuccess()
		val := n.val
		l.alloc.freeNode(n)
		return val, true
	}
	var zero T
	return zero, false
}

// PopFront removes and returns the first value, if any. Requires exclusive
// access.
func (l *List[T]) PopFront() (T, bool) {
	return l.Remove(func(T) bool { return true })
}

// Clear releases the whole chain. Requires exclusive access. Clearing an
// empty list is a no-op.
func (l *List[T]) Clear() {
	l.head.replace(nil)
	l.mode.onClear()
	l.mode.onStructureChange()
}

// Clone returns an independent list with the same values, cache mode variant
// and allocator. Cache state is rebuilt through the push hooks, so a cached
// tail never points into the source chain.
func (l *List[T]) Clone() *List[T] {
	clone := &List[T]{
		mode:  l.mode.fresh(),
		alloc: l.alloc,
	}
	clone.Extend(l.All())
	return clone
}

func (l *List[T]) String() string {
	return fmt.Sprintf("%v", slices.Collect(l.All()))
}
