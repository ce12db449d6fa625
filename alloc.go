package oncelist

import "sync"

// Allocator controls how chain nodes are obtained and released. The set of
// implementations is closed; instances are created by HeapAllocator and
// PoolAllocator.
type Allocator[T any] interface {
	newNode(val T) *node[T]
	freeNode(n *node[T])
}

// HeapAllocator allocates every node individually and leaves reclamation to
// the garbage collector. It is the default.
func HeapAllocator[T any]() Allocator[T] {
	return heapAllocator[T]{}
}

type heapAllocator[T any] struct{}

func (heapAllocator[T]) newNode(val T) *node[T] { return &node[T]{val: val} }
func (heapAllocator[T]) freeNode(*node[T])      {}

// PoolAllocator recycles nodes through a sync.Pool. Only nodes released one
// at a time (Remove, PopFront, Drain) go back to the pool; Clear drops the
// whole chain to the garbage collector.
func PoolAllocator[T any]() Allocator[T] {
	return &poolAllocator[T]{
		pool: sync.Pool{
			New: func() any {
				return new(node[T])
			},
		},
	}
}

type poolAllocator[T any] struct {
	pool sync.Pool
}

func (a *poolAllocator[T]) newNode(val T) *node[T] {
	n := a.pool.Get().(*node[T])
	n.val = val
	return n
}

func (a *poolAllocator[T]) freeNode(n *node[T]) {
	var zero T
	n.next.replace(nil)
	n.val = zero
	a.pool.Put(n)
}
