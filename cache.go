package oncelist

// CacheMode tracks auxiliary state derived from the chain (element count,
// last known tail slot) to accelerate specific List operations. The set of
// modes is closed; instances are created by NoCache, WithLen, WithTail and
// WithTailLen.
//
// Modes other than NoCache mutate unsynchronized state from the push path.
// A list using them must not be pushed to from multiple goroutines.
type CacheMode[T any] interface {
	// cachedLen returns the element count if this mode tracks it.
	cachedLen() (int, bool)
	// tailSlot returns the cached tail insertion slot, or nil when the
	// traversal has to start from the head.
	tailSlot() *nextSlot[T]
	// onPushSuccess is invoked after a new node was linked; next is the new
	// node's own (still empty) next slot.
	onPushSuccess(next *nextSlot[T])
	// onRemoveSuccess is invoked after a node was unlinked.
	onRemoveSuccess()
	// onClear is invoked after the whole chain was released.
	onClear()
	// onStructureChange drops every cached pointer which may have become
	// stale. Invalidation is pessimistic: any removal or clear discards the
	// cached tail even if the true tail did not move.
	onStructureChange()
	// fresh returns an empty instance of the same mode for a new list.
	// Cached chain pointers are never carried from one list to another.
	fresh() CacheMode[T]
}

// NoCache keeps no auxiliary state. Len is O(n) and every push scans for the
// tail from the head, but the list stays safe for concurrent pushes.
func NoCache[T any]() CacheMode[T] {
	return noCache[T]{}
}

// WithLen keeps an element count, making Len O(1).
func WithLen[T any]() CacheMode[T] {
	return &withLen[T]{}
}

// WithTail remembers the insertion slot of the most recent push so that
// repeated pushes skip the tail scan. It accelerates insertion only; Back
// still walks the chain.
func WithTail[T any]() CacheMode[T] {
	return &withTail[T]{}
}

// WithTailLen combines WithLen and WithTail.
func WithTailLen[T any]() CacheMode[T] {
	return &withTailLen[T]{}
}

type noCache[T any] struct{}

func (noCache[T]) cachedLen() (int, bool)     { return 0, false }
func (noCache[T]) tailSlot() *nextSlot[T]     { return nil }
func (noCache[T]) onPushSuccess(*nextSlot[T]) {}
func (noCache[T]) onRemoveSuccess()           {}
func (noCache[T]) onClear()                   {}
func (noCache[T]) onStructureChange()         {}
func (noCache[T]) fresh() CacheMode[T]        { return noCache[T]{} }

type withLen[T any] struct {
	n int
}

func (m *withLen[T]) cachedLen() (int, bool)     { return m.n, true }
func (m *withLen[T]) tailSlot() *nextSlot[T]     { return nil }
func (m *withLen[T]) onPushSuccess(*nextSlot[T]) { m.n++ }
func (m *withLen[T]) onRemoveSuccess()           { m.n-- }
func (m *withLen[T]) onClear()                   { m.n = 0 }
func (m *withLen[T]) onStructureChange()         {}
func (m *withLen[T]) fresh() CacheMode[T]        { return &withLen[T]{} }

type withTail[T any] struct {
	slot *nextSlot[T]
}

func (m *withTail[T]) cachedLen() (int, bool) { return 0, false }

func (m *withTail[T]) tailSlot() *nextSlot[T] {
	// The cached slot is used only while still empty; otherwise insertion
	// falls back to scanning from the head.
	if m.slot != nil && m.slot.get() == nil {
		return m.slot
	}
	return nil
}

func (m *withTail[T]) onPushSuccess(next *nextSlot[T]) { m.slot = next }
func (m *withTail[T]) onRemoveSuccess()                {}
func (m *withTail[T]) onClear()                        { m.slot = nil }
func (m *withTail[T]) onStructureChange()              { m.slot = nil }
func (m *withTail[T]) fresh() CacheMode[T]             { return &withTail[T]{} }

type withTailLen[T any] struct {
	slot *nextSlot[T]
	n    int
}

func (m *withTailLen[T]) cachedLen() (int, bool) { return m.n, true }

func (m *withTailLen[T]) tailSlot() *nextSlot[T] {
	if m.slot != nil && m.slot.get() == nil {
		return m.slot
	}
	return nil
}

func (m *withTailLen[T]) onPushSuccess(next *nextSlot[T]) {
	m.slot = next
	m.n++
}

func (m *withTailLen[T]) onRemoveSuccess() { m.n-- }

func (m *withTailLen[T]) onClear() {
	m.slot = nil
	m.n = 0
}

// The count stays correct across removals; only the tail pointer may be
// stale.
func (m *withTailLen[T]) onStructureChange() { m.slot = nil }

func (m *withTailLen[T]) fresh() CacheMode[T] { return &withTailLen[T]{} }
