package oncelist

import (
	"iter"

	"github.com/pkg/errors"
)

// Functions in this file need type constraints a List method cannot carry,
// so they are package-level in the style of the slices package.

// Contains reports whether val is present in the list.
func Contains[T comparable](l *List[T], val T) bool {
	for v := range l.All() {
		if v == val {
			return true
		}
	}
	return false
}

// Equal reports whether two lists hold the same values in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	next, stop := iter.Pull(b.All())
	defer stop()
	for v := range a.All() {
		w, ok := next()
		if !ok || v != w {
			return false
		}
	}
	_, ok := next()
	return !ok
}

// FindByType returns the first value of type T stored in a heterogeneous
// list.
func FindByType[T any](l *List[any]) (T, bool) {
	for v := range l.All() {
		if val, ok := v.(T); ok {
			return val, true
		}
	}
	var zero T
	return zero, false
}

// RemoveByType removes and returns the first value of type T stored in a
// heterogeneous list. Requires exclusive access.
func RemoveByType[T any](l *List[any]) (T, bool) {
	v, ok := l.Remove(func(v any) bool {
		_, ok := v.(T)
		return ok
	})
	if !ok {
		var zero T
		return zero, false
	}
	val, ok := v.(T)
	if !ok {
		panic(errors.Errorf("oncelist: matched value has type %T", v))
	}
	return val, true
}
