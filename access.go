package vector

import (
	"iter"
	"unsafe"
)

// Len returns the number of live elements.
func (a *Array[T]) Len() int {
	return a.length
}

// Cap returns the number of slots the current buffer can hold.
func (a *Array[T]) Cap() int {
	return a.storage.capacity
}

// At returns the address of element i. Valid only for i < Len(); the
// bound is checked only under the vecdebug build tag, out-of-range
// access is otherwise undefined. The address is invalidated by any
// operation that may reallocate.
func (a *Array[T]) At(i int) *T {
	assert(i >= 0 && i < a.length, "vector: index out of range")
	return a.storage.at(i)
}

// Get returns a shallow copy of element i. Same bounds contract as At.
func (a *Array[T]) Get(i int) T {
	return *a.At(i)
}

// Set overwrites element i by plain assignment, bypassing the lifecycle
// hooks. Same bounds contract as At.
func (a *Array[T]) Set(i int, value T) {
	*a.At(i) = value
}

// Slice returns a view over exactly the live elements, in order. The
// view aliases the array's storage: it stays valid until the next
// operation that may reallocate and must not be grown with append.
func (a *Array[T]) Slice() []T {
	if a.length == 0 {
		return nil
	}
	return unsafe.Slice(a.storage.base, a.length)
}

// Values iterates over the live elements in order. The array must not
// be mutated during iteration.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.length; i++ {
			if !yield(*a.storage.at(i)) {
				return
			}
		}
	}
}

// All iterates over index/element pairs of the live elements in order.
// The array must not be mutated during iteration.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.length; i++ {
			if !yield(i, *a.storage.at(i)) {
				return
			}
		}
	}
}
