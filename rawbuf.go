package vector

import (
	"math"
	"unsafe"
)

// rawBuffer owns a typed block of storage for capacity elements of T.
// It knows nothing about which slots hold live elements; that partition
// is tracked entirely by the owning Array. The type is move-only:
// ownership transfers go through take or swap, never through copies.
type rawBuffer[T any] struct {
	base     *T // start of the block, nil iff capacity == 0
	capacity int
}

// newRawBuffer allocates storage for capacity elements of T.
// A capacity of zero yields the nil sentinel without allocating.
// A negative capacity, or one whose byte size cannot be represented,
// reports ErrCapacityOverflow.
func newRawBuffer[T any](capacity int) (rawBuffer[T], error) {
	if capacity == 0 {
		return rawBuffer[T]{}, nil
	}
	if capacity < 0 || uintptr(capacity) > maxSlots[T]() {
		return rawBuffer[T]{}, ErrCapacityOverflow
	}
	// The backing block is a real []T allocation so the garbage
	// collector sees interior pointers held by live elements.
	block := make([]T, capacity)
	return rawBuffer[T]{base: &block[0], capacity: capacity}, nil
}

// at returns the address of slot offset within the block. The
// one-past-end address (offset == capacity) is legal but must only be
// used as a boundary, never dereferenced. Anything beyond that is
// checked only under the vecdebug build tag.
func (b *rawBuffer[T]) at(offset int) *T {
	assert(offset >= 0 && offset <= b.capacity, "vector: buffer offset out of range")
	return (*T)(unsafe.Add(unsafe.Pointer(b.base), uintptr(offset)*unsafe.Sizeof(*b.base)))
}

// swap exchanges the owned block and capacity with other in constant
// time. Element contents are never touched.
func (b *rawBuffer[T]) swap(other *rawBuffer[T]) {
	b.base, other.base = other.base, b.base
	b.capacity, other.capacity = other.capacity, b.capacity
}

// take transfers ownership out of b, leaving it at the nil/zero state.
func (b *rawBuffer[T]) take() rawBuffer[T] {
	out := *b
	*b = rawBuffer[T]{}
	return out
}

// release drops the block reference; the garbage collector reclaims it
// once no slot addresses remain reachable. Releasing the nil sentinel
// is a no-op.
func (b *rawBuffer[T]) release() {
	b.base = nil
	b.capacity = 0
}

// maxSlots returns the largest element count whose total byte size
// still fits in an int.
func maxSlots[T any]() uintptr {
	size := unsafe.Sizeof(*new(T))
	if size == 0 {
		return math.MaxInt
	}
	return math.MaxInt / size
}
