package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityOverflow reports a requested capacity that is negative
	// or whose byte size cannot be represented.
	ErrCapacityOverflow = errors.New("vector: capacity overflow")

	// ErrNotCloneable reports a copying operation on an element type
	// whose Ops forbid cloning.
	ErrNotCloneable = errors.New("vector: element type is not cloneable")
)

// Array is a growable contiguous sequence of T built on a single
// manually managed buffer. Slots [0, Len()) hold live elements in
// order; slots [Len(), Cap()) are dead. Every public operation either
// restores that partition before returning or fails leaving the prior
// contents intact (growth paths additionally guarantee the old buffer
// is untouched on failure). Not safe for concurrent use.
type Array[T any] struct {
	storage  rawBuffer[T]
	length   int
	ops      Ops[T]
	reallocs int
}

// New creates an empty array with zero capacity and default element
// hooks. No allocation happens until the first growing operation.
func New[T any]() *Array[T] {
	return &Array[T]{}
}

// NewWithOps creates an empty array using the given lifecycle hooks.
func NewWithOps[T any](ops Ops[T]) *Array[T] {
	return &Array[T]{ops: ops}
}

// Make creates an array of n value-constructed elements with capacity
// exactly n.
func Make[T any](n int) (*Array[T], error) {
	return MakeWithOps(n, Ops[T]{})
}

// MakeWithOps creates an array of n value-constructed elements using
// the given lifecycle hooks. If constructing any element fails, the
// elements built earlier in the run are destroyed and the allocation
// released before the error is returned.
func MakeWithOps[T any](n int, ops Ops[T]) (*Array[T], error) {
	a := &Array[T]{ops: ops}
	if n == 0 {
		return a, nil
	}
	buf, err := newRawBuffer[T](n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		v, err := ops.construct()
		if err != nil {
			destroyRange(&ops, &buf, 0, i)
			buf.release()
			return nil, fmt.Errorf("vector: constructing element %d: %w", i, err)
		}
		*buf.at(i) = v
	}
	a.storage = buf.take()
	a.length = n
	return a, nil
}

// Clone builds a deep copy of a with capacity exactly a.Len(). Mutating
// the copy never affects a. Partial failure destroys the elements
// cloned so far and releases the new allocation.
func (a *Array[T]) Clone() (*Array[T], error) {
	out := &Array[T]{ops: a.ops}
	if a.length == 0 {
		return out, nil
	}
	buf, err := newRawBuffer[T](a.length)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.length; i++ {
		v, err := a.ops.clone(*a.storage.at(i))
		if err != nil {
			destroyRange(&a.ops, &buf, 0, i)
			buf.release()
			return nil, fmt.Errorf("vector: cloning element %d: %w", i, err)
		}
		*buf.at(i) = v
	}
	out.storage = buf.take()
	out.length = a.length
	return out, nil
}

// Take move-constructs a new array by stealing src's state in constant
// time. src is left empty with zero capacity and remains usable.
func Take[T any](src *Array[T]) *Array[T] {
	out := &Array[T]{ops: src.ops}
	out.Swap(src)
	return out
}

// Swap exchanges the contents of a and other in constant time. It
// never fails and serves as the move-assignment form: swapping with a
// fresh array leaves the source empty.
func (a *Array[T]) Swap(other *Array[T]) {
	a.storage.swap(&other.storage)
	a.length, other.length = other.length, a.length
	a.ops, other.ops = other.ops, a.ops
}

// Assign makes a element-equal to src.
//
// When src.Len() exceeds a's capacity, a full copy of src is built
// first and swapped in, so a failure leaves a untouched (the strong
// guarantee) at the cost of one reallocation sized to src.Len().
//
// Otherwise the existing storage is reused without reallocating: the
// leading elements are overwritten with clones of src's, then either
// a's excess tail is destroyed or src's extra elements are cloned into
// the dead tail slots. A mid-way failure on this path can leave a with
// a mixed, partially-updated sequence of its original length; no
// element or memory is ever leaked.
func (a *Array[T]) Assign(src *Array[T]) error {
	if a == src {
		return nil
	}
	if src.length > a.storage.capacity {
		tmp, err := src.Clone()
		if err != nil {
			return err
		}
		destroyRange(&a.ops, &a.storage, 0, a.length)
		a.storage.swap(&tmp.storage)
		a.length = tmp.length
		tmp.length = 0
		tmp.storage.release()
		a.reallocs++
		return nil
	}
	n := min(src.length, a.length)
	for i := 0; i < n; i++ {
		v, err := a.ops.clone(*src.storage.at(i))
		if err != nil {
			return fmt.Errorf("vector: cloning element %d: %w", i, err)
		}
		a.ops.drop(a.storage.at(i))
		*a.storage.at(i) = v
	}
	if src.length < a.length {
		destroyRange(&a.ops, &a.storage, src.length, a.length)
	} else {
		for i := a.length; i < src.length; i++ {
			v, err := a.ops.clone(*src.storage.at(i))
			if err != nil {
				destroyRange(&a.ops, &a.storage, a.length, i)
				return fmt.Errorf("vector: cloning element %d: %w", i, err)
			}
			*a.storage.at(i) = v
		}
	}
	a.length = src.length
	return nil
}

// Reserve grows capacity to at least n slots. It is a no-op when n does
// not exceed the current capacity; otherwise it allocates a buffer of
// exactly n slots, transfers the live elements per the transfer policy,
// destroys the originals and swaps the new buffer in. On failure the
// array is unchanged whenever the clone path was in effect.
func (a *Array[T]) Reserve(n int) error {
	if n <= a.storage.capacity {
		return nil
	}
	buf, err := newRawBuffer[T](n)
	if err != nil {
		return err
	}
	if err := a.transferInto(&buf, 0, a.length, 0); err != nil {
		buf.release()
		return err
	}
	a.commit(&buf, a.length)
	return nil
}

// Resize sets the element count to n. Shrinking destroys the trailing
// elements and keeps capacity; Resize(0) empties the array without
// freeing storage. Growing reserves capacity for n and then
// value-constructs the new trailing slots; a construction failure
// destroys the partial tail and keeps the original length.
func (a *Array[T]) Resize(n int) error {
	assert(n >= 0, "vector: negative size")
	switch {
	case n < a.length:
		destroyRange(&a.ops, &a.storage, n, a.length)
		a.length = n
	case n > a.length:
		if err := a.Reserve(n); err != nil {
			return err
		}
		for i := a.length; i < n; i++ {
			v, err := a.ops.construct()
			if err != nil {
				destroyRange(&a.ops, &a.storage, a.length, i)
				return fmt.Errorf("vector: constructing element %d: %w", i, err)
			}
			*a.storage.at(i) = v
		}
		a.length = n
	}
	return nil
}

// Clear destroys all live elements but keeps the allocated storage for
// reuse. Equivalent to Resize(0).
func (a *Array[T]) Clear() {
	destroyRange(&a.ops, &a.storage, 0, a.length)
	a.length = 0
}

// Release destroys all live elements and drops the storage block. The
// array returns to the empty zero-capacity state and remains usable.
func (a *Array[T]) Release() {
	destroyRange(&a.ops, &a.storage, 0, a.length)
	a.length = 0
	a.storage.release()
}

// grownCapacity returns the capacity used by implicit reallocation:
// max(1, 2*current), giving amortized constant-time appends.
func (a *Array[T]) grownCapacity() int {
	if a.storage.capacity == 0 {
		return 1
	}
	return 2 * a.storage.capacity
}

// transferInto places a's elements [from, to) into dst starting at
// dstOff, relocating or cloning per the transfer policy. On failure the
// elements already placed in dst are destroyed; the source elements are
// guaranteed intact only on the clone path.
func (a *Array[T]) transferInto(dst *rawBuffer[T], from, to, dstOff int) error {
	if a.ops.relocateWins() {
		for i := from; i < to; i++ {
			v, err := a.ops.relocate(a.storage.at(i))
			if err != nil {
				destroyRange(&a.ops, dst, dstOff, dstOff+(i-from))
				return fmt.Errorf("vector: relocating element %d: %w", i, err)
			}
			*dst.at(dstOff + (i - from)) = v
		}
		return nil
	}
	for i := from; i < to; i++ {
		v, err := a.ops.clone(*a.storage.at(i))
		if err != nil {
			destroyRange(&a.ops, dst, dstOff, dstOff+(i-from))
			return fmt.Errorf("vector: cloning element %d: %w", i, err)
		}
		*dst.at(dstOff + (i - from)) = v
	}
	return nil
}

// commit finishes a reallocating mutation: it destroys the old
// buffer's elements, swaps buf in, releases the old block and sets the
// new length.
func (a *Array[T]) commit(buf *rawBuffer[T], newLen int) {
	destroyRange(&a.ops, &a.storage, 0, a.length)
	a.storage.swap(buf)
	buf.release()
	a.length = newLen
	a.reallocs++
}

// moveAssign relocates *src over the live element at *dst, destroying
// dst's previous value first.
func (a *Array[T]) moveAssign(dst, src *T) error {
	v, err := a.ops.relocate(src)
	if err != nil {
		return err
	}
	a.ops.drop(dst)
	*dst = v
	return nil
}

// destroyRange drops the live elements in slots [from, to) of buf.
func destroyRange[T any](ops *Ops[T], buf *rawBuffer[T], from, to int) {
	for i := from; i < to; i++ {
		ops.drop(buf.at(i))
	}
}
