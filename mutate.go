package vector

import "fmt"

// Append copy-constructs value at the end of the array. Growth happens
// at max(1, 2*Cap()); on a growing append the incoming element is
// constructed into its final slot of the new buffer before any existing
// element is transferred, so a failure never touches the old buffer.
func (a *Array[T]) Append(value T) error {
	_, err := a.EmplaceBack(func() (T, error) { return a.ops.clone(value) })
	return err
}

// AppendMove relocates *value to the end of the array, leaving *value
// destroyable but unused. Same growth choreography as Append.
func (a *Array[T]) AppendMove(value *T) error {
	_, err := a.EmplaceBack(func() (T, error) { return a.ops.relocate(value) })
	return err
}

// EmplaceBack constructs a new element in place at the end of the array
// and returns its address. A nil ctor value-constructs via Ops.New.
func (a *Array[T]) EmplaceBack(ctor func() (T, error)) (*T, error) {
	return a.Emplace(a.length, ctor)
}

// PopBack destroys the last element and decrements the length. Popping
// an empty array is a safe no-op.
func (a *Array[T]) PopBack() {
	if a.length == 0 {
		return
	}
	a.length--
	a.ops.drop(a.storage.at(a.length))
}

// Insert copy-constructs value at index i, shifting the elements from i
// onward one slot later. i == Len() appends.
func (a *Array[T]) Insert(i int, value T) error {
	_, err := a.Emplace(i, func() (T, error) { return a.ops.clone(value) })
	return err
}

// InsertMove relocates *value into index i, leaving *value destroyable
// but unused.
func (a *Array[T]) InsertMove(i int, value *T) error {
	_, err := a.Emplace(i, func() (T, error) { return a.ops.relocate(value) })
	return err
}

// Emplace constructs a new element at index i and returns its address.
// Valid positions are [0, Len()]; anything else is a precondition
// violation checked only under the vecdebug build tag. A nil ctor
// value-constructs via Ops.New.
//
// When capacity is exhausted the element is constructed into its final
// slot of the doubled buffer first, then the prefix [0, i) and suffix
// [i, Len()) are transferred around it per the transfer policy, so a
// failure leaves the array untouched whenever the clone path was in
// effect. In place, the new element is built before any slot is
// disturbed; a failure while shifting can leave a mixed sequence of the
// original length but never leaks an element or destroys one twice.
func (a *Array[T]) Emplace(i int, ctor func() (T, error)) (*T, error) {
	assert(i >= 0 && i <= a.length, "vector: emplace position out of range")
	if ctor == nil {
		ctor = a.ops.construct
	}
	if a.length == a.storage.capacity {
		return a.emplaceGrow(i, ctor)
	}
	v, err := ctor()
	if err != nil {
		return nil, fmt.Errorf("vector: new element: %w", err)
	}
	if i < a.length {
		// Relocate the current last element into the one-past-end
		// slot, then shift [i, length-1) one slot toward the end.
		last, err := a.ops.relocate(a.storage.at(a.length - 1))
		if err != nil {
			a.ops.drop(&v)
			return nil, fmt.Errorf("vector: relocating element %d: %w", a.length-1, err)
		}
		*a.storage.at(a.length) = last
		for j := a.length - 1; j > i; j-- {
			if err := a.moveAssign(a.storage.at(j), a.storage.at(j-1)); err != nil {
				a.ops.drop(&v)
				a.ops.drop(a.storage.at(a.length))
				return nil, fmt.Errorf("vector: shifting element %d: %w", j-1, err)
			}
		}
		// Slot i has been relocated out of; destroy it before the new
		// element takes its place.
		a.ops.drop(a.storage.at(i))
	}
	slot := a.storage.at(i)
	*slot = v
	a.length++
	return slot, nil
}

// emplaceGrow handles Emplace when capacity is exhausted.
func (a *Array[T]) emplaceGrow(i int, ctor func() (T, error)) (*T, error) {
	buf, err := newRawBuffer[T](a.grownCapacity())
	if err != nil {
		return nil, err
	}
	v, err := ctor()
	if err != nil {
		buf.release()
		return nil, fmt.Errorf("vector: new element: %w", err)
	}
	*buf.at(i) = v
	if err := a.transferInto(&buf, 0, i, 0); err != nil {
		a.ops.drop(buf.at(i))
		buf.release()
		return nil, err
	}
	if err := a.transferInto(&buf, i, a.length, i+1); err != nil {
		destroyRange(&a.ops, &buf, 0, i)
		a.ops.drop(buf.at(i))
		buf.release()
		return nil, err
	}
	a.commit(&buf, a.length+1)
	return a.storage.at(i), nil
}

// Erase removes the element at index i, shifting everything after it
// one slot toward the front by move-assignment and destroying the
// vacated trailing slot. i must be a live index; the check runs only
// under the vecdebug build tag.
func (a *Array[T]) Erase(i int) error {
	assert(i >= 0 && i < a.length, "vector: erase position out of range")
	for j := i; j < a.length-1; j++ {
		if err := a.moveAssign(a.storage.at(j), a.storage.at(j+1)); err != nil {
			return fmt.Errorf("vector: shifting element %d: %w", j+1, err)
		}
	}
	a.PopBack()
	return nil
}
