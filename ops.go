package vector

// Ops supplies the element lifecycle hooks for an Array. Go has no
// throwing constructors, so fallible element operations are expressed
// as per-array hooks resolved once at construction. Every hook is
// optional; the zero Ops describes a trivial element type whose value
// construction yields the zero value, whose copy and relocation are
// plain assignment, and which needs no cleanup.
type Ops[T any] struct {
	// New value-constructs a fresh element, used by Make and by a
	// growing Resize. Nil means the zero value.
	New func() (T, error)

	// Clone copy-constructs an independent element from src. Nil means
	// plain assignment, which cannot fail.
	Clone func(src T) (T, error)

	// Relocate moves src into a new slot, leaving *src destroyable but
	// unused. Nil means a bitwise transfer, which cannot fail and
	// leaves *src zeroed.
	Relocate func(src *T) (T, error)

	// NoFailRelocate declares that Relocate never returns an error.
	// Growth paths relocate elements into a fresh buffer only when
	// relocation provably cannot fail (or when copying is unavailable);
	// otherwise they clone, so a mid-transfer failure leaves the old
	// buffer intact.
	NoFailRelocate bool

	// NoClone forbids copying entirely. Every copying operation
	// (Append, Insert, Clone, Assign) then reports ErrNotCloneable,
	// and growth paths always relocate. Takes precedence over Clone.
	NoClone bool

	// Drop destroys an element before its slot is reused or freed.
	// Nil means no cleanup. The slot is zeroed either way so the
	// garbage collector can reclaim whatever the element referenced.
	// Drop is also invoked on relocated-from and zero-value slots and
	// must treat them as owning nothing.
	Drop func(*T)
}

// relocateWins reports whether growth paths move elements into a new
// buffer rather than copying them: relocation must be provably unable
// to fail, or copying must be unavailable.
func (o *Ops[T]) relocateWins() bool {
	if o.NoClone {
		return true
	}
	if o.Relocate == nil {
		return true
	}
	return o.NoFailRelocate
}

// construct value-constructs a fresh element.
func (o *Ops[T]) construct() (T, error) {
	if o.New == nil {
		var zero T
		return zero, nil
	}
	return o.New()
}

// clone copy-constructs an independent element from src.
func (o *Ops[T]) clone(src T) (T, error) {
	if o.NoClone {
		var zero T
		return zero, ErrNotCloneable
	}
	if o.Clone == nil {
		return src, nil
	}
	return o.Clone(src)
}

// relocate moves the element at src into the returned value. The
// source is left destroyable but unused.
func (o *Ops[T]) relocate(src *T) (T, error) {
	if o.Relocate == nil {
		v := *src
		var zero T
		*src = zero
		return v, nil
	}
	return o.Relocate(src)
}

// drop destroys the element at p and zeroes its slot.
func (o *Ops[T]) drop(p *T) {
	if o.Drop != nil {
		o.Drop(p)
	}
	var zero T
	*p = zero
}
