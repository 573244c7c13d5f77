// Package vector implements a generic growable contiguous sequence
// built on a single manually managed buffer.
//
// # Overview
//
// An Array[T] composes a move-only raw buffer with a live-element
// count. Storage acquisition and element lifetime are kept strictly
// separate: the buffer is logically uninitialized memory, and the
// array constructs, destroys and relocates elements in individual
// slots. This makes the growth choreography explicit and gives strong
// guarantees during reallocation. This is particularly useful for:
//
//   - Element types whose copy or construction can fail
//   - Containers that must survive a failed grow with old data intact
//   - Performance work that needs explicit control over reallocation
//
// # Basic Usage
//
//	arr := vector.New[int]()
//	defer arr.Release() // Clean up when done
//
//	// Append and insert elements
//	arr.Append(1)
//	arr.Append(2)
//	arr.Insert(1, 9) // [1 9 2]
//
//	// Random access and iteration
//	first := arr.Get(0)
//	for _, v := range arr.All() {
//		_ = v
//	}
//	_ = first
//
//	// Clear for reuse, keeping capacity
//	arr.Clear()
//
// # Element Lifecycle Hooks
//
// Fallible element operations are supplied through Ops[T]: New (value
// construction), Clone (copy), Relocate (move) and Drop (destroy). The
// zero Ops describes a trivial element type. Growth paths relocate
// elements into the new buffer only when relocation provably cannot
// fail or when copying is unavailable; otherwise they copy, so a
// failure partway through leaves the old buffer fully valid.
//
// # Failure Guarantees
//
//   - Every reallocating operation either commits completely or leaves
//     the array exactly as it was (when the copy transfer is in effect).
//   - In-place insert and erase do not promise the prior state after a
//     failed element operation, only that nothing leaks and nothing is
//     destroyed twice.
//   - Out-of-range access is a programmer error: checked panics under
//     the vecdebug build tag, undefined behavior otherwise.
//
// # Thread Safety
//
// Array is not safe for concurrent use. Concurrent access requires an
// external lock.
//
// # Performance Characteristics
//
//   - Append: O(1) amortized; capacity doubles on growth
//   - Insert/Erase at index i: O(n - i) element moves
//   - Reserve/Clone: one allocation sized exactly to the request
//   - Clear: O(n) destruction, no allocation; Release: drops storage
//
// # Metrics and Monitoring
//
// The array exposes a statistics snapshot for inspecting growth
// behavior:
//
//	m := arr.Metrics()
//	fmt.Printf("len=%d cap=%d reallocs=%d\n", m.Len, m.Cap, m.Reallocs)
package vector
