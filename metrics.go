package vector

import "unsafe"

// ElemSize returns the size in bytes of one element slot.
func (a *Array[T]) ElemSize() int {
	return int(unsafe.Sizeof(*new(T)))
}

// SizeInUse returns the number of bytes occupied by live elements.
func (a *Array[T]) SizeInUse() int {
	return a.length * a.ElemSize()
}

// Utilization returns the ratio of live elements to capacity (0.0 to
// 1.0). Returns 0.0 when the array has no capacity.
func (a *Array[T]) Utilization() float64 {
	if a.storage.capacity == 0 {
		return 0
	}
	return float64(a.length) / float64(a.storage.capacity)
}

// Reallocs returns the cumulative number of buffer replacements this
// array has performed. Appending N elements to an empty array grows the
// buffer O(log N) times, which this counter makes observable.
func (a *Array[T]) Reallocs() int {
	return a.reallocs
}

// Metrics returns a snapshot of array statistics.
func (a *Array[T]) Metrics() ArrayMetrics {
	return ArrayMetrics{
		Len:         a.length,
		Cap:         a.storage.capacity,
		ElemSize:    a.ElemSize(),
		SizeInUse:   a.SizeInUse(),
		Reallocs:    a.reallocs,
		Utilization: a.Utilization(),
	}
}

// ArrayMetrics contains statistical information about an array.
type ArrayMetrics struct {
	Len         int     // Live element count
	Cap         int     // Slot capacity of the current buffer
	ElemSize    int     // Size of one slot in bytes
	SizeInUse   int     // Bytes occupied by live elements
	Reallocs    int     // Cumulative buffer replacements
	Utilization float64 // Ratio of live elements to capacity (0.0-1.0)
}
