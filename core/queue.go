package core

import "iter"

// MinQueue is the minimum-oriented access shared by all heaps in lvheap.
type MinQueue[T any] interface {
	// Len returns the number of elements held.
	Len() int

	// Min returns the minimum element without removing it, or ErrEmptyHeap.
	Min() (T, error)

	// ExtractMin removes and returns the minimum element, or ErrEmptyHeap.
	ExtractMin() (T, error)
}

// Drain returns an iterator that extracts elements from q in
// non-decreasing order until q is empty or the loop stops early.
// Elements not yet yielded stay in q.
func Drain[T any](q MinQueue[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for q.Len() > 0 {
			v, err := q.ExtractMin()
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Sorted empties q and returns its elements in extraction order.
func Sorted[T any](q MinQueue[T]) []T {
	out := make([]T, 0, q.Len())
	for v := range Drain(q) {
		out = append(out, v)
	}

	return out
}
