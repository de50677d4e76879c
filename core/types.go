package core

import (
	"cmp"
	"errors"
)

// Sentinel errors shared by the heap implementations.
var (
	// ErrEmptyHeap indicates Min or ExtractMin was called on an empty heap.
	ErrEmptyHeap = errors.New("core: heap is empty")

	// ErrInvalidDecrease indicates a decrease-key whose new value does not
	// strictly precede the current value under the heap comparator.
	ErrInvalidDecrease = errors.New("core: new value does not decrease the key")

	// ErrStaleHandle indicates a handle whose element has already been
	// removed from its heap (extracted or deleted).
	ErrStaleHandle = errors.New("core: handle refers to a removed element")

	// ErrShapeViolation indicates two binomial trees of different order were
	// linked. It is raised as a panic and is unreachable through public heap APIs.
	ErrShapeViolation = errors.New("core: binomial trees of unequal order")
)

// Comparator defines a total order over T.
// It returns a negative number if a precedes b, zero if they are equal in
// the order, and a positive number if a follows b.
type Comparator[T any] func(a, b T) int

// Natural returns the ascending comparator for an ordered type.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse returns a comparator ordering elements opposite to c, turning a
// min-heap into a max-heap.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int { return c(b, a) }
}

// By orders T by a key extracted with key, ascending.
//
//	byDist := core.By(func(it item) int64 { return it.dist })
func By[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

// Then returns a comparator that orders by c and breaks ties with next.
func (c Comparator[T]) Then(next Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if r := c(a, b); r != 0 {
			return r
		}

		return next(a, b)
	}
}
