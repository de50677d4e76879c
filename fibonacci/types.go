package fibonacci

import "errors"

// ErrConsumed is the panic value raised when a heap is used after being
// passed to Merge, or when a heap is merged into itself.
var ErrConsumed = errors.New("fibonacci: heap was consumed by Merge")

type options[T any] struct {
	capacity int
	values   []T
}

// Option configures a Heap at construction.
type Option[T any] func(*options[T])

// WithCapacity pre-allocates room for n elements. Nodes released by
// ExtractMin and Delete are recycled either way.
func WithCapacity[T any](n int) Option[T] {
	return func(o *options[T]) {
		if n < 0 {
			panic("fibonacci: negative capacity")
		}
		o.capacity = n
	}
}

// WithValues loads the given values into the new heap. Their handles are
// not returned; use Insert when handles are needed.
func WithValues[T any](vs ...T) Option[T] {
	return func(o *options[T]) {
		o.values = append(o.values, vs...)
	}
}
