package binomial

import "errors"

// ErrConsumed is the panic value raised when a heap is used after being
// passed to Merge, or when a heap is merged into itself.
var ErrConsumed = errors.New("binomial: heap was consumed by Merge")

type options[T any] struct {
	values []T
}

// Option configures a Heap at construction.
type Option[T any] func(*options[T])

// WithValues loads the given values into the new heap.
func WithValues[T any](vs ...T) Option[T] {
	return func(o *options[T]) {
		o.values = append(o.values, vs...)
	}
}
