// Package core holds the contracts shared by every heap in lvheap.
//
// What lives here:
//
//   - Comparator[T]: the injected total order. A comparator returns a
//     negative number when a precedes b, zero when they tie, and a positive
//     number otherwise, the same convention as cmp.Compare and slices.SortFunc.
//     Heaps store the comparator once at construction and call it on every
//     comparison; there is no global ordering state.
//   - Natural, Reverse, By: ready-made comparators.
//   - MinQueue[T]: the minimum-oriented surface shared by binomial.Heap and
//     fibonacci.Heap (Len, Min, ExtractMin).
//   - Drain, Sorted: consume a MinQueue in extraction order.
//   - Sentinel errors used by all heaps.
//
// Errors:
//
//	ErrEmptyHeap       – Min/ExtractMin on a heap with zero elements.
//	ErrInvalidDecrease – decrease-key with a value that does not strictly precede the current one.
//	ErrStaleHandle     – a handle whose element was already removed.
//	ErrShapeViolation  – internal: binomial trees of unequal order were linked.
//
// Heaps in lvheap are not safe for concurrent mutation; callers that share
// one across goroutines must synchronize externally.
package core
