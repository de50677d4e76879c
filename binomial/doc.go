// Package binomial implements binomial trees and the binomial heap built
// from a forest of them.
//
// What & Why
//
//   - A binomial tree of order k has exactly 2^k nodes; its root has k
//     children, which are binomial trees of orders k-1, k-2, …, 0 from left
//     to right. Two trees of equal order are combined by Link: the root that
//     compares larger becomes the leftmost child of the other, producing a
//     tree of order k+1.
//
//   - A binomial heap keeps at most one tree per order, ordered by
//     increasing order. The set of orders present is the binary
//     representation of the element count, so merging two heaps is binary
//     addition with carry: equal orders are linked and carried upward.
//
// Operations and cost (n = elements):
//
//	New(cmp, opts...)  O(1) (O(m log m) with WithValues of m values)
//	Insert(v)          O(log n) worst case, O(1) amortized
//	Merge(other)       O(log n); other is consumed
//	Min()              O(log n) scan of the roots
//	ExtractMin()       O(log n)
//
// Decrease-key and delete are not provided: the representation keeps no
// stable reference to interior nodes. Use package fibonacci for those.
//
// Ties: when Link compares equal roots, its first argument stays root.
// Nothing else about equal elements is guaranteed; extraction is not stable.
//
// Merge consumes its argument. The drained heap panics with ErrConsumed on
// any later use instead of silently sharing trees with the receiver.
package binomial
