// Package fibonacci implements a Fibonacci heap: a circular list of
// heap-ordered trees whose shape is repaired lazily.
//
// What & Why
//
//   - Insert and Merge only splice circular lists, so both are O(1). The
//     work is deferred to ExtractMin, which consolidates the root list by
//     linking roots of equal degree until every degree is distinct.
//   - DecreaseKey cuts a node that now precedes its parent and moves it to
//     the root list. A non-root node that loses a second child is cut as
//     well (cascading cut), tracked by a per-node mark bit. This keeps every
//     node of degree k above F(k+2) descendants, which bounds degrees by
//     O(log n) and gives the amortized costs below.
//
// Operations and amortized cost (n = elements):
//
//	Insert(v) Handle   O(1)
//	Merge(other)       O(1); other is consumed
//	Min()              O(1)
//	ExtractMin()       O(log n)
//	DecreaseKey(h, v)  O(1)
//	Delete(h)          O(log n)
//
// Handles
//
// Insert returns a Handle, a small value identifying the inserted element.
// A handle stays valid until its element leaves the heap through
// ExtractMin or Delete; afterwards every call taking it fails with
// core.ErrStaleHandle, even if the heap has recycled the node for a new
// element. After Merge, handles from the consumed heap are valid on the
// receiver. A handle passed to a heap it never belonged to also fails with
// core.ErrStaleHandle.
//
// Ties: during consolidation the tree that was already waiting in the
// degree table stays root when the two roots compare equal. Extraction order
// among equal elements is otherwise unspecified.
package fibonacci
