package fibonacci

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvheap/core"
)

// Heap is a Fibonacci min-heap ordered by an injected comparator.
// A Heap is not safe for concurrent use.
type Heap[T any] struct {
	cmp  core.Comparator[T]
	id   *owner
	min  *node[T] // minimum root; nil iff the heap is empty
	size int

	free     []*node[T] // released nodes awaiting reuse
	degrees  []*node[T] // consolidation scratch, indexed by degree
	roots    []*node[T] // consolidation scratch, root snapshot
	consumed bool
}

// New returns an empty heap ordered by cmp. New panics if cmp is nil.
func New[T any](cmp core.Comparator[T], opts ...Option[T]) *Heap[T] {
	if cmp == nil {
		panic("fibonacci: nil comparator")
	}
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}

	h := &Heap[T]{cmp: cmp, id: new(owner)}
	if o.capacity > 0 {
		slab := make([]node[T], o.capacity)
		h.free = make([]*node[T], o.capacity, o.capacity)
		for i := range slab {
			h.free[i] = &slab[i]
		}
	}
	for _, v := range o.values {
		h.Insert(v)
	}

	return h
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int { return h.size }

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool { return h.size == 0 }

// Insert adds v as a new singleton root and returns its handle.
// Complexity: O(1).
func (h *Heap[T]) Insert(v T) Handle[T] {
	h.mustUsable()
	n := h.alloc(v)
	h.addRoot(n)
	h.size++

	return Handle[T]{n: n, gen: n.gen}
}

// Min returns the minimum element without removing it.
// It returns core.ErrEmptyHeap if the heap is empty.
// Complexity: O(1).
func (h *Heap[T]) Min() (T, error) {
	h.mustUsable()
	if h.min == nil {
		var zero T
		return zero, core.ErrEmptyHeap
	}

	return h.min.value, nil
}

// ExtractMin removes and returns the minimum element, invalidating its
// handle. It returns core.ErrEmptyHeap if the heap is empty.
//
// Steps:
//  1. Move every child of the minimum to the root list, clearing parent
//     and mark.
//  2. Remove the minimum from the root list.
//  3. Consolidate the remaining roots and locate the new minimum.
//
// Complexity: O(log n) amortized.
func (h *Heap[T]) ExtractMin() (T, error) {
	h.mustUsable()
	z := h.min
	if z == nil {
		var zero T
		return zero, core.ErrEmptyHeap
	}

	// 1) Promote children
	if c := z.child; c != nil {
		x := c
		for {
			x.parent = nil
			x.mark = false
			x = x.right
			if x == c {
				break
			}
		}
		concat(z, c)
		z.child = nil
	}

	// 2) Detach z
	if z.right == z {
		h.min = nil
	} else {
		h.min = z.right
		unlink(z)
		// 3) Restore distinct root degrees
		h.consolidate()
	}
	h.size--

	v := z.value
	h.release(z)

	return v, nil
}

// Merge moves every element of other into h in O(1) by splicing the root
// lists. other is consumed: it reports Len() == 0 and panics with
// ErrConsumed on any later call. Handles issued by other remain valid on h.
// Both heaps must order elements with equivalent comparators.
func (h *Heap[T]) Merge(other *Heap[T]) {
	h.mustUsable()
	if other == h {
		panic(fmt.Errorf("%w: cannot merge a heap into itself", ErrConsumed))
	}
	other.mustUsable()

	if m := other.min; m != nil {
		if h.min == nil {
			h.min = m
		} else {
			concat(h.min, m)
			if h.less(m, h.min) {
				h.min = m
			}
		}
	}
	h.size += other.size
	other.id.next = h.id

	other.min = nil
	other.size = 0
	other.free = nil
	other.degrees = nil
	other.roots = nil
	other.consumed = true
}

// String renders the minimum tree on a "Min:" line followed by one
// "Tree i:" line per other root, each in preorder.
//
//	Min: 0
//	Tree 1: 1
//	Tree 2: 3 4
func (h *Heap[T]) String() string {
	if h.min == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("Min: ")
	writePreorder(&b, h.min)
	i := 1
	for r := h.min.right; r != h.min; r = r.right {
		fmt.Fprintf(&b, "\nTree %d: ", i)
		writePreorder(&b, r)
		i++
	}

	return b.String()
}

func writePreorder[T any](b *strings.Builder, n *node[T]) {
	fmt.Fprint(b, n.value)
	if c := n.child; c != nil {
		x := c
		for {
			b.WriteByte(' ')
			writePreorder(b, x)
			x = x.right
			if x == c {
				break
			}
		}
	}
}

// addRoot places the singleton n on the root list and updates min.
func (h *Heap[T]) addRoot(n *node[T]) {
	if h.min == nil {
		h.min = n
		return
	}
	concat(h.min, n)
	if h.less(n, h.min) {
		h.min = n
	}
}

// less reports whether a strictly precedes b. A forced node precedes every
// node that is not forced.
func (h *Heap[T]) less(a, b *node[T]) bool {
	if a.forced || b.forced {
		return a.forced && !b.forced
	}

	return h.cmp(a.value, b.value) < 0
}

func (h *Heap[T]) mustUsable() {
	if h.consumed {
		panic(ErrConsumed)
	}
}
