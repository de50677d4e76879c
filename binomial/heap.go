package binomial

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/lvheap/core"
)

// Heap is a binomial min-heap ordered by an injected comparator.
// A Heap is not safe for concurrent use.
type Heap[T any] struct {
	cmp      core.Comparator[T]
	roots    []*Tree[T] // strictly increasing by order
	size     int
	consumed bool
}

// New returns an empty heap ordered by cmp. New panics if cmp is nil.
func New[T any](cmp core.Comparator[T], opts ...Option[T]) *Heap[T] {
	if cmp == nil {
		panic("binomial: nil comparator")
	}
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}
	h := &Heap[T]{cmp: cmp}
	for _, v := range o.values {
		h.Insert(v)
	}

	return h
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int { return h.size }

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool { return h.size == 0 }

// Insert adds v to the heap.
//
// Insert is a merge with a single order-0 tree, specialized to walk the
// carry chain in place: O(log n) worst case, O(1) amortized.
func (h *Heap[T]) Insert(v T) {
	h.mustUsable()
	carry := NewTree(v)
	i := 0
	for i < len(h.roots) && h.roots[i].order == carry.order {
		carry = Link(h.roots[i], carry, h.cmp)
		i++
	}
	if i > 0 {
		h.roots[i-1] = carry
		h.roots = h.roots[i-1:]
	} else {
		h.roots = slices.Insert(h.roots, 0, carry)
	}
	h.size++
}

// Min returns the minimum element without removing it.
// It returns core.ErrEmptyHeap if the heap is empty.
// Complexity: O(log n).
func (h *Heap[T]) Min() (T, error) {
	h.mustUsable()
	i := h.minIndex()
	if i < 0 {
		var zero T
		return zero, core.ErrEmptyHeap
	}

	return h.roots[i].value, nil
}

// ExtractMin removes and returns the minimum element.
// It returns core.ErrEmptyHeap if the heap is empty.
//
// Steps:
//  1. Scan the roots for the minimum.
//  2. Remove that tree from the root list.
//  3. Its children, read by increasing order, already form a valid root
//     list; merge them back into the remainder.
//
// Complexity: O(log n).
func (h *Heap[T]) ExtractMin() (T, error) {
	h.mustUsable()
	i := h.minIndex()
	if i < 0 {
		var zero T
		return zero, core.ErrEmptyHeap
	}

	top := h.roots[i]
	rest := slices.Delete(h.roots, i, i+1)
	h.roots = mergeRoots(rest, top.children, h.cmp)
	h.size--
	top.children = nil

	return top.value, nil
}

// Merge moves every element of other into h and leaves other consumed:
// other reports Len() == 0 and panics with ErrConsumed on any later call.
// Both heaps must order elements with equivalent comparators.
//
// Roots are combined as in binary addition: trees of equal order are
// linked and carried to the next order.
// Complexity: O(log n).
func (h *Heap[T]) Merge(other *Heap[T]) {
	h.mustUsable()
	if other == h {
		panic(fmt.Errorf("%w: cannot merge a heap into itself", ErrConsumed))
	}
	other.mustUsable()

	h.roots = mergeRoots(h.roots, other.roots, h.cmp)
	h.size += other.size

	other.roots = nil
	other.size = 0
	other.consumed = true
}

// Orders returns the orders of the root trees, ascending. The orders are
// the set bits of Len().
func (h *Heap[T]) Orders() []int {
	out := make([]int, len(h.roots))
	for i, r := range h.roots {
		out[i] = r.order
	}

	return out
}

// String renders one line per root tree, in increasing order:
//
//	B0: 9
//	B2: 1 4 7 5
func (h *Heap[T]) String() string {
	var b strings.Builder
	for i, r := range h.roots {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "B%d: %s", r.order, r.Preorder())
	}

	return b.String()
}

// minIndex returns the index of the first minimal root, or -1.
func (h *Heap[T]) minIndex() int {
	best := -1
	for i, r := range h.roots {
		if best < 0 || h.cmp(r.value, h.roots[best].value) < 0 {
			best = i
		}
	}

	return best
}

func (h *Heap[T]) mustUsable() {
	if h.consumed {
		panic(ErrConsumed)
	}
}

// mergeRoots adds two root lists, each strictly increasing by order, like a
// ripple-carry adder. At every step the (up to three) trees of the smallest
// pending order are taken: one is emitted as is, two are linked into the
// carry, three emit the old carry and link the other two.
func mergeRoots[T any](a, b []*Tree[T], cmp core.Comparator[T]) []*Tree[T] {
	out := make([]*Tree[T], 0, len(a)+len(b))
	var carry *Tree[T]
	i, j := 0, 0
	for i < len(a) || j < len(b) || carry != nil {
		order := -1
		if carry != nil {
			order = carry.order
		}
		if i < len(a) && (order < 0 || a[i].order < order) {
			order = a[i].order
		}
		if j < len(b) && (order < 0 || b[j].order < order) {
			order = b[j].order
		}

		var same [3]*Tree[T]
		n := 0
		if carry != nil && carry.order == order {
			same[n] = carry
			n++
			carry = nil
		}
		if i < len(a) && a[i].order == order {
			same[n] = a[i]
			n++
			i++
		}
		if j < len(b) && b[j].order == order {
			same[n] = b[j]
			n++
			j++
		}

		switch n {
		case 1:
			out = append(out, same[0])
		case 2:
			carry = Link(same[0], same[1], cmp)
		case 3:
			out = append(out, same[0])
			carry = Link(same[1], same[2], cmp)
		}
	}

	return out
}
