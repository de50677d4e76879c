package fibonacci

import "github.com/katalvlaran/lvheap/core"

// DecreaseKey replaces the value of the element identified by hd with v.
//
// Errors:
//   - core.ErrStaleHandle if the element is no longer in the heap.
//   - core.ErrInvalidDecrease unless v strictly precedes the current value.
//
// If v now precedes the parent's value the node is cut to the root list,
// followed by a cascading cut over the marked ancestors.
// Complexity: O(1) amortized.
func (h *Heap[T]) DecreaseKey(hd Handle[T], v T) error {
	n, err := h.lookup(hd)
	if err != nil {
		return err
	}
	if h.cmp(v, n.value) >= 0 {
		return core.ErrInvalidDecrease
	}
	n.value = v
	h.bubble(n)

	return nil
}

// Delete removes the element identified by hd and returns its value.
// It returns core.ErrStaleHandle if the element is no longer in the heap.
//
// The node is forced below every other element, cut to the root list like
// a decrease-key, and removed by ExtractMin.
// Complexity: O(log n) amortized.
func (h *Heap[T]) Delete(hd Handle[T]) (T, error) {
	n, err := h.lookup(hd)
	if err != nil {
		var zero T
		return zero, err
	}
	n.forced = true
	h.bubble(n)

	return h.ExtractMin()
}

// Value returns the current value of the element identified by hd, or
// core.ErrStaleHandle.
func (h *Heap[T]) Value(hd Handle[T]) (T, error) {
	n, err := h.lookup(hd)
	if err != nil {
		var zero T
		return zero, err
	}

	return n.value, nil
}

// Contains reports whether the element identified by hd is still in the heap.
func (h *Heap[T]) Contains(hd Handle[T]) bool {
	_, err := h.lookup(hd)

	return err == nil
}

func (h *Heap[T]) lookup(hd Handle[T]) (*node[T], error) {
	h.mustUsable()
	if hd.n == nil || hd.n.gen != hd.gen || hd.n.owner.resolve() != h.id {
		return nil, core.ErrStaleHandle
	}

	return hd.n, nil
}

// bubble restores heap order after n's key decreased.
func (h *Heap[T]) bubble(n *node[T]) {
	if p := n.parent; p != nil && h.less(n, p) {
		h.cut(n, p)
		h.cascadingCut(p)
	}
	if h.less(n, h.min) {
		h.min = n
	}
}

// cut moves child n of p to the root list, unmarked.
func (h *Heap[T]) cut(n, p *node[T]) {
	if p.child == n {
		if n.right == n {
			p.child = nil
		} else {
			p.child = n.right
		}
	}
	unlink(n)
	p.degree--
	n.parent = nil
	n.mark = false
	concat(h.min, n)
}

// cascadingCut walks up from p: an unmarked non-root is marked and the walk
// stops; a marked non-root is cut and the walk continues with its parent.
func (h *Heap[T]) cascadingCut(p *node[T]) {
	for p.parent != nil {
		if !p.mark {
			p.mark = true
			return
		}
		gp := p.parent
		h.cut(p, gp)
		p = gp
	}
}
