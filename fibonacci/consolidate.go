package fibonacci

// consolidate links roots of equal degree until all root degrees are
// distinct, then recomputes min. h.min must point at any root on entry.
//
// The root list is snapshotted first because linking removes roots from
// the ring being walked. degrees[d] holds the single surviving root of
// degree d seen so far.
// Complexity: O(roots + log n).
func (h *Heap[T]) consolidate() {
	roots := h.roots[:0]
	start := h.min
	for x := start; ; {
		roots = append(roots, x)
		x = x.right
		if x == start {
			break
		}
	}

	degrees := h.degrees
	clear(degrees)
	for _, x := range roots {
		d := x.degree
		for d < len(degrees) && degrees[d] != nil {
			y := degrees[d]
			degrees[d] = nil
			// The waiting tree keeps the root on ties.
			if !h.less(x, y) {
				x, y = y, x
			}
			h.link(y, x)
			d++
		}
		for len(degrees) <= d {
			degrees = append(degrees, nil)
		}
		degrees[d] = x
	}

	h.min = nil
	for _, x := range degrees {
		if x != nil && (h.min == nil || h.less(x, h.min)) {
			h.min = x
		}
	}

	clear(roots)
	clear(degrees)
	h.roots = roots
	h.degrees = degrees
}

// link makes root y a child of root x.
func (h *Heap[T]) link(y, x *node[T]) {
	unlink(y)
	y.parent = x
	y.mark = false
	if x.child == nil {
		x.child = y
	} else {
		concat(x.child, y)
	}
	x.degree++
}
