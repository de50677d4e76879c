package fibonacci

// node is one element of the heap. Siblings form a circular doubly linked
// ring through left and right; parent and child are plain references, a
// parent points at any one node of its child ring.
type node[T any] struct {
	value  T
	degree int

	// mark is set when a non-root node loses a child. Roots are never marked.
	mark bool

	// forced makes the node precede every other node; set only by Delete.
	forced bool

	parent      *node[T]
	child       *node[T]
	left, right *node[T]

	// gen is bumped each time the node leaves the heap, invalidating
	// handles issued before.
	gen uint64

	owner *owner
}

// owner identifies the heap a node was inserted into. Merge forwards the
// consumed heap's owner to the receiver's, so its nodes resolve to the
// receiver.
type owner struct {
	next *owner
}

// resolve follows forwarding links to the owner of a live heap, halving
// the chain on the way.
func (o *owner) resolve() *owner {
	for o.next != nil {
		if o.next.next != nil {
			o.next = o.next.next
		}
		o = o.next
	}

	return o
}

// Handle identifies an element inserted into a Heap. The zero Handle is
// never valid.
type Handle[T any] struct {
	n   *node[T]
	gen uint64
}

// concat joins ring b into ring a, placing b's members just before a.
// When iterating from a, b's members therefore come last.
func concat[T any](a, b *node[T]) {
	aLeft, bLeft := a.left, b.left
	aLeft.right = b
	b.left = aLeft
	bLeft.right = a
	a.left = bLeft
}

// unlink removes n from its ring and makes it a singleton ring.
func unlink[T any](n *node[T]) {
	n.left.right = n.right
	n.right.left = n.left
	n.left, n.right = n, n
}

// alloc returns a singleton root holding v, recycling a released node when
// one is available.
func (h *Heap[T]) alloc(v T) *node[T] {
	var n *node[T]
	if k := len(h.free); k > 0 {
		n = h.free[k-1]
		h.free[k-1] = nil
		h.free = h.free[:k-1]
	} else {
		n = new(node[T])
	}
	n.value = v
	n.owner = h.id
	n.left, n.right = n, n

	return n
}

// release clears n, bumps its generation and keeps it for reuse.
func (h *Heap[T]) release(n *node[T]) {
	*n = node[T]{gen: n.gen + 1}
	h.free = append(h.free, n)
}
