package binomial

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvheap/core"
)

// Tree is a binomial tree node. The zero value is not usable; create trees
// with NewTree and grow them with Link.
type Tree[T any] struct {
	value T
	order int

	// children[i] has order i, so the slice reads right to left in the
	// conventional descending layout and is itself a valid root list.
	children []*Tree[T]
}

// NewTree returns an order-0 tree holding v.
func NewTree[T any](v T) *Tree[T] {
	return &Tree[T]{value: v}
}

// Link combines two trees of equal order into one tree of order+1 and
// returns its root. The root that compares larger under cmp becomes the
// leftmost child of the other; on a tie a stays root.
//
// Both arguments are consumed. Link panics with an error wrapping
// core.ErrShapeViolation if the orders differ.
// Complexity: O(1) amortized.
func Link[T any](a, b *Tree[T], cmp core.Comparator[T]) *Tree[T] {
	if a.order != b.order {
		panic(fmt.Errorf("%w: order %d with order %d", core.ErrShapeViolation, a.order, b.order))
	}
	if cmp(b.value, a.value) < 0 {
		a, b = b, a
	}
	a.children = append(a.children, b)
	a.order++

	return a
}

// Value returns the value stored at the root.
func (t *Tree[T]) Value() T { return t.value }

// Order returns the number of children of the root.
func (t *Tree[T]) Order() int { return t.order }

// Size returns the number of nodes in the tree, 2^Order().
func (t *Tree[T]) Size() int { return 1 << t.order }

// Children returns the root's subtrees from left to right, that is by
// descending order. The slice is a copy; the subtrees are shared.
func (t *Tree[T]) Children() []*Tree[T] {
	out := make([]*Tree[T], len(t.children))
	for i, c := range t.children {
		out[len(out)-1-i] = c
	}

	return out
}

// Preorder returns the tree's values in preorder (root, then children
// left to right), separated by single spaces.
func (t *Tree[T]) Preorder() string {
	var b strings.Builder
	t.preorder(&b)

	return b.String()
}

func (t *Tree[T]) preorder(b *strings.Builder) {
	fmt.Fprint(b, t.value)
	for i := len(t.children) - 1; i >= 0; i-- {
		b.WriteByte(' ')
		t.children[i].preorder(b)
	}
}

// String implements fmt.Stringer using Preorder.
func (t *Tree[T]) String() string { return t.Preorder() }
