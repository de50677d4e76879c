package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/lvheap/core"
	"github.com/katalvlaran/lvheap/fibonacci"
	"github.com/katalvlaran/lvheap/graph"
)

// frontier is the heap element of a vertex outside the tree: the lightest
// known edge connecting it to the tree.
type frontier struct {
	id   string
	key  int64
	edge *graph.Edge // nil for the root
}

var byKey = core.By(func(f frontier) int64 { return f.key }).
	Then(core.By(func(f frontier) string { return f.id }))

// Prim computes the MST of g grown from root.
//
// Each vertex outside the tree holds one Fibonacci heap element keyed by
// its lightest connecting edge. When a settled vertex offers a lighter
// edge, the key is lowered with DecreaseKey. Self-loops are ignored; among
// parallel edges the lightest wins, ties going to the lower edge ID.
//
// Errors: ErrInvalidGraph, ErrDisconnected, ErrEmptyRoot and
// graph.ErrVertexNotFound (wrapped) for an unknown root.
//
// Complexity: O(E + V log V) amortized; O(V) heap space.
func Prim(g *graph.Graph, root string) ([]graph.Edge, int64, error) {
	// 1) Validate
	vertices, err := validate(g)
	if err != nil {
		return nil, 0, err
	}
	if len(vertices) == 1 {
		if vertices[0] != root {
			return nil, 0, fmt.Errorf("%w: root %q", graph.ErrVertexNotFound, root)
		}
		return []graph.Edge{}, 0, nil
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !g.HasVertex(root) {
		return nil, 0, fmt.Errorf("%w: root %q", graph.ErrVertexNotFound, root)
	}

	// 2) Seed the heap with the root
	n := len(vertices)
	pq := fibonacci.New(byKey, fibonacci.WithCapacity[frontier](n))
	handles := make(map[string]fibonacci.Handle[frontier], n)
	inTree := make(map[string]bool, n)
	handles[root] = pq.Insert(frontier{id: root})

	mst := make([]graph.Edge, 0, n-1)
	var total int64

	// 3) Grow the tree one vertex at a time
	for !pq.IsEmpty() {
		f, err := pq.ExtractMin()
		if err != nil {
			return nil, 0, err
		}
		delete(handles, f.id)
		inTree[f.id] = true
		if f.edge != nil {
			mst = append(mst, *f.edge)
			total += f.key
		}

		edges, err := g.Neighbors(f.id)
		if err != nil {
			return nil, 0, err
		}
		for _, e := range edges {
			v := e.Other(f.id)
			if v == f.id || inTree[v] {
				continue
			}
			next := frontier{id: v, key: e.Weight, edge: e}
			hd, queued := handles[v]
			if !queued {
				handles[v] = pq.Insert(next)
				continue
			}
			cur, err := pq.Value(hd)
			if err != nil {
				return nil, 0, err
			}
			if e.Weight < cur.key {
				if err = pq.DecreaseKey(hd, next); err != nil {
					return nil, 0, err
				}
			}
		}
	}

	// 4) Every vertex must have joined
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
