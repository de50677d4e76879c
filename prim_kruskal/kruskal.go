package prim_kruskal

import (
	"github.com/katalvlaran/lvheap/binomial"
	"github.com/katalvlaran/lvheap/core"
	"github.com/katalvlaran/lvheap/graph"
)

// rankedEdge pairs an edge with its creation rank so equal weights break
// ties in insertion order.
type rankedEdge struct {
	e    *graph.Edge
	rank int
}

var byWeight = core.By(func(r rankedEdge) int64 { return r.e.Weight }).
	Then(core.By(func(r rankedEdge) int { return r.rank }))

// Kruskal computes the MST of g by draining its edges in (weight, ID) order
// from a binomial heap into a disjoint-set forest.
//
// Steps:
//  1. Validate the graph.
//  2. Load every non-loop edge into a binomial heap.
//  3. Extract edges in order, accepting those that join two components.
//  4. Stop after |V|-1 edges; fewer means the graph is disconnected.
//
// Errors: ErrInvalidGraph, ErrDisconnected.
// Complexity: O(E log E + E α(V)) time, O(V + E) space.
func Kruskal(g *graph.Graph) ([]graph.Edge, int64, error) {
	// 1) Validate
	vertices, err := validate(g)
	if err != nil {
		return nil, 0, err
	}
	if len(vertices) == 1 {
		return []graph.Edge{}, 0, nil
	}

	// 2) Build the edge heap
	h := binomial.New(byWeight)
	for i, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		h.Insert(rankedEdge{e: e, rank: i})
	}

	// 3) Union-find over the ordered edges
	dsu := newDisjointSet(vertices)
	need := len(vertices) - 1
	mst := make([]graph.Edge, 0, need)
	var total int64
	for r := range core.Drain[rankedEdge](h) {
		if !dsu.union(r.e.From, r.e.To) {
			continue
		}
		mst = append(mst, *r.e)
		total += r.e.Weight
		if len(mst) == need {
			break
		}
	}

	// 4) Spanning check
	if len(mst) < need {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// disjointSet is a union-find forest with path halving and union by rank.
type disjointSet struct {
	parent map[string]string
	rank   map[string]int
}

func newDisjointSet(ids []string) *disjointSet {
	d := &disjointSet{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		d.parent[id] = id
	}

	return d
}

func (d *disjointSet) find(u string) string {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union joins the sets of u and v and reports whether they were distinct.
func (d *disjointSet) union(u, v string) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	switch {
	case d.rank[ru] < d.rank[rv]:
		d.parent[ru] = rv
	case d.rank[ru] > d.rank[rv]:
		d.parent[rv] = ru
	default:
		d.parent[rv] = ru
		d.rank[ru]++
	}

	return true
}
