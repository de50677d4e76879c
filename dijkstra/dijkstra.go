package dijkstra

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvheap/core"
	"github.com/katalvlaran/lvheap/fibonacci"
	"github.com/katalvlaran/lvheap/graph"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of the weighted graph g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (math.MaxInt64 if unreachable).
//   - prev: predecessor map if WithReturnPath was given, nil otherwise.
//     prev[v] == u means the shortest path to v ends with u→v;
//     prev[v] == "" for the source and for unreachable vertices.
//   - err:  a sentinel error if inputs are invalid.
//
// Validation order:
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. g must contain Source (ErrVertexNotFound).
//
// Negative weights cannot occur: graph.AddEdge rejects them.
//
// Complexity:
//
//   - Time:  O(E + V log V) amortized; each vertex holds one heap element
//     and every improvement is a Fibonacci decrease-key.
//   - Space: O(V)
func Dijkstra(g *graph.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	// 3) Run
	r := newRunner(g, cfg)
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the vertex sequence source→…→target from a predecessor
// map returned by Dijkstra with WithReturnPath.
//
// Errors:
//   - ErrVertexNotFound if target is not a key of prev.
//   - ErrNoPath if the predecessor chain from target does not reach source.
func PathTo(prev map[string]string, source, target string) ([]string, error) {
	if _, ok := prev[target]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, target)
	}

	path := []string{target}
	for cur := target; cur != source; {
		p := prev[cur]
		// A chain longer than the map means a cycle: no valid path.
		if p == "" || len(path) > len(prev) {
			return nil, fmt.Errorf("%w: %q → %q", ErrNoPath, source, target)
		}
		path = append(path, p)
		cur = p
	}

	slices.Reverse(path)

	return path, nil
}

// item is the heap element of a vertex: its tentative distance.
type item struct {
	id   string
	dist int64
}

// byDistance orders items by distance, then ID so runs are deterministic.
var byDistance = core.By(func(it item) int64 { return it.dist }).
	Then(core.By(func(it item) string { return it.id }))

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *graph.Graph
	options Options
	dist    map[string]int64
	prev    map[string]string
	settled map[string]bool

	pq      *fibonacci.Heap[item]
	handles map[string]fibonacci.Handle[item] // vertices currently in pq
}

func newRunner(g *graph.Graph, cfg Options) *runner {
	v := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, v),
		settled: make(map[string]bool, v),
		pq:      fibonacci.New(byDistance, fibonacci.WithCapacity[item](v)),
		handles: make(map[string]fibonacci.Handle[item], v),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, v)
	}

	return r
}

// init sets every distance to +∞ and queues the source at 0.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.MaxInt64
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	r.dist[r.options.Source] = 0
	r.handles[r.options.Source] = r.pq.Insert(item{id: r.options.Source, dist: 0})
}

// process settles vertices in order of distance until the heap is empty or
// the next distance exceeds MaxDistance.
func (r *runner) process() error {
	for !r.pq.IsEmpty() {
		// 1) Take the closest unsettled vertex.
		it, err := r.pq.ExtractMin()
		if err != nil {
			return err
		}
		delete(r.handles, it.id)

		// 2) Distances only grow from here on.
		if it.dist > r.options.MaxDistance {
			break
		}

		// 3) Settle and relax.
		r.settled[it.id] = true
		if err = r.relax(it.id); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the neighbors of the settled vertex u. A vertex seen for
// the first time is inserted; an improvement on a queued vertex is a
// decrease-key on its handle.
func (r *runner) relax(u string) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	du := r.dist[u]
	for _, e := range edges {
		v := e.Other(u)
		w := e.Weight
		if r.settled[v] || w >= r.options.InfEdgeThreshold {
			continue
		}
		if w > math.MaxInt64-du {
			continue
		}
		nd := du + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}

		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}
		if hd, queued := r.handles[v]; queued {
			if err = r.pq.DecreaseKey(hd, item{id: v, dist: nd}); err != nil {
				return fmt.Errorf("dijkstra: decrease %q: %w", v, err)
			}
		} else {
			r.handles[v] = r.pq.Insert(item{id: v, dist: nd})
		}
	}

	return nil
}
