package graph

import (
	"sort"
	"strconv"
)

// AddVertex inserts a vertex if missing. Adding an existing vertex is a no-op.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = nil
}

// HasVertex reports whether id is a vertex of g.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge creates a new edge from→to, adding missing endpoints, and returns
// its ID.
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is empty.
//   - ErrBadWeight if weight < 0, or weight != 0 on an unweighted graph.
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed if an edge between the endpoints already exists
//     and multi-edges are disabled.
//
// Complexity: O(1) amortized, O(deg) for the multi-edge check.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 || (!g.weighted && weight != 0) {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Multi-edge check before any mutation
	if !g.allowMulti && g.connectedLocked(from, to) {
		return "", ErrMultiEdgeNotAllowed
	}

	// 3) Ensure endpoints and store the edge
	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.nextEdgeID++
	e := &Edge{
		ID:       "e" + strconv.FormatUint(g.nextEdgeID, 10),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
	}
	g.edges[e.ID] = e
	g.adjacency[from] = append(g.adjacency[from], e.ID)
	if from != to {
		g.adjacency[to] = append(g.adjacency[to], e.ID)
	}

	return e.ID, nil
}

// connectedLocked reports whether an edge already joins from and to in the
// direction(s) a new edge would occupy.
func (g *Graph) connectedLocked(from, to string) bool {
	for _, eid := range g.adjacency[from] {
		e := g.edges[eid]
		if e.From == from && e.To == to {
			return true
		}
		if !g.directed && e.From == to && e.To == from {
			return true
		}
	}

	return false
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns all edges in creation order.
// The returned *Edge values must be treated as read-only.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortByID(out)

	return out
}

// Neighbors returns the edges traversable out of id, in creation order.
// Undirected edges are reported from both endpoints; directed edges only
// from their From vertex. Use Edge.Other(id) to obtain the far endpoint.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]*Edge, 0, len(g.adjacency[id]))
	for _, eid := range g.adjacency[id] {
		e := g.edges[eid]
		if e.Directed && e.From != id {
			continue
		}
		out = append(out, e)
	}
	sortByID(out)

	return out, nil
}

// Weighted reports whether the graph accepts non-zero weights.
func (g *Graph) Weighted() bool { return g.weighted }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// sortByID orders edges by numeric ID suffix so "e10" follows "e9".
func sortByID(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool {
		return edgeSeq(edges[i].ID) < edgeSeq(edges[j].ID)
	})
}

func edgeSeq(id string) uint64 {
	n, _ := strconv.ParseUint(id[1:], 10, 64)

	return n
}
