package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvheap/graph"
)

// ErrInvalidGraph indicates a nil, directed or unweighted graph.
// MST requires an undirected, weighted graph.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected, weighted graph")

// ErrEmptyRoot indicates Prim was called with an empty root on a graph with
// more than one vertex.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrDisconnected indicates that no spanning tree exists: the graph is
// empty or has more than one component.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates MSTOptions.Method names no algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm in Compute.
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm in Compute.
const MethodKruskal = "kruskal"

// MSTOptions configures Compute.
type MSTOptions struct {
	// Method is MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim; ignored by Kruskal.
	Root string
}

// Option mutates MSTOptions.
type Option func(*MSTOptions)

// WithMethod selects the algorithm.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets Prim's starting vertex.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns Kruskal with no root.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   "",
	}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute dispatches to Prim or Kruskal according to opts.Method and returns
// the MST edges and their total weight.
func Compute(g *graph.Graph, opts MSTOptions) ([]graph.Edge, int64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, opts.Root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// validate checks the graph shape shared by both algorithms and returns
// the sorted vertex list.
func validate(g *graph.Graph) ([]string, error) {
	if g == nil || !g.Weighted() || g.Directed() {
		return nil, ErrInvalidGraph
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, ErrDisconnected
	}

	return vertices, nil
}
