// Package graphfile loads graph.Graph values from YAML documents of the form
//
//	directed: false
//	vertices: [A, B, C]
//	edges:
//	  - {from: A, to: B, weight: 1}
//	  - {from: B, to: C, weight: 2}
//
// Vertices named only by edges are added implicitly. Every problem in a
// document is reported at once.
package graphfile

import (
	"fmt"
	"io"
	"os"

	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvheap/graph"
)

// ErrInvalidFile matches every validation problem reported by Validate,
// Decode and Load.
var ErrInvalidFile = errors.New("graphfile: invalid graph file")

// File is the decoded form of a graph document.
type File struct {
	Directed bool     `yaml:"directed"`
	Vertices []string `yaml:"vertices"`
	Edges    []Edge   `yaml:"edges"`
}

// Edge is one edge entry of a File.
type Edge struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// Decode reads one YAML document from r. Unknown keys are rejected. An
// empty document decodes to an empty File.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	return &f, nil
}

// Validate reports every empty or duplicate vertex ID, every edge with an
// empty endpoint and every negative weight, aggregated into one error.
func (f *File) Validate() error {
	errs := &errors.M{}
	seen := make(map[string]bool, len(f.Vertices))
	for i, v := range f.Vertices {
		switch {
		case v == "":
			errs.Append(fmt.Errorf("%w: vertices[%d]: empty ID", ErrInvalidFile, i))
		case seen[v]:
			errs.Append(fmt.Errorf("%w: vertices[%d]: duplicate ID %q", ErrInvalidFile, i, v))
		}
		seen[v] = true
	}
	for i, e := range f.Edges {
		if e.From == "" || e.To == "" {
			errs.Append(fmt.Errorf("%w: edges[%d]: empty endpoint", ErrInvalidFile, i))
		}
		if e.Weight < 0 {
			errs.Append(fmt.Errorf("%w: edges[%d]: negative weight %d", ErrInvalidFile, i, e.Weight))
		}
	}

	return errs.Err()
}

// Graph validates f and builds a weighted graph that admits parallel edges
// and self-loops. Edge IDs follow document order: the i-th edge is
// "e<i+1>".
func (f *File) Graph() (*graph.Graph, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	g := graph.NewGraph(
		graph.WithDirected(f.Directed),
		graph.WithWeighted(),
		graph.WithMultiEdges(),
		graph.WithLoops(),
	)
	for _, v := range f.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for i, e := range f.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("edges[%d]: %w", i, err)
		}
	}

	return g, nil
}

// Read decodes and builds a graph from r.
func Read(r io.Reader) (*graph.Graph, error) {
	f, err := Decode(r)
	if err != nil {
		return nil, err
	}

	return f.Graph()
}

// Load reads the graph document at path.
func Load(path string) (*graph.Graph, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	g, err := Read(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
