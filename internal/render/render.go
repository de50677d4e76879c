// Package render prints lvheap command results as tables or YAML.
package render

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nuclio/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvheap/graph"
)

// Output formats accepted by the commands.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// Unreachable is printed in place of an infinite distance.
const Unreachable = "-"

type Renderer struct {
	output io.Writer
}

func NewRenderer(output io.Writer) *Renderer {
	return &Renderer{
		output: output,
	}
}

// RenderTable writes header and records as a borderless table.
func (r *Renderer) RenderTable(header []interface{}, records [][]interface{}) {
	tw := table.NewWriter()
	tw.SetOutputMirror(r.output)
	tw.SetStyle(table.Style{
		Name: "lvheap",
		Box: table.BoxStyle{
			MiddleVertical: "|",
			PaddingLeft:    " ",
			PaddingRight:   " ",
		},
		Options: table.Options{
			DoNotColorBordersAndSeparators: true,
			DrawBorder:                     false,
			SeparateColumns:                true,
			SeparateFooter:                 false,
			SeparateHeader:                 false,
			SeparateRows:                   false,
		},
		Color:  table.ColorOptionsDefault,
		Format: table.FormatOptionsDefault,
		HTML:   table.DefaultHTMLOptions,
		Title:  table.TitleOptionsDefault,
	})
	tw.AppendHeader(table.Row(header), table.RowConfig{})
	tw.AppendRows(lo.Map(records, func(record []interface{}, _ int) table.Row {
		return table.Row(record)
	}), table.RowConfig{})
	tw.Render()
}

func (r *Renderer) RenderYAML(items interface{}) error {
	body, err := yaml.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "Failed to render YAML")
	}

	_, err = r.output.Write(body)

	return err
}

// RenderValues writes one value per line.
func (r *Renderer) RenderValues(format string, values []int) error {
	if format == FormatYAML {
		return r.RenderYAML(values)
	}
	for _, v := range values {
		fmt.Fprintln(r.output, v) // nolint: errcheck
	}

	return nil
}

// DistanceRow is one vertex of a shortest-path result.
type DistanceRow struct {
	Vertex      string `yaml:"vertex"`
	Distance    string `yaml:"distance"`
	Predecessor string `yaml:"predecessor,omitempty"`
}

// DistanceRows turns Dijkstra output into rows sorted by vertex ID.
// prev may be nil.
func DistanceRows(dist map[string]int64, prev map[string]string) []DistanceRow {
	vertices := lo.Keys(dist)
	slices.Sort(vertices)

	return lo.Map(vertices, func(v string, _ int) DistanceRow {
		return DistanceRow{
			Vertex:      v,
			Distance:    formatDistance(dist[v]),
			Predecessor: prev[v],
		}
	})
}

// RenderDistances writes a vertex / distance / predecessor listing.
func (r *Renderer) RenderDistances(format string, dist map[string]int64, prev map[string]string) error {
	rows := DistanceRows(dist, prev)
	if format == FormatYAML {
		return r.RenderYAML(rows)
	}
	r.RenderTable([]interface{}{"Vertex", "Distance", "Predecessor"},
		lo.Map(rows, func(row DistanceRow, _ int) []interface{} {
			return []interface{}{row.Vertex, row.Distance, row.Predecessor}
		}))

	return nil
}

// PathStep is one vertex along a route with its cumulative distance.
type PathStep struct {
	Step     int    `yaml:"step"`
	Vertex   string `yaml:"vertex"`
	Distance int64  `yaml:"distance"`
}

// RenderPath writes the route and the distance reached at each step.
func (r *Renderer) RenderPath(format string, path []string, dist map[string]int64) error {
	steps := lo.Map(path, func(v string, i int) PathStep {
		return PathStep{Step: i, Vertex: v, Distance: dist[v]}
	})
	if format == FormatYAML {
		return r.RenderYAML(steps)
	}
	r.RenderTable([]interface{}{"Step", "Vertex", "Distance"},
		lo.Map(steps, func(s PathStep, _ int) []interface{} {
			return []interface{}{s.Step, s.Vertex, s.Distance}
		}))

	return nil
}

// TreeEdge is one edge of a spanning tree.
type TreeEdge struct {
	ID     string `yaml:"id"`
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// SpanningTree is the YAML form of an MST result.
type SpanningTree struct {
	Method string     `yaml:"method"`
	Total  int64      `yaml:"total"`
	Edges  []TreeEdge `yaml:"edges"`
}

// RenderMST writes the tree edges followed by their total weight.
func (r *Renderer) RenderMST(format, method string, edges []graph.Edge, total int64) error {
	tree := SpanningTree{
		Method: method,
		Total:  total,
		Edges: lo.Map(edges, func(e graph.Edge, _ int) TreeEdge {
			return TreeEdge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight}
		}),
	}
	if format == FormatYAML {
		return r.RenderYAML(tree)
	}
	r.RenderTable([]interface{}{"Edge", "From", "To", "Weight"},
		lo.Map(tree.Edges, func(e TreeEdge, _ int) []interface{} {
			return []interface{}{e.ID, e.From, e.To, e.Weight}
		}))
	fmt.Fprintf(r.output, "Total weight: %d\n", total) // nolint: errcheck

	return nil
}

func formatDistance(d int64) string {
	if d == math.MaxInt64 {
		return Unreachable
	}

	return strconv.FormatInt(d, 10)
}
