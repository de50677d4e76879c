package command

import (
	"github.com/nuclio/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvheap/dijkstra"
	"github.com/katalvlaran/lvheap/internal/graphfile"
)

type pathCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	graphPath      string
	source         string
	target         string
	maxDistance    int64
}

func newPathCommandeer(rootCommandeer *RootCommandeer) *pathCommandeer {
	commandeer := &pathCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "path --graph FILE --source ID [--target ID]",
		Short: "Compute shortest paths with Dijkstra",
		RunE: func(cmd *cobra.Command, args []string) error {
			if commandeer.graphPath == "" {
				return errors.New("Shortest path requires --graph")
			}
			if commandeer.source == "" {
				return errors.New("Shortest path requires --source")
			}

			// initialize root
			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			g, err := graphfile.Load(commandeer.graphPath)
			if err != nil {
				return errors.Wrap(err, "Failed to load graph")
			}

			rootCommandeer.loggerInstance.DebugWith("Loaded graph",
				"path", commandeer.graphPath,
				"vertices", g.VertexCount(),
				"edges", g.EdgeCount(),
				"directed", g.Directed())

			opts := []dijkstra.Option{
				dijkstra.Source(commandeer.source),
				dijkstra.WithReturnPath(),
			}
			if commandeer.maxDistance >= 0 {
				opts = append(opts, dijkstra.WithMaxDistance(commandeer.maxDistance))
			}

			dist, prev, err := dijkstra.Dijkstra(g, opts...)
			if err != nil {
				return errors.Wrap(err, "Failed to compute shortest paths")
			}

			renderer := rootCommandeer.renderer(cmd)
			if commandeer.target == "" {
				return renderer.RenderDistances(rootCommandeer.output, dist, prev)
			}

			route, err := dijkstra.PathTo(prev, commandeer.source, commandeer.target)
			if err != nil {
				return errors.Wrapf(err, "No route to %s", commandeer.target)
			}

			rootCommandeer.loggerInstance.DebugWith("Found route",
				"source", commandeer.source,
				"target", commandeer.target,
				"hops", len(route)-1,
				"distance", dist[commandeer.target])

			return renderer.RenderPath(rootCommandeer.output, route, dist)
		},
	}

	cmd.Flags().StringVarP(&commandeer.graphPath, "graph", "g", "", "Path to a YAML graph file")
	cmd.Flags().StringVarP(&commandeer.source, "source", "s", "", "Source vertex")
	cmd.Flags().StringVarP(&commandeer.target, "target", "t", "", "Only print the route to this vertex")
	cmd.Flags().Int64Var(&commandeer.maxDistance, "max-distance", -1, "Leave vertices farther than this unreached (negative for no limit)")

	commandeer.cmd = cmd

	return commandeer
}
