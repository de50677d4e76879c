package command

import (
	"github.com/nuclio/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvheap/internal/graphfile"
	"github.com/katalvlaran/lvheap/prim_kruskal"
)

type mstCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	graphPath      string
	options        prim_kruskal.MSTOptions
}

func newMSTCommandeer(rootCommandeer *RootCommandeer) *mstCommandeer {
	commandeer := &mstCommandeer{
		rootCommandeer: rootCommandeer,
		options:        prim_kruskal.DefaultOptions(),
	}

	cmd := &cobra.Command{
		Use:   "mst --graph FILE [--method prim|kruskal] [--root ID]",
		Short: "Compute a minimum spanning tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			if commandeer.graphPath == "" {
				return errors.New("Spanning tree requires --graph")
			}

			// initialize root
			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			g, err := graphfile.Load(commandeer.graphPath)
			if err != nil {
				return errors.Wrap(err, "Failed to load graph")
			}

			// Prim starts from the smallest vertex ID unless told otherwise
			if commandeer.options.Method == prim_kruskal.MethodPrim && commandeer.options.Root == "" {
				if vertices := g.Vertices(); len(vertices) > 0 {
					commandeer.options.Root = vertices[0]
				}
			}

			rootCommandeer.loggerInstance.DebugWith("Computing spanning tree",
				"path", commandeer.graphPath,
				"method", commandeer.options.Method,
				"root", commandeer.options.Root,
				"vertices", g.VertexCount(),
				"edges", g.EdgeCount())

			edges, total, err := prim_kruskal.Compute(g, commandeer.options)
			if err != nil {
				return errors.Wrap(err, "Failed to compute spanning tree")
			}

			return rootCommandeer.renderer(cmd).RenderMST(rootCommandeer.output, commandeer.options.Method, edges, total)
		},
	}

	cmd.Flags().StringVarP(&commandeer.graphPath, "graph", "g", "", "Path to a YAML graph file")
	cmd.Flags().StringVarP(&commandeer.options.Method, "method", "m", commandeer.options.Method, "Algorithm - \"prim\" or \"kruskal\"")
	cmd.Flags().StringVarP(&commandeer.options.Root, "root", "r", "", "Root vertex for Prim (default: smallest vertex ID)")

	commandeer.cmd = cmd

	return commandeer
}
