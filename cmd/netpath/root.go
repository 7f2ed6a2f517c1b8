package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/avetra/netpath/core"
	"github.com/avetra/netpath/dijkstra"
	"github.com/avetra/netpath/dot"
	"github.com/avetra/netpath/flow"
	"github.com/avetra/netpath/graphfile"
)

var (
	graphPath  string
	configPath string
	verbose    bool

	cfg *Config
)

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) {
	rootCmd := &cobra.Command{
		Use:          "netpath",
		Short:        "Plan and draw routes over weighted delivery networks.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			explicit := cmd.Flags().Changed("config")
			var err error
			cfg, err = loadConfig(configPath, explicit)
			if err != nil {
				return err
			}
			initLogging(cfg, verbose)

			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&graphPath, "graph", "g", "network.yaml", "path to the network description file")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "netpath.toml", "path to the TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newRouteCmd(), newAugmentCmd(), newMaxflowCmd(), newRenderCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadNetwork reads and validates the network description behind --graph.
func loadNetwork() (*graphfile.Document, *core.Graph, error) {
	doc, err := graphfile.LoadFile(graphPath)
	if err != nil {
		return nil, nil, err
	}
	g, err := doc.Graph()
	if err != nil {
		return nil, nil, err
	}
	log.Debugf("loaded %q: %d vertices, %d edges", graphPath, g.VertexCount(), g.EdgeCount())

	return doc, g, nil
}

func newRouteCmd() *cobra.Command {
	var from, to, dotOut string

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Compute the cheapest route between two vertices.",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, g, err := loadNetwork()
			if err != nil {
				return err
			}
			if from == "" && doc.Source != "" {
				from = doc.Source
			}

			p, err := dijkstra.ShortestPath(g, from, to)
			if err != nil {
				return err
			}

			for _, e := range p.Edges {
				fmt.Printf("%s -> %s  (%d)\n", e.From, e.To, e.Weight)
			}
			fmt.Printf("total cost: %d over %d hops\n", p.Cost, p.Len())

			if dotOut != "" {
				return writeDiagram(dotOut, doc, g, p.Edges)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "route origin (defaults to the description's source)")
	cmd.Flags().StringVar(&to, "to", "", "route destination")
	cmd.Flags().StringVar(&dotOut, "dot", "", "also write a highlighted DOT diagram to this path")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newAugmentCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "augment",
		Short: "Find the shortest augmenting path and its bottleneck capacity.",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, g, err := loadNetwork()
			if err != nil {
				return err
			}
			if from == "" && doc.Source != "" {
				from = doc.Source
			}

			path, bottle, err := flow.ShortestAugmentingPath(cmd.Context(), g, from, to)
			if err != nil {
				return err
			}

			for i, v := range path {
				if i > 0 {
					fmt.Print(" -> ")
				}
				fmt.Print(v)
			}
			fmt.Printf("\nbottleneck: %d\n", bottle)

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "flow source (defaults to the description's source)")
	cmd.Flags().StringVar(&to, "to", "", "flow sink")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newMaxflowCmd() *cobra.Command {
	var from, to, algo string

	cmd := &cobra.Command{
		Use:   "maxflow",
		Short: "Compute the maximum flow between two vertices.",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, g, err := loadNetwork()
			if err != nil {
				return err
			}
			if from == "" && doc.Source != "" {
				from = doc.Source
			}
			if algo == "" {
				algo = cfg.Default.Algorithm
			}

			opts := flow.FlowOptions{Verbose: verbose}
			var mf int64
			switch algo {
			case "edmondskarp":
				mf, _, err = flow.EdmondsKarp(cmd.Context(), g, from, to, opts)
			case "dinic":
				mf, _, err = flow.Dinic(cmd.Context(), g, from, to, opts)
			case "fordfulkerson":
				mf, _, err = flow.FordFulkerson(cmd.Context(), g, from, to, opts)
			default:
				return fmt.Errorf("unknown algorithm %q (want edmondskarp, dinic, or fordfulkerson)", algo)
			}
			if err != nil {
				return err
			}

			fmt.Printf("max flow %s -> %s: %d\n", from, to, mf)

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "flow source (defaults to the description's source)")
	cmd.Flags().StringVar(&to, "to", "", "flow sink")
	cmd.Flags().StringVar(&algo, "algo", "", "algorithm: edmondskarp, dinic, fordfulkerson")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newRenderCmd() *cobra.Command {
	var out, routeTo string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Export the network as a Graphviz DOT diagram.",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, g, err := loadNetwork()
			if err != nil {
				return err
			}

			var highlight []*core.Edge
			if routeTo != "" {
				p, err := dijkstra.ShortestPath(g, doc.Source, routeTo)
				if err != nil {
					return err
				}
				log.Infof("highlighting route %s -> %s, cost %d", doc.Source, routeTo, p.Cost)
				highlight = p.Edges
			}

			return writeDiagram(out, doc, g, highlight)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path for the DOT document (default stdout)")
	cmd.Flags().StringVar(&routeTo, "route-to", "", "highlight the cheapest route from the description's source to this vertex")

	return cmd
}

// writeDiagram emits the annotated DOT document to path, or stdout when
// path is empty.
func writeDiagram(path string, doc *graphfile.Document, g *core.Graph, highlight []*core.Edge) error {
	opts := []dot.Option{
		dot.WithSource(doc.Source),
		dot.WithSinks(doc.Sinks...),
		dot.WithHighlight(highlight),
	}
	if doc.Name != "" {
		opts = append(opts, dot.WithName(doc.Name))
	}

	if path == "" {
		return dot.Export(os.Stdout, g, opts...)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := dot.Export(f, g, opts...); err != nil {
		return err
	}
	log.Infof("diagram written to %s", path)

	return nil
}
