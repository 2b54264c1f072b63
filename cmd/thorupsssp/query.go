package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/thorupsssp/core"
	"github.com/katalvlaran/thorupsssp/dimacs"
	"github.com/katalvlaran/thorupsssp/mst"
	"github.com/katalvlaran/thorupsssp/thorup"
)

var (
	queryGraphPath string
	querySource    int
	queryAlgorithm string
	queryVerbose   bool
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Compute shortest distances from a source vertex in a DIMACS graph",
	RunE:  runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&queryGraphPath, "graph", "", "path to a DIMACS shortest-paths format graph (required)")
	queryCmd.Flags().IntVar(&querySource, "source", 0, "source vertex, 0-indexed")
	queryCmd.Flags().StringVar(&queryAlgorithm, "algorithm", "kruskal-msb", "msb-MST algorithm: kruskal-msb, fredman-tarjan, prim")
	queryCmd.Flags().BoolVar(&queryVerbose, "verbose", false, "log DIMACS parsing details")
	_ = queryCmd.MarkFlagRequired("graph")
}

func runQuery(_ *cobra.Command, _ []string) error {
	f, err := os.Open(queryGraphPath)
	if err != nil {
		return fmt.Errorf("thorupsssp: opening graph file: %w", err)
	}
	defer f.Close()

	g, err := dimacs.Parse(f, dimacs.Options{Verbose: queryVerbose})
	if err != nil {
		return fmt.Errorf("thorupsssp: parsing graph: %w", err)
	}

	algorithm, err := resolveAlgorithm(queryAlgorithm)
	if err != nil {
		return err
	}

	engine := thorup.NewEngine()
	if err := engine.ConstructMinimumSpanningTree(g, algorithm); err != nil {
		return fmt.Errorf("thorupsssp: constructing msb-MST: %w", err)
	}
	if err := engine.ConstructOtherDataStructures(); err != nil {
		return fmt.Errorf("thorupsssp: preparing data structures: %w", err)
	}

	dist, err := engine.FindShortestPaths(querySource)
	if err != nil {
		return fmt.Errorf("thorupsssp: running query: %w", err)
	}

	for v, d := range dist {
		if d == core.Inf {
			fmt.Printf("%d unreachable\n", v)
			continue
		}
		fmt.Printf("%d %d\n", v, d)
	}

	return nil
}

func resolveAlgorithm(name string) (mst.Algorithm, error) {
	switch name {
	case "kruskal-msb":
		return mst.KruskalMSB{}, nil
	case "fredman-tarjan":
		return mst.FredmanTarjan{}, nil
	case "prim":
		return mst.Prim{}, nil
	default:
		return nil, fmt.Errorf("thorupsssp: unknown algorithm %q", name)
	}
}
