package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/thorupsssp/dimacs"
	"github.com/katalvlaran/thorupsssp/randgraph"
)

var (
	genVertices       int
	genMaxWeight      int64
	genEdgesPerVertex float64
	genProbability    float64
	genSeed           int64
	genOut            string
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a random connected weighted graph and write it in DIMACS format",
	RunE:  runGen,
}

func init() {
	genCmd.Flags().IntVar(&genVertices, "vertices", 100, "number of vertices")
	genCmd.Flags().Int64Var(&genMaxWeight, "max-weight", 1000, "maximum edge weight (weights are drawn from [1, max-weight])")
	genCmd.Flags().Float64Var(&genEdgesPerVertex, "edges-per-vertex", 0, "target average edges per vertex (mutually exclusive with --probability)")
	genCmd.Flags().Float64Var(&genProbability, "probability", 0, "probability of connecting two non-adjacent vertices (mutually exclusive with --edges-per-vertex)")
	genCmd.Flags().Int64Var(&genSeed, "seed", 1, "random seed")
	genCmd.Flags().StringVar(&genOut, "out", "", "output DIMACS file path (required)")
	_ = genCmd.MarkFlagRequired("out")
}

func runGen(_ *cobra.Command, _ []string) error {
	if genEdgesPerVertex > 0 && genProbability > 0 {
		return fmt.Errorf("thorupsssp: --edges-per-vertex and --probability are mutually exclusive")
	}

	opts := []randgraph.Option{randgraph.WithSeed(genSeed)}
	switch {
	case genEdgesPerVertex > 0:
		opts = append(opts, randgraph.WithEdgesPerVertex(genEdgesPerVertex))
	case genProbability > 0:
		opts = append(opts, randgraph.WithProbability(genProbability))
	}

	g, err := randgraph.Generate(genVertices, genMaxWeight, opts...)
	if err != nil {
		return fmt.Errorf("thorupsssp: generating graph: %w", err)
	}

	f, err := os.Create(genOut)
	if err != nil {
		return fmt.Errorf("thorupsssp: creating output file: %w", err)
	}
	defer f.Close()

	if err := dimacs.Write(f, g); err != nil {
		return fmt.Errorf("thorupsssp: writing graph: %w", err)
	}

	fmt.Printf("wrote %d vertices, %d edges to %s\n", g.NumVertices(), g.NumEdges(), genOut)
	return nil
}
