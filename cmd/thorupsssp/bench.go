package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/thorupsssp/bench"
	"github.com/katalvlaran/thorupsssp/dimacs"
)

var (
	benchGraphPath string
	benchQueries   int
	benchAlgorithm string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run repeated queries against a DIMACS graph, comparing Thorup to a Dijkstra reference",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().StringVar(&benchGraphPath, "graph", "", "path to a DIMACS shortest-paths format graph (required)")
	benchCmd.Flags().IntVar(&benchQueries, "queries", 10, "number of queries to run, from sources 0, 1, 2, ...")
	benchCmd.Flags().StringVar(&benchAlgorithm, "algorithm", "kruskal-msb", "msb-MST algorithm: kruskal-msb, fredman-tarjan, prim")
	_ = benchCmd.MarkFlagRequired("graph")
}

func runBench(_ *cobra.Command, _ []string) error {
	f, err := os.Open(benchGraphPath)
	if err != nil {
		return fmt.Errorf("thorupsssp: opening graph file: %w", err)
	}
	defer f.Close()

	g, err := dimacs.Parse(f, dimacs.Options{})
	if err != nil {
		return fmt.Errorf("thorupsssp: parsing graph: %w", err)
	}

	algorithm, err := resolveAlgorithm(benchAlgorithm)
	if err != nil {
		return err
	}

	report, err := bench.RepeatedQuerySeries(g, algorithm, benchQueries)
	if err != nil {
		return fmt.Errorf("thorupsssp: running benchmark series: %w", err)
	}

	fmt.Printf("Thorup setup: %s\n\n", report.ThorupSetup)
	for i, q := range report.ThorupQueries {
		d := report.DijkstraQueries[i]
		fmt.Printf("query %2d (source %d): thorup %-12s (total %-12s)  dijkstra %-12s (total %-12s)\n",
			i+1, q.Source, q.Elapsed, q.Cumulative, d.Elapsed, d.Cumulative)
	}

	if report.CaughtUpAtQuery >= 0 {
		fmt.Printf("\nThorup's total time caught up with Dijkstra's after %d queries.\n", report.CaughtUpAtQuery)
	} else {
		fmt.Printf("\nThorup's total time did not catch up with Dijkstra's within %d queries.\n", benchQueries)
	}

	return nil
}
