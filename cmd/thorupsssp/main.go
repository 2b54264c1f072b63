// Command thorupsssp runs Thorup's deterministic linear-time
// single-source shortest-paths algorithm, and the tooling around it:
// generating test graphs and benchmarking against a Dijkstra reference.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "thorupsssp",
	Short: "Thorup's linear-time single-source shortest-paths algorithm",
}

func main() {
	initFlags()
	rootCmd.AddCommand(queryCmd, genCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
