// Command cliquetabu runs the tabu-enhanced multi-start clique search
// over one or more DIMACS .clq instances and writes a CSV report.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cliquetabu",
		Short: "Tabu-enhanced local search heuristic for Maximum Clique",
	}
	cmd.AddCommand(runCmd())
	return cmd
}
