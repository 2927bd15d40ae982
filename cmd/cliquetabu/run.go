package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/solventlabs/cliquetabu/dimacs"
	"github.com/solventlabs/cliquetabu/heuristic"
	"github.com/solventlabs/cliquetabu/report"
	"github.com/solventlabs/cliquetabu/search"
)

func runCmd() *cobra.Command {
	var (
		iterations    int
		randomization int
		seed          int64
		out           string
		metricsAddr   string
		interactive   bool
	)

	cmd := &cobra.Command{
		Use:   "run [file...]",
		Short: "Run the tabu search over one or more DIMACS .clq instances",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				promptForBudget(cmd, &iterations, &randomization)
			}

			files := args
			if len(files) == 0 {
				var err error
				files, err = filepath.Glob(filepath.Join("data", "*.clq"))
				if err != nil {
					return fmt.Errorf("cliquetabu: globbing data directory: %w", err)
				}
			}

			var obs *prometheusObserver
			if metricsAddr != "" {
				obs = newPrometheusObserver()
				serveMetrics(metricsAddr)
			}

			outFile, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("cliquetabu: creating report file: %w", err)
			}
			defer outFile.Close()
			rw := report.New(outFile)

			for _, file := range files {
				if err := runInstance(cmd, file, iterations, randomization, seed, obs, rw); err != nil {
					slog.Error("cliquetabu: instance failed", "file", file, "error", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&iterations, "iterations", 300, "number of search restarts")
	cmd.Flags().IntVar(&randomization, "randomization", 4, "restricted-candidate-list width for the random-greedy heuristic")
	cmd.Flags().Int64Var(&seed, "seed", 0, "base RNG seed (0 derives a fixed default)")
	cmd.Flags().StringVar(&out, "out", "clique_tabu.csv", "path to write the CSV report")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (disabled if empty)")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "prompt for iterations/randomization instead of using flags")

	return cmd
}

func promptForBudget(cmd *cobra.Command, iterations, randomization *int) {
	reader := bufio.NewReader(cmd.InOrStdin())

	fmt.Fprint(cmd.OutOrStdout(), "Number of iterations: ")
	fmt.Fscan(reader, iterations)

	fmt.Fprint(cmd.OutOrStdout(), "Randomization: ")
	fmt.Fscan(reader, randomization)
}

func runInstance(cmd *cobra.Command, file string, iterations, randomization int, seed int64, obs *prometheusObserver, rw *report.Writer) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("opening instance: %w", err)
	}
	defer f.Close()

	g, err := dimacs.Read(f)
	if err != nil {
		return fmt.Errorf("parsing DIMACS instance: %w", err)
	}

	opts := []search.Option{
		search.WithStarts(iterations),
		search.WithHeuristic(heuristic.RandomGreedyVariant, randomization),
		search.WithSeed(seed),
	}
	if obs != nil {
		opts = append(opts, search.WithObserver(obs.forInstance(filepath.Base(file))))
	}

	start := time.Now()
	result := search.Run(context.Background(), g, opts...)
	elapsed := time.Since(start)

	if err := rw.WriteRow(report.Row{
		File:     filepath.Base(file),
		Clique:   result.Size,
		Seconds:  elapsed.Seconds(),
		Verified: result.Verified,
	}); err != nil {
		return fmt.Errorf("writing report row: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%-20s%10d%15.3f\n", filepath.Base(file), result.Size, elapsed.Seconds())
	return nil
}
