// Command bncops learns Bayesian-network structure from the command
// line: it reconstructs a CPDAG from a network file (exact d-separation
// oracle) or a categorical data file (chi-squared oracle), with either
// the treewidth-aware cops-and-robbers engine or the PC baseline.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bncops",
		Short: "Bayesian-network structure learning with cops and robbers",
		Long: "bncops reconstructs the CPDAG of a discrete Bayesian network from\n" +
			"conditional-independence queries, exploiting low treewidth of the\n" +
			"moral graph to keep the query count small. The independence oracle\n" +
			"is exact d-separation when given a network file, or Pearson's\n" +
			"chi-squared test when given a categorical data file.",
	}

	rootCmd.AddCommand(newReconstructCmd(), newPCCmd())

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
