package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/learn"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/oracle"
)

func newPCCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pc",
		Short: "Learn a CPDAG with the PC baseline",
		Long: "pc runs the classic PC algorithm against the same independence\n" +
			"oracle as reconstruct, for query-complexity comparisons.",
		Run: runPC,
	}
	addOracleFlags(cmd)
	return cmd
}

func runPC(cmd *cobra.Command, _ []string) {
	orc, knownCPDAG, err := loadOracle(cmd)
	if err != nil {
		slog.Error("failed to set up oracle", "error", err)
		os.Exit(1)
	}

	result, err := learn.PC(orc)
	if errors.Is(err, oracle.ErrTimeLimit) {
		fmt.Println("TIMEOUT")
		return
	}
	if err != nil {
		slog.Error("PC failed", "error", err)
		os.Exit(1)
	}

	printCPDAG(os.Stdout, &result)
	reportComparison(&result, knownCPDAG)
	reportQueries(orc)
}
