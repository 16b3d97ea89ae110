package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/bitset"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/core"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/cpdag"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/learn"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/netio"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/oracle"
)

// loadOracle builds the oracle selected by the --net / --data flags.
// In network mode it also returns the file's known CPDAG for the
// structural-Hamming comparison.
func loadOracle(cmd *cobra.Command) (*oracle.Oracle, *core.Digraph, error) {
	netPath, _ := cmd.Flags().GetString("net")
	dataPath, _ := cmd.Flags().GetString("data")
	timeLimit, _ := cmd.Flags().GetDuration("time-limit")

	if (netPath == "") == (dataPath == "") {
		return nil, nil, errors.New("exactly one of --net and --data is required")
	}

	if netPath != "" {
		fp, err := os.Open(netPath)
		if err != nil {
			return nil, nil, err
		}
		defer fp.Close()

		dag, knownCPDAG, err := netio.ReadNetwork(fp)
		if err != nil {
			return nil, nil, err
		}
		// The DAG outlives this function inside the oracle.
		dagCopy := dag
		return oracle.NewGraphical(&dagCopy, timeLimit), &knownCPDAG, nil
	}

	fp, err := os.Open(dataPath)
	if err != nil {
		return nil, nil, err
	}
	defer fp.Close()

	data, err := netio.ReadData(fp)
	if err != nil {
		return nil, nil, err
	}
	orc, err := oracle.NewStatistical(data, timeLimit)
	return orc, nil, err
}

// printCPDAG writes the learned graph as the vertex count, the oriented
// edge list, and the undirected edge list.
func printCPDAG(w io.Writer, d *core.Digraph) {
	fmt.Fprintln(w, d.VertCount())

	oriented := 0
	undirected := 0
	for v := 0; v < d.VertCount(); v++ {
		oriented += d.EdgesOnlyOut(v).Count()
		undirected += d.BidirNeighbors(v).Minus(bitset.Range(v)).Count()
	}

	fmt.Fprintln(w, oriented)
	for v := 0; v < d.VertCount(); v++ {
		d.EdgesOnlyOut(v).ForEach(func(x int) {
			fmt.Fprintln(w, v, x)
		})
	}
	fmt.Fprintln(w, undirected)
	for v := 0; v < d.VertCount(); v++ {
		d.BidirNeighbors(v).Minus(bitset.Range(v)).ForEach(func(x int) {
			fmt.Fprintln(w, v, x)
		})
	}
}

// reportQueries logs the oracle's query-complexity counters.
func reportQueries(orc *oracle.Oracle) {
	slog.Info("oracle statistics",
		"elapsed", orc.ElapsedTime().Round(time.Millisecond),
		"maxSeparatorSize", orc.MaxQueriedSeparatorSize(),
		"queriesBySeparatorSize", orc.QueryCountBySeparatorSize(),
	)
}

func addOracleFlags(cmd *cobra.Command) {
	cmd.Flags().String("net", "", "network file: learn with the exact d-separation oracle")
	cmd.Flags().String("data", "", "data file: learn with the chi-squared oracle")
	cmd.Flags().Duration("time-limit", 10*time.Minute, "abort the run after this much wall-clock time")
}

func newReconstructCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconstruct",
		Short: "Learn a CPDAG with the treewidth-aware engine",
		Run:   runReconstruct,
	}
	addOracleFlags(cmd)
	return cmd
}

func runReconstruct(cmd *cobra.Command, _ []string) {
	orc, knownCPDAG, err := loadOracle(cmd)
	if err != nil {
		slog.Error("failed to set up oracle", "error", err)
		os.Exit(1)
	}

	result, err := learn.Reconstruct(orc)
	if errors.Is(err, oracle.ErrTimeLimit) {
		fmt.Println("TIMEOUT")
		return
	}
	if err != nil {
		slog.Error("reconstruction failed", "error", err)
		os.Exit(1)
	}

	printCPDAG(os.Stdout, &result.CPDAG)
	slog.Info("reconstruction finished",
		"treewidth", result.Treewidth,
		"components", len(result.Decompositions),
	)
	reportComparison(&result.CPDAG, knownCPDAG)
	reportQueries(orc)
}

// reportComparison logs the structural Hamming distance to the known
// CPDAG when one was provided.
func reportComparison(learned, known *core.Digraph) {
	if known == nil {
		return
	}
	slog.Info("comparison with known CPDAG",
		"structuralHammingDistance", cpdag.StructuralHammingDistance(learned, known),
	)
}
