package learn

import (
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/core"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/cpdag"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/oracle"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/treedecomp"
)

// Result is the outcome of a full reconstruction.
type Result struct {
	// CPDAG is the learned equivalence class: oriented edges appear in
	// one direction, undirected edges in both.
	CPDAG core.Digraph

	// Decompositions holds one tree decomposition per
	// marginal-independence component, in component discovery order.
	Decompositions []treedecomp.TreeDecomposition

	// Treewidth is the maximum width over the decompositions.
	Treewidth int
}

// Reconstruct learns the CPDAG of the Bayesian network underlying orc.
// On time-limit exhaustion it returns oracle.ErrTimeLimit and the
// partial state is discarded. Running Reconstruct twice on the same
// oracle yields identical results; the second run is answered from the
// query cache.
func Reconstruct(orc *oracle.Oracle) (Result, error) {
	skeleton, edgeSeparators, tds, tw, err := ReconstructSkeleton(orc)
	if err != nil {
		return Result{}, err
	}

	return Result{
		CPDAG:          cpdag.Construct(&skeleton, edgeSeparators),
		Decompositions: tds,
		Treewidth:      tw,
	}, nil
}
