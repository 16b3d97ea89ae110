package learn

import (
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/bitset"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/core"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/cpdag"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/oracle"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/treedecomp"
)

// maximalBags collects every bag of every decomposition and removes the
// ones contained in (or equal to) another bag.
func maximalBags(tds []treedecomp.TreeDecomposition) []bitset.Bitset {
	var bags []bitset.Bitset
	for _, td := range tds {
		for _, node := range td {
			bags = append(bags, node.Verts)
		}
	}

	bagIdx := 0
	for bagIdx < len(bags) {
		found := false
		for i := range bags {
			if i != bagIdx && bags[bagIdx].IsSubsetOf(bags[i]) {
				found = true
				break
			}
		}
		if found {
			last := len(bags) - 1
			bags[bagIdx] = bags[last]
			bags = bags[:last]
		} else {
			bagIdx++
		}
	}
	return bags
}

// ReconstructSkeleton learns the undirected skeleton: it decomposes the
// moral graph, proposes an edge between every pair sharing a maximal
// bag, then deletes each proposed edge for which some separator taken
// from a bag renders the endpoints independent. It returns the
// skeleton, the separators that deleted edges, the decompositions and
// the treewidth.
func ReconstructSkeleton(orc *oracle.Oracle) (core.Graph, []cpdag.EdgeSeparator, []treedecomp.TreeDecomposition, int, error) {
	tds, tw, err := Decompose(orc)
	if err != nil {
		return core.Graph{}, nil, nil, 0, err
	}

	bags := maximalBags(tds)

	skeleton := core.NewGraph(orc.VertCount())
	for _, bag := range bags {
		bag.ForEach(func(b int) {
			bag.Intersect(bitset.Range(b)).Minus(skeleton.AdjacentVerts(b)).ForEach(func(a int) {
				skeleton.AddEdge(a, b)
			})
		})
	}

	// A valid decomposition puts some separator of every non-adjacent
	// pair inside a bag containing one of the endpoints, so scanning
	// subsets of bag∖{a,b} — the empty set included — is exhaustive.
	var edgeSeparators []cpdag.EdgeSeparator
	for b := 0; b < orc.VertCount(); b++ {
		var innerErr error
		skeleton.AdjacentVerts(b).Intersect(bitset.Range(b)).ForEachWhile(func(a int) bool {
			for _, bag := range bags {
				if !bag.Contains(a) && !bag.Contains(b) {
					continue
				}
				sup := bag.Without(a).Without(b)
				if sup.IsEmpty() {
					continue
				}
				separated := !sup.ForEachSubset(func(X bitset.Bitset) bool {
					var ind bool
					ind, innerErr = orc.IndTest(a, X, b)
					if innerErr != nil {
						return false
					}
					if ind {
						edgeSeparators = append(edgeSeparators, cpdag.EdgeSeparator{A: a, B: b, Sep: X})
						return false
					}
					return true
				})
				if innerErr != nil {
					return false
				}
				if separated {
					skeleton.DelEdge(a, b)
					break
				}
			}
			return true
		})
		if innerErr != nil {
			return core.Graph{}, nil, nil, 0, innerErr
		}
	}

	return skeleton, edgeSeparators, tds, tw, nil
}
