package learn

import (
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/bitset"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/core"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/cpdag"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/oracle"
)

// PC runs the classic PC algorithm against the oracle and returns the
// learned CPDAG. It starts from the complete graph and, for growing
// separator size i, deletes every edge (x, y) separated by some
// i-subset of x's other neighbors, stopping once no vertex has more
// than i neighbors left. It is the baseline the treewidth-aware
// Reconstruct is measured against; both consume the same oracle
// interface.
func PC(orc *oracle.Oracle) (core.Digraph, error) {
	vertCount := orc.VertCount()
	skeleton := core.Complete(vertCount)

	var edgeSeparators []cpdag.EdgeSeparator

	for i := 0; ; i++ {
		for x := 0; x < vertCount; x++ {
			var innerErr error
			skeleton.AdjacentVerts(x).ForEachWhile(func(y int) bool {
				sup := skeleton.AdjacentVerts(x).Without(y)
				separated := !sup.ForEachSubsetOfSize(i, func(S bitset.Bitset) bool {
					var ind bool
					ind, innerErr = orc.IndTest(x, S, y)
					if innerErr != nil {
						return false
					}
					if ind {
						edgeSeparators = append(edgeSeparators, cpdag.EdgeSeparator{A: x, B: y, Sep: S})
						return false
					}
					return true
				})
				if innerErr != nil {
					return false
				}
				if separated {
					skeleton.DelEdge(x, y)
				}
				return true
			})
			if innerErr != nil {
				return core.Digraph{}, innerErr
			}
		}

		maxDeg := 0
		for v := 0; v < vertCount; v++ {
			if deg := skeleton.AdjacentVerts(v).Count(); deg > maxDeg {
				maxDeg = deg
			}
		}
		if maxDeg <= i+1 {
			break
		}
	}

	return cpdag.Construct(&skeleton, edgeSeparators), nil
}
