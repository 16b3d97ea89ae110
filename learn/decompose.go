package learn

import (
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/bitset"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/oracle"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/treedecomp"
)

// decomposeConnected finds the smallest k ≥ 1 for which the
// cops-and-robbers game is won on verts and returns the witnessing
// decomposition with its width. A singleton component short-circuits to
// a single bag of width 0.
func decomposeConnected(orc *oracle.Oracle, verts bitset.Bitset) (treedecomp.TreeDecomposition, int, error) {
	if verts.IsEmpty() {
		panic("learn: empty component")
	}
	if verts.Count() == 1 {
		td := treedecomp.TreeDecomposition{{
			Verts:  bitset.Singleton(verts.Min()),
			Child1: treedecomp.NoChild,
			Child2: treedecomp.NoChild,
		}}
		return td, 0, nil
	}

	for tw := 1; ; tw++ {
		s := newCopsSolver(orc, verts, tw)
		ok, err := s.run()
		if err != nil {
			return nil, 0, err
		}
		if ok {
			return s.td, tw, nil
		}
	}
}

// partitionComponents splits the vertex set into marginal-independence
// components: v joins a component as soon as it is dependent on one of
// its members given the empty set, and components linked through v are
// merged. O(V²) marginal queries.
func partitionComponents(orc *oracle.Oracle) ([]bitset.Bitset, error) {
	var comps []bitset.Bitset
	for v := 0; v < orc.VertCount(); v++ {
		found := -1
		compIdx := 0
		for compIdx < len(comps) {
			var err error
			independent := comps[compIdx].ForEachWhile(func(x int) bool {
				var ind bool
				ind, err = orc.IndTest(v, bitset.Empty(), x)
				return err == nil && ind
			})
			if err != nil {
				return nil, err
			}
			if independent {
				compIdx++
				continue
			}
			if found == -1 {
				comps[compIdx].Add(v)
				found = compIdx
				compIdx++
			} else {
				// v links two components; fold the current one into
				// the first and retry this slot.
				last := len(comps) - 1
				comps[compIdx], comps[last] = comps[last], comps[compIdx]
				comps[found] = comps[found].Union(comps[last])
				comps = comps[:last]
			}
		}
		if found == -1 {
			comps = append(comps, bitset.Singleton(v))
		}
	}
	return comps, nil
}

// Decompose partitions the oracle's vertices into marginal-independence
// components and produces one tree decomposition per component. The
// returned width is the maximum over components, 0 when there are no
// edges anywhere.
func Decompose(orc *oracle.Oracle) ([]treedecomp.TreeDecomposition, int, error) {
	comps, err := partitionComponents(orc)
	if err != nil {
		return nil, 0, err
	}

	tds := make([]treedecomp.TreeDecomposition, 0, len(comps))
	tw := 0
	for _, comp := range comps {
		td, compTW, err := decomposeConnected(orc, comp)
		if err != nil {
			return nil, 0, err
		}
		if compTW > tw {
			tw = compTW
		}
		tds = append(tds, td)
	}
	return tds, tw, nil
}
