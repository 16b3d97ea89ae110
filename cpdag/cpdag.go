package cpdag

import (
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/bitset"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/core"
)

// EdgeSeparator certifies a removed skeleton edge: A ⟂ B | Sep held, so
// the pair (A, B) is non-adjacent and Sep witnesses it. The pair is
// unordered; learners record the endpoints in discovery order.
type EdgeSeparator struct {
	A, B int
	Sep  bitset.Bitset
}

// Construct builds the CPDAG of skeleton given the edge separators
// found while removing edges. Every skeleton edge starts bidirected;
// v-structure orientation and Meek rules 1-4 then delete directions
// until fixpoint.
func Construct(skeleton *core.Graph, edgeSeparators []EdgeSeparator) core.Digraph {
	ret := core.NewDigraph(skeleton.VertCount())
	for b := 0; b < ret.VertCount(); b++ {
		skeleton.AdjacentVerts(b).Intersect(bitset.Range(b)).ForEach(func(a int) {
			ret.AddEdge(a, b)
			ret.AddEdge(b, a)
		})
	}

	// V-structures: a common neighbor of a separated pair that is not
	// in the separator is a collider; drop the half-edges pointing out
	// of it.
	for _, sep := range edgeSeparators {
		skeleton.AdjacentVerts(sep.A).
			Intersect(skeleton.AdjacentVerts(sep.B)).
			Minus(sep.Sep).
			ForEach(func(v int) {
				ret.DelEdge(v, sep.A)
				ret.DelEdge(v, sep.B)
			})
	}

	for {
		progress := false

		// Rule 1: a→b and c—b with c not adjacent to a orients b→c;
		// otherwise c→b would create a new v-structure at b.
		for a := 0; a < ret.VertCount(); a++ {
			ret.EdgesOnlyOut(a).ForEach(func(b int) {
				ret.BidirNeighbors(b).Minus(ret.Neighbors(a)).Without(a).
					ForEach(func(c int) {
						ret.DelEdge(c, b)
						progress = true
					})
			})
		}

		// Rule 2: a→b→c with a—c orients a→c; c→a would close a
		// directed cycle.
		for a := 0; a < ret.VertCount(); a++ {
			ret.EdgesOnlyOut(a).ForEach(func(b int) {
				ret.EdgesOnlyOut(b).Intersect(ret.BidirNeighbors(a)).
					ForEach(func(c int) {
						ret.DelEdge(c, a)
						progress = true
					})
			})
		}

		// Rule 3: a—b, a—c, a—d with b,c non-adjacent and b→d, c→d
		// orients a→d.
		for a := 0; a < ret.VertCount(); a++ {
			ret.BidirNeighbors(a).ForEach(func(b int) {
				ret.BidirNeighbors(a).Minus(ret.Neighbors(b)).Without(b).
					ForEach(func(c int) {
						ret.BidirNeighbors(a).
							Intersect(ret.EdgesOnlyOut(b)).
							Intersect(ret.EdgesOnlyOut(c)).
							ForEach(func(d int) {
								ret.DelEdge(d, a)
								progress = true
							})
					})
			})
		}

		// Rule 4: a—b, a—c with b,c non-adjacent, c→d→b, and a
		// adjacent to d orients a→b.
		for a := 0; a < ret.VertCount(); a++ {
			ret.BidirNeighbors(a).ForEach(func(b int) {
				ret.BidirNeighbors(a).Minus(ret.Neighbors(b)).Without(b).
					ForEach(func(c int) {
						ret.Neighbors(a).
							Intersect(ret.EdgesOnlyIn(b)).
							Intersect(ret.EdgesOnlyOut(c)).
							ForEach(func(d int) {
								ret.DelEdge(b, a)
								progress = true
							})
					})
			})
		}

		if !progress {
			return ret
		}
	}
}
