package cpdag

import (
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/core"
)

// StructuralHammingDistance counts the vertex pairs whose connection
// differs between two partially directed graphs on the same vertex
// set: absent vs present, or present with different orientation state.
// Panics if the vertex counts differ.
func StructuralHammingDistance(a, b *core.Digraph) int {
	if a.VertCount() != b.VertCount() {
		panic("cpdag: vertex count mismatch")
	}
	shd := 0
	for u := 0; u < a.VertCount(); u++ {
		for v := u + 1; v < a.VertCount(); v++ {
			if a.HasEdge(u, v) != b.HasEdge(u, v) || a.HasEdge(v, u) != b.HasEdge(v, u) {
				shd++
			}
		}
	}
	return shd
}
