package core

import (
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/bitset"
)

// Digraph is a directed graph on vertices [0, VertCount) with no
// self-loops, keeping in- and out-neighbor sets per vertex. A pair of
// opposing edges a→b, b→a represents an undirected (unoriented) edge,
// the convention the CPDAG construction relies on. The zero value is
// the empty digraph on zero vertices. Digraph is comparable.
type Digraph struct {
	vertCount int
	edgesIn   [MaxVertCount]bitset.Bitset
	edgesOut  [MaxVertCount]bitset.Bitset
}

// NewDigraph returns the edgeless digraph on vertCount vertices.
func NewDigraph(vertCount int) Digraph {
	checkVertCount(vertCount)
	return Digraph{vertCount: vertCount}
}

// VertCount returns the number of vertices.
func (d *Digraph) VertCount() int {
	return d.vertCount
}

// checkVert panics unless v is a vertex of d.
func (d *Digraph) checkVert(v int) {
	if v < 0 || v >= d.vertCount {
		panic("core: vertex out of range")
	}
}

// EdgesIn returns the set of vertices with an edge into v.
func (d *Digraph) EdgesIn(v int) bitset.Bitset {
	d.checkVert(v)
	return d.edgesIn[v]
}

// EdgesOut returns the set of vertices v has an edge to.
func (d *Digraph) EdgesOut(v int) bitset.Bitset {
	d.checkVert(v)
	return d.edgesOut[v]
}

// EdgesOnlyIn returns the oriented in-neighbors of v: vertices x with
// x→v present and v→x absent.
func (d *Digraph) EdgesOnlyIn(v int) bitset.Bitset {
	d.checkVert(v)
	return d.edgesIn[v].Minus(d.edgesOut[v])
}

// EdgesOnlyOut returns the oriented out-neighbors of v: vertices x with
// v→x present and x→v absent.
func (d *Digraph) EdgesOnlyOut(v int) bitset.Bitset {
	d.checkVert(v)
	return d.edgesOut[v].Minus(d.edgesIn[v])
}

// Neighbors returns all vertices connected to v in either direction.
func (d *Digraph) Neighbors(v int) bitset.Bitset {
	d.checkVert(v)
	return d.edgesIn[v].Union(d.edgesOut[v])
}

// BidirNeighbors returns the vertices connected to v by an edge present
// in both directions.
func (d *Digraph) BidirNeighbors(v int) bitset.Bitset {
	d.checkVert(v)
	return d.edgesIn[v].Intersect(d.edgesOut[v])
}

// AddEdge inserts the directed edge a→b. Adding an existing edge is a
// no-op.
func (d *Digraph) AddEdge(a, b int) {
	checkEdge(d.vertCount, a, b)
	d.edgesOut[a].Add(b)
	d.edgesIn[b].Add(a)
}

// DelEdge removes the directed edge a→b if present.
func (d *Digraph) DelEdge(a, b int) {
	checkEdge(d.vertCount, a, b)
	d.edgesOut[a].Del(b)
	d.edgesIn[b].Del(a)
}

// HasEdge reports whether the directed edge a→b is present.
func (d *Digraph) HasEdge(a, b int) bool {
	checkEdge(d.vertCount, a, b)
	return d.edgesOut[a].Contains(b)
}

// HasDirectedEdge reports whether a→b is present and b→a absent, i.e.
// whether the edge between a and b is oriented from a to b.
func (d *Digraph) HasDirectedEdge(a, b int) bool {
	checkEdge(d.vertCount, a, b)
	return d.edgesOut[a].Contains(b) && !d.edgesIn[a].Contains(b)
}
