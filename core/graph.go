package core

import (
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/bitset"
)

// MaxVertCount bounds the number of vertices of any Graph or Digraph.
const MaxVertCount = bitset.BitCount

// checkVertCount panics unless n is a legal vertex count.
func checkVertCount(n int) {
	if n < 0 || n > MaxVertCount {
		panic("core: vertex count out of range")
	}
}

// checkEdge panics unless (a, b) names a legal non-loop edge.
func checkEdge(vertCount, a, b int) {
	if a < 0 || a >= vertCount || b < 0 || b >= vertCount {
		panic("core: vertex out of range")
	}
	if a == b {
		panic("core: self-loop")
	}
}

// Graph is an undirected graph on vertices [0, VertCount) with no
// self-loops. The zero value is the empty graph on zero vertices.
// Graph is comparable; == is graph equality.
type Graph struct {
	vertCount int
	adj       [MaxVertCount]bitset.Bitset
}

// NewGraph returns the edgeless graph on vertCount vertices.
func NewGraph(vertCount int) Graph {
	checkVertCount(vertCount)
	return Graph{vertCount: vertCount}
}

// Complete returns the complete graph on vertCount vertices.
func Complete(vertCount int) Graph {
	checkVertCount(vertCount)
	all := bitset.Range(vertCount)
	g := Graph{vertCount: vertCount}
	for v := 0; v < vertCount; v++ {
		g.adj[v] = all.Without(v)
	}
	return g
}

// VertCount returns the number of vertices.
func (g *Graph) VertCount() int {
	return g.vertCount
}

// AdjacentVerts returns the neighbor set of v.
func (g *Graph) AdjacentVerts(v int) bitset.Bitset {
	if v < 0 || v >= g.vertCount {
		panic("core: vertex out of range")
	}
	return g.adj[v]
}

// AddEdge inserts the undirected edge (a, b). Adding an existing edge
// is a no-op.
func (g *Graph) AddEdge(a, b int) {
	checkEdge(g.vertCount, a, b)
	g.adj[a].Add(b)
	g.adj[b].Add(a)
}

// DelEdge removes the undirected edge (a, b) if present.
func (g *Graph) DelEdge(a, b int) {
	checkEdge(g.vertCount, a, b)
	g.adj[a].Del(b)
	g.adj[b].Del(a)
}

// HasEdge reports whether the undirected edge (a, b) is present.
func (g *Graph) HasEdge(a, b int) bool {
	checkEdge(g.vertCount, a, b)
	return g.adj[a].Contains(b)
}
