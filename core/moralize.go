package core

// Moralize returns the moral graph of dag: every directed edge with its
// direction dropped, plus an edge between every pair of vertices that
// share a child.
func Moralize(dag *Digraph) Graph {
	g := NewGraph(dag.VertCount())
	for v := 0; v < dag.VertCount(); v++ {
		dag.EdgesIn(v).ForEach(func(x int) {
			g.AddEdge(x, v)
		})
	}
	for v := 0; v < dag.VertCount(); v++ {
		parents := dag.EdgesIn(v)
		parents.ForEach(func(x int) {
			parents.Without(x).Minus(g.AdjacentVerts(x)).ForEach(func(y int) {
				g.AddEdge(x, y)
			})
		})
	}
	return g
}

// SkeletonOf returns the undirected skeleton of d: an edge (a, b) for
// every pair connected in at least one direction.
func SkeletonOf(d *Digraph) Graph {
	g := NewGraph(d.VertCount())
	for v := 0; v < d.VertCount(); v++ {
		d.Neighbors(v).ForEach(func(x int) {
			g.AddEdge(v, x)
		})
	}
	return g
}
