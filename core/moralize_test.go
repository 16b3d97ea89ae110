package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/core"
)

func TestMoralizeMarriesParents(t *testing.T) {
	// V-structure 0→2←1: moralization adds 0–1.
	dag := core.NewDigraph(3)
	dag.AddEdge(0, 2)
	dag.AddEdge(1, 2)

	want := core.Complete(3)
	assert.Equal(t, want, core.Moralize(&dag))
}

func TestMoralizeChainUnchanged(t *testing.T) {
	dag := core.NewDigraph(3)
	dag.AddEdge(0, 1)
	dag.AddEdge(1, 2)

	want := core.NewGraph(3)
	want.AddEdge(0, 1)
	want.AddEdge(1, 2)
	assert.Equal(t, want, core.Moralize(&dag))
}

func TestMoralizeDiamond(t *testing.T) {
	// 0→1, 0→2, 1→3, 2→3: moralization marries 1 and 2.
	dag := core.NewDigraph(4)
	dag.AddEdge(0, 1)
	dag.AddEdge(0, 2)
	dag.AddEdge(1, 3)
	dag.AddEdge(2, 3)

	want := core.NewGraph(4)
	want.AddEdge(0, 1)
	want.AddEdge(0, 2)
	want.AddEdge(1, 2)
	want.AddEdge(1, 3)
	want.AddEdge(2, 3)
	assert.Equal(t, want, core.Moralize(&dag))
}

func TestSkeletonOf(t *testing.T) {
	d := core.NewDigraph(3)
	d.AddEdge(0, 1)
	d.AddEdge(2, 1)
	d.AddEdge(1, 2)

	want := core.NewGraph(3)
	want.AddEdge(0, 1)
	want.AddEdge(1, 2)
	assert.Equal(t, want, core.SkeletonOf(&d))
}
