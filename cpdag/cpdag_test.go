package cpdag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/bitset"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/core"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/cpdag"
)

// buildSkeleton returns an undirected graph on n vertices.
func buildSkeleton(n int, edges ...[2]int) core.Graph {
	g := core.NewGraph(n)
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	return g
}

// undirected asserts the pair is connected both ways.
func undirected(t *testing.T, d *core.Digraph, a, b int) {
	t.Helper()
	assert.True(t, d.HasEdge(a, b) && d.HasEdge(b, a), "%d–%d should be undirected", a, b)
}

// oriented asserts the pair is connected a→b only.
func oriented(t *testing.T, d *core.Digraph, a, b int) {
	t.Helper()
	assert.True(t, d.HasDirectedEdge(a, b), "%d→%d should be oriented", a, b)
}

func TestNoSeparatorsAllUndirected(t *testing.T) {
	skeleton := buildSkeleton(3, [2]int{0, 1}, [2]int{1, 2})
	d := cpdag.Construct(&skeleton, nil)

	undirected(t, &d, 0, 1)
	undirected(t, &d, 1, 2)
	assert.False(t, d.HasEdge(0, 2))
	assert.False(t, d.HasEdge(2, 0))
}

func TestVStructureOriented(t *testing.T) {
	// 0–2, 1–2 with separator ((0,1), ∅): collider at 2.
	skeleton := buildSkeleton(3, [2]int{0, 2}, [2]int{1, 2})
	seps := []cpdag.EdgeSeparator{{A: 0, B: 1, Sep: bitset.Empty()}}
	d := cpdag.Construct(&skeleton, seps)

	oriented(t, &d, 0, 2)
	oriented(t, &d, 1, 2)
}

func TestSeparatorMemberNotCollider(t *testing.T) {
	// Chain skeleton 0–1–2 with separator ((0,2), {1}): 1 is in the
	// separator, so no v-structure and the chain stays undirected.
	skeleton := buildSkeleton(3, [2]int{0, 1}, [2]int{1, 2})
	seps := []cpdag.EdgeSeparator{{A: 0, B: 2, Sep: bitset.Singleton(1)}}
	d := cpdag.Construct(&skeleton, seps)

	undirected(t, &d, 0, 1)
	undirected(t, &d, 1, 2)
}

func TestMeekRule1(t *testing.T) {
	// V-structure 0→2←1 plus undirected 2–3 with 3 not adjacent to the
	// parents: rule 1 orients 2→3.
	skeleton := buildSkeleton(4, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 3})
	seps := []cpdag.EdgeSeparator{{A: 0, B: 1, Sep: bitset.Empty()}}
	d := cpdag.Construct(&skeleton, seps)

	oriented(t, &d, 0, 2)
	oriented(t, &d, 1, 2)
	oriented(t, &d, 2, 3)
}

func TestMeekRule2(t *testing.T) {
	// Triangle 0–1–2–0 with 0→1 and 1→2 forced by an outside
	// v-structure: rule 2 orients 0→2.
	//
	// Build 3→1←0 v-structure to orient 0→1; then 4→2←1 to orient 1→2.
	// 4 is adjacent to 0, so rule 1 cannot orient 2→0 from 4→2.
	skeleton := buildSkeleton(5,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2},
		[2]int{3, 1}, [2]int{4, 2}, [2]int{0, 4})
	seps := []cpdag.EdgeSeparator{
		{A: 0, B: 3, Sep: bitset.Empty()},
		{A: 1, B: 4, Sep: bitset.Singleton(0).With(3)},
	}
	d := cpdag.Construct(&skeleton, seps)

	oriented(t, &d, 0, 1)
	oriented(t, &d, 1, 2)
	oriented(t, &d, 0, 2)
}

func TestMeekRule3(t *testing.T) {
	// 0 undirected-adjacent to 1, 2 and 3; 1 and 2 non-adjacent with
	// 1→3 and 2→3 forced by the v-structure at 3: rule 3 orients 0→3,
	// since 3→0 would force an orientation of 0–1 or 0–2 either way.
	skeleton := buildSkeleton(4,
		[2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3},
		[2]int{1, 3}, [2]int{2, 3})
	seps := []cpdag.EdgeSeparator{{A: 1, B: 2, Sep: bitset.Singleton(0)}}
	d := cpdag.Construct(&skeleton, seps)

	oriented(t, &d, 1, 3)
	oriented(t, &d, 2, 3)
	oriented(t, &d, 0, 3)
	undirected(t, &d, 0, 1)
	undirected(t, &d, 0, 2)
}

func TestDiamondStaysPartiallyDirected(t *testing.T) {
	// Diamond skeleton 0–1, 0–2, 1–3, 2–3 with separator ((1,2), {0}):
	// the v-structure 1→3←2 is oriented. 0 and 3 are non-adjacent; no
	// Meek rule fires and 0–1, 0–2 stay undirected.
	skeleton := buildSkeleton(4,
		[2]int{0, 1}, [2]int{0, 2},
		[2]int{1, 3}, [2]int{2, 3})
	seps := []cpdag.EdgeSeparator{{A: 1, B: 2, Sep: bitset.Singleton(0)}}
	d := cpdag.Construct(&skeleton, seps)

	oriented(t, &d, 1, 3)
	oriented(t, &d, 2, 3)
	undirected(t, &d, 0, 1)
	undirected(t, &d, 0, 2)
	assert.False(t, d.HasEdge(1, 2) || d.HasEdge(2, 1), "1 and 2 should be non-adjacent")
}

func TestEmptySkeleton(t *testing.T) {
	skeleton := core.NewGraph(0)
	d := cpdag.Construct(&skeleton, nil)
	assert.Equal(t, 0, d.VertCount())
}
