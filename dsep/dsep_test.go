package dsep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/bitset"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/core"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/dsep"
)

// buildDAG returns a digraph on n vertices with the given edges.
func buildDAG(n int, edges ...[2]int) core.Digraph {
	d := core.NewDigraph(n)
	for _, e := range edges {
		d.AddEdge(e[0], e[1])
	}
	return d
}

func TestAdjacentNeverSeparated(t *testing.T) {
	dag := buildDAG(2, [2]int{0, 1})
	assert.False(t, dsep.IsDSeparated(&dag, 0, bitset.Empty(), 1))
	assert.False(t, dsep.IsDSeparated(&dag, 1, bitset.Empty(), 0))
}

func TestChain(t *testing.T) {
	// 0→1→2: dependent marginally, separated by the middle vertex.
	dag := buildDAG(3, [2]int{0, 1}, [2]int{1, 2})
	assert.False(t, dsep.IsDSeparated(&dag, 0, bitset.Empty(), 2))
	assert.True(t, dsep.IsDSeparated(&dag, 0, bitset.Singleton(1), 2))
}

func TestFork(t *testing.T) {
	// 1←0→2: same blocking behavior as the chain.
	dag := buildDAG(3, [2]int{0, 1}, [2]int{0, 2})
	assert.False(t, dsep.IsDSeparated(&dag, 1, bitset.Empty(), 2))
	assert.True(t, dsep.IsDSeparated(&dag, 1, bitset.Singleton(0), 2))
}

func TestCollider(t *testing.T) {
	// 0→2←1: marginally independent, dependent given the collider.
	dag := buildDAG(3, [2]int{0, 2}, [2]int{1, 2})
	assert.True(t, dsep.IsDSeparated(&dag, 0, bitset.Empty(), 1))
	assert.False(t, dsep.IsDSeparated(&dag, 0, bitset.Singleton(2), 1))
}

func TestColliderDescendantActivates(t *testing.T) {
	// 0→2←1 with 2→3: conditioning on the collider's descendant also
	// opens the path.
	dag := buildDAG(4, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 3})
	assert.True(t, dsep.IsDSeparated(&dag, 0, bitset.Empty(), 1))
	assert.False(t, dsep.IsDSeparated(&dag, 0, bitset.Singleton(3), 1))
}

func TestDiamond(t *testing.T) {
	// 0→1→3, 0→2→3.
	dag := buildDAG(4, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 3}, [2]int{2, 3})

	// Both paths 0..3 run through {1,2}.
	assert.False(t, dsep.IsDSeparated(&dag, 0, bitset.Empty(), 3))
	assert.False(t, dsep.IsDSeparated(&dag, 0, bitset.Singleton(1), 3))
	assert.True(t, dsep.IsDSeparated(&dag, 0, bitset.Singleton(1).With(2), 3))

	// 1 and 2: fork at 0, collider at 3.
	assert.False(t, dsep.IsDSeparated(&dag, 1, bitset.Empty(), 2))
	assert.True(t, dsep.IsDSeparated(&dag, 1, bitset.Singleton(0), 2))
	assert.False(t, dsep.IsDSeparated(&dag, 1, bitset.Singleton(0).With(3), 2))
}

func TestDisconnected(t *testing.T) {
	dag := buildDAG(4, [2]int{0, 1}, [2]int{2, 3})
	assert.True(t, dsep.IsDSeparated(&dag, 0, bitset.Empty(), 2))
	assert.True(t, dsep.IsDSeparated(&dag, 1, bitset.Singleton(0), 3))
}

func TestSymmetry(t *testing.T) {
	dag := buildDAG(5,
		[2]int{0, 1}, [2]int{0, 2}, [2]int{1, 3}, [2]int{2, 3}, [2]int{3, 4})

	conds := []bitset.Bitset{
		bitset.Empty(),
		bitset.Singleton(3),
		bitset.Singleton(1).With(2),
	}
	for a := 0; a < 5; a++ {
		for b := a + 1; b < 5; b++ {
			for _, X := range conds {
				if X.Contains(a) || X.Contains(b) {
					continue
				}
				assert.Equal(t,
					dsep.IsDSeparated(&dag, a, X, b),
					dsep.IsDSeparated(&dag, b, X, a),
					"a=%d b=%d X=%v", a, b, X)
			}
		}
	}
}
