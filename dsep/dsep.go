package dsep

import (
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/bitset"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/core"
)

// advance is a step of the active-trail walk: the ball is at to, having
// arrived along the edge between from and to.
type advance struct {
	from int
	to   int
}

// IsDSeparated reports whether a is d-separated from b given X in dag.
// dag must be acyclic; this is not checked. Preconditions a ≠ b,
// a ∉ X, b ∉ X are the caller's responsibility.
func IsDSeparated(dag *core.Digraph, a int, X bitset.Bitset, b int) bool {
	if dag.Neighbors(a).Contains(b) {
		return false
	}

	// Ancestor closure of X; conditioning on a descendant activates a
	// collider, so collider extension tests against this set.
	ancestorsX := bitset.Empty()
	queue := X
	for !queue.IsEmpty() {
		v := queue.Min()
		queue.Del(v)
		ancestorsX.Add(v)
		queue = queue.Union(dag.EdgesIn(v)).Minus(ancestorsX)
	}

	var seen [core.MaxVertCount]bitset.Bitset

	advQueue := make([]advance, 0, dag.VertCount())
	dag.Neighbors(a).ForEach(func(v int) {
		advQueue = append(advQueue, advance{from: a, to: v})
		seen[a].Add(v)
	})

	found := false
	for !found && len(advQueue) > 0 {
		x := advQueue[0].from
		y := advQueue[0].to
		advQueue = advQueue[1:]

		consider := func(z int) {
			if z == b {
				found = true
			}
			advQueue = append(advQueue, advance{from: y, to: z})
			seen[y].Add(z)
		}
		considerIn := func() {
			dag.EdgesIn(y).Without(a).Without(x).Minus(seen[y]).ForEach(consider)
		}
		considerOut := func() {
			dag.EdgesOut(y).Without(a).Without(x).Minus(seen[y]).ForEach(consider)
		}

		if dag.EdgesOut(x).Contains(y) {
			// x → y → z: passes unless y is conditioned on.
			if !X.Contains(y) {
				considerOut()
			}
			// x → y ← z: collider, passes only if y is an X-ancestor.
			if ancestorsX.Contains(y) {
				considerIn()
			}
		} else if !X.Contains(y) {
			// x ← y → z and x ← y ← z.
			considerOut()
			considerIn()
		}
	}
	return !found
}
