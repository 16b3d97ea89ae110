package treedecomp

import (
	"errors"
	"fmt"

	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/bitset"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/core"
)

// NoChild marks an absent child index.
const NoChild = -1

// Sentinel errors reported by Validate.
var (
	// ErrMalformed indicates a structurally broken decomposition:
	// child index out of order or out of range, empty bag, or a node
	// with no parent.
	ErrMalformed = errors.New("treedecomp: malformed decomposition")

	// ErrCoverage indicates the bags do not cover the expected vertex
	// set, or two decompositions overlap.
	ErrCoverage = errors.New("treedecomp: vertex coverage violated")

	// ErrEdgeCoverage indicates a graph edge contained in no bag.
	ErrEdgeCoverage = errors.New("treedecomp: edge coverage violated")

	// ErrRunningIntersection indicates a vertex whose bags do not form
	// a connected subtree.
	ErrRunningIntersection = errors.New("treedecomp: running intersection violated")

	// ErrWidth indicates a bag larger than width+1.
	ErrWidth = errors.New("treedecomp: bag exceeds width bound")
)

// Node is one bag of a tree decomposition with up to two children.
type Node struct {
	// Verts is the bag.
	Verts bitset.Bitset

	// Child1 and Child2 index the children in the owning slice, or
	// NoChild. A present child index is strictly greater than the
	// node's own index.
	Child1 int
	Child2 int
}

// TreeDecomposition is a rooted binary tree of bags stored as a flat,
// topologically ordered slice; the root is index 0.
type TreeDecomposition []Node

// subtreeVerts returns the union of all bags in the subtree of nodeIdx,
// verifying child ordering and non-empty bags on the way.
func subtreeVerts(td TreeDecomposition, nodeIdx int) (bitset.Bitset, error) {
	if nodeIdx < 0 || nodeIdx >= len(td) {
		return bitset.Empty(), fmt.Errorf("%w: child index %d out of range", ErrMalformed, nodeIdx)
	}
	node := td[nodeIdx]
	if node.Verts.IsEmpty() {
		return bitset.Empty(), fmt.Errorf("%w: empty bag at node %d", ErrMalformed, nodeIdx)
	}
	ret := node.Verts
	for _, child := range []int{node.Child1, node.Child2} {
		if child == NoChild {
			continue
		}
		if child <= nodeIdx {
			return bitset.Empty(), fmt.Errorf("%w: child %d not after parent %d", ErrMalformed, child, nodeIdx)
		}
		sub, err := subtreeVerts(td, child)
		if err != nil {
			return bitset.Empty(), err
		}
		ret = ret.Union(sub)
	}
	return ret, nil
}

// checkRunningIntersection walks the tree verifying that a vertex seen
// in an earlier, disconnected part of the tree never reappears: at each
// node, any bag vertex already seen must come through the parent bag.
func checkRunningIntersection(td TreeDecomposition, vertsSeen *bitset.Bitset, parentVerts bitset.Bitset, nodeIdx int) error {
	node := td[nodeIdx]
	if !node.Verts.Intersect(vertsSeen.Minus(parentVerts)).IsEmpty() {
		return fmt.Errorf("%w: node %d", ErrRunningIntersection, nodeIdx)
	}
	*vertsSeen = vertsSeen.Union(node.Verts)

	for _, child := range []int{node.Child1, node.Child2} {
		if child == NoChild {
			continue
		}
		if err := checkRunningIntersection(td, vertsSeen, node.Verts, child); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks that tds is a family of disjoint tree decompositions
// of width at most tw that together decompose graph: their bags
// partition the vertex set by component, cover every edge, and satisfy
// the running-intersection property. It returns nil on success and a
// sentinel-wrapped error describing the first violation otherwise.
func Validate(tds []TreeDecomposition, graph *core.Graph, tw int) error {
	vertsSeen := bitset.Empty()
	for _, td := range tds {
		verts, err := subtreeVerts(td, 0)
		if err != nil {
			return err
		}
		if !verts.Intersect(vertsSeen).IsEmpty() {
			return fmt.Errorf("%w: decompositions overlap", ErrCoverage)
		}
		vertsSeen = vertsSeen.Union(verts)
	}
	if vertsSeen != bitset.Range(graph.VertCount()) {
		return fmt.Errorf("%w: union of bags is not the vertex set", ErrCoverage)
	}

	var adjacentSupset [core.MaxVertCount]bitset.Bitset
	for _, td := range tds {
		hasParent := make([]bool, len(td))
		hasParent[0] = true
		for nodeIdx, node := range td {
			if !hasParent[nodeIdx] {
				return fmt.Errorf("%w: node %d unreachable from root", ErrMalformed, nodeIdx)
			}
			if node.Verts.Count() > tw+1 {
				return fmt.Errorf("%w: node %d has %d vertices, width %d", ErrWidth, nodeIdx, node.Verts.Count(), tw)
			}
			node.Verts.ForEach(func(v int) {
				adjacentSupset[v] = adjacentSupset[v].Union(node.Verts.Without(v))
			})
			for _, child := range []int{node.Child1, node.Child2} {
				if child != NoChild {
					hasParent[child] = true
				}
			}
		}
	}

	for v := 0; v < graph.VertCount(); v++ {
		if !graph.AdjacentVerts(v).IsSubsetOf(adjacentSupset[v]) {
			return fmt.Errorf("%w: vertex %d has an uncovered edge", ErrEdgeCoverage, v)
		}
	}

	for _, td := range tds {
		vertsSeen := bitset.Empty()
		if err := checkRunningIntersection(td, &vertsSeen, bitset.Empty(), 0); err != nil {
			return err
		}
	}
	return nil
}
