// Package treedecomp defines the rooted binary tree decompositions the
// cops-and-robbers engine produces, plus an independent validity check.
//
// A TreeDecomposition is a flat slice of Nodes rooted at index 0; each
// Node carries a bag of vertices and up to two child indices, with
// every child index strictly greater than its parent's (the slice is
// topologically ordered). A missing child is NoChild (-1).
//
// Validate checks the three defining properties against a graph —
// vertex coverage, edge coverage, and running intersection — plus the
// width bound, and reports the first violation as an error. It is the
// referee the tests and the external-solver harness both call.
package treedecomp
