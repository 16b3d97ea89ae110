// Package core defines the fundamental graph types shared by every
// learner in this module: the undirected Graph and the Digraph, both
// stored as one adjacency Bitset per vertex.
//
// What:
//
//   - Graph: symmetric adjacency, no self-loops; Complete(n) builds the
//     complete graph on n vertices.
//   - Digraph: independent in- and out-neighbor sets per vertex. An
//     edge present in both directions encodes "undirected but not yet
//     oriented", which is exactly the partially directed state a CPDAG
//     moves through.
//   - Moralize: the moral graph of a DAG (parents married, directions
//     dropped). SkeletonOf: directions dropped only.
//
// Both types are plain values: assignment copies, == compares, and
// either can key a map. Vertices are dense integers in [0, VertCount),
// bounded by MaxVertCount = bitset.BitCount.
//
// Edge mutations and adjacency queries panic on an out-of-range vertex
// or a self-loop; these are programming errors, not runtime conditions,
// and the learners sit in loops too hot to pay for error plumbing.
//
// Complexity: every edge operation and neighbor query is O(1) in the
// number of vertices (a constant number of word operations).
package core
