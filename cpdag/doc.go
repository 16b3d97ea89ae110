// Package cpdag completes a learned skeleton into a CPDAG: the
// equivalence-class representative in which an edge is oriented exactly
// when every DAG consistent with the data orients it that way.
//
// Construct starts from the skeleton with every edge bidirected, then
//
//  1. orients v-structures: for each recorded edge separator
//     ((a,b), X), every common neighbor v of a and b with v ∉ X must be
//     a collider a→v←b, so the reverse half-edges v→a and v→b are
//     removed; and
//  2. applies Meek's four orientation rules to fixpoint, each firing by
//     deleting one half of a bidirected pair.
//
// The iteration makes no acyclicity assumption along the way; under a
// correct oracle the fixpoint is acyclic.
package cpdag
