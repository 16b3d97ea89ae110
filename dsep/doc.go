// Package dsep decides d-separation on a DAG with the Bayes-ball
// active-trail search.
//
// IsDSeparated(dag, a, X, b) reports whether every path between a and b
// is blocked by the conditioning set X — equivalently, whether a ⟂ b | X
// holds in every distribution Markov to the DAG. It is the exact
// back-end of the graphical independence oracle.
//
// The search walks directed vertex pairs (x, y), "arriving at y from
// x", so that collider state is known at each step: a chain or fork at
// y extends when y ∉ X, a collider at y extends only when y is an
// ancestor of X. Visited pairs are marked with one Bitset per endpoint,
// giving O(V·E) time and O(V) words of state.
package dsep
