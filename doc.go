// Package bncops learns the structure of discrete Bayesian networks —
// their CPDAGs — from conditional-independence queries alone, using the
// cops-and-robbers characterization of treewidth to keep the number of
// queries small when the moral graph is tree-like.
//
// What lives where:
//
//	bitset/     — fixed-capacity vertex sets with subset enumeration
//	core/       — Graph & Digraph over per-vertex bitsets, moralization
//	dsep/       — Bayes-ball d-separation (the exact oracle back-end)
//	chisq/      — Pearson chi-squared test on categorical data
//	oracle/     — memoized, time-limited unified independence oracle
//	treedecomp/ — rooted binary tree decompositions + validity check
//	cpdag/      — v-structure orientation and Meek-rule closure
//	learn/      — the cops-and-robbers engine, skeleton extraction,
//	              the reconstruction driver, and the PC baseline
//	netio/      — network-file and data-file parsers
//	twverify/   — external exact-treewidth solver harness (PACE format)
//	cmd/bncops  — the command-line front end
//
// The headline result: on a network whose moral graph has treewidth tw,
// a successful reconstruction never queries a separator larger than
// tw + 1, and the learner reports tw alongside the CPDAG and the
// witnessing tree decompositions.
//
// Start with learn.Reconstruct for the full pipeline, or learn.PC for
// the baseline it is measured against; both consume the same
// oracle.Oracle.
package bncops
