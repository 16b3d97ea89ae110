// Package twverify drives an external exact-treewidth solver over the
// PACE 2017 protocol, used by validation harnesses to check the width
// the oracle-driven engine reports.
//
// The solver is a long-lived subprocess (the reference deployment runs
// Tamaki's tw.exact.MainDecomposer under the JVM). Each Treewidth call
// writes one graph in PACE input form —
//
//	p tw V E
//	u v        (E lines, 1-indexed)
//
// — and reads back a tree-decomposition answer:
//
//	s td <bagCount> <maxBagSize> <V>
//	b <bagIdx> v₁ v₂ …   (bagCount lines)
//	<a> <b>              (bagCount−1 link lines)
//
// Only the header's maxBagSize is used; bags and links are consumed,
// bag lines are checked only for their leading "b", and link
// endpoints are range-checked. Close kills the subprocess with SIGKILL; on Linux
// the child is additionally armed to die with its parent.
//
// Subprocess I/O failures are environmental and fatal to the harness;
// they are returned as wrapped errors, not recovered from.
package twverify
