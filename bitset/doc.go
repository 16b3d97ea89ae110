// Package bitset implements a fixed-capacity set of small non-negative
// integers, tuned for the independence-oracle algorithms in this module.
//
// What:
//
//   - Bitset: a value type holding up to BitCount (128) elements as a
//     [WordCount]uint64 array. Zero value is the empty set.
//   - Set algebra: Union, Intersect, Minus, With, Without, IsSubsetOf,
//     all O(WordCount).
//   - Queries: Contains, Count (popcount), Min, IsEmpty.
//   - Enumeration: ForEach / ForEachWhile over elements in ascending
//     order; ForEachSubset over all 2^|S| subsets in subtraction order
//     starting from the empty set; ForEachSubsetOfSize over all subsets
//     of a fixed cardinality in colexicographic order.
//
// Why:
//
//	Treewidth-aware structure learning spends nearly all of its time
//	manipulating vertex sets: cop sets, robber components, separators,
//	bags. A fixed-width array keeps every operation branch-light and
//	allocation-free, and, because Go arrays are comparable, a Bitset
//	(or a struct of Bitsets) is usable directly as a map key for
//	memoization without any hashing code.
//
// Element operations perform no bounds checking; callers own the
// invariant that every element is in [0, BitCount). This is deliberate,
// the same way the hot paths of routing-table bitsets panic rather than
// branch.
//
// Complexity:
//
//   - All algebra and queries: O(WordCount) time, zero allocations.
//   - ForEachSubset: O(2^|S|) invocations.
//   - ForEachSubsetOfSize(k): O(C(|S|,k)) invocations; each successor
//     set is derived with carry/borrow word arithmetic and a software
//     bit-deposit scatter (no pdep hardware dependency).
package bitset
