// Package learn reconstructs the structure of a discrete Bayesian
// network — its CPDAG — from a conditional-independence oracle,
// exploiting low treewidth of the moral graph to keep the number of
// oracle queries small.
//
// What:
//
//   - Reconstruct: the full pipeline. Vertices are partitioned into
//     marginal-independence components; each component is decomposed by
//     an oracle-driven cops-and-robbers search that finds the smallest
//     k with treewidth ≤ k and a witnessing rooted binary tree
//     decomposition; the maximal bags then bound the separator search
//     that prunes the proposed skeleton; finally v-structures and Meek
//     rules orient the result into a CPDAG.
//   - ReconstructSkeleton and Decompose expose the intermediate stages.
//   - PC: the classic PC algorithm as a baseline consumer of the same
//     oracle, for query-complexity comparisons.
//
// The cops-and-robbers search plays the treewidth pursuit game on the
// dependency graph the oracle defines: k+1 cops catch the robber iff
// the moral graph restricted to the component has treewidth ≤ k. Two
// mutually recursive predicates drive it — preSolve reduces the robber
// component containing the least robber and recurses on the remainder,
// solve captures some robber with a fresh cop. preSolve is memoized on
// (cops, robbers) keys and solve is not memoized itself; robber
// components are memoized on (cops, r₀).
// A second pass over the filled memo tables reconstructs the winning
// bag tree without re-searching. In statistical mode the oracle is not
// a semigraphoid, so freshly extracted components are intersected with
// the current robber set rather than trusted outright.
//
// Every oracle call can end the run with oracle.ErrTimeLimit; solver
// frames propagate it unchanged, and since memo entries are inserted
// only after a sub-result is fully known, an unwound run leaves no
// partially computed state behind.
//
// Complexity is dominated by oracle calls; after a successful run on a
// component of treewidth tw, no query used a separator larger than
// tw + 1.
package learn
