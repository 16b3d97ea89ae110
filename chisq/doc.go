// Package chisq implements Pearson's chi-squared conditional
// independence test over fully categorical data, the statistical
// back-end of the independence oracle.
//
// IndTest(data, a, X, b) accepts independence of variables a and b
// given the conditioning set X when the classical chi-squared statistic
// stays below the 0.95 quantile of the χ² distribution with
//
//	df = (|cat(a)|−1) · (|cat(b)|−1) · ∏_{v∈X} |cat(v)|
//
// degrees of freedom — one (|cat(a)|−1)(|cat(b)|−1) block per
// conditioning stratum. The critical value comes from
// gonum.org/v1/gonum/stat/distuv.
//
// Stratification runs in O(|points|·|X|): a permutation of row indices
// is refined one conditioning variable at a time with a counting-sort
// pass per stratum, recording split positions between non-empty
// buckets. Singleton strata are carried through untouched. Each final
// stratum then contributes N·Σ (f_ab − f_a·f_b)²/(f_a·f_b) over its
// relative frequencies, cells with zero expectation skipped.
package chisq
