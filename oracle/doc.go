// Package oracle unifies the two conditional-independence back-ends —
// exact d-separation on a known DAG and Pearson chi-squared on
// categorical data — behind one memoized, time-limited interface.
//
// What:
//
//   - NewGraphical(dag, timeLimit): answers queries by Bayes-ball
//     d-separation on the borrowed DAG (a perfect oracle).
//   - NewStatistical(data, timeLimit): answers queries by the
//     chi-squared test on the borrowed dataset.
//   - IndTest(a, X, b): the single query method both learners consume.
//     Queries are canonicalized to (min, max, X) and memoized in one
//     bucket per separator size, so repeated logically-equal queries
//     never reach the back-end and results are referentially
//     transparent within a reconstruction run.
//
// Time limit:
//
//	A monotonic clock starts at construction. Every IndTest call ticks
//	a counter; at every pollInterval-th call (1000 graphical, 10
//	statistical — cheap enough to be negligible, frequent enough to
//	stay responsive) the elapsed time is compared to the limit. On
//	exceedance IndTest returns ErrTimeLimit, and every solver frame
//	propagates it unchanged to the reconstruction driver, which
//	reports the run as timed out rather than failed.
//
// Observability: MaxQueriedSeparatorSize, QueryCountBySeparatorSize,
// ElapsedTime and Graphical expose the query-complexity counters the
// experiments are about.
//
// An Oracle is exclusively owned by a single reconstruction run; it is
// not safe for concurrent use.
package oracle
