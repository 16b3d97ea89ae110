package oracle

import (
	"errors"
	"fmt"
	"time"

	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/bitset"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/chisq"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/core"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/dsep"
)

// ErrTimeLimit is returned by IndTest when the oracle's time budget is
// exhausted. It unwinds every solver frame to the reconstruction
// driver; callers branch with errors.Is.
var ErrTimeLimit = errors.New("oracle: time limit exceeded")

// Poll intervals of the cooperative time-limit check, per back-end.
// Graphical queries are orders of magnitude cheaper than statistical
// ones, so they poll the clock correspondingly less often.
const (
	graphicalPollInterval   = 1000
	statisticalPollInterval = 10
)

// query is a canonical memoization key: a < b and X excludes both.
type query struct {
	a, b int
	x    bitset.Bitset
}

// Oracle answers memoized conditional-independence queries from one of
// the two back-ends. Construct with NewGraphical or NewStatistical.
type Oracle struct {
	graphical bool
	vertCount int

	// Exactly one back-end reference is set, per the constructor.
	dag  *core.Digraph
	data *chisq.Data

	start          time.Time
	timeLimit      time.Duration
	callsSincePoll int
	pollInterval   int

	// queries[s] holds the memoized results of all queries with
	// separator size s.
	queries []map[query]bool
}

// NewGraphical returns an oracle answering queries by d-separation on
// dag. dag is borrowed for the oracle's lifetime and is not checked for
// acyclicity. The clock starts immediately.
func NewGraphical(dag *core.Digraph, timeLimit time.Duration) *Oracle {
	return &Oracle{
		graphical:    true,
		vertCount:    dag.VertCount(),
		dag:          dag,
		start:        time.Now(),
		timeLimit:    timeLimit,
		pollInterval: graphicalPollInterval,
		queries:      []map[query]bool{make(map[query]bool)},
	}
}

// NewStatistical returns an oracle answering queries by the chi-squared
// test on data. data is borrowed for the oracle's lifetime and must not
// be mutated while borrowed. The clock starts immediately.
func NewStatistical(data *chisq.Data, timeLimit time.Duration) (*Oracle, error) {
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("oracle: %w", err)
	}
	return &Oracle{
		graphical:    false,
		vertCount:    len(data.CatCounts),
		data:         data,
		start:        time.Now(),
		timeLimit:    timeLimit,
		pollInterval: statisticalPollInterval,
		queries:      []map[query]bool{make(map[query]bool)},
	}, nil
}

// Graphical reports whether the oracle is backed by d-separation on a
// known DAG (true) or by the statistical test (false).
func (o *Oracle) Graphical() bool {
	return o.graphical
}

// VertCount returns the number of variables the oracle ranges over.
func (o *Oracle) VertCount() int {
	return o.vertCount
}

// IndTest reports whether a is independent of b given X. The pair is
// canonicalized, the result memoized, and the time limit polled; the
// only non-nil error is ErrTimeLimit. Preconditions: a ≠ b, both in
// [0, VertCount), X ⊆ [0, VertCount), a ∉ X, b ∉ X. Violations panic.
func (o *Oracle) IndTest(a int, X bitset.Bitset, b int) (bool, error) {
	if a < 0 || a >= o.vertCount || b < 0 || b >= o.vertCount || a == b {
		panic("oracle: invalid vertex pair")
	}
	if !X.IsSubsetOf(bitset.Range(o.vertCount)) || X.Contains(a) || X.Contains(b) {
		panic("oracle: invalid conditioning set")
	}

	if a > b {
		a, b = b, a
	}

	sepSize := X.Count()
	for sepSize > len(o.queries)-1 {
		o.queries = append(o.queries, make(map[query]bool))
	}

	o.callsSincePoll++
	if o.callsSincePoll >= o.pollInterval {
		o.callsSincePoll = 0
		if time.Since(o.start) > o.timeLimit {
			return false, ErrTimeLimit
		}
	}

	key := query{a: a, b: b, x: X}
	if ind, ok := o.queries[sepSize][key]; ok {
		return ind, nil
	}

	var ind bool
	if o.graphical {
		ind = dsep.IsDSeparated(o.dag, a, X, b)
	} else {
		ind = chisq.IndTest(o.data, a, X, b)
	}
	o.queries[sepSize][key] = ind
	return ind, nil
}

// MaxQueriedSeparatorSize returns the largest separator size any query
// so far has used, or 0 before the first query.
func (o *Oracle) MaxQueriedSeparatorSize() int {
	return len(o.queries) - 1
}

// QueryCountBySeparatorSize returns the number of distinct memoized
// queries per separator size, indexed by size.
func (o *Oracle) QueryCountBySeparatorSize() []uint64 {
	ret := make([]uint64, len(o.queries))
	for s, m := range o.queries {
		ret[s] = uint64(len(m))
	}
	return ret
}

// ElapsedTime returns the time since the oracle was constructed.
func (o *Oracle) ElapsedTime() time.Duration {
	return time.Since(o.start)
}
