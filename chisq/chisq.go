package chisq

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/bitset"
)

// confidenceLevel is the acceptance quantile of the test: independence
// is accepted below the 0.95 critical value.
const confidenceLevel = 0.95

// IndTest reports whether variable a is independent of variable b given
// the variables in X, according to Pearson's chi-squared test on data.
// Preconditions: a ≠ b, both are variable indices of data, X contains
// only variable indices and neither a nor b. Violations panic.
func IndTest(data *Data, a int, X bitset.Bitset, b int) bool {
	varCount := len(data.CatCounts)
	if a < 0 || a >= varCount || b < 0 || b >= varCount || a == b {
		panic("chisq: invalid variable pair")
	}
	if !X.IsSubsetOf(bitset.Range(varCount)) || X.Contains(a) || X.Contains(b) {
		panic("chisq: invalid conditioning set")
	}

	// ord is a permutation of row indices; splits partitions it into
	// strata of equal X-values, refined one variable at a time.
	ord := make([]int, len(data.Points))
	for i := range ord {
		ord[i] = i
	}

	splits := []int{0}
	if len(ord) > 0 {
		splits = append(splits, len(ord))
	}

	var newSplits []int
	var bins [][]int

	freedom := 1.0
	X.ForEach(func(v int) {
		freedom *= float64(data.CatCounts[v])

		if len(bins) < data.CatCounts[v] {
			bins = append(bins, make([][]int, data.CatCounts[v]-len(bins))...)
		}

		newSplits = newSplits[:0]
		newSplits = append(newSplits, 0)
		for s := 0; s+1 < len(splits); s++ {
			x := splits[s]
			y := splits[s+1]

			if y-x == 1 {
				// Singleton stratum, nothing to refine.
				newSplits = append(newSplits, y)
				continue
			}

			for c := 0; c < data.CatCounts[v]; c++ {
				bins[c] = bins[c][:0]
			}
			for i := x; i < y; i++ {
				c := data.Points[ord[i]][v]
				bins[c] = append(bins[c], ord[i])
			}
			i := x
			for c := 0; c < data.CatCounts[v]; c++ {
				for _, p := range bins[c] {
					ord[i] = p
					i++
				}
				if i != newSplits[len(newSplits)-1] {
					newSplits = append(newSplits, i)
				}
			}
		}
		splits, newSplits = newSplits, splits
	})

	aCatCount := data.CatCounts[a]
	bCatCount := data.CatCounts[b]
	freqs := make([]float64, aCatCount*bCatCount)
	aFreqs := make([]float64, aCatCount)
	bFreqs := make([]float64, bCatCount)

	freedom *= float64(aCatCount) - 1.0
	freedom *= float64(bCatCount) - 1.0

	chisq := 0.0
	for s := 0; s+1 < len(splits); s++ {
		for i := range freqs {
			freqs[i] = 0.0
		}
		for i := range aFreqs {
			aFreqs[i] = 0.0
		}
		for i := range bFreqs {
			bFreqs[i] = 0.0
		}

		x := splits[s]
		y := splits[s+1]
		n := float64(y - x)
		unit := 1.0 / n

		for i := x; i < y; i++ {
			aVal := data.Points[ord[i]][a]
			bVal := data.Points[ord[i]][b]
			freqs[bVal*aCatCount+aVal] += unit
			aFreqs[aVal] += unit
			bFreqs[bVal] += unit
		}

		term := 0.0
		for aVal := 0; aVal < aCatCount; aVal++ {
			for bVal := 0; bVal < bCatCount; bVal++ {
				expected := aFreqs[aVal] * bFreqs[bVal]
				if expected > 0.0 {
					diff := freqs[bVal*aCatCount+aVal] - expected
					term += diff * diff / expected
				}
			}
		}
		chisq += n * term
	}

	crit := distuv.ChiSquared{K: freedom}.Quantile(confidenceLevel)
	return chisq < crit
}
