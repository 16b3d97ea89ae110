package bitset

import "math/bits"

// Multi-word arithmetic over the raw words. These treat a Bitset as a
// single little-endian BitCount-bit integer; intermediate values may
// carry bits outside any vertex range, so they stay unexported and the
// public iterators only ever hand out subsets of the receiver.

// subWords returns a - x with borrow propagation across words.
func subWords(a, x Bitset) Bitset {
	var ret Bitset
	borrow := uint64(0)
	for w := 0; w < WordCount; w++ {
		ret[w], borrow = bits.Sub64(a[w], x[w], borrow)
	}
	return ret
}

// incWords returns x + 1.
func incWords(x Bitset) Bitset {
	carry := uint64(1)
	for w := 0; w < WordCount; w++ {
		x[w], carry = bits.Add64(x[w], 0, carry)
	}
	return x
}

// decWords returns x - 1.
func decWords(x Bitset) Bitset {
	borrow := uint64(1)
	for w := 0; w < WordCount; w++ {
		x[w], borrow = bits.Sub64(x[w], 0, borrow)
	}
	return x
}

// complementWords returns the bitwise complement of x.
func complementWords(x Bitset) Bitset {
	for w := 0; w < WordCount; w++ {
		x[w] = ^x[w]
	}
	return x
}

// shrWords returns x >> d.
func shrWords(x Bitset, d int) Bitset {
	read := func(i int) uint64 {
		if i < WordCount {
			return x[i]
		}
		return 0
	}

	dWords := d >> 6
	dBits := d & 63

	var ret Bitset
	if dBits == 0 {
		for w := 0; w < WordCount; w++ {
			ret[w] = read(w + dWords)
		}
	} else {
		for w := 0; w < WordCount; w++ {
			ret[w] = read(w+dWords)>>dBits | read(w+1+dWords)<<(64-dBits)
		}
	}
	return ret
}

// deposit scatters the lowest Count(b) bits of src onto the elements of
// b in ascending order: the i-th lowest element of b is present in the
// result iff bit i of src is set. This is the software stand-in for the
// pdep instruction; a serial scan over the mask bits is fast enough at
// WordCount == 2.
func (b Bitset) deposit(src Bitset) Bitset {
	var ret Bitset
	srcIdx := 0
	for w := 0; w < WordCount; w++ {
		mask := b[w]
		for mask != 0 {
			bit := mask & -mask
			if src.Contains(srcIdx) {
				ret[w] |= bit
			}
			srcIdx++
			mask &= mask - 1
		}
	}
	return ret
}

// ForEachSubset calls f for every subset of b, starting from the empty
// set, until f returns false. Successive subsets are generated with the
// subtraction trick x = (x - b) & b, so the enumeration visits all
// 2^Count(b) subsets exactly once. It reports whether the enumeration
// ran to completion.
func (b Bitset) ForEachSubset(f func(s Bitset) bool) bool {
	var subset Bitset
	for {
		if !f(subset) {
			return false
		}
		if subset == b {
			return true
		}
		subset = subWords(subset, b).Intersect(b)
	}
}

// ForEachSubsetOfSize calls f for every subset of b with exactly size
// elements, in colexicographic order of the chosen element positions
// (increasing value of the dense k-of-n pattern), until f returns false. If size exceeds Count(b) no subset exists and
// the enumeration trivially completes. It reports whether the
// enumeration ran to completion.
//
// Successor sets are produced by the next-combination recurrence
// (Gosper's hack generalized to multiple words) over a dense k-of-n
// pattern, which deposit then scatters onto the elements of b.
func (b Bitset) ForEachSubsetOfSize(size int, f func(s Bitset) bool) bool {
	c := b.Count()
	if size > c {
		return true
	}

	current := Range(size)
	last := Range(c).Minus(Range(c - size))
	for {
		if !f(b.deposit(current)) {
			return false
		}
		if current == last {
			return true
		}

		// Next combination: smear the lowest run of ones, then rebuild
		// the remainder of the run at the bottom.
		x := current.Union(decWords(current))
		current = incWords(x).Union(
			shrWords(
				decWords(complementWords(x).Intersect(incWords(x))),
				current.Min()+1,
			),
		)
	}
}
