package bitset

import (
	"fmt"
	"math/bits"
)

const (
	// WordCount is the number of 64-bit words backing a Bitset.
	WordCount = 2

	// BitCount is the capacity of a Bitset; elements are in [0, BitCount).
	BitCount = 64 * WordCount
)

// Bitset is a fixed-capacity set of integers in [0, BitCount).
// The zero value is the empty set. Bitset is comparable: == is set
// equality, and Bitset values may be used as map keys directly.
type Bitset [WordCount]uint64

// Empty returns the empty set. Equivalent to the zero value; provided
// for symmetry with Range and Singleton.
func Empty() Bitset {
	return Bitset{}
}

// Range returns the set {0, 1, ..., n-1}.
func Range(n int) Bitset {
	var ret Bitset
	s := n >> 6
	for w := 0; w < s; w++ {
		ret[w] = ^uint64(0)
	}
	if n&63 != 0 {
		ret[s] = uint64(1)<<(n&63) - 1
	}
	return ret
}

// Singleton returns the set {i}.
func Singleton(i int) Bitset {
	var ret Bitset
	ret.Add(i)
	return ret
}

// Add inserts i into the set.
func (b *Bitset) Add(i int) {
	b[i>>6] |= uint64(1) << (i & 63)
}

// Del removes i from the set.
func (b *Bitset) Del(i int) {
	b[i>>6] &^= uint64(1) << (i & 63)
}

// Contains reports whether i is an element of the set.
func (b Bitset) Contains(i int) bool {
	return b[i>>6]&(uint64(1)<<(i&63)) != 0
}

// IsEmpty reports whether the set has no elements.
func (b Bitset) IsEmpty() bool {
	for w := 0; w < WordCount; w++ {
		if b[w] != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of elements in the set.
func (b Bitset) Count() int {
	ret := 0
	for w := 0; w < WordCount; w++ {
		ret += bits.OnesCount64(b[w])
	}
	return ret
}

// Min returns the smallest element of the set, or -1 if the set is empty.
func (b Bitset) Min() int {
	for w := 0; w < WordCount; w++ {
		if b[w] != 0 {
			return w<<6 + bits.TrailingZeros64(b[w])
		}
	}
	return -1
}

// With returns a copy of the set with i added.
func (b Bitset) With(i int) Bitset {
	b.Add(i)
	return b
}

// Without returns a copy of the set with i removed.
func (b Bitset) Without(i int) Bitset {
	b.Del(i)
	return b
}

// Minus returns the set difference b \ x.
func (b Bitset) Minus(x Bitset) Bitset {
	var ret Bitset
	for w := 0; w < WordCount; w++ {
		ret[w] = b[w] &^ x[w]
	}
	return ret
}

// Intersect returns the intersection b ∩ x.
func (b Bitset) Intersect(x Bitset) Bitset {
	var ret Bitset
	for w := 0; w < WordCount; w++ {
		ret[w] = b[w] & x[w]
	}
	return ret
}

// Union returns the union b ∪ x.
func (b Bitset) Union(x Bitset) Bitset {
	var ret Bitset
	for w := 0; w < WordCount; w++ {
		ret[w] = b[w] | x[w]
	}
	return ret
}

// IsSubsetOf reports whether every element of b is also in x.
func (b Bitset) IsSubsetOf(x Bitset) bool {
	return b.Minus(x).IsEmpty()
}

// ForEach calls f for every element in ascending order.
func (b Bitset) ForEach(f func(v int)) {
	b.ForEachWhile(func(v int) bool {
		f(v)
		return true
	})
}

// ForEachWhile calls f for every element in ascending order until f
// returns false. It reports whether the enumeration ran to completion.
func (b Bitset) ForEachWhile(f func(v int) bool) bool {
	for w := 0; w < WordCount; w++ {
		word := b[w]
		for word != 0 {
			v := w<<6 + bits.TrailingZeros64(word)
			word &= word - 1
			if !f(v) {
				return false
			}
		}
	}
	return true
}

// String renders the set as its sorted element list.
func (b Bitset) String() string {
	elems := make([]int, 0, b.Count())
	b.ForEach(func(v int) {
		elems = append(elems, v)
	})
	return fmt.Sprint(elems)
}
