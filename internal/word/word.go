package word

// Bits is the number of bits per storage word.
const Bits = 64

// AllOnes is a word with every bit set.
const AllOnes = ^uint64(0)

// Index returns the index of the word holding bit i.
func Index(i uint) uint { return i >> 6 }

// Offset returns the position of bit i within its word.
func Offset(i uint) uint { return i & (Bits - 1) }

// Count returns the number of words needed to store n bits (ceil(n/64)).
func Count(n uint) uint { return (n + Bits - 1) >> 6 }

// Bit returns a word with only bit i's position set.
func Bit(i uint) uint64 { return uint64(1) << Offset(i) }

// LowMask returns a word with the low k bits set.
// k >= 64 yields AllOnes; shifting a uint64 by 64 would otherwise yield 0.
func LowMask(k uint) uint64 {
	if k >= Bits {
		return AllOnes
	}
	return uint64(1)<<k - 1
}

// TailMask returns the mask of valid bits in the last word of an n-bit vector.
// It is AllOnes when n is word-aligned (including n == 0).
func TailMask(n uint) uint64 {
	if r := Offset(n); r != 0 {
		return LowMask(r)
	}
	return AllOnes
}
