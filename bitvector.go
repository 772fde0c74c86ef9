package dynbitset

import (
	"iter"
	"math/bits"
	"slices"
	"strings"

	"github.com/hupe1980/dynbitset/internal/word"
)

// BitVector is a resizable sequence of bits packed into 64-bit words.
//
// The zero value is an empty vector ready to use.
type BitVector struct {
	// words is the backing storage; len(words) == word.Count(length).
	// Bits at positions >= length in the last word are kept zero.
	words []uint64

	// length is the logical number of bits.
	length uint
}

// New creates a BitVector of n bits, all zero.
func New(n uint, opts ...Option) *BitVector {
	o := applyOptions(opts)
	count := word.Count(n)
	return &BitVector{
		words:  make([]uint64, count, max(count, word.Count(o.capacity))),
		length: n,
	}
}

// Parse creates a BitVector from a string of '0' and '1' characters.
// The first character is bit 0.
func Parse(s string, opts ...Option) (*BitVector, error) {
	b := New(uint(len(s)), opts...)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			b.words[word.Index(uint(i))] |= word.Bit(uint(i))
		case '0':
		default:
			return nil, &ErrInvalidDigit{Pos: i, Char: s[i]}
		}
	}
	return b, nil
}

// MustParse is like Parse but panics if s is not a valid bit string.
func MustParse(s string) *BitVector {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Len returns the logical number of bits.
func (b *BitVector) Len() uint {
	return b.length
}

// Get returns the bit at position i.
func (b *BitVector) Get(i uint) (bool, error) {
	if i >= b.length {
		return false, &ErrIndexOutOfRange{Index: i, Length: b.length}
	}
	return b.words[word.Index(i)]&word.Bit(i) != 0, nil
}

// Test returns the bit at position i, or false if i is out of range.
func (b *BitVector) Test(i uint) bool {
	if i >= b.length {
		return false
	}
	return b.words[word.Index(i)]&word.Bit(i) != 0
}

// Set sets the bit at position i to v. It is a no-op if i is out of range.
func (b *BitVector) Set(i uint, v bool) *BitVector {
	if i >= b.length {
		return b
	}
	b.assign(i, v)
	return b
}

// PushBack appends v as the new last bit.
func (b *BitVector) PushBack(v bool) *BitVector {
	if word.Offset(b.length) == 0 {
		b.words = append(b.words, 0)
	}
	b.assign(b.length, v)
	b.length++
	return b
}

func (b *BitVector) assign(i uint, v bool) {
	if v {
		b.words[word.Index(i)] |= word.Bit(i)
	} else {
		b.words[word.Index(i)] &^= word.Bit(i)
	}
}

// None reports whether no bit is set. It is true for an empty vector.
func (b *BitVector) None() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// All reports whether every bit is set. It is true for an empty vector.
func (b *BitVector) All() bool {
	n := len(b.words)
	if n == 0 {
		return true
	}
	for _, w := range b.words[:n-1] {
		if w != word.AllOnes {
			return false
		}
	}
	mask := word.TailMask(b.length)
	return b.words[n-1]&mask == mask
}

// Count returns the number of set bits.
func (b *BitVector) Count() int {
	count := 0
	for _, w := range b.words {
		count += bits.OnesCount64(w)
	}
	return count
}

// SetAll sets every bit.
func (b *BitVector) SetAll() *BitVector {
	for i := range b.words {
		b.words[i] = word.AllOnes
	}
	b.clearTail()
	return b
}

// FlipAll complements every bit.
func (b *BitVector) FlipAll() *BitVector {
	for i := range b.words {
		b.words[i] = ^b.words[i]
	}
	b.clearTail()
	return b
}

// ResetAll clears every bit.
func (b *BitVector) ResetAll() *BitVector {
	clear(b.words)
	return b
}

// clearTail zeroes the bits of the last word at positions >= length.
func (b *BitVector) clearTail() {
	if n := len(b.words); n > 0 {
		b.words[n-1] &= word.TailMask(b.length)
	}
}

// resize sets the number of backing words, zeroing any words it adds.
func (b *BitVector) resize(count uint) {
	old := uint(len(b.words))
	if count <= old {
		b.words = b.words[:count]
		return
	}
	b.words = slices.Grow(b.words, int(count-old))[:count]
	clear(b.words[old:])
}

// Clone returns an independent copy of b.
func (b *BitVector) Clone() *BitVector {
	return &BitVector{
		words:  slices.Clone(b.words),
		length: b.length,
	}
}

// Equal reports whether b and o have the same length and bits.
func (b *BitVector) Equal(o *BitVector) bool {
	return b.length == o.length && slices.Equal(b.words, o.words)
}

// Words returns a copy of the backing words.
// Bits beyond Len in the last word are zero.
func (b *BitVector) Words() []uint64 {
	return slices.Clone(b.words)
}

// Ones returns an iterator over the positions of set bits in ascending order.
func (b *BitVector) Ones() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for i, w := range b.words {
			base := uint(i) * word.Bits
			for w != 0 {
				if !yield(base + uint(bits.TrailingZeros64(w))) {
					return
				}
				w &= w - 1
			}
		}
	}
}

// String returns the bits as '0' and '1' characters, bit 0 first.
func (b *BitVector) String() string {
	var sb strings.Builder
	sb.Grow(int(b.length))
	for i := uint(0); i < b.length; i++ {
		if b.words[word.Index(i)]&word.Bit(i) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
