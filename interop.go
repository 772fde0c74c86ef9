package dynbitset

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/dynbitset/internal/conv"
	"github.com/hupe1980/dynbitset/internal/word"
)

// ToRoaring returns a roaring bitmap holding the positions of b's set bits.
//
// Roaring bitmaps are 32-bit indexed; a set bit at a position above
// math.MaxUint32 is reported as an error.
func (b *BitVector) ToRoaring() (*roaring.Bitmap, error) {
	rb := roaring.New()
	for i := range b.Ones() {
		pos, err := conv.UintToUint32(i)
		if err != nil {
			return nil, fmt.Errorf("export bit %d: %w", i, err)
		}
		rb.Add(pos)
	}
	return rb, nil
}

// FromRoaring creates a BitVector of length n whose set bits are the
// positions in rb below n. Positions at or beyond n are ignored.
func FromRoaring(rb *roaring.Bitmap, n uint, opts ...Option) *BitVector {
	b := New(n, opts...)
	it := rb.Iterator()
	for it.HasNext() {
		pos := uint(it.Next())
		if pos >= n {
			break
		}
		b.words[word.Index(pos)] |= word.Bit(pos)
	}
	return b
}

// ToBitSet returns a bits-and-blooms BitSet with the same length and bits.
func (b *BitVector) ToBitSet() *bitset.BitSet {
	return bitset.FromWithLength(b.length, b.Words())
}

// FromBitSet creates a BitVector with the same length and bits as bs.
func FromBitSet(bs *bitset.BitSet, opts ...Option) *BitVector {
	b := New(bs.Len(), opts...)
	copy(b.words, bs.Words())
	b.clearTail()
	return b
}
