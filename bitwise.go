package dynbitset

import "github.com/hupe1980/dynbitset/internal/word"

// Or sets b to b | o over the first min(b.Len(), o.Len()) bits.
// Bits beyond that prefix and b's length are unchanged.
func (b *BitVector) Or(o *BitVector) *BitVector {
	return b.combine(o, func(x, y uint64) uint64 { return x | y })
}

// And sets b to b & o over the first min(b.Len(), o.Len()) bits.
// Bits beyond that prefix and b's length are unchanged.
func (b *BitVector) And(o *BitVector) *BitVector {
	return b.combine(o, func(x, y uint64) uint64 { return x & y })
}

// Xor sets b to b ^ o over the first min(b.Len(), o.Len()) bits.
// Bits beyond that prefix and b's length are unchanged.
func (b *BitVector) Xor(o *BitVector) *BitVector {
	return b.combine(o, func(x, y uint64) uint64 { return x ^ y })
}

// combine applies op word by word to the overlapping prefix of b and o.
// The boundary word is rebuilt from b's bits above the prefix plus the
// masked result below it, so neither operand's tail leaks into b.
func (b *BitVector) combine(o *BitVector, op func(x, y uint64) uint64) *BitVector {
	opLen := min(b.length, o.length)
	full := word.Index(opLen)
	for i := uint(0); i < full; i++ {
		b.words[i] = op(b.words[i], o.words[i])
	}
	if r := word.Offset(opLen); r != 0 {
		mask := word.LowMask(r)
		w := b.words[full]
		b.words[full] = w&^mask | op(w, o.words[full])&mask
	}
	return b
}
