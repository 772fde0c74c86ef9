package dynbitset

import "github.com/hupe1980/dynbitset/internal/word"

// ShiftLeft moves every bit up by n positions and grows the vector by n.
// The low n bits become zero.
func (b *BitVector) ShiftLeft(n uint) *BitVector {
	if n == 0 {
		return b
	}

	oldCount := uint(len(b.words))
	newLen := b.length + n
	newCount := word.Count(newLen)
	b.resize(newCount)
	b.length = newLen

	if oldCount == 0 {
		return b
	}

	ws, bs := word.Index(n), word.Offset(n)
	words := b.words

	if bs == 0 {
		copy(words[ws:], words[:oldCount])
	} else {
		// Walk downwards so every source word is read before it is overwritten.
		// newCount <= oldCount+ws+1, so src never exceeds oldCount.
		for i := newCount - 1; i > ws; i-- {
			src := i - ws
			var w uint64
			if src < oldCount {
				w = words[src] << bs
			}
			w |= words[src-1] >> (word.Bits - bs)
			words[i] = w
		}
		words[ws] = words[0] << bs
	}
	clear(words[:ws])

	return b
}

// ShiftRight discards the low n bits, moving every remaining bit down by n
// positions and shrinking the vector by n. If n >= Len the vector becomes
// empty.
func (b *BitVector) ShiftRight(n uint) *BitVector {
	if n == 0 {
		return b
	}
	if n >= b.length {
		b.words = b.words[:0]
		b.length = 0
		return b
	}

	oldCount := uint(len(b.words))
	newLen := b.length - n
	newCount := word.Count(newLen)
	ws, bs := word.Index(n), word.Offset(n)
	words := b.words

	if bs == 0 {
		copy(words, words[ws:])
	} else {
		for i := uint(0); i < newCount; i++ {
			src := i + ws
			w := words[src] >> bs
			if src+1 < oldCount {
				w |= words[src+1] << (word.Bits - bs)
			}
			words[i] = w
		}
	}

	b.resize(newCount)
	b.length = newLen
	b.clearTail()

	return b
}
