// Package dynbitset provides a resizable, word-packed bit vector.
//
// A BitVector is an ordered sequence of booleans stored in 64-bit words,
// least significant bit first: word 0 holds bits [0,64), word 1 holds
// bits [64,128), and so on. The logical length may stop short of the word
// capacity; bits beyond the length are never observable.
//
// # Quick Start
//
//	v := dynbitset.MustParse("10101") // bit 0 is the first character
//	w := dynbitset.MustParse("1100")
//
//	v.Or(w)          // "11101": only the overlapping prefix changes
//	v.ShiftLeft(3)   // "00011101": grows the vector
//	v.ShiftRight(9)  // "": shifting past the length empties it
//
// # Combining Vectors of Different Lengths
//
// Or, And and Xor operate on the shorter of the two lengths. Bits of the
// receiver at or beyond that length, and the receiver's length itself,
// are left unchanged.
//
// # Shifts
//
// ShiftLeft and ShiftRight change the logical length: a left shift by n
// appends n zero bits at the low end, a right shift by n discards the low n
// bits.
//
// # Errors
//
// Get and Parse report failures as *ErrIndexOutOfRange and *ErrInvalidDigit
// (matching ErrOutOfRange and ErrInvalidBitString via errors.Is). Set on an
// out-of-range index is a no-op.
//
// # Concurrency
//
// A BitVector is not safe for concurrent use. Use Clone to hand an
// independent copy to another goroutine.
package dynbitset
