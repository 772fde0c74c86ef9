// Package word centralizes the bit/word arithmetic used by the bit vector.
//
// Layout: bit i lives in word Index(i) at position Offset(i), least
// significant bit first. Every mask used for partial (tail) words is derived
// through LowMask so the k == 64 edge case is handled in exactly one place.
package word
