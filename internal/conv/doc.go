// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking when converting bit positions
// between Go's platform-dependent integer types and the fixed-width types
// used by external bitmap libraries (e.g. 32-bit roaring bitmaps).
package conv
