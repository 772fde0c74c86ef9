// Package testutil provides testing utilities for dynbitset.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe generator for random bit strings and
// lengths biased towards word boundaries.
//
// # Random Bit Strings
//
//	rng := testutil.NewRNG(seed)
//	s := rng.BitString(130)             // 130 random '0'/'1' characters
//	sparse := rng.BitStringDensity(130, 0.1)
//	n := rng.Length(256)                // often 63, 64, 65, 127, 128, ...
package testutil
