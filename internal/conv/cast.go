package conv

import (
	"fmt"
	"math"
)

// UintToUint32 converts uint to uint32 safely.
func UintToUint32(v uint) (uint32, error) {
	// On 32-bit platforms uint never exceeds MaxUint32
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// IntToUint converts int to uint safely.
func IntToUint(v int) (uint, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint (negative)", v)
	}
	return uint(v), nil
}
