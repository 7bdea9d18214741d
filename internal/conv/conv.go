// Package conv provides checked integer arithmetic and conversion helpers
// for the regex engine.
//
// Counter increments report overflow to the caller, since program counters
// and input cursors surface overflow as typed evaluation errors rather than
// wrapping silently. Narrowing conversions panic on overflow since that
// indicates a programming error (e.g. a pattern too large for internal
// limits).
package conv

import "math"

// Inc returns n+1 and true, or 0 and false if the increment would overflow.
//
//go:inline
func Inc(n int) (int, bool) {
	if n == math.MaxInt {
		return 0, false
	}
	return n + 1, true
}

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
