// Package conv provides checked integer conversions and saturating arithmetic
// for the expansion engine.
//
// Conversion helpers panic on overflow since this indicates a programming error.
// The saturating helpers clamp at math.MaxUint64 and report whether the result
// is still exact; candidate counts for unbounded quantifiers routinely exceed
// any integer type.
package conv

import (
	"math"
	"math/bits"
)

// RuneToUint32 safely converts a rune (code point) to uint32.
// Panics if r < 0.
//
//go:inline
func RuneToUint32(r rune) uint32 {
	if r < 0 {
		panic("integer overflow: negative rune")
	}
	return uint32(r)
}

// Uint32ToRune safely converts a uint32 to a rune.
// Panics if n > math.MaxInt32.
//
//go:inline
func Uint32ToRune(n uint32) rune {
	if n > math.MaxInt32 {
		panic("integer overflow: uint32 value out of rune range")
	}
	return rune(n)
}

// IntToUint64 safely converts an int to uint64.
// Panics if n < 0.
//
//go:inline
func IntToUint64(n int) uint64 {
	if n < 0 {
		panic("integer overflow: negative int")
	}
	return uint64(n)
}

// AddSat returns a+b, clamped to math.MaxUint64. ok is false when clamped.
func AddSat(a, b uint64) (sum uint64, ok bool) {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64, false
	}
	return s, true
}

// MulSat returns a*b, clamped to math.MaxUint64. ok is false when clamped.
func MulSat(a, b uint64) (product uint64, ok bool) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64, false
	}
	return lo, true
}
