package frac

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// gcd is Euclid's algorithm. gcd(0, n) == n, and gcd(0, 0) == 0.
func gcd[T constraints.Unsigned](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// simplify divides out the greatest common divisor.
// Pairs with a zero term are sentinels and are returned unchanged.
func simplify(numer, denom uint64) (uint64, uint64) {
	if numer == 0 || denom == 0 {
		return numer, denom
	}
	if g := gcd(numer, denom); g > 1 {
		return numer / g, denom / g
	}
	return numer, denom
}

// lcm is (a/gcd)*b, computed as max(simplify(a, b)) * min(a, b).
func lcm(a, b uint64) (uint64, bool) {
	x, y := simplify(a, b)
	return mulChecked(max(x, y), min(a, b))
}

// signSub returns |a-b|, and whether a >= b.
func signSub(a, b uint64) (uint64, bool) {
	if a >= b {
		return a - b, true
	}
	return b - a, false
}

// mulChecked returns a*b, and false if it overflowed.
func mulChecked(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

// addChecked returns a+b, and false if it overflowed.
func addChecked(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}

// isqrt returns the integer square root of x, and whether x is a perfect
// square.
func isqrt(x uint64) (uint64, bool) {
	r := uint64(math.Sqrt(float64(x)))
	// float64 may be off by one either way
	for {
		hi, lo := bits.Mul64(r, r)
		if hi == 0 && lo <= x {
			break
		}
		r--
	}
	for {
		hi, lo := bits.Mul64(r+1, r+1)
		if hi != 0 || lo > x {
			break
		}
		r++
	}
	return r, r*r == x
}
