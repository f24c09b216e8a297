package frac

import (
	"math"
)

const (
	// Epsilon is how close a float64 must be to an integer to count as one.
	Epsilon = 1e-7

	// SearchLimit is the largest denominator FromDecimal will try.
	SearchLimit uint64 = 1 << 20
)

// FromDecimal converts v to a Fraction, searching denominators up to
// [SearchLimit]. See [FromDecimalLimit].
func FromDecimal(v float64) Fraction {
	return FromDecimalLimit(v, SearchLimit)
}

// FromDecimalLimit converts v to a Fraction, by finding the smallest
// denominator i in [1, limit] for which v*i is within [Epsilon] of an integer.
// A limit of zero means [SearchLimit].
//
// NaN and the infinities map to the corresponding sentinels. If no
// denominator converges, the one that came closest is used, so the result
// is approximate rather than an error. Magnitudes too large for uint64
// saturate.
func FromDecimalLimit(v float64, limit uint64) Fraction {
	if limit == 0 {
		limit = SearchLimit
	}

	mag := math.Abs(v)

	switch {
	case v == 0:
		return Zero()
	case integral(mag):
		return New(v >= 0, roundMagnitude(mag), 1)
	case math.IsNaN(v):
		return NaN()
	case math.IsInf(v, 0):
		return Inf(v > 0)
	}

	best, bestResidual := uint64(1), math.Inf(1)
	// i wraps to zero when limit is math.MaxUint64
	for i := uint64(1); i != 0 && i <= limit; i++ {
		// explicit conversion rounds the product, no fused multiply-add
		r := residual(float64(mag * float64(i)))
		if r <= Epsilon {
			best = i
			break
		}
		if r < bestResidual {
			best, bestResidual = i, r
		}
	}

	return New(v >= 0, roundMagnitude(float64(mag * float64(best))), best)
}

func integral(x float64) bool {
	return residual(x) <= Epsilon
}

// residual is the distance from x to the nearest integer.
func residual(x float64) float64 {
	return math.Abs(x - math.Round(x))
}

// roundMagnitude rounds the non-negative x to the nearest uint64, saturating.
func roundMagnitude(x float64) uint64 {
	r := math.Round(x)
	if r >= 0x1p64 {
		return math.MaxUint64
	}
	return uint64(r)
}
