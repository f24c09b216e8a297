package frac

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNumeratorOverflow   = errors.New("frac: numerator overflow")
	ErrDenominatorOverflow = errors.New("frac: denominator overflow")
)

// TryAdd returns f+rhs, or an error wrapping [ErrNumeratorOverflow] or
// [ErrDenominatorOverflow] if an intermediate value exceeds uint64.
func (f Fraction) TryAdd(rhs Fraction) (Fraction, error) {
	if f.Denominator == 0 || rhs.Denominator == 0 {
		return addSentinel(f, rhs), nil
	}

	denom, ok := lcm(f.Denominator, rhs.Denominator)
	if !ok {
		return Fraction{}, fmt.Errorf("%s + %s: %w", f, rhs, ErrDenominatorOverflow)
	}

	left, ok1 := mulChecked(f.Numerator, denom/f.Denominator)
	right, ok2 := mulChecked(rhs.Numerator, denom/rhs.Denominator)
	if !ok1 || !ok2 {
		return Fraction{}, fmt.Errorf("%s + %s: %w", f, rhs, ErrNumeratorOverflow)
	}

	var (
		numer uint64
		sign  bool
	)
	switch {
	case f.Sign == rhs.Sign:
		if numer, ok = addChecked(left, right); !ok {
			return Fraction{}, fmt.Errorf("%s + %s: %w", f, rhs, ErrNumeratorOverflow)
		}
		sign = f.Sign
	case f.Sign:
		numer, sign = signSub(left, right)
	default:
		numer, sign = signSub(right, left)
	}

	return New(sign, numer, denom), nil
}

// addSentinel adds where at least one side has a zero denominator, following
// IEEE 754: nan is contagious, and opposing infinities give nan.
func addSentinel(a, b Fraction) Fraction {
	aInf, bInf := a.Denominator == 0, b.Denominator == 0
	switch {
	case a.IsNaN() || b.IsNaN():
		return NaN()
	case aInf && bInf:
		if a.Sign != b.Sign {
			return NaN()
		}
		return Inf(a.Sign)
	case aInf:
		return Inf(a.Sign)
	default:
		return Inf(b.Sign)
	}
}

// TrySub returns f-rhs, see [Fraction.TryAdd].
func (f Fraction) TrySub(rhs Fraction) (Fraction, error) {
	return f.TryAdd(rhs.Neg())
}

// TryMul returns f*rhs, or an error wrapping [ErrNumeratorOverflow] or
// [ErrDenominatorOverflow] if the reduced product does not fit in uint64.
func (f Fraction) TryMul(rhs Fraction) (Fraction, error) {
	ln, ld := f.Numerator, f.Denominator
	rn, rd := rhs.Numerator, rhs.Denominator
	sign := f.Sign == rhs.Sign

	if ld == 0 || rd == 0 {
		return mulSentinel(f, rhs), nil
	}
	if ln == 0 || rn == 0 {
		return Zero(), nil
	}

	// Cancel across the operands first, so only genuinely large results
	// overflow.
	if g := gcd(ln, rd); g > 1 {
		ln, rd = ln/g, rd/g
	}
	if g := gcd(rn, ld); g > 1 {
		rn, ld = rn/g, ld/g
	}

	numer, ok := mulChecked(ln, rn)
	if !ok {
		return Fraction{}, fmt.Errorf("%s * %s: %w", f, rhs, ErrNumeratorOverflow)
	}
	denom, ok := mulChecked(ld, rd)
	if !ok {
		return Fraction{}, fmt.Errorf("%s * %s: %w", f, rhs, ErrDenominatorOverflow)
	}

	return New(sign, numer, denom), nil
}

// mulSentinel multiplies where at least one side has a zero denominator.
// nan times anything, and zero times infinity, give nan.
func mulSentinel(a, b Fraction) Fraction {
	if a.Numerator == 0 || b.Numerator == 0 {
		return NaN()
	}
	return Inf(a.Sign == b.Sign)
}

// TryDiv returns f/rhs, i.e. f times the reciprocal of rhs.
// Dividing a non-zero value by zero gives infinity.
func (f Fraction) TryDiv(rhs Fraction) (Fraction, error) {
	return f.TryMul(rhs.Reciprocal())
}

// Add returns f+rhs. It panics if the result would overflow, see
// [Fraction.TryAdd].
func (f Fraction) Add(rhs Fraction) Fraction {
	return must(f.TryAdd(rhs))
}

// Sub returns f-rhs. It panics if the result would overflow.
func (f Fraction) Sub(rhs Fraction) Fraction {
	return must(f.TrySub(rhs))
}

// Mul returns f*rhs. It panics if the result would overflow.
func (f Fraction) Mul(rhs Fraction) Fraction {
	return must(f.TryMul(rhs))
}

// Div returns f/rhs. It panics if the result would overflow.
func (f Fraction) Div(rhs Fraction) Fraction {
	return must(f.TryDiv(rhs))
}

func (f Fraction) AddFloat(rhs float64) Fraction {
	return f.Add(FromDecimal(rhs))
}

func (f Fraction) SubFloat(rhs float64) Fraction {
	return f.Sub(FromDecimal(rhs))
}

func (f Fraction) MulFloat(rhs float64) Fraction {
	return f.Mul(FromDecimal(rhs))
}

func (f Fraction) DivFloat(rhs float64) Fraction {
	return f.Div(FromDecimal(rhs))
}

// Pow returns f raised to the integer power n. Negative powers use the
// reciprocal, and Pow(0) is always 1. It panics on overflow.
func (f Fraction) Pow(n int) Fraction {
	if n < 0 {
		// n may be math.MinInt, so negate after the first step
		return f.Reciprocal().Pow(-(n + 1)).Mul(f.Reciprocal())
	}

	result := Positive(1, 1)
	base := f
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}
	return result
}

// Sqrt returns the square root of f. It is exact when both the numerator and
// denominator are perfect squares, and otherwise converted back from the
// float64 root with [FromDecimal]. Negative values give nan.
func (f Fraction) Sqrt() Fraction {
	switch {
	case f.IsNaN():
		return NaN()
	case f.IsZero():
		return Zero()
	case !f.Sign:
		return NaN()
	case f.Denominator == 0:
		return Inf(true)
	}

	// 完全平方
	if n, ok := isqrt(f.Numerator); ok {
		if d, ok := isqrt(f.Denominator); ok {
			return Positive(n, d)
		}
	}
	return FromDecimal(math.Sqrt(f.Value()))
}

func must(f Fraction, err error) Fraction {
	if err != nil {
		panic(err)
	}
	return f
}
