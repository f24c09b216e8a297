// Package frac implements exact rational numbers as sign-magnitude fractions
// over uint64, kept in lowest terms.
//
// A [Fraction] is a plain value. Every operation returns a new Fraction, and
// values may be shared between goroutines freely.
//
// Pairs with a zero term are sentinels, and are never reduced:
//
//	0/d  zero (d > 0; [Zero] returns 0/1)
//	0/0  not-a-number
//	n/0  infinity, signed by Sign (n > 0; [Inf] returns 1/0)
//
// The zero value of Fraction is 0/0, i.e. NaN.
package frac

import (
	"encoding/json"
	"strconv"
)

type Fraction struct {
	// Sign is true for non-negative values.
	Sign        bool   `json:"sign"`
	Numerator   uint64 `json:"numerator"`
	Denominator uint64 `json:"denominator"`
}

// New returns sign numerator/denominator in lowest terms. The sign is
// stored as given, and sentinel pairs are kept as they are.
func New(sign bool, numerator, denominator uint64) Fraction {
	n, d := simplify(numerator, denominator)
	return Fraction{
		Sign:        sign,
		Numerator:   n,
		Denominator: d,
	}
}

// Positive is New(true, numerator, denominator).
func Positive(numerator, denominator uint64) Fraction {
	return New(true, numerator, denominator)
}

// Negative is New(false, numerator, denominator).
func Negative(numerator, denominator uint64) Fraction {
	return New(false, numerator, denominator)
}

func Zero() Fraction {
	return Fraction{Sign: true, Numerator: 0, Denominator: 1}
}

func NaN() Fraction {
	return Fraction{Sign: true, Numerator: 0, Denominator: 0}
}

// Inf returns positive infinity if sign is true, negative infinity otherwise.
func Inf(sign bool) Fraction {
	return Fraction{Sign: sign, Numerator: 1, Denominator: 0}
}

// IsZero reports whether f is zero, of either sign.
func (f Fraction) IsZero() bool {
	return f.Numerator == 0 && f.Denominator != 0
}

func (f Fraction) IsNaN() bool {
	return f.Numerator == 0 && f.Denominator == 0
}

// IsInf reports whether f is an infinity, according to sign, using the same
// convention as [math.IsInf]: sign > 0 checks for positive infinity, sign < 0
// for negative infinity, and sign == 0 for either.
func (f Fraction) IsInf(sign int) bool {
	if f.Numerator == 0 || f.Denominator != 0 {
		return false
	}
	return sign == 0 || (sign > 0) == f.Sign
}

// IsInt reports whether f is a finite integer.
func (f Fraction) IsInt() bool {
	return f.Denominator == 1 || f.IsZero()
}

// Equal reports whether f and g are the same value. NaN is not equal to
// anything, zeros are equal regardless of sign or denominator, and
// infinities are equal when their signs are.
func (f Fraction) Equal(g Fraction) bool {
	switch {
	case f.IsNaN() || g.IsNaN():
		return false
	case f.IsZero() && g.IsZero():
		return true
	case f.IsInf(0) && g.IsInf(0):
		return f.Sign == g.Sign
	}
	return f == g
}

// Neg flips the sign bit.
func (f Fraction) Neg() Fraction {
	f.Sign = !f.Sign
	return f
}

func (f Fraction) Abs() Fraction {
	f.Sign = true
	return f
}

// Reciprocal swaps the numerator and denominator, keeping the sign.
// The reciprocal of zero is infinity, and vice versa.
func (f Fraction) Reciprocal() Fraction {
	return Fraction{
		Sign:        f.Sign,
		Numerator:   f.Denominator,
		Denominator: f.Numerator,
	}
}

// Value returns the float64 nearest f. Sentinels map onto their float
// counterparts.
func (f Fraction) Value() float64 {
	mag := float64(f.Numerator) / float64(f.Denominator)
	if f.Sign {
		return mag
	}
	return -mag
}

func (f Fraction) String() string {
	if f.Numerator == 0 {
		if f.Denominator == 0 {
			return "nan"
		}
		return "0"
	}

	b := make([]byte, 0, 24)
	if !f.Sign {
		b = append(b, '-')
	}
	switch f.Denominator {
	case 0:
		b = append(b, "inf"...)
	case 1:
		b = strconv.AppendUint(b, f.Numerator, 10)
	default:
		b = strconv.AppendUint(b, f.Numerator, 10)
		b = append(b, '/')
		b = strconv.AppendUint(b, f.Denominator, 10)
	}
	return string(b)
}

// UnmarshalJSON decodes the object form produced by [encoding/json], bringing
// the result into normal form.
func (f *Fraction) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	type plain Fraction
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = New(v.Sign, v.Numerator, v.Denominator)
	return nil
}
