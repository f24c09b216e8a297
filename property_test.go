package frac_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/aatomu/frac"
)

// magnitudes are kept small enough that no operation here can overflow
const maxMagnitude = 1 << 20

func drawFraction(t *rapid.T, label string) frac.Fraction {
	sign := rapid.Bool().Draw(t, label+"Sign").(bool)
	n := rapid.Uint64Range(0, maxMagnitude).Draw(t, label+"Numerator").(uint64)
	d := rapid.Uint64Range(1, maxMagnitude).Draw(t, label+"Denominator").(uint64)
	return frac.New(sign, n, d)
}

func drawNonZero(t *rapid.T, label string) frac.Fraction {
	sign := rapid.Bool().Draw(t, label+"Sign").(bool)
	n := rapid.Uint64Range(1, maxMagnitude).Draw(t, label+"Numerator").(uint64)
	d := rapid.Uint64Range(1, maxMagnitude).Draw(t, label+"Denominator").(uint64)
	return frac.New(sign, n, d)
}

func toRat(f frac.Fraction) *big.Rat {
	r := new(big.Rat).SetFrac(
		new(big.Int).SetUint64(f.Numerator),
		new(big.Int).SetUint64(f.Denominator),
	)
	if !f.Sign {
		r.Neg(r)
	}
	return r
}

func requireNormal(t *rapid.T, f frac.Fraction) {
	if f.Numerator == 0 || f.Denominator == 0 {
		require.True(t, f.IsNaN() || f.IsZero() || f.IsInf(0), "sentinel %#v", f)
		return
	}
	g := new(big.Int).GCD(nil, nil,
		new(big.Int).SetUint64(f.Numerator),
		new(big.Int).SetUint64(f.Denominator))
	require.Equal(t, int64(1), g.Int64(), "%s not reduced", f)
}

func TestProperty_normalForm(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sign := rapid.Bool().Draw(t, "sign").(bool)
		n := rapid.Uint64().Draw(t, "numerator").(uint64)
		d := rapid.Uint64().Draw(t, "denominator").(uint64)
		f := frac.New(sign, n, d)
		requireNormal(t, f)
		if n == 0 || d == 0 {
			require.Equal(t, frac.Fraction{Sign: sign, Numerator: n, Denominator: d}, f)
		} else {
			require.Equal(t, sign, f.Sign)
			// same value: n*f.d == d*f.n
			lhs := new(big.Int).Mul(new(big.Int).SetUint64(n), new(big.Int).SetUint64(f.Denominator))
			rhs := new(big.Int).Mul(new(big.Int).SetUint64(d), new(big.Int).SetUint64(f.Numerator))
			require.Zero(t, lhs.Cmp(rhs))
		}
	})
}

func TestProperty_negInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := drawFraction(t, "f")
		require.Equal(t, f, f.Neg().Neg())
		require.NotEqual(t, f.Sign, f.Neg().Sign)
	})
}

func TestProperty_divSelf(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := drawNonZero(t, "f")
		q := f.Div(f)
		require.Equal(t, q.Numerator, q.Denominator)
		require.Equal(t, frac.Positive(1, 1), q)
	})
}

func TestProperty_reciprocalInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := drawFraction(t, "f")
		require.Equal(t, f, f.Reciprocal().Reciprocal())
	})
}

func TestProperty_matchesBigRat(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := drawFraction(t, "x")
		y := drawFraction(t, "y")

		sum := x.Add(y)
		requireNormal(t, sum)
		require.Zero(t, toRat(sum).Cmp(new(big.Rat).Add(toRat(x), toRat(y))), "%s + %s = %s", x, y, sum)

		diff := x.Sub(y)
		requireNormal(t, diff)
		require.Zero(t, toRat(diff).Cmp(new(big.Rat).Sub(toRat(x), toRat(y))), "%s - %s = %s", x, y, diff)

		prod := x.Mul(y)
		requireNormal(t, prod)
		require.Zero(t, toRat(prod).Cmp(new(big.Rat).Mul(toRat(x), toRat(y))), "%s * %s = %s", x, y, prod)

		if !y.IsZero() {
			quo := x.Div(y)
			requireNormal(t, quo)
			require.Zero(t, toRat(quo).Cmp(new(big.Rat).Quo(toRat(x), toRat(y))), "%s / %s = %s", x, y, quo)
		}
	})
}

func TestProperty_subSelf(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := drawFraction(t, "f")
		d := f.Sub(f)
		require.True(t, d.IsZero(), "%#v", d)
		require.True(t, d.Equal(frac.Zero()))
	})
}

func TestProperty_fromDecimalRecoversRatio(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sign := rapid.Bool().Draw(t, "sign").(bool)
		n := rapid.Uint64Range(1, 1_000_000).Draw(t, "numerator").(uint64)
		d := rapid.Uint64Range(1, 1_000).Draw(t, "denominator").(uint64)
		want := frac.New(sign, n, d)
		v := float64(n) / float64(d)
		if !sign {
			v = -v
		}
		require.Equal(t, want, frac.FromDecimal(v), "%v", v)
	})
}
