package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aatomu/frac"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the worked examples, and check them against float64",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.demo(cmd.OutOrStdout())
		},
	}
}

func (a *app) demo(w io.Writer) error {
	start := time.Now()
	limit := a.searchLimit()
	a.logger.Debug().Uint64("searchLimit", limit).Msg("demo start")

	decimals := append(append([]float64(nil), demoDecimals...), 0, math.NaN(), math.Inf(1), math.Inf(-1))
	converted := make([]string, 0, len(decimals))
	for _, v := range decimals {
		converted = append(converted, frac.FromDecimalLimit(v, limit).String())
	}
	fmt.Fprintln(w, strings.Join(converted, ", "))
	a.logger.Debug().Dur("duration", time.Since(start)).Msg("decimal conversion")

	// Automatically simplifies fractions
	f1 := frac.Positive(5460, 104286)
	fmt.Fprintf(w, "%s = %v\n", f1, f1.Value())

	f2 := frac.New(true, 8, 9)
	fmt.Fprintln(w, f1.Add(f2))
	fmt.Fprintln(w, frac.Positive(51, 21).Add(frac.Positive(5, 6)))
	fmt.Fprintln(w, frac.Negative(4, 7).Mul(frac.Positive(21, 5)))

	// -5/4*(a - 16/42/(5/2)) + b - c, scaled by 2.5
	a1, b1, c1, scale := 0.28571428571, 3.82051282051, 8.6, 2.5
	expr := frac.Positive(5, 4).Neg().
		Mul(frac.FromDecimalLimit(a1, limit).Sub(frac.Positive(16, 42).Div(frac.New(true, 5, 2)))).
		Add(frac.FromDecimalLimit(b1, limit)).
		Sub(frac.FromDecimalLimit(c1, limit)).
		Mul(frac.FromDecimalLimit(scale, limit))
	want := (-5.0/4.0*(a1-16.0/42.0/(5.0/2.0)) + b1 - c1) * scale
	fmt.Fprintf(w, "%s = %v (float %v)\n", expr, expr.Value(), want)

	if !floatEqual(expr.Value(), want) {
		return fmt.Errorf("demo: %s = %v, float64 gives %v", expr, expr.Value(), want)
	}

	a.logger.Info().Dur("duration", time.Since(start)).Msg("demo finished")
	return nil
}

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < demoTolerance
}
