package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/aatomu/frac"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "convert [--] <decimal>...",
		Short:   "Convert decimals to fractions",
		Example: "  frac convert 0.75 8.6\n  frac convert -- -2.33333333333333",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(cmd.OutOrStdout(), args)
		},
	}
}

func (a *app) convert(w io.Writer, args []string) error {
	limit := a.searchLimit()
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("convert %q: %w", arg, err)
		}

		start := time.Now()
		f := frac.FromDecimalLimit(v, limit)
		a.logger.Debug().
			Float64("input", v).
			Str("fraction", f.String()).
			Uint64("searchLimit", limit).
			Dur("duration", time.Since(start)).
			Msg("converted")

		fmt.Fprintf(w, "%s = %s (%v)\n", arg, f, f.Value())
	}
	return nil
}
