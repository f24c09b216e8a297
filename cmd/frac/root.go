package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aatomu/frac"
)

// Configuration Area
var (
	// env FRAC_SEARCH_LIMIT, FRAC_LOG_LEVEL
	envPrefix          = "FRAC"
	defaultSearchLimit = frac.SearchLimit
	defaultLogLevel    = "info"

	// demo config
	demoDecimals  = []float64{1.312837158976737, -2.33333333333333, -132.8077260881459}
	demoTolerance = 1e-9
)

const (
	flagSearchLimit = "search-limit"
	flagLogLevel    = "log-level"
)

type app struct {
	config *viper.Viper
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{config: viper.New()}

	cmd := &cobra.Command{
		Use:           "frac",
		Short:         "Exact fraction arithmetic",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.Uint64(flagSearchLimit, defaultSearchLimit, "largest denominator tried when converting decimals")
	flags.String(flagLogLevel, defaultLogLevel, "log level (trace, debug, info, warn, error, disabled)")

	a.config.SetEnvPrefix(envPrefix)
	a.config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.config.AutomaticEnv()

	cmd.AddCommand(
		newDemoCmd(a),
		newConvertCmd(a),
	)

	return cmd
}

// init binds the flags of the command being run, then builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	if err := a.config.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	level, err := zerolog.ParseLevel(a.config.GetString(flagLogLevel))
	if err != nil {
		return fmt.Errorf("invalid %s: %w", flagLogLevel, err)
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
	return nil
}

func (a *app) searchLimit() uint64 {
	if v := a.config.GetUint64(flagSearchLimit); v != 0 {
		return v
	}
	return defaultSearchLimit
}
