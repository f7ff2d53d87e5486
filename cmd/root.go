package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/Skryptex/SKX-EDIT/checkpoint"
	"github.com/Skryptex/SKX-EDIT/config"
	"github.com/Skryptex/SKX-EDIT/config/presets"
)

// AddFlags adds cobra flags to the app and returns the location of the
// config file.
func AddFlags(flagSet *pflag.FlagSet, cfg *config.Config) (configPath *string) {
	flagSet.StringVarP(&cfg.Preset, "preset", "p", cfg.Preset,
		fmt.Sprintf("preset overwrites default values of the config. options %+s", presets.Options()))

	/** ======================== BaseConfig Flags ========================== **/
	configPath = flagSet.StringP("config", "c", "", "load configuration from file")
	flagSet.IntVar(&cfg.BlockIndexSize, "block-index-size",
		cfg.BlockIndexSize, "maximum number of block headers kept in memory")
	flagSet.BoolVar(&cfg.CollectMetrics, "metrics",
		cfg.CollectMetrics, "serve prometheus metrics")
	flagSet.StringVar(&cfg.MetricsAddress, "metrics-address",
		cfg.MetricsAddress, "address of the metrics server")

	/** ======================== Checkpoints Flags ========================== **/
	flagSet.BoolVar(&cfg.Checkpoints.Enabled, "checkpoints",
		cfg.Checkpoints.Enabled, "enforce checkpoints")
	flagSet.StringVar(&cfg.Checkpoints.Network, "network",
		cfg.Checkpoints.Network, fmt.Sprintf("network of the builtin checkpoints. options %+s", checkpoint.Networks()))

	/** ======================== Sync Flags ========================== **/
	flagSet.DurationVar(&cfg.Sync.ReportInterval, "report-interval",
		cfg.Sync.ReportInterval, "interval between verification progress reports")

	/** ======================== Logging Flags ========================== **/
	flagSet.StringVar(&cfg.Logging.Encoder, "log-encoder",
		cfg.Logging.Encoder, "log encoder, console or json")
	flagSet.StringVar(&cfg.Logging.AppLoggerLevel, "log-level",
		cfg.Logging.AppLoggerLevel, "log level of the app")

	return configPath
}
