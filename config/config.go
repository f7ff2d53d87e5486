// Package config contains checkpoint tool configuration definitions
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/Skryptex/SKX-EDIT/blockindex"
	"github.com/Skryptex/SKX-EDIT/checkpoint"
	"github.com/Skryptex/SKX-EDIT/syncer"
)

const (
	defaultMetricsAddress = "127.0.0.1:1010"
)

// Config defines the top level configuration.
type Config struct {
	BaseConfig  `mapstructure:"main"`
	Preset      string            `mapstructure:"preset"`
	Checkpoints checkpoint.Config `mapstructure:"checkpoints"`
	Sync        syncer.Config     `mapstructure:"sync"`
	Logging     LoggerConfig      `mapstructure:"logging"`
}

// BaseConfig defines options that don't belong to a specific component.
type BaseConfig struct {
	ConfigFile string `mapstructure:"config"`

	// BlockIndexSize bounds the number of headers kept in memory.
	BlockIndexSize int `mapstructure:"block-index-size"`

	CollectMetrics bool   `mapstructure:"metrics"`
	MetricsAddress string `mapstructure:"metrics-address"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		BaseConfig:  defaultBaseConfig(),
		Checkpoints: checkpoint.DefaultConfig(),
		Sync:        syncer.DefaultConfig(),
		Logging:     defaultLoggingConfig(),
	}
}

func defaultBaseConfig() BaseConfig {
	return BaseConfig{
		BlockIndexSize: blockindex.DefaultSize,
		CollectMetrics: false,
		MetricsAddress: defaultMetricsAddress,
	}
}

// LoadConfig reads the config file at path into vip. An empty path leaves vip
// untouched.
func LoadConfig(path string, vip *viper.Viper) error {
	if path == "" {
		return nil
	}
	vip.SetConfigFile(path)
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %w", err)
	}
	return nil
}
