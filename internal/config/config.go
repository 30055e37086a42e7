// Package config loads runtime defaults from .stampkeep.yaml, STAMPKEEP_*
// environment variables, and flags bound by the command layer.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// KeepConfig carries default keep counts per tier. Zero means "not
// requested"; validation happens where the counts become a policy.
type KeepConfig struct {
	Minutely int `mapstructure:"minutely"`
	Hourly   int `mapstructure:"hourly"`
	Daily    int `mapstructure:"daily"`
	Weekly   int `mapstructure:"weekly"`
	Monthly  int `mapstructure:"monthly"`
}

// Config holds defaults that per-invocation flags may override.
// Values are populated from .stampkeep.yaml, STAMPKEEP_* env vars, and
// CLI flags.
type Config struct {
	Template string     `mapstructure:"template"`
	Newline  bool       `mapstructure:"newline"`
	Verbose  bool       `mapstructure:"verbose"`
	Keep     KeepConfig `mapstructure:"keep"`
}

// Load reads configuration from viper, applying built-in defaults for
// any values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("template", "")
	viper.SetDefault("newline", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("keep.minutely", 0)
	viper.SetDefault("keep.hourly", 0)
	viper.SetDefault("keep.daily", 0)
	viper.SetDefault("keep.weekly", 0)
	viper.SetDefault("keep.monthly", 0)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}
