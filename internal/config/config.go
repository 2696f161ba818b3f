// Package config resolves CLI settings from defaults, an optional config file,
// NBAMETRICS_* environment variables and command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "NBAMETRICS"

// Config holds the resolved settings.
type Config struct {
	Data      string        `mapstructure:"data"`
	LogLevel  string        `mapstructure:"log_level"`
	LogFormat string        `mapstructure:"log_format"`
	Leaders   LeadersConfig `mapstructure:"leaders"`
}

// LeadersConfig holds defaults for the leaders command.
type LeadersConfig struct {
	MinShots int `mapstructure:"min_shots"`
	Limit    int `mapstructure:"limit"`
}

// New returns a viper instance with defaults and environment binding applied.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("data", "shot_logs.csv")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("leaders.min_shots", 100)
	v.SetDefault("leaders.limit", 10)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (if any) and decodes the result. An explicit
// file that is missing is an error; the implicit .nbametrics file is optional.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".nbametrics")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
