// Package config loads cctx settings from an optional cctx.yaml file and
// CCTX_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/suffix-labs/codechain-tx/pkg/primitives"
)

// Output formats for CLI results.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds the CLI configuration.
type Config struct {
	NetworkID string `mapstructure:"network_id"` // Default network for requests and addresses
	LogLevel  string `mapstructure:"log_level"`  // zap level name (debug, info, warn, error)
	Output    string `mapstructure:"output"`     // text or json
}

// Network returns the validated default network.
func (c *Config) Network() (primitives.NetworkID, error) {
	return primitives.ParseNetworkID(c.NetworkID)
}

// LoadConfig reads cctx.yaml from path (if present) and overlays the
// environment. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("cctx")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("CCTX")
	v.AutomaticEnv()

	v.SetDefault("network_id", string(primitives.TestNet))
	v.SetDefault("log_level", "info")
	v.SetDefault("output", OutputText)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if _, err := cfg.Network(); err != nil {
		return nil, fmt.Errorf("network_id: %w", err)
	}
	if cfg.Output != OutputText && cfg.Output != OutputJSON {
		return nil, fmt.Errorf("output must be %q or %q, got %q", OutputText, OutputJSON, cfg.Output)
	}
	return &cfg, nil
}
