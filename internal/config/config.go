// Package config resolves fillgen settings from flags, FILLGEN_* environment
// variables and an optional yaml file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hailam/fillgen/internal/adapters/txt"
	"github.com/hailam/fillgen/internal/observability"
)

const (
	// EnvPrefix is prepended to every environment variable, e.g. FILLGEN_SIZE.
	EnvPrefix = "FILLGEN"
	// DefaultConfigName is looked up in the working directory when --config is not set.
	DefaultConfigName = "fillgen"
)

// Summary output formats.
const (
	OutputText  = "text"
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Config holds the resolved settings of a run.
type Config struct {
	Size      string `mapstructure:"size"`
	Format    string `mapstructure:"format"`
	Source    string `mapstructure:"source"`
	OutputDir string `mapstructure:"output-dir"`
	Seed      int64  `mapstructure:"seed"`
	LogLevel  string `mapstructure:"log-level"`
	Output    string `mapstructure:"output"`
}

// RegisterFlags defines the flags Load reads on cmd.
func RegisterFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("size", "s", "", "Target size (e.g. 512B, 100KB, 1.5MB, 2GB); prompted for when empty")
	f.StringP("format", "f", "", "File format: txt or csv; prompted for when empty")
	f.String("source", txt.DefaultSourceFile, "Seed text file for txt generation")
	f.StringP("output-dir", "d", ".", "Directory the generated file is written to")
	f.Int64("seed", 0, "Random seed for reproducible output (0 picks a random seed)")
	f.String("log-level", "warn", "Log level: debug, info, warn, error")
	f.StringP("output", "o", OutputText, "Summary format: text, table, json, yaml")
	f.String("config", "", "Config file path (default: ./fillgen.yaml if present)")
}

// Load resolves the configuration for cmd. Flags must have been registered
// with RegisterFlags and parsed.
func Load(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	configFile, _ := cmd.Flags().GetString("config")
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that are not validated by the generation
// itself. Size and format are checked when the file is created.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputTable, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("unknown output format '%s', expected text, table, json or yaml", c.Output)
	}
	if _, err := observability.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
