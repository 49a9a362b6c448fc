// Package config resolves slink runtime settings from flags, SLINK_* environment
// variables and an optional .slink.toml file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Output formats.
const (
	FormatText = "text"
	FormatTOML = "toml"
)

// Config holds all runtime configuration for one slink invocation.
type Config struct {
	K           int           `mapstructure:"k"`
	Partial     bool          `mapstructure:"partial"`
	Format      string        `mapstructure:"format"`
	LogLevel    string        `mapstructure:"log_level"`
	MetricsAddr string        `mapstructure:"metrics_addr"`
	Debounce    time.Duration `mapstructure:"debounce"`
}

// New returns a viper instance wired for slink: env prefix, key replacer and
// config file discovery. cfgFile overrides discovery when non-empty.
func New(cfgFile string) *viper.Viper {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".slink")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}
	v.SetEnvPrefix("SLINK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Read loads the config file into v. A missing file is fine unless it was named explicitly.
func Read(v *viper.Viper, explicit bool) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) && !explicit {
		return nil
	}

	return fmt.Errorf("reading config: %w", err)
}

// Load applies defaults for anything not set and validates the result.
func Load(v *viper.Viper) (Config, error) {
	v.SetDefault("k", 2)
	v.SetDefault("partial", false)
	v.SetDefault("format", FormatText)
	v.SetDefault("log_level", "info")
	v.SetDefault("metrics_addr", "")
	v.SetDefault("debounce", 100*time.Millisecond)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks values that viper cannot type-check.
func (c Config) Validate() error {
	if c.K < 1 {
		return fmt.Errorf("config: k must be at least 1, got %d", c.K)
	}
	if c.Format != FormatText && c.Format != FormatTOML {
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("config: debounce must be positive, got %s", c.Debounce)
	}

	return nil
}
