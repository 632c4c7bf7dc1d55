// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/jonathan/job-tailor/internal/keywords"
	"github.com/jonathan/job-tailor/internal/selection"
)

// Default input/output paths
const (
	defaultJobsPath    = "jobs.csv"
	defaultProfilePath = "profile.yaml"
	defaultOutDir      = "out"
)

// envPrefix namespaces the environment variables read by viper
// (e.g. JOB_TAILOR_PROFILE overrides the profile path).
const envPrefix = "JOB_TAILOR"

// Config represents the CLI configuration. Values resolve in the usual viper
// order: defaults, then config file, then environment, then bound flags.
type Config struct {
	// Paths
	Jobs    string `mapstructure:"jobs"`    // Path to the postings CSV file
	Profile string `mapstructure:"profile"` // Path to the profile YAML document
	OutDir  string `mapstructure:"out-dir"` // Directory for rendered outputs

	// Selection limits
	PerGroupCap int `mapstructure:"per-group-cap"` // Max bullets per experience before the global merge
	GlobalCap   int `mapstructure:"global-cap"`    // Max bullets overall

	// Keyword extraction widths
	SelectTopK int `mapstructure:"select-top-k"` // Keywords used for bullet scoring
	LetterTopK int `mapstructure:"letter-top-k"` // Keywords quoted in the cover letter
}

// Load builds the configuration from defaults, an optional config file, and
// JOB_TAILOR_* environment variables. An empty path means "use job-tailor.yaml
// from the current directory if present"; a missing explicit path is an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("jobs", defaultJobsPath)
	v.SetDefault("profile", defaultProfilePath)
	v.SetDefault("out-dir", defaultOutDir)
	v.SetDefault("per-group-cap", selection.DefaultPerGroupCap)
	v.SetDefault("global-cap", selection.DefaultGlobalCap)
	v.SetDefault("select-top-k", keywords.DefaultSelectTopK)
	v.SetDefault("letter-top-k", keywords.DefaultLetterTopK)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("job-tailor")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Caps and keyword
// widths must be positive; zero is not clamped or special-cased downstream,
// so it is rejected here at the configuration boundary.
func (c *Config) Validate() error {
	if c.PerGroupCap <= 0 {
		return fmt.Errorf("config error: 'per-group-cap' must be positive, got %d", c.PerGroupCap)
	}
	if c.GlobalCap <= 0 {
		return fmt.Errorf("config error: 'global-cap' must be positive, got %d", c.GlobalCap)
	}
	if c.SelectTopK <= 0 {
		return fmt.Errorf("config error: 'select-top-k' must be positive, got %d", c.SelectTopK)
	}
	if c.LetterTopK <= 0 {
		return fmt.Errorf("config error: 'letter-top-k' must be positive, got %d", c.LetterTopK)
	}
	return nil
}
