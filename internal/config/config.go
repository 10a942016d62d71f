// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Feed struct {
		JobsURL         string `mapstructure:"jobs_url" yaml:"jobs_url"`
		ExamsURL        string `mapstructure:"exams_url" yaml:"exams_url"`
		TimeoutSeconds  int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		CacheTTLMinutes int    `mapstructure:"cache_ttl_minutes" yaml:"cache_ttl_minutes"`
	} `mapstructure:"feed" yaml:"feed"`

	Views struct {
		LatestCount int `mapstructure:"latest_count" yaml:"latest_count"`
		TickerCount int `mapstructure:"ticker_count" yaml:"ticker_count"`
	} `mapstructure:"views" yaml:"views"`

	Server struct {
		Addr             string `mapstructure:"addr" yaml:"addr"`
		RefreshesPerHour int    `mapstructure:"refreshes_per_hour" yaml:"refreshes_per_hour"`
	} `mapstructure:"server" yaml:"server"`

	Pinned struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"pinned" yaml:"pinned"`
}

// Timeout returns the feed request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Feed.TimeoutSeconds) * time.Second
}

// CacheTTL returns the feed cache time-to-live as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Feed.CacheTTLMinutes) * time.Minute
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.jobboard")
	v.AddConfigPath(".jobboard")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("JOBBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Config file not found or invalid is OK, we'll use defaults and env vars
	}

	// 5. The sheet URL is commonly supplied through an unprefixed variable in
	// deployments that predate the config file.
	if err := v.BindEnv("feed.jobs_url", "SHEET_URL"); err != nil {
		fmt.Printf("Warning: failed to bind SHEET_URL environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Feed defaults
	v.SetDefault("feed.jobs_url", "https://docs.google.com/spreadsheets/d/1rovDxCJ58N9bGdbHlrXP-l1uxdRR4F1GxO19QsWm-vs/export?format=csv")
	v.SetDefault("feed.exams_url", "")
	v.SetDefault("feed.timeout_seconds", 15)
	v.SetDefault("feed.cache_ttl_minutes", 5)

	// View defaults
	v.SetDefault("views.latest_count", 4)
	v.SetDefault("views.ticker_count", 10)

	// Server defaults
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.refreshes_per_hour", 12)

	// Pinned defaults
	v.SetDefault("pinned.file", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Feed.JobsURL == "" {
		return fmt.Errorf("feed.jobs_url must not be empty")
	}

	if config.Feed.TimeoutSeconds < 1 || config.Feed.TimeoutSeconds > 300 {
		return fmt.Errorf("feed.timeout_seconds must be between 1 and 300, got: %d", config.Feed.TimeoutSeconds)
	}

	if config.Feed.CacheTTLMinutes < 1 {
		return fmt.Errorf("feed.cache_ttl_minutes must be at least 1, got: %d", config.Feed.CacheTTLMinutes)
	}

	if config.Views.LatestCount < 1 || config.Views.TickerCount < 1 {
		return fmt.Errorf("view counts must be at least 1, got latest=%d ticker=%d",
			config.Views.LatestCount, config.Views.TickerCount)
	}

	if config.Server.RefreshesPerHour < 1 {
		return fmt.Errorf("server.refreshes_per_hour must be at least 1, got: %d", config.Server.RefreshesPerHour)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	// Parse and set log level
	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Configure log format
	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
