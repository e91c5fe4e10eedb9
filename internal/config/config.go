package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"godist/internal"
	"godist/internal/errors"
)

// Output formats accepted by OUTPUT_FORMAT.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the complete application configuration
type Config struct {
	LogLevel internal.LogLevel
	Output   OutputConfig
	Sample   SampleConfig
	Server   ServerConfig
}

// OutputConfig controls how the CLI renders results
type OutputConfig struct {
	Format string
}

// SampleConfig holds sample file ingestion settings
type SampleConfig struct {
	Sheet       string
	Column      int
	SkipHeader  bool
	Concurrency int
}

// ServerConfig holds HTTP service settings
type ServerConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{}

	level, ok := internal.ParseLogLevel(getEnvOrDefault("LOG_LEVEL", "INFO"))
	if !ok {
		return nil, errors.ConfigInvalid("LOG_LEVEL must be one of ERROR, WARN, INFO, DEBUG, TRACE")
	}
	config.LogLevel = level

	config.Output = OutputConfig{
		Format: strings.ToLower(getEnvOrDefault("OUTPUT_FORMAT", FormatText)),
	}

	sampleConfig, err := loadSampleConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load sample configuration")
	}
	config.Sample = *sampleConfig

	shutdownTimeout, err := getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load server configuration")
	}
	config.Server = ServerConfig{
		Addr:            getEnvOrDefault("SERVER_ADDR", ":8080"),
		ShutdownTimeout: shutdownTimeout,
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Default returns the configuration used when no environment is set
func Default() *Config {
	return &Config{
		LogLevel: internal.LogLevelInfo,
		Output:   OutputConfig{Format: FormatText},
		Sample:   SampleConfig{Sheet: "Sheet1", Concurrency: 4},
		Server:   ServerConfig{Addr: ":8080", ShutdownTimeout: 10 * time.Second},
	}
}

func loadSampleConfig() (*SampleConfig, error) {
	column, err := getEnvInt("SAMPLE_COLUMN", 0)
	if err != nil {
		return nil, err
	}
	skipHeader, err := getEnvBool("SAMPLE_SKIP_HEADER", false)
	if err != nil {
		return nil, err
	}
	concurrency, err := getEnvInt("SAMPLE_CONCURRENCY", 4)
	if err != nil {
		return nil, err
	}

	return &SampleConfig{
		Sheet:       getEnvOrDefault("SAMPLE_SHEET", "Sheet1"),
		Column:      column,
		SkipHeader:  skipHeader,
		Concurrency: concurrency,
	}, nil
}

// SetOutputFormat overrides OUTPUT_FORMAT, e.g. from a command-line flag
func (c *Config) SetOutputFormat(format string) error {
	format = strings.ToLower(format)
	if err := validateFormat(format); err != nil {
		return err
	}
	c.Output.Format = format
	return nil
}

func validateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON:
		return nil
	}
	return errors.ConfigInvalid("output format must be text or json, got " + strconv.Quote(format))
}

func validateConfig(config *Config) error {
	if err := validateFormat(config.Output.Format); err != nil {
		return err
	}
	if config.Sample.Column < 0 {
		return errors.ConfigInvalid("SAMPLE_COLUMN must not be negative")
	}
	if config.Sample.Concurrency < 1 {
		return errors.ConfigInvalid("SAMPLE_CONCURRENCY must be at least 1")
	}
	if config.Server.ShutdownTimeout <= 0 {
		return errors.ConfigInvalid("SERVER_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be an integer, got " + strconv.Quote(value))
	}
	return intValue, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.ConfigInvalid(key + " must be a boolean, got " + strconv.Quote(value))
	}
	return boolValue, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be a duration such as 10s, got " + strconv.Quote(value))
	}
	return d, nil
}
