// Package config manages application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Output formats supported by the report writer.
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

// Config holds all application configuration for a collection run.
// Required values come from the environment and are fatal when missing;
// everything else has a default.
type Config struct {
	// APIKey is the YouTube Data API key.
	APIKey string
	// SpreadsheetID identifies the input Google Sheet.
	SpreadsheetID string
	// CredentialsFile is the path to the service-account JSON used to
	// read the input sheet.
	CredentialsFile string

	// ReadRange is the A1-notation column range to read.
	ReadRange string
	// OutputPath is where the report file is written.
	OutputPath string
	// OutputFormat selects the report writer ("xlsx" or "csv").
	OutputFormat string

	// MaxRows caps how many input rows are processed per run.
	MaxRows int
	// MaxVideos caps how many videos are fetched per channel.
	MaxVideos int

	// MaxRetries is the number of retries for failed API calls.
	// 0 keeps every remote call one-shot.
	MaxRetries int
	// InitialBackoff is the initial backoff duration for retries.
	InitialBackoff time.Duration
	// MaxBackoff is the maximum backoff duration for retries.
	MaxBackoff time.Duration
	// BackoffMultiplier is the multiplier for exponential backoff.
	BackoffMultiplier float64
}

// DefaultConfig returns configuration with safe defaults. Required
// fields are left empty and must come from the environment.
func DefaultConfig() *Config {
	return &Config{
		ReadRange:         "Sheet1!A2:A",
		OutputPath:        "videos.xlsx",
		OutputFormat:      FormatXLSX,
		MaxRows:           5,
		MaxVideos:         10,
		MaxRetries:        0,
		InitialBackoff:    1 * time.Second,
		MaxBackoff:        30 * time.Second,
		BackoffMultiplier: 2.0,
	}
}

// Load loads configuration from an optional .env file and the
// environment, applies defaults, and validates the result. envFile may
// be empty; a missing .env file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	} else {
		// Default .env in the working directory is optional.
		_ = godotenv.Load()
	}

	cfg := DefaultConfig()
	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromEnv overrides config with environment variables.
func (c *Config) loadFromEnv() {
	if v := os.Getenv("YTREPORT_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("YTREPORT_SPREADSHEET_ID"); v != "" {
		c.SpreadsheetID = v
	}
	if v := os.Getenv("YTREPORT_CREDENTIALS_FILE"); v != "" {
		c.CredentialsFile = v
	}
	if v := os.Getenv("YTREPORT_READ_RANGE"); v != "" {
		c.ReadRange = v
	}
	if v := os.Getenv("YTREPORT_OUTPUT_PATH"); v != "" {
		c.OutputPath = v
	}
	if v := os.Getenv("YTREPORT_OUTPUT_FORMAT"); v != "" {
		c.OutputFormat = v
	}
	if v := os.Getenv("YTREPORT_MAX_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxRows = n
		}
	}
	if v := os.Getenv("YTREPORT_MAX_VIDEOS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxVideos = n
		}
	}
	if v := os.Getenv("YTREPORT_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxRetries = n
		}
	}
	if v := os.Getenv("YTREPORT_INITIAL_BACKOFF"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.InitialBackoff = d
		}
	}
	if v := os.Getenv("YTREPORT_MAX_BACKOFF"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.MaxBackoff = d
		}
	}
}

// Validate checks that configuration values are valid and consistent.
// It returns an error if any required value is missing or any value is
// invalid; the process must not start the pipeline in that case.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("YTREPORT_API_KEY is required")
	}
	if c.SpreadsheetID == "" {
		return fmt.Errorf("YTREPORT_SPREADSHEET_ID is required")
	}
	if c.CredentialsFile == "" {
		return fmt.Errorf("YTREPORT_CREDENTIALS_FILE is required")
	}
	if c.ReadRange == "" {
		return fmt.Errorf("read_range must not be empty")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output_path must not be empty")
	}
	if c.OutputFormat != FormatXLSX && c.OutputFormat != FormatCSV {
		return fmt.Errorf("output_format must be %q or %q", FormatXLSX, FormatCSV)
	}
	if c.MaxRows <= 0 {
		return fmt.Errorf("max_rows must be positive")
	}
	if c.MaxVideos <= 0 {
		return fmt.Errorf("max_videos must be positive")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be non-negative")
	}
	if c.InitialBackoff <= 0 {
		return fmt.Errorf("initial_backoff must be positive")
	}
	if c.MaxBackoff < c.InitialBackoff {
		return fmt.Errorf("max_backoff must be >= initial_backoff")
	}
	if c.BackoffMultiplier <= 1 {
		return fmt.Errorf("backoff_multiplier must be > 1")
	}
	return nil
}
