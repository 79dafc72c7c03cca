// Package config loads and validates the run configuration from a YAML
// file. Every error returned here is fatal to the run.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// anchorLayout is the date format for pay_period_anchor.
const anchorLayout = "2006-01-02"

// Config holds all application configuration
type Config struct {
	// Database connection
	Server            string `mapstructure:"server"`
	Port              int    `mapstructure:"port"`
	Database          string `mapstructure:"database"`
	Username          string `mapstructure:"username"`
	Password          string `mapstructure:"password"`
	TrustedConnection bool   `mapstructure:"trusted_connection"`

	// Generation range, inclusive
	StartYear int `mapstructure:"start_year"`
	EndYear   int `mapstructure:"end_year"`

	// First pay period boundary, ISO date
	PayPeriodAnchor string `mapstructure:"pay_period_anchor"`

	// Optional Excel workbook output path; empty disables the export
	ExcelOutput string `mapstructure:"excel_output"`

	LogLevel string `mapstructure:"log_level"`

	// Anchor is PayPeriodAnchor parsed during Load.
	Anchor time.Time `mapstructure:"-"`
}

// Load reads the configuration file at the given path and validates it.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("port", 5432)
	v.SetDefault("pay_period_anchor", "2025-01-12")
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	anchor, err := time.ParseInLocation(anchorLayout, cfg.PayPeriodAnchor, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid pay_period_anchor %q: %w", cfg.PayPeriodAnchor, err)
	}
	cfg.Anchor = anchor

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server == "" {
		return fmt.Errorf("server is required")
	}
	if c.Database == "" {
		return fmt.Errorf("database is required")
	}
	if !c.TrustedConnection && (c.Username == "" || c.Password == "") {
		return fmt.Errorf("username and password are required unless trusted_connection is set")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.StartYear < 1 {
		return fmt.Errorf("start_year must be positive, got %d", c.StartYear)
	}
	if c.StartYear > c.EndYear {
		return fmt.Errorf("start_year %d is after end_year %d", c.StartYear, c.EndYear)
	}
	return nil
}
