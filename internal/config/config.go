// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Supported log levels and formats.
var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	SiteConfigPath string `env:"OCMS_SITE_CONFIG" envDefault:"./config/sites/main/config.yaml"`
	Env            string `env:"OCMS_ENV" envDefault:"development"`
	LogLevel       string `env:"OCMS_LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"OCMS_LOG_FORMAT" envDefault:"text"` // text or json
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// UseJSONLogs returns true if logs should be written as JSON.
func (c Config) UseJSONLogs() bool {
	return c.LogFormat == "json"
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if !slices.Contains(logLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("OCMS_LOG_LEVEL must be one of %v, got %q", logLevels, cfg.LogLevel)
	}
	if !slices.Contains(logFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("OCMS_LOG_FORMAT must be one of %v, got %q", logFormats, cfg.LogFormat)
	}

	return cfg, nil
}
