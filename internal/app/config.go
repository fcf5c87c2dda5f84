package app

import (
	"fnctl/internal/config"
)

// Config holds the application configuration
type Config struct {
	// ConfigPath, when set, replaces the layered lookup with a single file.
	ConfigPath string

	// Project overrides the configured project.
	Project string

	// Debug settings
	Debug bool

	// FnctlConfig is filled in by NewApplication.
	FnctlConfig *config.FnctlConfig
}

// NewConfig creates a new application configuration
func NewConfig(configPath, project string, debug bool) *Config {
	return &Config{
		ConfigPath: configPath,
		Project:    project,
		Debug:      debug,
	}
}
