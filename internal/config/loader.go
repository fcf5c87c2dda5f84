package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd
var osLookupEnv = os.LookupEnv

const (
	userConfigDir    = ".config/fnctl"
	projectConfigDir = ".fnctl"
	configFileName   = "config.yaml"
)

// Environment variables read by LoadConfig.
const (
	EnvServerURL = "FNCTL_SERVER_URL"
	EnvAuthToken = "FNCTL_AUTH_TOKEN"
	EnvProject   = "FNCTL_PROJECT"
)

// LoadConfig loads the fnctl configuration by layering default, user and
// project settings and the environment.
func LoadConfig() (FnctlConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if config, err = mergeFileIfExists(config, userConfigPath); err != nil {
		return FnctlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if config, err = mergeFileIfExists(config, projectConfigPath); err != nil {
		return FnctlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	return applyEnv(config), nil
}

// LoadConfigFromPath loads defaults overlaid with a single explicit file and
// the environment. Used for --config.
func LoadConfigFromPath(path string) (FnctlConfig, error) {
	fileConfig, err := loadConfigFromFile(path)
	if err != nil {
		return FnctlConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return applyEnv(mergeConfigs(GetDefaultConfig(), fileConfig)), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func mergeFileIfExists(base FnctlConfig, path string) (FnctlConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	return mergeConfigs(base, overlay), nil
}

// loadConfigFromFile loads a FnctlConfig from a YAML file.
func loadConfigFromFile(filePath string) (FnctlConfig, error) {
	var config FnctlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return FnctlConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return FnctlConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Only fields set in
// the overlay replace base values.
func mergeConfigs(base, overlay FnctlConfig) FnctlConfig {
	merged := base

	setString(&merged.Backend.ServerURL, overlay.Backend.ServerURL)
	setString(&merged.Backend.ServiceRoot, overlay.Backend.ServiceRoot)
	setString(&merged.Backend.AuthToken, overlay.Backend.AuthToken)
	if overlay.Backend.Timeout > 0 {
		merged.Backend.Timeout = overlay.Backend.Timeout
	}

	setString(&merged.Project, overlay.Project)

	setString(&merged.Upload.Path, overlay.Upload.Path)
	setString(&merged.Upload.LocalBaseURL, overlay.Upload.LocalBaseURL)
	setString(&merged.Upload.PublicBaseURL, overlay.Upload.PublicBaseURL)

	setString(&merged.Display.Timezone, overlay.Display.Timezone)
	if overlay.Display.CopiedIndicator > 0 {
		merged.Display.CopiedIndicator = overlay.Display.CopiedIndicator
	}

	// The profile is replaced as a whole so that one user's fields never mix
	// with another's.
	if overlay.Profile.ID != "" {
		merged.Profile = overlay.Profile
	}

	return merged
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func applyEnv(config FnctlConfig) FnctlConfig {
	if v, ok := osLookupEnv(EnvServerURL); ok && v != "" {
		config.Backend.ServerURL = v
	}
	if v, ok := osLookupEnv(EnvAuthToken); ok && v != "" {
		config.Backend.AuthToken = v
	}
	if v, ok := osLookupEnv(EnvProject); ok && v != "" {
		config.Project = v
	}
	return config
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
