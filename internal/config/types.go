package config

import (
	"time"

	"fnctl/internal/functionapp"
)

// FnctlConfig is the top-level configuration structure for fnctl.
type FnctlConfig struct {
	Backend BackendConfig       `yaml:"backend"`
	Project string              `yaml:"project,omitempty"`
	Upload  UploadConfig        `yaml:"upload"`
	Display DisplayConfig       `yaml:"display"`
	Profile functionapp.Profile `yaml:"profile,omitempty"`
}

// BackendConfig locates the toolkit OData service.
type BackendConfig struct {
	ServerURL   string        `yaml:"serverUrl,omitempty"`
	ServiceRoot string        `yaml:"serviceRoot,omitempty"` // appended to ServerURL, e.g. "/odata/"
	AuthToken   string        `yaml:"authToken,omitempty"`
	Timeout     time.Duration `yaml:"timeout,omitempty"`
}

// UploadConfig configures the zip upload service.
type UploadConfig struct {
	Path          string `yaml:"path,omitempty"`
	LocalBaseURL  string `yaml:"localBaseUrl,omitempty"`
	PublicBaseURL string `yaml:"publicBaseUrl,omitempty"`
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	Timezone        string        `yaml:"timezone,omitempty"`
	CopiedIndicator time.Duration `yaml:"copiedIndicator,omitempty"`
}

// Location resolves Timezone, falling back to time.Local.
func (d DisplayConfig) Location() (*time.Location, error) {
	if d.Timezone == "" || d.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(d.Timezone)
}
