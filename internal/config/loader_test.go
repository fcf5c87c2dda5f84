package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigFile writes raw YAML to dir/rel, creating parent directories.
func writeConfigFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// mockPaths points the loader at tempDir and an empty environment.
func mockPaths(t *testing.T, tempDir string, env map[string]string) {
	t.Helper()
	originalHome, originalWd, originalEnv := osUserHomeDir, osGetwd, osLookupEnv
	originalUser, originalProject := getUserConfigPath, getProjectConfigPath
	t.Cleanup(func() {
		osUserHomeDir, osGetwd, osLookupEnv = originalHome, originalWd, originalEnv
		getUserConfigPath, getProjectConfigPath = originalUser, originalProject
	})

	osUserHomeDir = func() (string, error) { return filepath.Join(tempDir, "home"), nil }
	osGetwd = func() (string, error) { return filepath.Join(tempDir, "work"), nil }
	osLookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	mockPaths(t, t.TempDir(), nil)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loaded)
	assert.Empty(t, loaded.Backend.ServerURL)
	assert.Equal(t, DefaultCopiedIndicator, loaded.Display.CopiedIndicator)
}

func TestLoadConfig_UserOverride(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir, nil)

	writeConfigFile(t, filepath.Join(tempDir, "home"), filepath.Join(userConfigDir, configFileName), `
backend:
  serverUrl: https://toolkit.example.com
  authToken: dXNlcjpwYXNz
  timeout: 10s
project: acme
display:
  timezone: Europe/Amsterdam
`)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://toolkit.example.com", loaded.Backend.ServerURL)
	assert.Equal(t, "dXNlcjpwYXNz", loaded.Backend.AuthToken)
	assert.Equal(t, 10*time.Second, loaded.Backend.Timeout)
	assert.Equal(t, DefaultServiceRoot, loaded.Backend.ServiceRoot, "unset fields keep defaults")
	assert.Equal(t, "acme", loaded.Project)
	assert.Equal(t, "Europe/Amsterdam", loaded.Display.Timezone)
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir, nil)

	writeConfigFile(t, filepath.Join(tempDir, "home"), filepath.Join(userConfigDir, configFileName), `
backend:
  serverUrl: https://user.example.com
project: user-project
profile:
  id: "1"
  name: Ada
  email: ada@example.com
`)
	writeConfigFile(t, filepath.Join(tempDir, "work"), filepath.Join(projectConfigDir, configFileName), `
project: team-project
upload:
  publicBaseUrl: https://uploads.example.com
profile:
  id: "2"
  name: Grace
`)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://user.example.com", loaded.Backend.ServerURL)
	assert.Equal(t, "team-project", loaded.Project)
	assert.Equal(t, "https://uploads.example.com", loaded.Upload.PublicBaseURL)
	assert.Equal(t, DefaultLocalBaseURL, loaded.Upload.LocalBaseURL)
	assert.Equal(t, "2", loaded.Profile.ID)
	assert.Equal(t, "Grace", loaded.Profile.Name)
	assert.Empty(t, loaded.Profile.Email, "profiles are replaced, not merged")
}

func TestLoadConfig_EnvironmentWins(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir, map[string]string{
		EnvServerURL: "https://env.example.com",
		EnvAuthToken: "ZW52",
		EnvProject:   "",
	})
	writeConfigFile(t, filepath.Join(tempDir, "work"), filepath.Join(projectConfigDir, configFileName), `
backend:
  serverUrl: https://file.example.com
project: from-file
`)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", loaded.Backend.ServerURL)
	assert.Equal(t, "ZW52", loaded.Backend.AuthToken)
	assert.Equal(t, "from-file", loaded.Project, "empty env values are ignored")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir, nil)
	writeConfigFile(t, filepath.Join(tempDir, "work"), filepath.Join(projectConfigDir, configFileName), "backend: [unclosed")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading project config")
}

func TestLoadConfigFromPath(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir, map[string]string{EnvProject: "env-project"})
	path := writeConfigFile(t, tempDir, "custom.yaml", `
backend:
  serverUrl: https://custom.example.com
display:
  copiedIndicator: 500ms
`)

	loaded, err := LoadConfigFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "https://custom.example.com", loaded.Backend.ServerURL)
	assert.Equal(t, 500*time.Millisecond, loaded.Display.CopiedIndicator)
	assert.Equal(t, "env-project", loaded.Project)

	_, err = LoadConfigFromPath(filepath.Join(tempDir, "missing.yaml"))
	assert.Error(t, err)
}

func TestGetUserConfigDir(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir, nil)

	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tempDir, "home", userConfigDir), dir)
}

func TestDisplayLocation(t *testing.T) {
	loc, err := DisplayConfig{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = DisplayConfig{Timezone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = DisplayConfig{Timezone: "Mars/Olympus"}.Location()
	assert.Error(t, err)
}
