package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"fnctl/internal/config"
	"fnctl/pkg/logging"
)

// Application is the main application structure that bootstraps and runs fnctl
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads the configuration and wires the services. CLI logs go
// to stderr so stdout stays clean for command output and the MCP transport.
func NewApplication(cfg *Config) (*Application, error) {
	return newApplication(cfg, os.Stderr)
}

func newApplication(cfg *Config, logOutput io.Writer) (*Application, error) {
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}
	logging.InitForCLI(appLogLevel, logOutput)

	var fnctlCfg config.FnctlConfig
	var err error

	if cfg.ConfigPath != "" {
		fnctlCfg, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load fnctl configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load fnctl configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		fnctlCfg, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load fnctl configuration")
			return nil, fmt.Errorf("failed to load fnctl configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	if p := strings.TrimSpace(cfg.Project); p != "" {
		fnctlCfg.Project = p
	}
	cfg.FnctlConfig = &fnctlCfg

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// Services returns the wired services.
func (a *Application) Services() *Services { return a.services }

// Project is the project commands act on.
func (a *Application) Project() string { return a.config.FnctlConfig.Project }

// Settings returns the loaded configuration.
func (a *Application) Settings() config.FnctlConfig { return *a.config.FnctlConfig }
