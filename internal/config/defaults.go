package config

import "time"

const (
	DefaultServiceRoot     = "/odata/"
	DefaultUploadPath      = "/toolkit/zipdeploy/"
	DefaultTimeout         = 30 * time.Second
	DefaultCopiedIndicator = 2 * time.Second
	DefaultLocalBaseURL    = "http://localhost:8888"
)

// GetDefaultConfig returns the built-in configuration. No backend is
// configured by default.
func GetDefaultConfig() FnctlConfig {
	return FnctlConfig{
		Backend: BackendConfig{
			ServiceRoot: DefaultServiceRoot,
			Timeout:     DefaultTimeout,
		},
		Upload: UploadConfig{
			Path:         DefaultUploadPath,
			LocalBaseURL: DefaultLocalBaseURL,
		},
		Display: DisplayConfig{
			Timezone:        "Local",
			CopiedIndicator: DefaultCopiedIndicator,
		},
	}
}
