package settings

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"packmyseal.io/pms/pkg/errors"
	"packmyseal.io/pms/pkg/reporter"
)

// The config.toml used to persist the registry address and timeout budgets.
const CONFIG_TOML_PATH = ".pms/config.toml"

// DEFAULT_REGISTRY is the registry used when neither the config file nor
// the PMS_REGISTRY environment variable says otherwise.
const DEFAULT_REGISTRY = "https://packmyseal.pythonanywhere.com"

// Per-operation timeout budgets in seconds, short for metadata lookups,
// long for archive transfer.
const (
	DEFAULT_AUTH_TIMEOUT     = 10
	DEFAULT_METADATA_TIMEOUT = 15
	DEFAULT_DOWNLOAD_TIMEOUT = 30
	DEFAULT_UPLOAD_TIMEOUT   = 60
)

// Settings is the pms client configuration loaded from the global
// configuration file.
type Settings struct {
	// Registry is the base url of the pms registry.
	Registry string `toml:"registry"`
	// Timeouts are the per-operation timeout budgets.
	Timeouts Timeouts `toml:"timeouts"`

	// ErrorEvent is the error event during the settings initialization.
	ErrorEvent *reporter.PmsEvent `toml:"-"`
}

// Timeouts holds the timeout budget for each class of registry call,
// in seconds.
type Timeouts struct {
	Auth     int `toml:"auth"`
	Metadata int `toml:"metadata"`
	Download int `toml:"download"`
	Upload   int `toml:"upload"`
}

// AuthTimeout returns the budget for token check/refresh/whoami calls.
func (s *Settings) AuthTimeout() time.Duration {
	return time.Duration(s.Timeouts.Auth) * time.Second
}

// MetadataTimeout returns the budget for register/login/version lookups.
func (s *Settings) MetadataTimeout() time.Duration {
	return time.Duration(s.Timeouts.Metadata) * time.Second
}

// DownloadTimeout returns the budget for module archive downloads.
func (s *Settings) DownloadTimeout() time.Duration {
	return time.Duration(s.Timeouts.Download) * time.Second
}

// UploadTimeout returns the budget for module archive uploads.
func (s *Settings) UploadTimeout() time.Duration {
	return time.Duration(s.Timeouts.Upload) * time.Second
}

// GetConfigTomlPath returns config.toml file path under '$HOME/.pms/config.toml'
func GetConfigTomlPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.InternalBug
	}

	return filepath.Join(home, CONFIG_TOML_PATH), nil
}

// DefaultSettings returns the builtin pms settings.
func DefaultSettings() *Settings {
	return &Settings{
		Registry: DEFAULT_REGISTRY,
		Timeouts: Timeouts{
			Auth:     DEFAULT_AUTH_TIMEOUT,
			Metadata: DEFAULT_METADATA_TIMEOUT,
			Download: DEFAULT_DOWNLOAD_TIMEOUT,
			Upload:   DEFAULT_UPLOAD_TIMEOUT,
		},
	}
}

// Init returns the pms settings loaded from the global configuration file.
// A missing file is not an error, the defaults apply. The environment
// variable 'PMS_REGISTRY' overrides the configured registry.
func Init() (*Settings, error) {
	configPath, err := GetConfigTomlPath()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFromFile(configPath)
}

// LoadSettingsFromFile loads settings from the given toml file path.
func LoadSettingsFromFile(configPath string) (*Settings, error) {
	settings := DefaultSettings()

	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, settings); err != nil {
			return nil, reporter.NewErrorEvent(
				reporter.FailedLoadSettings,
				err,
				"failed to load the settings from "+configPath,
			)
		}
	}

	if registry := os.Getenv("PMS_REGISTRY"); registry != "" {
		settings.Registry = registry
	}

	if settings.Timeouts.Auth <= 0 {
		settings.Timeouts.Auth = DEFAULT_AUTH_TIMEOUT
	}
	if settings.Timeouts.Metadata <= 0 {
		settings.Timeouts.Metadata = DEFAULT_METADATA_TIMEOUT
	}
	if settings.Timeouts.Download <= 0 {
		settings.Timeouts.Download = DEFAULT_DOWNLOAD_TIMEOUT
	}
	if settings.Timeouts.Upload <= 0 {
		settings.Timeouts.Upload = DEFAULT_UPLOAD_TIMEOUT
	}

	return settings, nil
}

// GetSettings returns the pms settings, falling back to the defaults
// and recording the load failure in 'ErrorEvent'.
func GetSettings() *Settings {
	settings, err := Init()
	if err != nil {
		settings = DefaultSettings()
		if event, ok := err.(*reporter.PmsEvent); ok {
			settings.ErrorEvent = event
		} else {
			settings.ErrorEvent = reporter.NewErrorEvent(reporter.FailedLoadSettings, err)
		}
	}
	return settings
}
