package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	assert.Equal(t, settings.Registry, DEFAULT_REGISTRY)
	assert.Equal(t, settings.AuthTimeout(), 10*time.Second)
	assert.Equal(t, settings.MetadataTimeout(), 15*time.Second)
	assert.Equal(t, settings.DownloadTimeout(), 30*time.Second)
	assert.Equal(t, settings.UploadTimeout(), 60*time.Second)
}

func TestGetConfigTomlPath(t *testing.T) {
	path, err := GetConfigTomlPath()
	assert.Equal(t, err, nil)

	home, err := os.UserHomeDir()
	assert.Equal(t, err, nil)
	assert.Equal(t, path, filepath.Join(home, CONFIG_TOML_PATH))
}

func TestLoadSettingsFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(configPath, []byte(
		"registry = \"http://localhost:8080\"\n"+
			"[timeouts]\n"+
			"download = 120\n",
	), 0644)
	assert.Equal(t, err, nil)

	settings, err := LoadSettingsFromFile(configPath)
	assert.Equal(t, err, nil)
	assert.Equal(t, settings.Registry, "http://localhost:8080")
	assert.Equal(t, settings.DownloadTimeout(), 120*time.Second)
	// untouched budgets keep their defaults
	assert.Equal(t, settings.AuthTimeout(), 10*time.Second)
}

func TestLoadSettingsMissingFile(t *testing.T) {
	settings, err := LoadSettingsFromFile(filepath.Join(t.TempDir(), "no_such.toml"))
	assert.Equal(t, err, nil)
	assert.Equal(t, settings.Registry, DEFAULT_REGISTRY)
}

func TestRegistryEnvOverride(t *testing.T) {
	t.Setenv("PMS_REGISTRY", "http://registry.env:9000")
	settings, err := LoadSettingsFromFile(filepath.Join(t.TempDir(), "no_such.toml"))
	assert.Equal(t, err, nil)
	assert.Equal(t, settings.Registry, "http://registry.env:9000")
}
