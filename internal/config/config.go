package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const appName = "ttsforge"

// Output shapes
const (
	OutputList = "list"
	OutputMap  = "map"
)

// Record error policies
const (
	OnErrorAbort = "abort"
	OnErrorSkip  = "skip"
)

// Config represents the application configuration
type Config struct {
	DefaultCatalog string `toml:"default_catalog"`
	Output         string `toml:"output"`
	OnError        string `toml:"on_error"`
	Workers        int    `toml:"workers"`
	LogLevel       string `toml:"log_level"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		DefaultCatalog: "default-cards.json",
		Output:         OutputList,
		OnError:        OnErrorAbort,
		Workers:        4,
		LogLevel:       "info",
	}
}

// Validate checks option values
func (c *Config) Validate() error {
	switch c.Output {
	case OutputList, OutputMap:
	default:
		return fmt.Errorf("invalid output %q (expected %s or %s)", c.Output, OutputList, OutputMap)
	}
	switch c.OnError {
	case OnErrorAbort, OnErrorSkip:
	default:
		return fmt.Errorf("invalid on_error %q (expected %s or %s)", c.OnError, OnErrorAbort, OnErrorSkip)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetCatalogLibraryPath returns the path to the catalog library
func GetCatalogLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), appName, "catalogs")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing.
// Keys absent from the file keep their default values.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := writeConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// GetCatalogPath resolves a catalog, either in the catalog library or as a
// relative path
func GetCatalogPath(name string) (string, error) {
	// First, try to find the catalog in the library
	libraryPath := filepath.Join(GetCatalogLibraryPath(), name)
	if _, err := os.Stat(libraryPath); err == nil {
		return libraryPath, nil
	}

	// If not found in the library, treat as a relative path
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	return "", fmt.Errorf("catalog not found: %s", name)
}

// SetDefaultCatalog sets the default catalog in the config
func SetDefaultCatalog(name string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultCatalog = name
	return writeConfig(config)
}
