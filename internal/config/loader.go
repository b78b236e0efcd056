package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
	cfgFile string
}

// NewLoader creates a loader that searches for .devinfo.yml in rootDir.
func NewLoader(rootDir string) Loader {
	return &loader{rootDir: rootDir}
}

// NewFileLoader creates a loader bound to an explicit config file.
func NewFileLoader(cfgFile string) Loader {
	return &loader{cfgFile: cfgFile}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (DEVINFO_*)
// 2. Config file (.devinfo.yml / .devinfo.yaml at the scanned root)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	if l.cfgFile != "" {
		v.SetConfigFile(l.cfgFile)
	} else {
		v.SetConfigName(".devinfo")
		v.SetConfigType("yaml")
		v.AddConfigPath(l.rootDir)
	}

	v.SetEnvPrefix("DEVINFO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("compose.path")
	v.BindEnv("output.path")
	v.BindEnv("output.start_marker")
	v.BindEnv("output.end_marker")
	v.BindEnv("unified")

	defaults := Default()
	v.SetDefault("patterns.dockerfile", defaults.Patterns.Dockerfile)
	v.SetDefault("patterns.tasks", defaults.Patterns.Tasks)
	v.SetDefault("patterns.launch", defaults.Patterns.Launch)
	v.SetDefault("patterns.devcontainer", defaults.Patterns.Devcontainer)
	v.SetDefault("patterns.ignore", defaults.Patterns.Ignore)
	v.SetDefault("compose.path", defaults.Compose.Path)
	v.SetDefault("output.path", defaults.Output.Path)
	v.SetDefault("output.start_marker", defaults.Output.StartMarker)
	v.SetDefault("output.end_marker", defaults.Output.EndMarker)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file: defaults plus environment only.
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromDir loads the configuration for a scan rooted at rootDir.
func LoadFromDir(rootDir string) (*Config, error) {
	return NewLoader(rootDir).Load()
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(cfgFile string) (*Config, error) {
	return NewFileLoader(cfgFile).Load()
}
