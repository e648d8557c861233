package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name searched in
// the current directory.
const DefaultConfigFile = ".a11yscan"

// ErrConfigNotFound is returned when the configuration file does not
// exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the a11yscan configuration file.
// All fields are optional; unset fields keep their built-in defaults.
type File struct {
	// UserAgent overrides the User-Agent header for URL fetches.
	UserAgent string `yaml:"user_agent,omitempty"`

	// TimeoutSeconds overrides the URL fetch timeout, in seconds.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`

	// MaxBodySize overrides the HTML body size cap, in bytes.
	MaxBodySize int64 `yaml:"max_body_size,omitempty"`

	// OutputDir overrides the directory for generated report files.
	OutputDir string `yaml:"output_dir,omitempty"`
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers
// should handle this based on whether the path was explicitly given by
// the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// Apply overlays the file's settings onto cfg. Zero-valued fields in
// the file are ignored so flags and defaults survive a sparse file.
func (cf *File) Apply(cfg *Config) {
	if cf.UserAgent != "" {
		cfg.UserAgent = cf.UserAgent
	}
	if cf.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(cf.TimeoutSeconds) * time.Second
	}
	if cf.MaxBodySize > 0 {
		cfg.MaxBodySize = cf.MaxBodySize
	}
	if cf.OutputDir != "" {
		cfg.OutputDir = cf.OutputDir
	}
}

// FindConfigFile searches for the configuration file in the following
// order:
//  1. If configPath is specified, use it directly
//  2. Look for .a11yscan in the current directory
//  3. Look for config.yaml under the XDG config directory
//
// Returns the path to the configuration file if found, or empty string
// if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	xdgConfig := filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}
