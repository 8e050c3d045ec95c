package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/churnlens/churnform/internal/logging"
)

const (
	appName    = "churnform"
	configFile = "config.yaml"
	logFile    = "churnform.log"

	// DefaultEndpoint is the prediction service address used when nothing
	// else is configured
	DefaultEndpoint = "http://localhost:8000"

	// EndpointEnvVar overrides the file endpoint
	EndpointEnvVar = "CHURNFORM_API_URL"
	// LogLevelEnvVar overrides the file log level
	LogLevelEnvVar = logging.LogLevelEnvVar
)

// Settings is the content of the configuration file
type Settings struct {
	Version  int           `yaml:"version,omitempty"`
	Endpoint string        `yaml:"endpoint,omitempty"`  // Prediction service base URL
	Timeout  time.Duration `yaml:"timeout,omitempty"`   // Per-request timeout, 0 for none
	LogLevel string        `yaml:"log_level,omitempty"` // debug, info, warn, error
	LogFile  string        `yaml:"log_file,omitempty"`  // Log output while the form runs
}

// Overrides holds values given on the command line. Empty strings and a
// nil Timeout mean "not set".
type Overrides struct {
	Endpoint string
	LogLevel string
	LogFile  string
	Timeout  *time.Duration
}

// GetConfigDir returns the OS-appropriate configuration directory for the application.
//   - Linux: $XDG_CONFIG_HOME/churnform or $HOME/.config/churnform
//   - macOS: $HOME/.config/churnform
//   - Windows: %LOCALAPPDATA%\churnform
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// DefaultLogPath returns the log file used when none is configured
func DefaultLogPath() string {
	configDir, err := GetConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), logFile)
	}
	return filepath.Join(configDir, logFile)
}

// Load reads settings from path. A missing file yields empty settings.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if s.Version != 0 && s.Version != 1 {
		return nil, fmt.Errorf("unsupported config version: %d (expected 1)", s.Version)
	}
	if s.Timeout < 0 {
		return nil, fmt.Errorf("invalid timeout %s: must not be negative", s.Timeout)
	}

	return &s, nil
}

// Resolve merges overrides, environment and file settings into the
// effective settings. file may be nil.
func Resolve(file *Settings, o Overrides, getenv func(string) string) Settings {
	if file == nil {
		file = &Settings{}
	}
	if getenv == nil {
		getenv = os.Getenv
	}

	out := Settings{
		Version:  1,
		Endpoint: first(o.Endpoint, getenv(EndpointEnvVar), file.Endpoint, DefaultEndpoint),
		LogLevel: first(o.LogLevel, getenv(LogLevelEnvVar), file.LogLevel),
		LogFile:  first(o.LogFile, file.LogFile),
		Timeout:  file.Timeout,
	}
	if o.Timeout != nil {
		out.Timeout = *o.Timeout
	}

	return out
}

// first returns the first value that is not blank
func first(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
