package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "mainviews"
	configFile = "config.yaml"

	currentVersion = 1
	maxPort        = 65535
	minTickMillis  = 10
)

// Defaults
const (
	DefaultPreviewPort  = 8765
	DefaultTickMillis   = 100
	DefaultFlushMillis  = 1000
	DefaultModelFile    = "model.yaml"
	DefaultGeneralFile  = "radio.yaml"
	DefaultInstanceName = "mainviews"
)

// Mutex for file operations
var fileMutex sync.Mutex

// Config is the entire user configuration file.
type Config struct {
	Version     int       `yaml:"version"`
	ModelPath   string    `yaml:"model_path"`
	GeneralPath string    `yaml:"general_path"`
	LogLevel    string    `yaml:"log_level,omitempty"`
	LogFile     string    `yaml:"log_file,omitempty"`
	Preview     Preview   `yaml:"preview"`
	Simulator   Simulator `yaml:"simulator"`

	// path the file was loaded from, empty for the default location
	path string
}

// Preview configures the headless preview server.
type Preview struct {
	Port      int    `yaml:"port"`
	Advertise bool   `yaml:"advertise"`
	Instance  string `yaml:"instance,omitempty"`
}

// Simulator configures the terminal simulator.
type Simulator struct {
	TickMillis       int `yaml:"tick_ms"`
	FlushDelayMillis int `yaml:"flush_delay_ms"`
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Version:     currentVersion,
		ModelPath:   DefaultModelFile,
		GeneralPath: DefaultGeneralFile,
		Preview: Preview{
			Port:      DefaultPreviewPort,
			Advertise: true,
			Instance:  DefaultInstanceName,
		},
		Simulator: Simulator{
			TickMillis:       DefaultTickMillis,
			FlushDelayMillis: DefaultFlushMillis,
		},
	}
}

// Tick is the simulator frame interval.
func (s Simulator) Tick() time.Duration {
	return time.Duration(s.TickMillis) * time.Millisecond
}

// FlushDelay is how long dirty records may stay unflushed.
func (s Simulator) FlushDelay() time.Duration {
	return time.Duration(s.FlushDelayMillis) * time.Millisecond
}

// GetConfigDir returns the OS-appropriate configuration directory.
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
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			baseDir = filepath.Join(xdg, appName)
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

// GetConfigPath returns the full path to the default configuration file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the configuration at path, or at the default location when
// path is empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Version != currentVersion {
		return nil, fmt.Errorf("unsupported config version: %d (expected %d)", cfg.Version, currentVersion)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.ModelPath == "" {
		return fmt.Errorf("model_path must not be empty")
	}
	if c.GeneralPath == "" {
		return fmt.Errorf("general_path must not be empty")
	}
	if c.Preview.Port < 0 || c.Preview.Port > maxPort {
		return fmt.Errorf("preview.port %d out of range", c.Preview.Port)
	}
	if c.Simulator.TickMillis < minTickMillis {
		return fmt.Errorf("simulator.tick_ms must be at least %d", minTickMillis)
	}
	if c.Simulator.FlushDelayMillis < 0 {
		return fmt.Errorf("simulator.flush_delay_ms must not be negative")
	}
	return nil
}

// Path returns the file this configuration is bound to.
func (c *Config) Path() string {
	return c.path
}

// Resolve makes p absolute relative to the configuration directory.
func (c *Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(c.path), p)
}

// ModelFile is the resolved model record path.
func (c *Config) ModelFile() string {
	return c.Resolve(c.ModelPath)
}

// GeneralFile is the resolved general record path.
func (c *Config) GeneralFile() string {
	return c.Resolve(c.GeneralPath)
}

// Save writes the configuration atomically to the path it was loaded from.
func (c *Config) Save() error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if c.path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		c.path = p
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# mainviews configuration file
# Record paths are relative to this file's directory.
#
# Location: ` + c.path + `

`)
	data = append(header, data...)

	tmpPath := c.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}
	if err := os.Rename(tmpPath, c.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}
	return nil
}

// SaveAs binds the configuration to path and saves it.
func (c *Config) SaveAs(path string) error {
	c.path = path
	return c.Save()
}
