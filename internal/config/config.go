package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/studiowebux/hcp/internal/types"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755
)

const (
	DefaultURL       = "https://httpbin.org/get"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "hcp/1.0"
)

var (
	// ConfigDir is the global configuration directory (~/.hcp)
	ConfigDir string

	// ConfigFile is the YAML settings file
	ConfigFile string

	// KeybindsFile is the keybinding override file
	KeybindsFile string
)

// Initialize resolves the configuration paths under the user's home.
// Nothing is created on disk: every file is optional.
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	ConfigDir = filepath.Join(homeDir, ".hcp")
	ConfigFile = filepath.Join(ConfigDir, "config.yaml")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.json")

	return nil
}

// Settings is the content of config.yaml. Zero fields keep their defaults.
type Settings struct {
	DefaultURL     string   `yaml:"default_url"`
	DefaultMethod  string   `yaml:"default_method"`
	DefaultHeaders []string `yaml:"default_headers"`
	Timeout        string   `yaml:"timeout"`
	Insecure       bool     `yaml:"insecure"`
	UserAgent      string   `yaml:"user_agent"`
	Query          string   `yaml:"query"`
	LogFile        string   `yaml:"log_file"`
	LogLevel       string   `yaml:"log_level"`
	Keybinds       string   `yaml:"keybinds"`
	Theme          string   `yaml:"theme"`
}

// Defaults returns the settings used when no file exists
func Defaults() Settings {
	return Settings{
		DefaultURL:     DefaultURL,
		DefaultMethod:  types.MethodGet.String(),
		DefaultHeaders: []string{"Content-Type: application/json"},
		Timeout:        DefaultTimeout.String(),
		UserAgent:      DefaultUserAgent,
		LogLevel:       "info",
		Keybinds:       KeybindsFile,
		Theme:          "monokai",
	}
}

// Load reads settings from path on top of Defaults. A missing file is not an error.
func Load(path string) (Settings, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	s.Keybinds = ExpandHome(s.Keybinds)
	s.LogFile = ExpandHome(s.LogFile)

	return s, s.Validate()
}

// Validate checks fields that would otherwise fail later at runtime
func (s Settings) Validate() error {
	if _, err := types.ParseMethod(s.DefaultMethod); err != nil {
		return fmt.Errorf("default_method: %w", err)
	}
	if _, err := s.TimeoutDuration(); err != nil {
		return fmt.Errorf("timeout: %w", err)
	}
	return nil
}

// Method returns the parsed default method, GET when unset
func (s Settings) Method() types.Method {
	m, err := types.ParseMethod(s.DefaultMethod)
	if err != nil {
		return types.MethodGet
	}
	return m
}

// TimeoutDuration parses Timeout. Empty means DefaultTimeout.
func (s Settings) TimeoutDuration() (time.Duration, error) {
	if strings.TrimSpace(s.Timeout) == "" {
		return DefaultTimeout, nil
	}
	d, err := time.ParseDuration(s.Timeout)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", s.Timeout)
	}
	return d, nil
}

// HeaderLines joins the default headers into editor text
func (s Settings) HeaderLines() string {
	return strings.Join(s.DefaultHeaders, "\n")
}

// ExpandHome expands a leading ~/ to the home directory
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}
