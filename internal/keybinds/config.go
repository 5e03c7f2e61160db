package keybinds

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the user's keybinding configuration.
// Each section maps a key (as bubbletea names it, e.g. "ctrl+s") to an action.
type Config struct {
	Version        string            `json:"version"`
	Global         map[string]string `json:"global,omitempty"`
	URLBar         map[string]string `json:"url_bar,omitempty"`
	MethodSelector map[string]string `json:"method_selector,omitempty"`
	InputArea      map[string]string `json:"input_area,omitempty"`
	ResponseViewer map[string]string `json:"response_viewer,omitempty"`
}

// sections maps config sections to contexts
func (c *Config) sections() map[Context]map[string]string {
	return map[Context]map[string]string{
		ContextGlobal:         c.Global,
		ContextURLBar:         c.URLBar,
		ContextMethodSelector: c.MethodSelector,
		ContextInputArea:      c.InputArea,
		ContextResponseViewer: c.ResponseViewer,
	}
}

// LoadConfig loads keybinding configuration from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.json format: %w", err)
	}

	return &config, nil
}

// SaveConfig saves keybinding configuration to a JSON file
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyConfig applies user configuration to a registry.
// User bindings override default bindings; unknown actions are rejected.
func ApplyConfig(registry *Registry, config *Config) error {
	for context, bindings := range config.sections() {
		for key, actionStr := range bindings {
			if err := ValidateKey(key); err != nil {
				return fmt.Errorf("%s: %w", context, err)
			}
			action := Action(actionStr)
			if !IsKnownAction(action) {
				return fmt.Errorf("%s: unknown action %q for key %q", context, actionStr, key)
			}
			registry.Register(context, key, action)
		}
	}

	return nil
}

// LoadOrDefault loads user config if it exists, otherwise returns default registry
func LoadOrDefault(configPath string) (*Registry, error) {
	registry := NewDefaultRegistry()

	if configPath == "" {
		return registry, nil
	}

	if _, err := os.Stat(configPath); err == nil {
		config, err := LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load keybinds.json: %w", err)
		}

		if err := ApplyConfig(registry, config); err != nil {
			return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
		}
	}
	// If config doesn't exist, that's fine - use defaults

	return registry, nil
}

// ExportDefaults exports the default keybindings in config form so users
// can copy and edit them
func ExportDefaults() *Config {
	registry := NewDefaultRegistry()
	config := &Config{Version: "1.0"}

	export := func(context Context) map[string]string {
		out := make(map[string]string)
		for _, b := range registry.ListBindings(context) {
			out[b.Key] = string(b.Action)
		}
		return out
	}

	config.Global = export(ContextGlobal)
	config.URLBar = export(ContextURLBar)
	config.MethodSelector = export(ContextMethodSelector)
	config.ResponseViewer = export(ContextResponseViewer)

	return config
}
