package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/studiowebux/hcp/internal/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), FilePermissions); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.DefaultURL != DefaultURL {
		t.Errorf("DefaultURL = %q, want %q", s.DefaultURL, DefaultURL)
	}
	if s.Method() != types.MethodGet {
		t.Errorf("Method = %v, want GET", s.Method())
	}
	if s.HeaderLines() != "Content-Type: application/json" {
		t.Errorf("HeaderLines = %q", s.HeaderLines())
	}
	if s.Insecure {
		t.Error("Insecure should default to false")
	}
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
default_url: http://localhost:8080/api
default_method: post
default_headers:
  - "Accept: application/json"
  - "X-Trace: 1"
timeout: 5s
insecure: true
user_agent: tester
query: items[0]
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"url", s.DefaultURL, "http://localhost:8080/api"},
		{"method", s.Method(), types.MethodPost},
		{"headers", s.HeaderLines(), "Accept: application/json\nX-Trace: 1"},
		{"insecure", s.Insecure, true},
		{"user agent", s.UserAgent, "tester"},
		{"query", s.Query, "items[0]"},
		{"theme kept", s.Theme, "monokai"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	d, err := s.TimeoutDuration()
	if err != nil || d != 5*time.Second {
		t.Errorf("TimeoutDuration = %v, %v", d, err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad method", "default_method: PATCH\n"},
		{"bad timeout", "timeout: soon\n"},
		{"negative timeout", "timeout: -1s\n"},
		{"bad yaml", "default_url: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestTimeoutDuration_Empty(t *testing.T) {
	d, err := Settings{}.TimeoutDuration()
	if err != nil || d != DefaultTimeout {
		t.Errorf("TimeoutDuration = %v, %v; want %v", d, err, DefaultTimeout)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandHome("~/x/y.log"); got != filepath.Join(home, "x", "y.log") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome changed absolute path: %q", got)
	}
}
