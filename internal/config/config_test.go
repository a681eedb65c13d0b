package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osa/recipes/internal/errors"
)

// clearEnv unsets the RECIPES_* variables for the duration of a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"RECIPES_BASE_URL", "RECIPES_THEME", "RECIPES_NOTIFICATIONS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nope", "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.GetBaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.GetBaseURL(), DefaultBaseURL)
	}
	if cfg.GetTheme() != DefaultTheme {
		t.Errorf("Theme = %q, want %q", cfg.GetTheme(), DefaultTheme)
	}
	if !cfg.GetNotificationsEnabled() {
		t.Error("notifications should default to enabled")
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
}

func TestLoad_FileValues(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "base_url: https://recipes.example.com\ntheme: nord\nnotifications: false\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.GetBaseURL() != "https://recipes.example.com" {
		t.Errorf("BaseURL = %q", cfg.GetBaseURL())
	}
	if cfg.GetTheme() != "nord" {
		t.Errorf("Theme = %q, want nord", cfg.GetTheme())
	}
	if cfg.GetNotificationsEnabled() {
		t.Error("notifications should be disabled by the file")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "theme: light\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.GetBaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want default", cfg.GetBaseURL())
	}
	if cfg.GetTheme() != "light" {
		t.Errorf("Theme = %q, want light", cfg.GetTheme())
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "base_url: http://file:1\ntheme: nord\n")
	t.Setenv("RECIPES_BASE_URL", "http://env:2")
	t.Setenv("RECIPES_THEME", "gruvbox")
	t.Setenv("RECIPES_NOTIFICATIONS", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.GetBaseURL() != "http://env:2" {
		t.Errorf("BaseURL = %q, want env value", cfg.GetBaseURL())
	}
	if cfg.GetTheme() != "gruvbox" {
		t.Errorf("Theme = %q, want env value", cfg.GetTheme())
	}
	if cfg.GetNotificationsEnabled() {
		t.Error("notifications should be disabled by env")
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		env      map[string]string
		wantKind errors.Kind
	}{
		{"malformed yaml", "base_url: [unterminated\n", nil, errors.KindConfig},
		{"bad env bool", "", map[string]string{"RECIPES_NOTIFICATIONS": "maybe"}, errors.KindConfig},
		{"relative url", "base_url: /recipe\n", nil, errors.KindInvalid},
		{"unknown theme", "theme: neon\n", nil, errors.KindInvalid},
		{"ftp url", "", map[string]string{"RECIPES_BASE_URL": "ftp://host"}, errors.KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := writeConfig(t, tt.content)

			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.wantKind) {
				t.Errorf("error kind = %v, want %v (%v)", errors.GetKind(err), tt.wantKind, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		theme   string
		wantErr bool
	}{
		{"default", DefaultBaseURL, DefaultTheme, false},
		{"https with path", "https://api.example.com/v1", "nord", false},
		{"empty theme", DefaultBaseURL, "", false},
		{"no scheme", "localhost:8080", "", true},
		{"no host", "http://", "", true},
		{"empty url", "", "", true},
		{"unknown theme", DefaultBaseURL, "solarized", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{BaseURL: tt.baseURL, Theme: tt.theme}
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveTheme_RoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	cfg.SetTheme("light")
	if err := cfg.SaveTheme(); err != nil {
		t.Fatalf("SaveTheme returned error: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload returned error: %v", err)
	}
	if reloaded.GetTheme() != "light" {
		t.Errorf("Theme = %q after reload, want light", reloaded.GetTheme())
	}
	if reloaded.GetBaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL = %q after reload, want the default", reloaded.GetBaseURL())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved config: %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != "theme: light" {
		t.Errorf("saved file = %q, want only the theme", got)
	}
}

func TestSaveTheme_KeepsOverridesOutOfFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `# my backend
base_url: http://file.example
theme: gruvbox
`)
	t.Setenv("RECIPES_BASE_URL", "http://env.example:9000")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	cfg.SetBaseURL("http://flag.example")
	cfg.SetTheme("nord")
	if err := cfg.SaveTheme(); err != nil {
		t.Fatalf("SaveTheme returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved config: %v", err)
	}
	saved := string(data)
	for _, want := range []string{"# my backend", "base_url: http://file.example", "theme: nord"} {
		if !strings.Contains(saved, want) {
			t.Errorf("saved file missing %q:\n%s", want, saved)
		}
	}
	for _, unwanted := range []string{"env.example", "flag.example", "gruvbox", "notifications"} {
		if strings.Contains(saved, unwanted) {
			t.Errorf("saved file should not contain %q:\n%s", unwanted, saved)
		}
	}
}

func TestSaveTheme_ReplacesNonMappingFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "# nothing yet\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	cfg.SetTheme("gruvbox")
	if err := cfg.SaveTheme(); err != nil {
		t.Fatalf("SaveTheme returned error: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload returned error: %v", err)
	}
	if reloaded.GetTheme() != "gruvbox" {
		t.Errorf("Theme = %q after reload, want gruvbox", reloaded.GetTheme())
	}
}

func TestSaveTheme_NoPath(t *testing.T) {
	err := Default().SaveTheme()
	if !errors.Is(err, errors.KindConfig) {
		t.Errorf("expected KindConfig error, got %v", err)
	}
}

func TestNextTheme(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{"dark-purple", "nord"},
		{"nord", "gruvbox"},
		{"light", "dark-purple"},
		{"unknown", "dark-purple"},
		{"", "dark-purple"},
	}

	for _, tt := range tests {
		if got := NextTheme(tt.current); got != tt.want {
			t.Errorf("NextTheme(%q) = %q, want %q", tt.current, got, tt.want)
		}
	}
}
