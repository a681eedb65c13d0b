// Package config loads recipes settings from defaults, an optional YAML file
// and RECIPES_* environment variables, in that order of precedence.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/osa/recipes/internal/errors"
)

const (
	// DefaultBaseURL is where the recipe backend listens in local development.
	DefaultBaseURL = "http://localhost:8080"

	// DefaultTheme is used when neither the file nor the environment picks one.
	DefaultTheme = "dark-purple"

	configDirName  = ".recipes"
	configFileName = "config.yaml"
)

// ThemeNames lists the theme identifiers Validate accepts, in cycle order.
var ThemeNames = []string{"dark-purple", "nord", "gruvbox", "light"}

// Config holds the application configuration
type Config struct {
	BaseURL       string `yaml:"base_url" envconfig:"RECIPES_BASE_URL"`
	Theme         string `yaml:"theme,omitempty" envconfig:"RECIPES_THEME"`
	Notifications bool   `yaml:"notifications" envconfig:"RECIPES_NOTIFICATIONS"`

	mu       sync.RWMutex
	filePath string
}

// Default returns a config populated with built-in defaults.
func Default() *Config {
	return &Config{
		BaseURL:       DefaultBaseURL,
		Theme:         DefaultTheme,
		Notifications: true,
	}
}

// DefaultPath returns ~/.recipes/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Load reads the config at path, applies environment overrides and validates
// the result. An empty path means DefaultPath. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, errors.ConfigLoadFailed("~/"+configDirName, err)
		}
		path = p
	}

	cfg := Default()
	cfg.filePath = path

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, errors.ConfigLoadFailed(path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.ConfigLoadFailed(path, err)
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, errors.ConfigLoadFailed("environment", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config for invalid values.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return errors.ConfigInvalid(fmt.Sprintf("base_url %q: %v", c.BaseURL, err))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.ConfigInvalid(fmt.Sprintf("base_url %q must use http or https", c.BaseURL))
	}
	if u.Host == "" {
		return errors.ConfigInvalid(fmt.Sprintf("base_url %q has no host", c.BaseURL))
	}

	if c.Theme != "" && !slices.Contains(ThemeNames, c.Theme) {
		return errors.ConfigInvalid(fmt.Sprintf("unknown theme %q", c.Theme))
	}
	return nil
}

// SaveTheme writes the current theme to the file the config was loaded from.
// Only the theme key is touched. Other keys and comments in the file are kept,
// so values that came from the environment or flags never reach the file.
func (c *Config) SaveTheme() error {
	c.mu.RLock()
	path := c.filePath
	theme := c.Theme
	c.mu.RUnlock()

	if path == "" {
		return errors.ConfigSaveFailed("", fmt.Errorf("config has no file path"))
	}
	if theme == "" {
		theme = DefaultTheme
	}

	var doc yaml.Node
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return errors.ConfigSaveFailed(path, err)
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return errors.ConfigSaveFailed(path, err)
		}
	}

	if doc.Kind != yaml.DocumentNode {
		doc = yaml.Node{Kind: yaml.DocumentNode}
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		doc.Content = []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}
	}
	setMappingValue(doc.Content[0], "theme", theme)

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	return nil
}

// setMappingValue sets key to a string value in a mapping node, appending the
// pair when the key is absent.
func setMappingValue(m *yaml.Node, key, value string) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			v := m.Content[i+1]
			v.Kind = yaml.ScalarNode
			v.Tag = "!!str"
			v.Value = value
			v.Content = nil
			return
		}
	}
	m.Content = append(m.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
	)
}

// Path returns the file SaveTheme writes to.
func (c *Config) Path() string {
	return c.filePath
}

// SetPath changes the file SaveTheme writes to.
func (c *Config) SetPath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}

func (c *Config) GetBaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.BaseURL
}

func (c *Config) SetBaseURL(baseURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.BaseURL = baseURL
}

func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Theme == "" {
		return DefaultTheme
	}
	return c.Theme
}

func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Notifications
}

func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Notifications = enabled
}

// NextTheme returns the theme after current in ThemeNames, wrapping around.
func NextTheme(current string) string {
	i := slices.Index(ThemeNames, current)
	return ThemeNames[(i+1)%len(ThemeNames)]
}
