// Package config provides reading and writing of aocgen configuration.
// Supports both global (~/.aocgen/config.yaml) and local (.aocgen/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/polyglot-advent/aocgen/internal/identifier"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.aocgen/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is workspace-specific config in .aocgen/config.yaml
	ScopeLocal
)

// Author is recorded in generated README files and the audit log.
type Author struct {
	Name  string `yaml:"name,omitempty"`
	Email string `yaml:"email,omitempty"`
}

// Defaults holds scaffold defaults applied when flags are absent.
type Defaults struct {
	Base      string   `yaml:"base,omitempty"`
	Languages []string `yaml:"languages,omitempty"`
}

// Log holds audit log configuration options.
type Log struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// Defaults applied when not configured.
const (
	DefaultBase     = "."
	DefaultLanguage = "go"
)

// Config contains configuration for aocgen.
type Config struct {
	Author   Author   `yaml:"author,omitempty"`
	Defaults Defaults `yaml:"defaults,omitempty"`
	Log      Log      `yaml:"log,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are acceptable. Default
// languages run through the identifier rules, so a bad name fails at
// load time rather than halfway through a scaffold.
func (c *Config) Validate() error {
	for _, lang := range c.Defaults.Languages {
		if _, err := identifier.NewLanguage(lang); err != nil {
			return fmt.Errorf("%w: defaults.languages: %w", ErrInvalidValue, err)
		}
	}
	if c.Defaults.Base != "" && strings.TrimSpace(c.Defaults.Base) == "" {
		return fmt.Errorf("%w: defaults.base must not be blank", ErrInvalidValue)
	}
	return nil
}

// Base returns the workspace base directory (defaults to the current
// directory). The flag layer may override this per invocation.
func (c *Config) Base() string {
	if strings.TrimSpace(c.Defaults.Base) == "" {
		return DefaultBase
	}
	return c.Defaults.Base
}

// Languages returns the default scaffold languages (defaults to Go).
func (c *Config) Languages() []string {
	if len(c.Defaults.Languages) == 0 {
		return []string{DefaultLanguage}
	}
	return c.Defaults.Languages
}

// LogEnabled returns whether the audit log is enabled (defaults to true).
func (c *Config) LogEnabled() bool {
	if c.Log.Enabled == nil {
		return true
	}
	return *c.Log.Enabled
}

// LocalPath returns the path to the local (workspace) config file.
func LocalPath() string {
	return filepath.Join(".aocgen", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.aocgen/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".aocgen", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	// Check if local config exists
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	// Fall back to global
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveTo writes the configuration to an explicit file path. Used by init,
// which writes a local config into a directory other than the current one.
func (c *Config) SaveTo(path string) error {
	return c.saveToPath(path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
