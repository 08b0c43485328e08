// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. This separation allows config.go to focus on YAML structure
// and loading, while this file handles the CLI interface where config is
// accessed by string keys (e.g., "defaults.languages").
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set to zero/false". This enables proper
// defaulting - we only apply defaults when the user hasn't set a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/polyglot-advent/aocgen/internal/identifier"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"author.name", "author.email",
		"defaults.base", "defaults.languages",
		"log.enabled",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "author.name":
		return c.Author.Name, nil
	case "author.email":
		return c.Author.Email, nil
	case "defaults.base":
		return c.Base(), nil
	case "defaults.languages":
		return strings.Join(c.Languages(), ","), nil
	case "log.enabled":
		return strconv.FormatBool(c.LogEnabled()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key. Languages are given as a
// comma-separated list and validated individually before anything is
// stored.
func (c *Config) Set(key, value string) error {
	switch key {
	case "author.name":
		c.Author.Name = value
	case "author.email":
		c.Author.Email = value
	case "defaults.base":
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: defaults.base must not be blank", ErrInvalidValue)
		}
		c.Defaults.Base = value
	case "defaults.languages":
		langs, err := splitLanguages(value)
		if err != nil {
			return err
		}
		c.Defaults.Languages = langs
	case "log.enabled":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: log.enabled must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Log.Enabled = &b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"author.name":        c.Author.Name,
		"author.email":       c.Author.Email,
		"defaults.base":      c.Base(),
		"defaults.languages": strings.Join(c.Languages(), ","),
		"log.enabled":        strconv.FormatBool(c.LogEnabled()),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "author.name":
		return c.Author.Name != ""
	case "author.email":
		return c.Author.Email != ""
	case "defaults.base":
		return c.Defaults.Base != ""
	case "defaults.languages":
		return len(c.Defaults.Languages) != 0
	case "log.enabled":
		return c.Log.Enabled != nil
	default:
		return false
	}
}

// splitLanguages parses a comma-separated language list, validating
// each entry through the identifier rules.
func splitLanguages(value string) ([]string, error) {
	parts := strings.Split(value, ",")
	langs := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, err := identifier.NewLanguage(part); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		langs = append(langs, part)
	}
	if len(langs) == 0 {
		return nil, fmt.Errorf("%w: defaults.languages must name at least one language", ErrInvalidValue)
	}
	return langs, nil
}
