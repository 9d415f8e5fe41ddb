// Package store wires the two persistence handles an action gets from
// LaunchBar: a config store rooted at the action's support directory and a
// TTL cache rooted at its cache directory. Key semantics and on-disk formats
// belong to the underlying engines.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const configFileName = "config.yaml"

// Config is a persistent key-value store backed by a YAML file in the
// action's support directory.
type Config struct {
	v    *viper.Viper
	path string
}

// NewConfig opens (or creates) the config store under dir.
func NewConfig(dir string) (*Config, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create support dir: %w", err)
	}

	path := filepath.Join(dir, configFileName)
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{v: v, path: path}, nil
}

// Path returns the backing file location.
func (c *Config) Path() string {
	return c.path
}

// Get returns the value for key, or nil when absent.
func (c *Config) Get(key string) any {
	return c.v.Get(key)
}

// GetString returns the value for key as a string.
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// Has reports whether key is present.
func (c *Config) Has(key string) bool {
	return c.v.IsSet(key)
}

// Set stores key and persists the file.
func (c *Config) Set(key string, value any) error {
	c.v.Set(key, value)
	return c.save()
}

// Delete removes key and persists the file. Viper has no key removal, so the
// remaining settings are copied into a fresh instance. The key is resolved
// the way viper stores it: lowercased, with dots separating nesting levels.
func (c *Config) Delete(key string) error {
	settings := c.v.AllSettings()
	deleteNested(settings, strings.Split(strings.ToLower(key), "."))

	v := viper.New()
	v.SetConfigFile(c.path)
	v.SetConfigType("yaml")
	for k, val := range settings {
		v.Set(k, val)
	}
	c.v = v
	return c.save()
}

// deleteNested removes the leaf at path from a nested settings map, pruning
// parent maps that become empty.
func deleteNested(m map[string]any, path []string) {
	if len(m) == 0 || len(path) == 0 {
		return
	}
	if len(path) == 1 {
		delete(m, path[0])
		return
	}
	child, ok := m[path[0]].(map[string]any)
	if !ok {
		return
	}
	deleteNested(child, path[1:])
	if len(child) == 0 {
		delete(m, path[0])
	}
}

// All returns every stored setting.
func (c *Config) All() map[string]any {
	return c.v.AllSettings()
}

func (c *Config) save() error {
	if err := c.v.WriteConfigAs(c.path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
