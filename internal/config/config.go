// Package config handles loading, validating, and overriding flowicons
// configuration. Every setting has a default, so the tool runs without a
// configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/aellingwood/flowicons/internal/slots"
	"github.com/spf13/viper"
	"golang.org/x/text/unicode/norm"
)

// DefaultPath is the configuration file looked up when none is named.
const DefaultPath = "flowicons.yaml"

// Config is the top-level flowicons configuration.
type Config struct {
	Root string    `yaml:"root" toml:"root" mapstructure:"root"`
	Jobs int       `yaml:"jobs" toml:"jobs" mapstructure:"jobs"`
	IOS  IOSConfig `yaml:"ios"  toml:"ios"  mapstructure:"ios"`
}

// IOSConfig locates the Xcode asset catalog.
type IOSConfig struct {
	Project string `yaml:"project" toml:"project" mapstructure:"project"`
}

// Default returns a Config populated with default values: outputs rooted at
// the working directory, one job, and the Flow_Max Xcode project.
func Default() *Config {
	return &Config{
		Root: ".",
		Jobs: 1,
		IOS: IOSConfig{
			Project: slots.DefaultIOSProject,
		},
	}
}

// Load reads a configuration file from configPath (YAML or TOML) and returns
// a Config with defaults applied first and file values overlaid on top.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	v := viper.New()

	// Determine format from extension.
	ext := strings.TrimPrefix(filepath.Ext(configPath), ".")
	switch ext {
	case "yaml", "yml":
		v.SetConfigType("yaml")
	case "toml":
		v.SetConfigType("toml")
	default:
		v.SetConfigType("yaml")
	}

	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadOptional behaves like Load, except that a missing file yields the
// defaults. Only the default path should be loaded this way; a file the user
// named explicitly must exist.
func LoadOptional(configPath string) (*Config, error) {
	cfg, err := Load(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Validate normalises and checks the Config.
// It returns a descriptive error if:
//   - Jobs is negative
//   - the iOS project name is empty or contains a path separator
func (c *Config) Validate() error {
	if c.Jobs < 0 {
		return fmt.Errorf("config: jobs must not be negative (got %d)", c.Jobs)
	}
	if c.Jobs == 0 {
		c.Jobs = 1
	}
	if strings.TrimSpace(c.Root) == "" {
		c.Root = "."
	}

	project := norm.NFC.String(strings.TrimSpace(c.IOS.Project))
	if project == "" {
		return fmt.Errorf("config: ios.project is required")
	}
	if strings.ContainsAny(project, `/\`) || project == "." || project == ".." {
		return fmt.Errorf("config: ios.project must be a single folder name (got %q)", c.IOS.Project)
	}
	c.IOS.Project = project

	return nil
}

// Layout returns the slot layout described by the Config.
func (c *Config) Layout() slots.Layout {
	return slots.Layout{Root: c.Root, IOSProject: c.IOS.Project}
}

// WithOverrides applies CLI flag overrides to the config. Known keys are
// mapped to their corresponding struct fields. The modified config is returned
// for convenient chaining.
func (c *Config) WithOverrides(overrides map[string]any) *Config {
	for key, val := range overrides {
		switch key {
		case "root":
			if s, ok := val.(string); ok {
				c.Root = s
			}
		case "jobs":
			if n, ok := val.(int); ok {
				c.Jobs = n
			}
		case "iosProject":
			if s, ok := val.(string); ok {
				c.IOS.Project = s
			}
		}
	}
	return c
}
