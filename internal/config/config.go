// Package config provides YAML-based configuration loading for gravtiles.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config contains all gravtiles settings.
type Config struct {
	Dictionary string        `yaml:"dictionary"` // empty = embedded word list
	Ledger     string        `yaml:"ledger"`
	Levels     string        `yaml:"levels"` // file or directory; empty = embedded catalog
	DB         string        `yaml:"db"`
	LookupURL  string        `yaml:"lookup_url"` // %s is replaced by the lowercase word
	Explore    ExploreConfig `yaml:"explore"`
	Play       PlayConfig    `yaml:"play"`
}

// ExploreConfig tunes the solver search.
type ExploreConfig struct {
	MaxDepth int  `yaml:"max_depth"` // 0 = unlimited
	Memoize  bool `yaml:"memoize"`
}

// PlayConfig defines play mode options.
type PlayConfig struct {
	ShowHints bool `yaml:"show_hints"`
}

// Preset represents a named exploration profile.
type Preset string

const (
	PresetQuick      Preset = "quick"
	PresetThorough   Preset = "thorough"
	PresetExhaustive Preset = "exhaustive"
)

// ApplyPreset modifies the explore settings for a preset.
// Exhaustive disables memoization, so every ordering of the same words is
// reported as its own solution.
func ApplyPreset(cfg *Config, preset Preset) error {
	switch preset {
	case PresetQuick:
		cfg.Explore.MaxDepth = 4
		cfg.Explore.Memoize = true
	case PresetThorough:
		cfg.Explore.MaxDepth = 0
		cfg.Explore.Memoize = true
	case PresetExhaustive:
		cfg.Explore.MaxDepth = 0
		cfg.Explore.Memoize = false
	default:
		return fmt.Errorf("unknown preset %q (want quick, thorough or exhaustive)", preset)
	}
	return nil
}

// LookupFor builds the reference URL for word.
func (c Config) LookupFor(word string) string {
	if c.LookupURL == "" {
		return ""
	}
	w := strings.ToLower(word)
	if strings.Contains(c.LookupURL, "%s") {
		return strings.ReplaceAll(c.LookupURL, "%s", w)
	}
	return c.LookupURL + w
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// expandPaths resolves ~ in every path field.
func (c *Config) expandPaths() {
	c.Dictionary = ExpandPath(c.Dictionary)
	c.Ledger = ExpandPath(c.Ledger)
	c.Levels = ExpandPath(c.Levels)
	c.DB = ExpandPath(c.DB)
}
