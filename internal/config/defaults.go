package config

import (
	_ "embed"
)

//go:embed defaults/gravtiles.yaml
var defaultYAML []byte

// DefaultConfig returns the default gravtiles configuration.
func DefaultConfig() Config {
	return Config{
		Dictionary: "",
		Ledger:     "~/.gravtiles/blessed.txt",
		Levels:     "",
		DB:         "~/.gravtiles/runs.db",
		LookupURL:  "https://en.wiktionary.org/wiki/%s",
		Explore: ExploreConfig{
			MaxDepth: 0,
			Memoize:  true,
		},
		Play: PlayConfig{
			ShowHints: false,
		},
	}
}
