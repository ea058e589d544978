// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Counter   CounterConfig   `toml:"counter"`
	Graph     GraphConfig     `toml:"graph"`
	Colors    ColorConfig     `toml:"colors"`
	Animation AnimationConfig `toml:"animation"`
	Log       LogConfig       `toml:"log"`
}

// CounterConfig maps gauge settings.
type CounterConfig struct {
	Start *int `toml:"start"`
}

// GraphConfig maps chart settings.
type GraphConfig struct {
	Samples      []int   `toml:"samples"`
	AverageLabel *string `toml:"average-label"`
}

// ColorConfig maps palette overrides as #rrggbb strings.
type ColorConfig struct {
	Outline    *string `toml:"outline"`
	Counter    *string `toml:"counter"`
	GraphStart *string `toml:"graph-start"`
	GraphEnd   *string `toml:"graph-end"`
	Button     *string `toml:"button"`
}

// AnimationConfig maps transition settings.
type AnimationConfig struct {
	FlipMs *int `toml:"flip-ms"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
	Path  *string `toml:"path"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
