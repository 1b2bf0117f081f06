// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Practice  PracticeConfig  `toml:"practice"`
	Countries CountriesConfig `toml:"countries"`
	Log       LogConfig       `toml:"log"`
}

// PracticeConfig maps word-drill settings.
//
// Files may nest arrays to group corpora; FlattenFiles turns it into an
// ordered list of paths.
type PracticeConfig struct {
	Files     []any    `toml:"files"`
	MissBias  *float64 `toml:"bias"`
	History   *int     `toml:"history"`
	TablePath *string  `toml:"table"`
	Plain     *bool    `toml:"plain"`
}

// CountriesConfig maps ranking-drill settings.
type CountriesConfig struct {
	Dataset *string `toml:"dataset"`
	Radius  *int    `toml:"radius"`
	Size    *int    `toml:"size"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	File  *string `toml:"file"`
	Level *string `toml:"level"`
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
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if _, err := FlattenFiles(cfg.Practice.Files); err != nil {
		return FileConfig{}, fmt.Errorf("invalid practice.files: %w", err)
	}
	return cfg, nil
}

// FlattenFiles flattens arbitrarily nested path groups, keeping their order.
func FlattenFiles(items []any) ([]string, error) {
	var out []string
	for _, item := range items {
		switch v := item.(type) {
		case string:
			out = append(out, v)
		case []any:
			nested, err := FlattenFiles(v)
			if err != nil {
				return nil, err
			}
			out = append(out, nested...)
		case []string:
			out = append(out, v...)
		default:
			return nil, fmt.Errorf("unexpected entry %v (%T)", item, item)
		}
	}
	return out, nil
}
