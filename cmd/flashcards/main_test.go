package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/flashcards/internal/config"
	"github.com/verte-zerg/flashcards/internal/model"
	"github.com/verte-zerg/flashcards/internal/translit"
)

func TestValidateConfig(t *testing.T) {
	valid := model.Config{
		Mode:        model.ModeCountries,
		Dataset:     "countries.json",
		MissBias:    0.75,
		HistorySize: 15,
		Radius:      10,
		RankSize:    3,
	}
	if err := validateConfig(valid); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*model.Config)
		flag   string
	}{
		{name: "bias", mutate: func(c *model.Config) { c.MissBias = 1.5 }, flag: "--bias"},
		{name: "history", mutate: func(c *model.Config) { c.HistorySize = 0 }, flag: "--history"},
		{name: "radius", mutate: func(c *model.Config) { c.Radius = 0 }, flag: "--radius"},
		{name: "size", mutate: func(c *model.Config) { c.RankSize = 1 }, flag: "--size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := validateConfig(cfg)
			if err == nil || !strings.Contains(err.Error(), tt.flag) {
				t.Fatalf("expected error naming %s, got %v", tt.flag, err)
			}
		})
	}
}

func TestValidateConfigRequiresCorpus(t *testing.T) {
	cfg := model.Config{Mode: model.ModeWords, MissBias: 0.5, HistorySize: 15}
	if err := validateConfig(cfg); err == nil {
		t.Fatalf("expected error without corpus files")
	}
	cfg.Files = []string{"words.json"}
	if err := validateConfig(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	var cfg config.FileConfig
	if _, err := toml.Decode(defaultConfigTemplate(), &cfg); err != nil {
		t.Fatalf("template does not decode: %v", err)
	}
	if cfg.Practice.MissBias != nil || cfg.Countries.Size != nil {
		t.Fatalf("template values must be commented out")
	}
}

func TestWriteKana(t *testing.T) {
	table, err := translit.Default()
	if err != nil {
		t.Fatalf("load table: %v", err)
	}
	var buf bytes.Buffer
	if err := writeKana(&buf, table); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "Kana") {
		t.Fatalf("expected header, got %q", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != len(table.Entries())+1 {
		t.Fatalf("expected header and %d rows, got %d lines", len(table.Entries()), len(lines))
	}
}
