package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("default theme = %q", cfg.UI.Theme)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Catalog.BaseURL != "http://localhost:8000" {
		t.Errorf("BaseURL = %q, want default", cfg.Catalog.BaseURL)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[catalog]
base_url = "https://horario.duoc.cl"
site = "maipú"
shift = "diurna"

[storage]
db_path = "/tmp/test.db"

[ui]
theme = "latte"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Catalog.BaseURL != "https://horario.duoc.cl" {
		t.Errorf("BaseURL = %q", cfg.Catalog.BaseURL)
	}
	if cfg.Catalog.Site != "maipú" || cfg.Catalog.Shift != "diurna" {
		t.Errorf("Catalog = %+v", cfg.Catalog)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("Theme = %q", cfg.UI.Theme)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MIHORARIO_SITE", "san joaquín")
	t.Setenv("MIHORARIO_DB_PATH", "/tmp/env.db")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Catalog.Site != "san joaquín" {
		t.Errorf("Site = %q, want env override", cfg.Catalog.Site)
	}
	if cfg.Storage.DBPath != "/tmp/env.db" {
		t.Errorf("DBPath = %q, want env override", cfg.Storage.DBPath)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty base url", mutate: func(c *Config) { c.Catalog.BaseURL = "" }, wantErr: true},
		{name: "relative base url", mutate: func(c *Config) { c.Catalog.BaseURL = "horario.duoc.cl" }, wantErr: true},
		{name: "bad shift", mutate: func(c *Config) { c.Catalog.Shift = "nocturna" }, wantErr: true},
		{name: "vespertina shift", mutate: func(c *Config) { c.Catalog.Shift = "vespertina" }},
		{name: "empty db path", mutate: func(c *Config) { c.Storage.DBPath = "" }, wantErr: true},
		{name: "unknown theme", mutate: func(c *Config) { c.UI.Theme = "dracula" }, wantErr: true},
		{name: "latte theme", mutate: func(c *Config) { c.UI.Theme = "latte" }},
		{name: "empty theme", mutate: func(c *Config) { c.UI.Theme = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Catalog.Site = "viña del mar"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Catalog.Site != "viña del mar" {
		t.Errorf("Site = %q after round trip", loaded.Catalog.Site)
	}
}
