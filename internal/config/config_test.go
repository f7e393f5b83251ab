package config

import (
	"path/filepath"
	"testing"

	"github.com/san-kum/rreflab/internal/parse"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Precision <= 0 {
		t.Error("precision should be positive")
	}
	if cfg.CellWidth < 3 {
		t.Error("cell width should fit a number")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"negative precision", func(c *Config) { c.Precision = -1 }},
		{"huge precision", func(c *Config) { c.Precision = 30 }},
		{"tiny cell width", func(c *Config) { c.CellWidth = 1 }},
		{"autoplay too fast", func(c *Config) { c.AutoplayMs = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mod(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rreflab.yaml")

	cfg := DefaultConfig()
	cfg.Precision = 5
	cfg.InputFile = "system.txt"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Precision != 5 {
		t.Errorf("precision = %d, want 5", loaded.Precision)
	}
	if loaded.InputFile != "system.txt" {
		t.Errorf("input_file = %q, want system.txt", loaded.InputFile)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("unique")
	if p == nil {
		t.Fatal("expected preset, got nil")
	}
	if p.Grid == "" {
		t.Error("preset grid is empty")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetGridsParse(t *testing.T) {
	for _, p := range Presets {
		t.Run(p.Name, func(t *testing.T) {
			m, err := parse.Grid(p.Grid)
			if err != nil {
				t.Fatalf("preset grid does not parse: %v", err)
			}
			if m.Rows() < 1 || m.Cols() < 1 {
				t.Error("degenerate preset shape")
			}
		})
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected built-in presets")
	}
	for _, name := range names {
		if GetPreset(name) == nil {
			t.Errorf("listed preset %q not retrievable", name)
		}
	}
}
