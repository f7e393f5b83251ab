package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPrecision  = 3
	DefaultCellWidth  = 9
	DefaultAutoplayMs = 500
	DefaultTheme      = "dark"
)

type Config struct {
	Precision  int    `yaml:"precision"`
	CellWidth  int    `yaml:"cell_width"`
	AutoplayMs int    `yaml:"autoplay_ms"`
	Theme      string `yaml:"theme"`
	InputFile  string `yaml:"input_file"`
}

func DefaultConfig() *Config {
	return &Config{
		Precision:  DefaultPrecision,
		CellWidth:  DefaultCellWidth,
		AutoplayMs: DefaultAutoplayMs,
		Theme:      DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Precision < 0 || c.Precision > 15 {
		return fmt.Errorf("precision must be in [0,15], got %d", c.Precision)
	}
	if c.CellWidth < 3 {
		return fmt.Errorf("cell_width must be at least 3, got %d", c.CellWidth)
	}
	if c.AutoplayMs < 16 {
		return fmt.Errorf("autoplay_ms must be at least 16, got %d", c.AutoplayMs)
	}
	return nil
}
