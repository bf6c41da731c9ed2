package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Feed   FeedConfig   `yaml:"feed"`
	Demo   DemoConfig   `yaml:"demo"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
}

// FeedConfig holds telemetry feed settings.
type FeedConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
}

// DemoConfig holds demo flight settings.
type DemoConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  480,
			Height: 480,
		},
		Feed: FeedConfig{
			URL: "ws://localhost:8765/telemetry",
		},
		Demo: DemoConfig{
			Enabled: true,
		},
	}
}

// LoadConfig reads the YAML config at path over the defaults. A missing file
// is not an error, the defaults stand.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Window.Width < 100 {
		cfg.Window.Width = 100
	}
	if cfg.Window.Height < 100 {
		cfg.Window.Height = 100
	}
	return cfg, nil
}
