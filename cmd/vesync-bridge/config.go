package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the bridge configuration.
type Config struct {
	// LogLevel is the console log level: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFile is an optional path for the binary event log.
	LogFile string `yaml:"log_file"`

	// Devices is the simulated device fleet the bridge announces.
	Devices []DeviceConfig `yaml:"devices"`
}

// DeviceConfig describes one simulated device.
type DeviceConfig struct {
	Name       string   `yaml:"name"`
	Type       string   `yaml:"type"`
	MistModes  []string `yaml:"mist_modes"`
	MistLevels []int    `yaml:"mist_levels"`
	NightLight bool     `yaml:"night_light"`
}

// defaultConfig returns the configuration used when no file is given:
// a single Classic300S with the full mode set.
func defaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Devices: []DeviceConfig{
			{
				Name:       "Bedroom Humidifier",
				Type:       "Classic300S",
				MistModes:  []string{"auto", "sleep", "manual"},
				MistLevels: []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
				NightLight: true,
			},
		},
	}
}

// loadConfig reads and validates a YAML configuration file.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := defaultConfig()
	cfg.Devices = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks the configuration for obvious mistakes.
func (c *Config) validate() error {
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	for i, dev := range c.Devices {
		if dev.Name == "" {
			return fmt.Errorf("device %d: name is required", i)
		}
		if dev.Type == "" {
			return fmt.Errorf("device %d (%s): type is required", i, dev.Name)
		}
		for _, level := range dev.MistLevels {
			if level <= 0 {
				return fmt.Errorf("device %d (%s): mist level %d is not positive", i, dev.Name, level)
			}
		}
	}
	return nil
}
