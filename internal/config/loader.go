package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rharriso/pywo/internal/geometry"
)

// rawSection mirrors the YAML shape before the geometry grammar is applied.
type rawSection struct {
	Gravity   string   `yaml:"gravity"`
	Direction string   `yaml:"direction"`
	Position  string   `yaml:"position"`
	Widths    string   `yaml:"widths"`
	Heights   string   `yaml:"heights"`
	Ignore    []string `yaml:"ignore"`
}

type rawConfig struct {
	Settings Settings              `yaml:"settings"`
	Keys     map[string]string     `yaml:"keys"`
	Aliases  map[string]string     `yaml:"aliases"`
	Sections map[string]rawSection `yaml:"sections"`
}

// Load reads the configuration from the standard location. A missing file
// yields an empty configuration, not an error.
func Load(logger *slog.Logger) (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info("no configuration file, using defaults", "path", path)
		return empty(), nil
	}
	return LoadFromPath(path, logger)
}

// LoadFromPath reads and parses one configuration file. Sections that fail
// the geometry grammar are skipped with a warning so one typo cannot take
// down the whole configuration.
func LoadFromPath(path string, logger *slog.Logger) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg := empty()
	cfg.Settings = raw.Settings
	for name, key := range raw.Keys {
		cfg.Keys[name] = key
	}
	for alias, target := range raw.Aliases {
		cfg.Aliases[alias] = target
	}
	for name, rawSec := range raw.Sections {
		section, err := parseSection(name, rawSec)
		if err != nil {
			logger.Warn("skipping malformed config section", "section", name, "error", err)
			continue
		}
		cfg.Sections[name] = section
	}
	return cfg, nil
}

func empty() *Config {
	return &Config{
		Keys:     make(map[string]string),
		Aliases:  make(map[string]string),
		Sections: make(map[string]*Section),
	}
}

// parseSection applies the geometry grammar and the fallback chain:
// direction and position default to gravity, and gravity defaults to
// position when only position is given.
func parseSection(name string, raw rawSection) (*Section, error) {
	gravity, err := geometry.ParseGravity(raw.Gravity)
	if err != nil {
		return nil, fmt.Errorf("gravity: %w", err)
	}
	direction, err := geometry.ParseGravity(raw.Direction)
	if err != nil {
		return nil, fmt.Errorf("direction: %w", err)
	}
	position, err := geometry.ParseGravity(raw.Position)
	if err != nil {
		return nil, fmt.Errorf("position: %w", err)
	}
	size, err := geometry.ParseSize(raw.Widths, raw.Heights)
	if err != nil {
		return nil, fmt.Errorf("size: %w", err)
	}

	if direction == nil {
		direction = gravity
	}
	if position == nil {
		position = gravity
	}
	if gravity == nil {
		gravity = position
	}

	return &Section{
		Name:      name,
		Gravity:   gravity,
		Direction: direction,
		Position:  position,
		Size:      size,
		Ignore:    raw.Ignore,
	}, nil
}
