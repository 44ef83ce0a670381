// Package config loads the user's YAML configuration: global settings,
// key bindings and the named placement sections actions operate on.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rharriso/pywo/internal/geometry"
)

// Settings holds the global knobs outside any placement section.
type Settings struct {
	Layout        string   `yaml:"layout"`
	IgnoreActions []string `yaml:"ignore"`
}

// Section is one named placement: an anchor gravity, the gravity to move
// towards, the position gravity within the target area and the candidate
// width/height cycles.
type Section struct {
	Name      string
	Gravity   *geometry.Gravity
	Direction *geometry.Gravity
	Position  *geometry.Gravity
	Size      *geometry.Size
	Ignore    []string
}

// Config is the fully parsed configuration.
type Config struct {
	Settings Settings
	Keys     map[string]string
	Aliases  map[string]string
	Sections map[string]*Section
}

// DefaultPath returns the standard configuration file location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "pywo", "pywo.yaml"), nil
}

// Section resolves a section by name or alias.
func (c *Config) Section(name string) (*Section, bool) {
	if section, ok := c.Sections[name]; ok {
		return section, true
	}
	if target, ok := c.Aliases[name]; ok {
		section, ok := c.Sections[target]
		return section, ok
	}
	return nil, false
}

// Ignored reports whether an action is disabled, either globally or by the
// section itself.
func (c *Config) Ignored(section *Section, action string) bool {
	for _, name := range c.Settings.IgnoreActions {
		if name == action {
			return true
		}
	}
	if section == nil {
		return false
	}
	for _, name := range section.Ignore {
		if name == action {
			return true
		}
	}
	return false
}
