package colors

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset indicates a theme preset name with no built-in scheme
var ErrUnknownPreset = errors.New("unknown theme preset")

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset" toml:"preset"`

	// Primary accent color (used for task ids)
	Accent string `yaml:"accent" toml:"accent"`

	// Text colors
	Subtle string `yaml:"subtle" toml:"subtle"` // Muted text such as suggestions
	Normal string `yaml:"normal" toml:"normal"`

	// Status colors
	Open string `yaml:"open" toml:"open"` // todo / pending badge
	Done string `yaml:"done" toml:"done"` // done badge

	// Message colors
	Success string `yaml:"success" toml:"success"`
	Warning string `yaml:"warning" toml:"warning"`
	Error   string `yaml:"error" toml:"error"`
}

// GetPreset returns a preset color scheme by name. An empty name selects
// the default preset.
func GetPreset(name string) (*ColorScheme, error) {
	switch name {
	case "", "default":
		return Default(), nil
	case "monochrome":
		return Monochrome(), nil
	case "wave":
		return Wave(), nil
	}
	return nil, fmt.Errorf("%w %q (must be: default, monochrome, wave)", ErrUnknownPreset, name)
}

// Validate reports a preset name GetPreset does not know
func (c *ColorScheme) Validate() error {
	_, err := GetPreset(c.Preset)
	return err
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values.
// An unknown preset keeps its name and falls back to default colors; Validate reports it.
func (c *ColorScheme) ApplyDefaults() {
	preset, err := GetPreset(c.Preset)
	if err != nil {
		preset = Default()
	}

	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	if c.Accent == "" {
		c.Accent = preset.Accent
	}
	if c.Subtle == "" {
		c.Subtle = preset.Subtle
	}
	if c.Normal == "" {
		c.Normal = preset.Normal
	}
	if c.Open == "" {
		c.Open = preset.Open
	}
	if c.Done == "" {
		c.Done = preset.Done
	}
	if c.Success == "" {
		c.Success = preset.Success
	}
	if c.Warning == "" {
		c.Warning = preset.Warning
	}
	if c.Error == "" {
		c.Error = preset.Error
	}
}
