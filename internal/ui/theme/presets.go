package theme

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Preset is a named color set offered in the theme picker.
type Preset struct {
	Name  string `yaml:"name"`
	Theme Theme  `yaml:"colors"`
}

// LoadPresets parses a YAML preset list. Each preset is merged over Default so
// a partial entry still yields a complete color set.
func LoadPresets(data []byte) ([]Preset, error) {
	var presets []Preset
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("parse theme presets: %w", err)
	}
	for i := range presets {
		presets[i].Theme = presets[i].Theme.Merge(Default())
	}
	return presets, nil
}
