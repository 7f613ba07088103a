// Package formats provides level file format parsers.
package formats

import (
	"fmt"

	"github.com/Aleks-Che/earth-shaker-zx/internal/games/earthshaker/engine"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string        `yaml:"id"`
	Name     string        `yaml:"name"`
	Layout   []string      `yaml:"layout"`
	Settings *YAMLSettings `yaml:"settings,omitempty"`
}

// YAMLSettings holds optional per-level physics overrides.
type YAMLSettings struct {
	GravityInterval    *float64 `yaml:"gravity_interval,omitempty"`
	PlayerMoveDuration *float64 `yaml:"player_move_duration,omitempty"`
	ObjectMoveDuration *float64 `yaml:"object_move_duration,omitempty"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID        string
	Name      string
	Layout    *engine.Layout
	Overrides Overrides
}

// Overrides replaces selected engine settings for one level.
// Zero values leave the base setting untouched.
type Overrides struct {
	GravityInterval    float64
	PlayerMoveDuration float64
	ObjectMoveDuration float64
}

// Apply returns base with the overrides applied.
func (o Overrides) Apply(base engine.Settings) engine.Settings {
	if o.GravityInterval > 0 {
		base.GravityInterval = o.GravityInterval
	}
	if o.PlayerMoveDuration > 0 {
		base.PlayerMoveDuration = o.PlayerMoveDuration
	}
	if o.ObjectMoveDuration > 0 {
		base.ObjectMoveDuration = o.ObjectMoveDuration
	}
	return base
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("level has no id")
	}

	layout, err := engine.ParseLayout(yl.Layout)
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", yl.ID, err)
	}

	level := Level{
		ID:     yl.ID,
		Name:   yl.Name,
		Layout: layout,
	}
	if s := yl.Settings; s != nil {
		if s.GravityInterval != nil {
			level.Overrides.GravityInterval = *s.GravityInterval
		}
		if s.PlayerMoveDuration != nil {
			level.Overrides.PlayerMoveDuration = *s.PlayerMoveDuration
		}
		if s.ObjectMoveDuration != nil {
			level.Overrides.ObjectMoveDuration = *s.ObjectMoveDuration
		}
	}
	return level, nil
}

// MarshalYAML encodes a level in the same format ParseYAML reads.
func MarshalYAML(id, name string, layout *engine.Layout) ([]byte, error) {
	yl := YAMLLevel{
		ID:     id,
		Name:   name,
		Layout: engine.FormatLayout(layout.Grid, layout.Spawns, layout.Start),
	}
	data, err := yaml.Marshal(&yl)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
