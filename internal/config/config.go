// Package config provides YAML-based configuration loading for catchit's
// terminal front ends. Gameplay constants live in the engine and are not
// configurable; this covers presentation, the autopilot and the SSH server.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/catchit/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains all catchit front-end configuration.
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Glyphs    GlyphConfig     `yaml:"glyphs"`
	Colors    ColorConfig     `yaml:"colors"`
	Autopilot AutopilotConfig `yaml:"autopilot"`
	Server    ServerConfig    `yaml:"server"`
}

// DisplayConfig maps terminal cells to field units.
type DisplayConfig struct {
	UnitsPerColumn float64 `yaml:"units_per_column"` // Field units covered by one terminal column
	UnitsPerRow    float64 `yaml:"units_per_row"`    // Field units covered by one terminal row
	HUDRows        int     `yaml:"hud_rows"`         // Rows reserved below the field
	TickRate       int     `yaml:"tick_rate"`        // Ticks per second
}

// GlyphConfig defines the runes used to draw the field.
type GlyphConfig struct {
	Hunter      string `yaml:"hunter"`
	HunterForce string `yaml:"hunter_force"` // Hunter while the force field is on
	ForceRing   string `yaml:"force_ring"`   // Outline of the force radius, empty to hide
	Prey        string `yaml:"prey"`
	Switch      string `yaml:"switch"`
	// Obstacle glyphs from fully opaque to nearly invisible. Obstacles whose
	// opacity falls below the last band are not drawn.
	Obstacle []string `yaml:"obstacle"`
}

// ColorConfig defines colors by name (see core.ParseColor).
type ColorConfig struct {
	Hunter       core.Color `yaml:"hunter"`
	Prey         core.Color `yaml:"prey"`
	Deadly       core.Color `yaml:"deadly"`
	Invisibility core.Color `yaml:"invisibility"`
	Attraction   core.Color `yaml:"attraction"`
	ForceRing    core.Color `yaml:"force_ring"`
	HUD          core.Color `yaml:"hud"`
	Banner       core.Color `yaml:"banner"`
}

// AutopilotConfig tunes the bot used by `catchit sim` and `--autopilot`.
type AutopilotConfig struct {
	MaxSpeed     float64 `yaml:"max_speed"`     // Field units per second
	DangerRadius float64 `yaml:"danger_radius"` // In hunter half sizes; force goes up inside it
	Dodge        float64 `yaml:"dodge"`         // Weight of steering away from deadly obstacles
}

// ServerConfig contains SSH server defaults.
type ServerConfig struct {
	Addr        string `yaml:"addr"`
	HostKeyPath string `yaml:"host_key_path"`
	IdleTimeout int    `yaml:"idle_timeout_s"`
}

// Validate checks that the config can drive a game.
func (c Config) Validate() error {
	d := c.Display
	if d.UnitsPerColumn <= 0 || d.UnitsPerRow <= 0 {
		return fmt.Errorf("config: %w: display scale must be positive, got %vx%v",
			ErrInvalid, d.UnitsPerColumn, d.UnitsPerRow)
	}
	if d.TickRate <= 0 || d.TickRate > 240 {
		return fmt.Errorf("config: %w: tick_rate must be in 1..240, got %d", ErrInvalid, d.TickRate)
	}
	if d.HUDRows < 0 {
		return fmt.Errorf("config: %w: hud_rows must not be negative, got %d", ErrInvalid, d.HUDRows)
	}

	g := c.Glyphs
	for name, s := range map[string]string{
		"hunter": g.Hunter, "hunter_force": g.HunterForce, "prey": g.Prey, "switch": g.Switch,
	} {
		if s == "" {
			return fmt.Errorf("config: %w: glyph %s is empty", ErrInvalid, name)
		}
	}
	if len(g.Obstacle) == 0 {
		return fmt.Errorf("config: %w: at least one obstacle glyph is required", ErrInvalid)
	}

	a := c.Autopilot
	if a.MaxSpeed <= 0 {
		return fmt.Errorf("config: %w: autopilot max_speed must be positive, got %v", ErrInvalid, a.MaxSpeed)
	}
	if a.DangerRadius < 0 || a.Dodge < 0 {
		return fmt.Errorf("config: %w: autopilot danger_radius and dodge must not be negative", ErrInvalid)
	}
	return nil
}
