package config

import (
	_ "embed"

	"github.com/vovakirdan/catchit/internal/core"
)

//go:embed defaults/catchit.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration, used when no YAML can be read.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			UnitsPerColumn: 8,
			UnitsPerRow:    16,
			HUDRows:        2,
			TickRate:       60,
		},
		Glyphs: GlyphConfig{
			Hunter:      "●",
			HunterForce: "◉",
			ForceRing:   "·",
			Prey:        "■",
			Switch:      "◆",
			Obstacle:    []string{"●", "•", "∙"},
		},
		Colors: ColorConfig{
			Hunter:       core.ColorBrightRed,
			Prey:         core.ColorRed,
			Deadly:       core.ColorWhite,
			Invisibility: core.ColorBrightCyan,
			Attraction:   core.ColorBrightMagenta,
			ForceRing:    core.ColorDarkGray,
			HUD:          core.ColorYellow,
			Banner:       core.ColorBrightYellow,
		},
		Autopilot: AutopilotConfig{
			MaxSpeed:     900,
			DangerRadius: 4,
			Dodge:        1.5,
		},
		Server: ServerConfig{
			Addr:        ":2323",
			HostKeyPath: "~/.catchit/ssh_host_key",
			IdleTimeout: 600,
		},
	}
}
