// catchit is a terminal chase game: steer the hunter with the mouse, catch the
// prey and keep clear of the obstacles every catch adds.
//
// Usage:
//
//	catchit play             - Play a game in this terminal
//	catchit menu             - Start menu with play, autopilot and scoreboard
//	catchit serve            - Start SSH server for remote play
//	catchit sim              - Run headless autopilot games
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default from config: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Use a specific config file
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/catchit/internal/autopilot"
	"github.com/vovakirdan/catchit/internal/config"
	"github.com/vovakirdan/catchit/internal/game"
	"github.com/vovakirdan/catchit/internal/platform/tui"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "catchit",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catchit",
	Short: "catchit - catch the prey, dodge the obstacles",
	Long: `catchit is a chase game for the terminal. Move the mouse to steer the
hunter onto the prey. Every catch scores and adds an obstacle; touching a red
one ends the game. Hold the mouse button (or press f) for a force field that
pushes obstacles away.

Available commands:
  play   - Play directly
  menu   - Menu with play, autopilot and scoreboard
  serve  - Start SSH server for remote play
  sim    - Run headless autopilot games

Examples:
  catchit play
  catchit play --autopilot --skill hard
  catchit serve --addr :2222
  catchit sim --runs 5 --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = config display.tick_rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = $CATCHIT_SEED or time based)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default $CATCHIT_CONFIG)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// setup resolves .env, config and the seed shared by every command.
type setup struct {
	cfg  config.Config
	seed int64
}

func loadSetup() (setup, error) {
	if err := config.LoadEnv(); err != nil {
		logger.Warn("ignoring .env", "error", err)
	}

	path := flagConfig
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	cfg, origin, err := config.Load(path)
	if err != nil {
		return setup{}, err
	}
	logger.Debug("config loaded", "origin", origin)

	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
		if err := cfg.Validate(); err != nil {
			return setup{}, err
		}
	}

	seed := flagSeed
	if seed == 0 {
		envSeed, ok, err := config.SeedFromEnv()
		if err != nil {
			return setup{}, err
		}
		if ok {
			seed = envSeed
		}
	}
	return setup{cfg: cfg, seed: seed}, nil
}

// timeSeed returns seed, or a time based one when seed is zero.
func timeSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// gameFactory builds games from cfg; autopiloted games use the skill preset.
func gameFactory(cfg config.Config, skill config.SkillPreset) tui.GameFactory {
	pilotCfg := cfg.Autopilot
	config.ApplySkillPreset(&pilotCfg, skill)

	return func(auto bool) tui.Game {
		g := game.New(cfg)
		if auto {
			g.SetPilot(autopilot.New(pilotCfg))
		}
		return g
	}
}
