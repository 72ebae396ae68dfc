package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/catchit/internal/config"
	"github.com/vovakirdan/catchit/internal/core"
	"github.com/vovakirdan/catchit/internal/platform/tui"
	"github.com/vovakirdan/catchit/internal/storage"
)

var (
	flagAutopilot bool
	flagSkill     string
	flagPlayer    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play catchit in this terminal",
	Long: `Start a game in the current terminal. Needs a terminal with mouse support.

Controls:
  Mouse        - Steer the hunter
  Button / F   - Force field (hold / toggle)
  Space / R    - New game
  P            - Pause
  Ctrl+S       - Save a text screenshot to ~/.catchit/screenshots
  Esc / B      - Leave (when paused or after game over)
  Q / Ctrl+C   - Quit

Skill options (autopilot only):
  easy   - Slow bot that ignores obstacles
  normal - Configured autopilot
  hard   - Faster bot that dodges harder

Examples:
  catchit play
  catchit play --seed 42
  catchit play --autopilot --skill easy`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagSkill, "skill", string(config.SkillNormal), "Autopilot skill: easy, normal, hard")
		cmd.Flags().StringVar(&flagPlayer, "player", "", "Name on the scoreboard (default: login name)")
	}
	playCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the autopilot play")
}

func runPlay(_ *cobra.Command, _ []string) error {
	env, err := loadSetup()
	if err != nil {
		return err
	}
	skill, err := config.ParseSkill(flagSkill)
	if err != nil {
		return err
	}

	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	player := localPlayer()
	if flagAutopilot {
		player = tui.AutopilotPlayer
	}
	newGame := gameFactory(env.cfg, skill)

	cfg := runtimeConfig(env)
	if err := tui.Run(newGame(flagAutopilot), store, player, cfg); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	return nil
}

// runtimeConfig sizes a game for the local terminal.
func runtimeConfig(env setup) core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: env.cfg.Display.TickRate,
		Seed:     timeSeed(env.seed),
	}
}

// localPlayer is the scoreboard name for local games.
func localPlayer() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return tui.GuestPlayer
}
