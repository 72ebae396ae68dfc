package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/catchit/internal/config"
	"github.com/vovakirdan/catchit/internal/platform/tui"
	"github.com/vovakirdan/catchit/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start catchit with a menu",
	Long: `Start catchit in interactive menu mode.

Play yourself, watch the autopilot or look at the scoreboard of this
session. After a game you return to the menu. Scores are kept until catchit
exits.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  catchit menu
  catchit menu --fps 30 --player ann`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
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
	newGame := gameFactory(env.cfg, skill)
	cfg := runtimeConfig(env)

	for {
		menuResult, err := tui.RunMenu(player, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.ChoiceScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, player, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return nil
			}

		case tui.ChoicePlay, tui.ChoiceWatch:
			auto := menuResult.Choice == tui.ChoiceWatch
			name := player
			if auto {
				name = tui.AutopilotPlayer
			}
			cfg.Seed = timeSeed(env.seed)
			if err := tui.Run(newGame(auto), store, name, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}

		default:
			return nil
		}
	}
}
