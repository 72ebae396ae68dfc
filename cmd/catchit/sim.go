package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/catchit/internal/autopilot"
	"github.com/vovakirdan/catchit/internal/catchit"
	"github.com/vovakirdan/catchit/internal/config"
	"github.com/vovakirdan/catchit/internal/platform/tui"
	"github.com/vovakirdan/catchit/internal/storage"
)

var (
	flagRuns       int
	flagWidth      float64
	flagHeight     float64
	flagMaxSeconds float64
	flagSnapshot   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot games",
	Long: `Play games with the autopilot, without a terminal UI, and print a YAML
report. Run i uses seed+i, so a report is reproducible from its seed.

Examples:
  catchit sim
  catchit sim --runs 10 --seed 42 --skill hard
  catchit sim --width 640 --height 480 --max-seconds 30 --snapshot`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of games")
	simCmd.Flags().Float64Var(&flagWidth, "width", 1024, "Field width in field units")
	simCmd.Flags().Float64Var(&flagHeight, "height", 736, "Field height in field units")
	simCmd.Flags().Float64Var(&flagMaxSeconds, "max-seconds", 120, "Simulated time limit per game (0 = none)")
	simCmd.Flags().BoolVar(&flagSnapshot, "snapshot", false, "Include the final state of every game")
	simCmd.Flags().StringVar(&flagSkill, "skill", string(config.SkillNormal), "Autopilot skill: easy, normal, hard")
}

// simRun is one game of the report.
type simRun struct {
	RunID               string `yaml:"run_id"`
	autopilot.SimResult `yaml:",inline"`
	Final               *catchit.State `yaml:"final,omitempty"`
}

// simReport is what sim prints.
type simReport struct {
	Skill    config.SkillPreset `yaml:"skill"`
	Field    catchit.Extent     `yaml:"field"`
	TickRate int                `yaml:"tick_rate"`
	Runs     []simRun           `yaml:"runs"`
	Best     int                `yaml:"best"`
	Average  float64            `yaml:"average"`
	Deaths   int                `yaml:"deaths"`
}

func runSim(cmd *cobra.Command, _ []string) error {
	simLog := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "catchit-sim",
	})

	env, err := loadSetup()
	if err != nil {
		return err
	}
	skill, err := config.ParseSkill(flagSkill)
	if err != nil {
		return err
	}
	if flagRuns < 1 {
		return fmt.Errorf("sim: --runs must be at least 1, got %d", flagRuns)
	}

	pilotCfg := env.cfg.Autopilot
	config.ApplySkillPreset(&pilotCfg, skill)
	pilot := autopilot.New(pilotCfg)

	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	field := catchit.V(flagWidth, flagHeight)
	seed := timeSeed(env.seed)
	report := simReport{
		Skill:    skill,
		Field:    field,
		TickRate: env.cfg.Display.TickRate,
	}

	for i := range flagRuns {
		res, err := autopilot.Simulate(ctx, autopilot.SimOptions{
			Field:    field,
			Seed:     seed + int64(i),
			TickRate: env.cfg.Display.TickRate,
			MaxTime:  time.Duration(flagMaxSeconds * float64(time.Second)),
		}, pilot)
		if err != nil {
			return fmt.Errorf("sim: run %d: %w", i+1, err)
		}

		try, err := store.RecordTry(storage.Try{
			Player:    tui.AutopilotPlayer,
			Score:     int(res.Score),
			Obstacles: res.Captures,
			Duration:  res.Duration,
		})
		if err != nil {
			return err
		}
		simLog.Info("game finished",
			"run", i+1,
			"seed", res.Seed,
			"score", res.Score,
			"captures", res.Captures,
			"time", res.Duration,
			"game_over", res.GameOver,
		)

		run := simRun{RunID: try.RunID, SimResult: res}
		if flagSnapshot {
			final := res.Final
			run.Final = &final
		}
		report.Runs = append(report.Runs, run)
		if res.GameOver {
			report.Deaths++
		}
	}

	stats, err := store.Stats(tui.AutopilotPlayer)
	if err != nil {
		return err
	}
	report.Best = stats.HighScore
	report.Average = stats.AvgScore

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("sim: cannot write report: %w", err)
	}
	return enc.Close()
}
