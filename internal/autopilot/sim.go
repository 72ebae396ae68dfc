package autopilot

import (
	"context"
	"time"

	"github.com/vovakirdan/catchit/internal/catchit"
)

// SimOptions configures a headless game.
type SimOptions struct {
	Field    catchit.Extent
	Seed     int64
	TickRate int           // Ticks per simulated second
	MaxTime  time.Duration // Simulated time limit; zero means no limit
}

// SimResult summarizes a headless game.
type SimResult struct {
	Seed     int64         `yaml:"seed"`
	Score    uint32        `yaml:"score"`
	Captures int           `yaml:"captures"`
	Ticks    int           `yaml:"ticks"`
	Duration time.Duration `yaml:"duration"`
	GameOver bool          `yaml:"game_over"` // False when MaxTime ran out first
	Final    catchit.State `yaml:"-"`
}

// Simulate plays one game with the pilot until it ends, MaxTime runs out or
// ctx is cancelled. Results depend only on the options and the pilot.
func Simulate(ctx context.Context, opts SimOptions, p *Pilot) (SimResult, error) {
	if err := catchit.ValidateField(opts.Field); err != nil {
		return SimResult{}, err
	}
	rate := opts.TickRate
	if rate <= 0 {
		rate = 60
	}
	dt := 1 / float64(rate)
	tick := time.Second / time.Duration(rate)

	e := catchit.New(opts.Field, catchit.NewSource(opts.Seed))
	res := SimResult{Seed: opts.Seed}

	for opts.MaxTime <= 0 || res.Duration < opts.MaxTime {
		if res.Ticks%256 == 0 {
			if err := ctx.Err(); err != nil {
				s, _ := e.State()
				res.finish(s)
				return res, err
			}
		}

		s, _ := e.State()
		pos, force := p.Steer(s, dt)
		e.SetHunterPos(pos)
		e.SetHunterForce(force)

		r := e.Update(dt)
		res.Ticks++
		res.Duration += tick

		if r.GameOver() {
			res.GameOver = true
			res.finish(*r.Final)
			return res, nil
		}
	}
	s, _ := e.State()
	res.finish(s)
	return res, nil
}

func (r *SimResult) finish(s catchit.State) {
	r.Final = s
	r.Score = s.Score
	// Every capture adds exactly one obstacle.
	r.Captures = len(s.Obstacles)
}
