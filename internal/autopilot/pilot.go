// Package autopilot steers the hunter without a human: it chases the prey at
// a capped speed, swerves around deadly obstacles and raises the force field
// when one gets close. It drives headless simulations and the demo mode.
package autopilot

import (
	"math"

	"github.com/vovakirdan/catchit/internal/catchit"
	"github.com/vovakirdan/catchit/internal/config"
)

// Pilot is a stateless steering policy; the same state always yields the
// same command.
type Pilot struct {
	cfg config.AutopilotConfig
}

// New creates a pilot with the given tuning.
func New(cfg config.AutopilotConfig) *Pilot {
	return &Pilot{cfg: cfg}
}

// Steer returns where the hunter should be after dt seconds and whether the
// force field should be on.
func (p *Pilot) Steer(s catchit.State, dt float64) (catchit.Position, bool) {
	hunter := s.Hunter.Object.Pos
	base := catchit.HunterHalfSize(s.Field)
	danger := base * p.cfg.DangerRadius

	toPrey := s.Prey.Pos.Sub(hunter)
	dir := toPrey.Normalized()

	force := false
	var away catchit.Vec2
	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		if o.Kind != catchit.Deadly {
			continue
		}
		offset := hunter.Sub(o.Object.Pos)
		d := offset.Len() - o.Object.HalfSize
		if d >= danger {
			continue
		}
		force = true
		away = away.Add(offset.Normalized().Scale(1 - math.Max(d, 0)/danger))
	}
	if p.cfg.Dodge > 0 && away != (catchit.Vec2{}) {
		dir = dir.Add(away.Scale(p.cfg.Dodge)).Normalized()
	}

	step := p.cfg.MaxSpeed * math.Max(dt, 0)
	if !force && toPrey.Len() < step {
		step = toPrey.Len()
	}
	next := hunter.Add(dir.Scale(step))

	// Stay on the field so the score multiplier keeps growing.
	next.X = math.Min(math.Max(next.X, 0), s.Field.X)
	next.Y = math.Min(math.Max(next.Y, 0), s.Field.Y)
	return next, force
}
