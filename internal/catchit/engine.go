package catchit

import (
	"errors"
	"fmt"
	"math"
)

// Gameplay constants. Field units are roughly pixels.
const (
	MinFieldSize           = 320.0 // Smallest allowed field dimension
	MinFieldMargin         = 30.0  // Lower bound of the hunter size heuristic
	FieldVelocityCoeff     = 0.4   // Max spawn speed as a fraction of field size
	ObstacleSizeCoeff      = 0.3   // Obstacle half size relative to the hunter
	MinObstacleDistCoeff   = 0.1   // Spawn distance as a fraction of the diagonal
	TransitionDuration     = 0.5   // Seconds for an effect to fade in or out
	HoldInvisibilityTime   = 0.5   // Seconds obstacles stay invisible
	HoldAttractionTime     = 5.0   // Seconds the attracting force stays on
	CollisionVelocityCoeff = 0.5   // Speed kept by a switch after a hit
	AttractiveForceCoeff   = 1.25  // Max attraction relative to HunterForce
	HunterForce            = 0.1   // Repulsion strength while the force is on
	HunterForceSizeCoeff   = 1.5   // Hunter growth while the force is on
	ForceRadiusCoeff       = 8.0   // Force radius in hunter half sizes
	SpecialObstacleChance  = 0.1   // Probability that a spawn is a switch
	ScorePerPrey           = 10.0
	ScoreCoeffIncrement    = 0.1 // Multiplier growth per second of motion
	ActiveEffectMultiplier = 2.0 // Score multiplier per running effect
	MotionThreshold        = 10.0
	maxSpawnAttempts       = 1000
)

// ErrFieldTooSmall is the panic value for fields that cannot host a game.
var ErrFieldTooSmall = errors.New("catchit: playing field is too small")

// StepResult is returned by Engine.Update.
// Final is nil while the game goes on and holds the last state on game over.
type StepResult struct {
	Final *State
}

// GameOver reports whether the tick ended the game.
func (r StepResult) GameOver() bool {
	return r.Final != nil
}

// Engine owns the running game and applies the rules.
// It is not safe for concurrent use.
type Engine struct {
	state       *State
	minDistance float64
	rng         Source
}

// ValidateField returns an error wrapping ErrFieldTooSmall when field cannot
// host a game.
func ValidateField(field Extent) error {
	if math.Min(field.X, field.Y) < MinFieldSize {
		return fmt.Errorf("%w: %.0fx%.0f, need at least %.0f on each side",
			ErrFieldTooSmall, field.X, field.Y, MinFieldSize)
	}
	return nil
}

// New creates an engine with a fresh game on field. All randomness is drawn
// from src. It panics when ValidateField rejects the field.
func New(field Extent, src Source) *Engine {
	if src == nil {
		panic("catchit: nil random source")
	}
	e := &Engine{rng: src}
	e.Reset(field)
	return e
}

// Reset replaces any game in progress with a fresh one on field.
// It panics when ValidateField rejects the field.
func (e *Engine) Reset(field Extent) {
	if err := ValidateField(field); err != nil {
		panic(err)
	}

	half := HunterHalfSize(field)
	s := &State{
		Field: field,
		Hunter: Hunter{
			Object: Object{
				Pos:      V(-half*2, -half*2),
				HalfSize: half,
				Shape:    Circle,
			},
		},
		Prey: Object{
			Pos:      randomPosInField(e.rng, field, half),
			HalfSize: half,
			Shape:    Square,
		},
		Obstacles:       make([]Obstacle, 0, 16),
		ObstacleOpacity: NewTransition(1, 0, TransitionDuration),
		AttractingForce: NewTransition(0, HunterForce*AttractiveForceCoeff, TransitionDuration),
		ScoreCoeff:      1,
		LastDT:          1,
	}
	e.setState(s)
}

func (e *Engine) setState(s *State) {
	e.minDistance = s.Field.Len() * MinObstacleDistCoeff
	e.state = s
}

// HunterHalfSize returns the hunter's base half size for field.
func HunterHalfSize(field Extent) float64 {
	margin := math.Max(math.Min(field.X, field.Y)*0.05, MinFieldMargin)
	return (margin - MinFieldMargin/6) / 2
}

// MinDistance returns how far from the hunter new obstacles must spawn.
func (e *Engine) MinDistance() float64 {
	return e.minDistance
}

// State returns a copy of the running game, or false between a game over
// and the next Reset.
func (e *Engine) State() (State, bool) {
	if e.state == nil {
		return State{}, false
	}
	return e.state.Clone(), true
}

// Running reports whether a game is in progress.
func (e *Engine) Running() bool {
	return e.state != nil
}

// Update advances the game by dt seconds.
//
// A dt of zero (or less) still runs the rules but leaves LastDT at its last
// positive value, so pointer velocity is never derived from a zero interval.
// The force field is an impulse applied once per tick and is not scaled by
// dt, so Update(0) leaves the state unchanged only while both the hunter
// force and the attraction are off.
func (e *Engine) Update(dt float64) StepResult {
	s := e.state
	if s == nil {
		return StepResult{}
	}
	if dt < 0 {
		dt = 0
	}

	if dt > 0 {
		s.LastDT = dt
	}
	if !outOfField(s.Field, s.Hunter.Object.Pos) && s.Hunter.Velocity.Len() > MotionThreshold {
		s.ScoreCoeff += ScoreCoeffIncrement * dt
	}

	if s.Hunter.Object.Intersects(s.Prey) {
		multiplier := s.ScoreCoeff
		for _, t := range []*Transition{&s.ObstacleOpacity, &s.AttractingForce} {
			if !t.IsPristine() {
				multiplier *= ActiveEffectMultiplier
			}
		}
		s.Score += uint32(math.Round(ScorePerPrey * multiplier))
		spawnObstacle(e.rng, s, e.minDistance)
	}

	advectObstacles(s, dt)

	stepEffect(&s.ObstacleOpacity, HoldInvisibilityTime, dt)
	stepEffect(&s.AttractingForce, HoldAttractionTime, dt)

	gameOver := resolveHunterHits(s, dt)

	s.Hunter.Velocity = Velocity{}

	if gameOver {
		e.state = nil
		return StepResult{Final: s}
	}
	return StepResult{}
}

// stepEffect drives an effect transition through its lifecycle: idle
// transitions rest forward, running ones advance, finished ones are held for
// hold seconds and then sent back.
func stepEffect(t *Transition, hold, dt float64) {
	switch t.State() {
	case PhaseStart:
		if t.Direction == ToFrom {
			t.Reverse()
		}
	case PhaseInProgress:
		t.Advance(dt)
	case PhaseFinished:
		t.StateTime += dt
		if t.StateTime >= TransitionDuration+hold {
			dir := t.Direction
			t.Reverse()
			if dir == FromTo {
				t.Advance(dt)
			}
		}
	}
}

// resolveHunterHits applies obstacle contacts and reports a deadly one.
// Scanning stops at the first deadly obstacle, so switches later in the list
// are not evaluated on that tick.
func resolveHunterHits(s *State, dt float64) bool {
	hunter := s.Hunter.Object
	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		if !o.Object.Intersects(hunter) {
			continue
		}

		var effect *Transition
		switch o.Kind {
		case Deadly:
			return true
		case InvisibilitySwitch:
			effect = &s.ObstacleOpacity
		case AttractiveForceSwitch:
			effect = &s.AttractingForce
		default:
			continue
		}

		away := o.Object.Pos.Sub(hunter.Pos).Normalized()
		o.Velocity = away.Scale(o.Velocity.Len() * CollisionVelocityCoeff).Add(s.Hunter.Velocity)

		if effect.IsPristine() {
			effect.Advance(dt)
		}
	}
	return false
}

// SetHunterPos moves the hunter to pos and measures its velocity from the
// previous position. The position is not clamped to the field; leaving the
// field resets the score multiplier.
func (e *Engine) SetHunterPos(pos Position) {
	s := e.state
	if s == nil {
		return
	}
	s.Hunter.Velocity = pos.Sub(s.Hunter.Object.Pos).Scale(1 / s.LastDT)
	s.Hunter.Object.Pos = pos

	if outOfField(s.Field, pos) {
		s.ScoreCoeff = 1
	}
}

// SetHunterForce switches the hunter's force field on or off. The hunter
// grows while the field is on.
func (e *Engine) SetHunterForce(enabled bool) {
	s := e.state
	if s == nil {
		return
	}
	base := HunterHalfSize(s.Field)
	if enabled {
		s.Hunter.Force = HunterForce
		s.Hunter.Object.HalfSize = base * HunterForceSizeCoeff
	} else {
		s.Hunter.Force = 0
		s.Hunter.Object.HalfSize = base
	}
}
