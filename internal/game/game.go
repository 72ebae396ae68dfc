// Package game adapts the catchit engine to a terminal: it sizes the field
// from the screen, turns pointer cells into hunter positions, keeps the last
// state of a finished game on screen and draws everything into a core.Screen.
package game

import (
	"time"

	"github.com/vovakirdan/catchit/internal/catchit"
	"github.com/vovakirdan/catchit/internal/config"
	"github.com/vovakirdan/catchit/internal/core"
)

// Pilot steers the hunter instead of the pointer.
type Pilot interface {
	Steer(s catchit.State, dt float64) (pos catchit.Position, force bool)
}

// Game is one player's catchit session.
type Game struct {
	cfg    config.Config
	layout Layout
	engine *catchit.Engine
	pilot  Pilot

	screenW, screenH int
	tooSmall         bool
	paused           bool
	force            bool
	elapsed          time.Duration

	// seed is the last non-zero seed passed to Reset. It seeds the engine
	// when one has to be created after the window was too small.
	seed int64

	// last is the final state of the previous game, shown until restart.
	last *catchit.State

	// Session figures shown in the HUD, supplied by the host.
	best, tries int
}

// New creates a game drawn and scaled according to cfg.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg}
}

// SetPilot hands the hunter to p; nil gives it back to the pointer.
func (g *Game) SetPilot(p Pilot) {
	g.pilot = p
}

// Autopiloted reports whether a pilot steers the hunter.
func (g *Game) Autopiloted() bool {
	return g.pilot != nil
}

// SetScoreboard updates the session best score and try count for the HUD.
func (g *Game) SetScoreboard(best, tries int) {
	g.best, g.tries = best, tries
}

// Reset starts a new game sized for the screen in cfg. A zero seed keeps the
// current random stream, or the last non-zero seed if no engine exists yet.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.Seed != 0 {
		g.seed = cfg.Seed
	}
	g.screenW, g.screenH = cfg.ScreenW, cfg.ScreenH
	g.layout = NewLayout(g.cfg.Display, cfg.ScreenW, cfg.ScreenH)
	g.last = nil
	g.paused = false
	g.elapsed = 0

	field := g.layout.Field()
	if err := catchit.ValidateField(field); err != nil {
		g.tooSmall = true
		g.engine = nil
		return
	}
	g.tooSmall = false

	switch {
	case g.engine == nil || cfg.Seed != 0:
		g.engine = catchit.New(field, catchit.NewSource(g.seed))
	default:
		g.engine.Reset(field)
	}
	g.engine.SetHunterForce(g.force)
}

// Resize adapts to a new screen size. A game in progress restarts on the new
// field; a finished game stays on screen until the player restarts.
func (g *Game) Resize(w, h int) {
	if w == g.screenW && h == g.screenH {
		return
	}
	if g.last != nil {
		g.screenW, g.screenH = w, h
		g.layout = NewLayout(g.cfg.Display, w, h)
		g.tooSmall = catchit.ValidateField(g.layout.Field()) != nil
		return
	}
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h})
}

// Step applies one frame of input and advances the simulation by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionRestart) && !g.tooSmall {
		g.Reset(core.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH})
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall || g.engine == nil || !g.engine.Running() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionForceOn):
		g.setForce(true)
	case in.Has(core.ActionForceOff):
		g.setForce(false)
	}
	if in.Has(core.ActionForceToggle) {
		g.setForce(!g.force)
	}

	if g.pilot != nil {
		if s, ok := g.engine.State(); ok {
			pos, force := g.pilot.Steer(s, dt)
			g.engine.SetHunterPos(pos)
			g.setForce(force)
		}
	} else if in.Pointer != nil {
		g.engine.SetHunterPos(g.layout.CellCenter(in.Pointer.X, in.Pointer.Y))
	}

	r := g.engine.Update(dt)
	if dt > 0 {
		g.elapsed += time.Duration(dt * float64(time.Second))
	}
	if r.GameOver() {
		g.last = r.Final
		return core.StepResult{State: g.State(), Ended: true}
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) setForce(on bool) {
	if on == g.force {
		return
	}
	g.force = on
	if g.engine != nil {
		g.engine.SetHunterForce(on)
	}
}

// Snapshot returns the running game's state, or the final state of the game
// that just ended.
func (g *Game) Snapshot() (catchit.State, bool) {
	if g.last != nil {
		return g.last.Clone(), true
	}
	if g.engine == nil {
		return catchit.State{}, false
	}
	return g.engine.State()
}

// Layout returns the current cell mapping.
func (g *Game) Layout() Layout {
	return g.layout
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Elapsed:  g.elapsed,
		GameOver: g.last != nil,
		Paused:   g.paused,
		TooSmall: g.tooSmall,
	}
	if s, ok := g.Snapshot(); ok {
		st.Score = int(s.Score)
		st.Obstacles = len(s.Obstacles)
	}
	return st
}
