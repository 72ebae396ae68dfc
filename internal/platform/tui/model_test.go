package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/catchit/internal/autopilot"
	"github.com/vovakirdan/catchit/internal/config"
	"github.com/vovakirdan/catchit/internal/core"
	"github.com/vovakirdan/catchit/internal/game"
	"github.com/vovakirdan/catchit/internal/storage"
)

// fakeGame records what the model feeds it and ends on request.
type fakeGame struct {
	resets      int
	resizes     int
	dts         []float64
	frames      []core.InputFrame
	endNext     bool
	state       core.GameState
	best, tries int
}

func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Resize(int, int)          { g.resizes++ }
func (g *fakeGame) Render(dst *core.Screen)  { dst.Clear() }
func (g *fakeGame) State() core.GameState    { return g.state }

func (g *fakeGame) SetScoreboard(best, tries int) { g.best, g.tries = best, tries }

func (g *fakeGame) Step(in core.InputFrame, dt float64) core.StepResult {
	g.dts = append(g.dts, dt)
	g.frames = append(g.frames, in.Clone())
	if g.endNext {
		g.endNext = false
		g.state.GameOver = true
		return core.StepResult{State: g.state, Ended: true}
	}
	return core.StepResult{State: g.state}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func TestGameModelTickDT(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, nil, "ann", core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50, Seed: 1})
	m.Init()

	start := time.Unix(100, 0)
	m = update(t, m, TickMsg(start))
	m = update(t, m, TickMsg(start.Add(30*time.Millisecond)))
	m = update(t, m, TickMsg(start.Add(5*time.Second)))

	expected := []float64{0.02, 0.03, maxFrameDT}
	if len(g.dts) != len(expected) {
		t.Fatalf("Step called %d times, expected %d", len(g.dts), len(expected))
	}
	for i, dt := range expected {
		if diff := g.dts[i] - dt; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("tick %d dt = %v, expected %v", i, g.dts[i], dt)
		}
	}
}

func TestGameModelInputFrames(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, nil, "ann", core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	m = update(t, m, tea.MouseMsg{X: 7, Y: 8, Action: tea.MouseActionMotion})
	m = update(t, m, keyMsg("f"))
	m = update(t, m, TickMsg(time.Unix(1, 0)))
	m = update(t, m, TickMsg(time.Unix(2, 0)))

	first, second := g.frames[0], g.frames[1]
	if first.Pointer == nil || first.Pointer.X != 7 || !first.Has(core.ActionForceToggle) {
		t.Errorf("first frame = %+v, expected pointer and force toggle", first)
	}
	if second.Pointer != nil || len(second.Actions) != 0 {
		t.Errorf("frame not cleared between ticks: %+v", second)
	}
}

func TestGameModelRecordsTries(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{state: core.GameState{Score: 40, Obstacles: 4, Elapsed: 3 * time.Second}}
	m := NewGameModel(g, store, "ann", core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	m.Init()

	g.endNext = true
	m = update(t, m, TickMsg(time.Unix(1, 0)))
	m = update(t, m, TickMsg(time.Unix(2, 0)))

	tries, err := store.TopScores("ann", 10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(tries) != 1 {
		t.Fatalf("recorded %d tries, expected 1", len(tries))
	}
	if tries[0].Score != 40 || tries[0].Obstacles != 4 || tries[0].Duration != 3*time.Second {
		t.Errorf("recorded try = %+v", tries[0])
	}
	if g.best != 40 || g.tries != 1 {
		t.Errorf("scoreboard = %d/%d, expected 40/1", g.best, g.tries)
	}
	if !m.GameState().GameOver {
		t.Error("model should see the game over")
	}
}

func TestGameModelBackToMenu(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, nil, "ann", core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	m = update(t, m, keyMsg("esc"))
	if m.BackToMenu() {
		t.Error("esc during a running game should be ignored")
	}

	g.state.GameOver = true
	m = update(t, m, TickMsg(time.Unix(1, 0)))
	m = update(t, m, keyMsg("esc"))
	if !m.BackToMenu() {
		t.Error("esc after game over should go back to the menu")
	}

	m = update(t, m, keyMsg("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelResize(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, nil, "ann", core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resizes != 1 {
		t.Errorf("Resize called %d times, expected 1", g.resizes)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30-helpRows {
		t.Errorf("screen = %dx%d, expected 100x%d", m.screen.Width(), m.screen.Height(), 30-helpRows)
	}
}

func newFactory() GameFactory {
	cfg := config.Default()
	return func(auto bool) Game {
		g := game.New(cfg)
		if auto {
			g.SetPilot(autopilot.New(cfg.Autopilot))
		}
		return g
	}
}

func TestSessionFlow(t *testing.T) {
	store := openStore(t)
	cfg := core.RuntimeConfig{ScreenW: 120, ScreenH: 30, TickRate: 60, Seed: 3}
	var m tea.Model = NewSessionModel(store, newFactory(), cfg, "ann")

	step := func(msg tea.Msg) {
		t.Helper()
		m, _ = m.Update(msg)
	}

	if !strings.Contains(m.View(), "Welcome, ann") {
		t.Errorf("menu should greet the player:\n%s", m.View())
	}

	// Watch autopilot.
	step(keyMsg("down"))
	step(keyMsg("enter"))
	s := m.(SessionModel)
	if s.screen != screenGame || s.gameModel.player != AutopilotPlayer {
		t.Fatalf("expected an autopilot game, screen=%v player=%q", s.screen, s.gameModel.player)
	}

	start := time.Unix(10, 0)
	for i := range 30 {
		step(TickMsg(start.Add(time.Duration(i) * 16 * time.Millisecond)))
	}
	view := m.View()
	if !strings.Contains(view, "[autopilot]") {
		t.Errorf("autopilot game should say so in the HUD:\n%s", view)
	}
	if !strings.Contains(view, "force field") {
		t.Errorf("game view should end with the key help:\n%s", view)
	}

	// Pause, then leave for the menu.
	step(keyMsg("p"))
	step(TickMsg(start.Add(time.Second)))
	step(keyMsg("esc"))
	s = m.(SessionModel)
	if s.screen != screenMenu {
		t.Fatalf("expected the menu after esc on a paused game, got %v", s.screen)
	}

	// Scoreboard and back.
	step(keyMsg("down"))
	step(keyMsg("down"))
	step(keyMsg("enter"))
	if m.(SessionModel).screen != screenScoreboard {
		t.Fatal("expected the scoreboard")
	}
	if !strings.Contains(m.View(), "SCOREBOARD") {
		t.Errorf("scoreboard view:\n%s", m.View())
	}
	step(keyMsg("esc"))
	if m.(SessionModel).screen != screenMenu {
		t.Fatal("expected the menu after leaving the scoreboard")
	}

	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil || !next.(SessionModel).quitting {
		t.Error("q in the menu should quit the session")
	}
}
