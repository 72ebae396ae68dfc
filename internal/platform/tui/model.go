package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/catchit/internal/core"
	"github.com/vovakirdan/catchit/internal/storage"
)

// Game is the simulation a GameModel drives. *game.Game implements it.
type Game interface {
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame, dt float64) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	SetScoreboard(best, tries int)
}

// helpRows is the height of the key help line under the game.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel is the Bubble Tea model for one player's games.
type GameModel struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	player     string
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	exitOnBack bool // Standalone play has no menu to return to
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. Finished games are recorded in store
// under player; a nil store keeps no scoreboard.
func NewGameModel(game Game, store *storage.Store, player string, cfg core.RuntimeConfig) GameModel {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		store:      store,
		player:     player,
		config:     cfg,
		game:       game,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
	gc := m.gameConfig()
	m.screen = core.NewScreen(gc.ScreenW, gc.ScreenH)
	return m
}

// gameConfig is the runtime config of the area left for the game.
func (m GameModel) gameConfig() core.RuntimeConfig {
	gc := m.config
	gc.ScreenH = max(gc.ScreenH-helpRows, 0)
	return gc
}

// Init starts the first game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.refreshScoreboard()
	return tickCmd(m.config)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()

	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, keys.Back):
		if !m.gameState.GameOver && !m.gameState.Paused && !m.gameState.TooSmall {
			return m, nil
		}
		m.backToMenu = true
		if m.exitOnBack {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. A running game restarts on
// the new field; a finished one stays on screen.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	gc := m.gameConfig()
	m.screen.Resize(gc.ScreenW, gc.ScreenH)
	m.game.Resize(gc.ScreenW, gc.ScreenH)
	m.gameState = m.game.State()
	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDT(m.config, m.lastTick, now)
	m.lastTick = now

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	if result.Ended {
		m.recordTry(result.State)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config)
}

// recordTry stores a finished game and refreshes the HUD figures.
func (m GameModel) recordTry(st core.GameState) {
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.RecordTry(storage.Try{
		Player:    m.player,
		Score:     st.Score,
		Obstacles: st.Obstacles,
		Duration:  st.Elapsed,
	})
	m.refreshScoreboard()
}

func (m GameModel) refreshScoreboard() {
	if m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.player)
	if err != nil {
		return
	}
	tries, err := m.store.Tries(m.player)
	if err != nil {
		return
	}
	m.game.SetScoreboard(best, tries)
}

// saveScreenshot saves the current screen to a file.
func (m GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".catchit", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("catchit_%s.txt", timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state seen on the last tick.
func (m GameModel) GameState() core.GameState {
	return m.gameState
}

// Run plays games in the local terminal until the player quits.
func Run(game Game, store *storage.Store, player string, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, player, cfg)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
