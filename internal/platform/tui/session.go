package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/catchit/internal/core"
	"github.com/vovakirdan/catchit/internal/storage"
)

// GameFactory builds a fresh game, steered by the autopilot when asked.
type GameFactory func(autopilot bool) Game

// AutopilotPlayer is the scoreboard name of games played by the bot.
const AutopilotPlayer = "autopilot"

// sessionScreen is the screen a session currently shows.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScoreboard
)

// SessionModel manages the full session flow: menu -> game or scoreboard ->
// menu. It is the top-level model used for SSH sessions and local play.
type SessionModel struct {
	store      *storage.Store
	newGame    GameFactory
	config     core.RuntimeConfig
	player     string
	screen     sessionScreen
	menu       MenuModel
	gameModel  GameModel
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model for player.
func NewSessionModel(store *storage.Store, newGame GameFactory, cfg core.RuntimeConfig, player string) SessionModel {
	return SessionModel{
		store:   store,
		newGame: newGame,
		config:  cfg,
		player:  player,
		menu:    NewMenuModel(player, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Selected() {
	case ChoicePlay, ChoiceWatch:
		autopilot := m.menu.Selected() == ChoiceWatch
		player := m.player
		if autopilot {
			player = AutopilotPlayer
		}
		m.gameModel = NewGameModel(m.newGame(autopilot), m.store, player, m.config)
		m.screen = screenGame
		return m, m.gameModel.Init()

	case ChoiceScoreboard:
		m.scoreboard = NewScoreboardModel(m.store, m.player, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScoreboard
		return m, m.scoreboard.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateScoreboard handles updates when the scoreboard is shown.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.player, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.gameModel.View()
	case screenScoreboard:
		return m.scoreboard.View()
	}
	return m.menu.View()
}
