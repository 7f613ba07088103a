package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Aleks-Che/earth-shaker-zx/internal/config"
	"github.com/Aleks-Che/earth-shaker-zx/internal/core"
	"github.com/Aleks-Che/earth-shaker-zx/internal/registry"
	"github.com/Aleks-Che/earth-shaker-zx/internal/storage"
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Username      string
	Logger        *log.Logger
	HoldWindow    float64 // Zero uses the configured movement.hold_window
	ScreenshotDir string
}

// sessionScreen is the screen a session is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> game or scores -> menu.
// It is the top-level model for SSH sessions and the local menu command.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	gameCfg    config.EarthshakerConfig
	opts       SessionOptions
	logger     *log.Logger
	menu       MenuModel
	gameModel  *GameModel
	scoreboard *ScoreboardModel
	screen     sessionScreen
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, gameCfg config.EarthshakerConfig, opts SessionOptions) SessionModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = gameCfg.Movement.HoldWindow
	}

	return SessionModel{
		store:   store,
		config:  cfg,
		gameCfg: gameCfg,
		opts:    opts,
		logger:  logger,
		menu:    NewMenuModel(store, cfg, gameCfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
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

	if m.menu.WantsScoreboard() {
		sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		sb.SelectGame(m.menu.Result().GameID)
		m.scoreboard = &sb
		m.screen = screenScores
		return m, sb.Init()
	}

	if m.menu.Selected() {
		return m.startGame(m.menu.Result())
	}

	return m, cmd
}

// startGame creates the chosen campaign and switches to it.
func (m SessionModel) startGame(res MenuResult) (tea.Model, tea.Cmd) {
	gameCfg := m.gameCfg
	gameCfg.Movement.Smooth = res.Smooth

	game, err := registry.Create(res.GameID, gameCfg)
	if err != nil {
		// Shouldn't happen since menu only shows registered campaigns
		m.logger.Error("cannot create campaign", "game", res.GameID, "error", err)
		m.menu = m.menu.resume(m.config)
		return m, nil
	}

	rc := m.config
	rc.StartLevel = res.StartLevel
	m.logger.Info("campaign started", "game", res.GameID, "level", rc.StartLevel, "smooth", res.Smooth)

	gm := NewGameModel(game, m.store, rc, GameOptions{
		HoldWindow:    m.opts.HoldWindow,
		Logger:        m.logger,
		ScreenshotDir: m.opts.ScreenshotDir,
	})
	m.gameModel = &gm
	m.screen = screenGame

	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// Ticks still in flight after this are dropped by the menu
	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		return m.backToMenu()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		m.scoreboard = nil
		return m.backToMenu()
	}

	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = m.menu.resume(m.config)
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
	case screenScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, gameCfg config.EarthshakerConfig, opts SessionOptions) error {
	model := NewSessionModel(store, cfg, gameCfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
