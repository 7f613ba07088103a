package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Aleks-Che/earth-shaker-zx/internal/config"
	"github.com/Aleks-Che/earth-shaker-zx/internal/core"
	"github.com/Aleks-Che/earth-shaker-zx/internal/registry"
	"github.com/Aleks-Che/earth-shaker-zx/internal/storage"
)

// menuRow is one line of the main menu.
type menuRow int

const (
	rowPlay menuRow = iota
	rowCampaign
	rowLevel
	rowMovement
	rowScores
	rowQuit
	rowCount
)

// levelCounter is implemented by games that know their campaign length.
type levelCounter interface {
	LevelCount() int
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	campaigns      []registry.GameInfo
	levelCounts    map[string]int
	campaign       int // Index into campaigns
	level          int // Selected start level, 1-based
	smooth         bool
	cursor         menuRow
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       bool
	openScoreboard bool
}

// NewMenuModel creates a new menu model listing every registered campaign.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, gameCfg config.EarthshakerConfig) MenuModel {
	campaigns := registry.List()
	counts := make(map[string]int, len(campaigns))
	for _, c := range campaigns {
		counts[c.ID] = campaignLength(c.ID, gameCfg)
	}

	return MenuModel{
		campaigns:   campaigns,
		levelCounts: counts,
		level:       max(cfg.StartLevel, 1),
		smooth:      gameCfg.Movement.Smooth,
		width:       cfg.ScreenW,
		height:      cfg.ScreenH,
		store:       store,
		config:      cfg,
		keyMapper:   NewKeyMapper(),
	}
}

// campaignLength opens a campaign once to learn how many levels it has.
func campaignLength(id string, gameCfg config.EarthshakerConfig) int {
	g, err := registry.Create(id, gameCfg)
	if err != nil {
		return 1
	}
	g.Reset(core.DefaultConfig())
	if lc, ok := g.(levelCounter); ok {
		return max(lc.LevelCount(), 1)
	}
	return 1
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor + rowCount - 1) % rowCount

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % rowCount

	case MenuActionLeft:
		m.adjust(-1)

	case MenuActionRight:
		m.adjust(1)

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch m.cursor {
		case rowPlay:
			if len(m.campaigns) > 0 {
				m.selected = true
				return m, tea.Quit
			}
		case rowScores:
			m.openScoreboard = true
			return m, tea.Quit
		case rowQuit:
			m.quitting = true
			return m, tea.Quit
		default:
			m.adjust(1)
		}
	}

	return m, nil
}

// adjust changes the option under the cursor.
func (m *MenuModel) adjust(delta int) {
	switch m.cursor {
	case rowCampaign:
		if n := len(m.campaigns); n > 0 {
			m.campaign = (m.campaign + delta + n) % n
			m.level = core.Clamp(m.level, 1, m.maxLevel())
		}
	case rowLevel:
		n := m.maxLevel()
		m.level = (m.level-1+delta+n)%n + 1
	case rowMovement:
		m.smooth = !m.smooth
	}
}

func (m MenuModel) maxLevel() int {
	if len(m.campaigns) == 0 {
		return 1
	}
	return max(m.levelCounts[m.campaigns[m.campaign].ID], 1)
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("E A R T H S H A K E R", m.width)))
	b.WriteString("\n\n")

	subtitle := "Dig for crystals. Mind the stones."
	if high := m.highScore(); high > 0 {
		subtitle = fmt.Sprintf("High score: %d", high)
	}
	b.WriteString(menuDimStyle.Render(centerText(subtitle, m.width)))
	b.WriteString("\n\n")

	for row := range rowCount {
		line := m.rowLabel(row)
		if row == m.cursor {
			b.WriteString(menuCursor.Render(centerText("> "+line+" <", m.width)))
		} else {
			b.WriteString(centerText("  "+line+"  ", m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(menuDimStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) rowLabel(row menuRow) string {
	switch row {
	case rowPlay:
		return "Play"
	case rowCampaign:
		title := "none"
		if len(m.campaigns) > 0 {
			title = m.campaigns[m.campaign].Title
		}
		return "Campaign: " + title
	case rowLevel:
		return fmt.Sprintf("Start level: %d/%d", m.level, m.maxLevel())
	case rowMovement:
		if m.smooth {
			return "Movement: Smooth"
		}
		return "Movement: Grid"
	case rowScores:
		return "High Scores"
	case rowQuit:
		return "Quit"
	}
	return ""
}

func (m MenuModel) highScore() int {
	if m.store == nil || len(m.campaigns) == 0 {
		return 0
	}
	high, err := m.store.HighScore(m.campaigns[m.campaign].ID)
	if err != nil {
		return 0
	}
	return high
}

// Result reports the menu outcome.
func (m MenuModel) Result() MenuResult {
	r := MenuResult{
		Config:          m.config,
		StartLevel:      m.level,
		Smooth:          m.smooth,
		WantsScoreboard: m.openScoreboard,
		Quit:            m.quitting,
	}
	if len(m.campaigns) > 0 {
		r.GameID = m.campaigns[m.campaign].ID
	}
	if !m.selected && !m.openScoreboard {
		r.Quit = true
	}
	r.Config.StartLevel = m.level
	return r
}

// Selected returns true once the player chose Play.
func (m MenuModel) Selected() bool {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// resume returns the menu ready for another choice, keeping its selections.
func (m MenuModel) resume(cfg core.RuntimeConfig) MenuModel {
	m.selected = false
	m.openScoreboard = false
	m.quitting = false
	m.width = cfg.ScreenW
	m.height = cfg.ScreenH
	m.config = cfg
	return m
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	StartLevel      int
	Smooth          bool
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}
