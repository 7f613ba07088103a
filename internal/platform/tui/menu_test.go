package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Aleks-Che/earth-shaker-zx/internal/config"
	"github.com/Aleks-Che/earth-shaker-zx/internal/core"
	_ "github.com/Aleks-Che/earth-shaker-zx/internal/games/earthshaker"
)

func menuKey(m MenuModel, msg tea.KeyMsg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func newTestMenu() MenuModel {
	return NewMenuModel(nil, core.DefaultConfig(), config.DefaultEarthshakerConfig())
}

func TestMenuListsCampaigns(t *testing.T) {
	m := newTestMenu()

	if len(m.campaigns) < 2 {
		t.Fatalf("Expected at least 2 campaigns, got %d", len(m.campaigns))
	}
	if got := m.levelCounts["earthshaker"]; got != config.DefaultEarthshakerConfig().Campaign.MaxLevel {
		t.Errorf("Caves have %d levels, expected max_level", got)
	}
	if got := m.levelCounts["earthshaker_classic"]; got != 3 {
		t.Errorf("Classic pack has %d levels, expected 3", got)
	}
}

func TestMenuOptions(t *testing.T) {
	m := newTestMenu()
	down := tea.KeyMsg{Type: tea.KeyDown}

	m = menuKey(m, down) // Campaign
	m = menuKey(m, tea.KeyMsg{Type: tea.KeyRight})
	if id := m.Result().GameID; id != "earthshaker_classic" {
		t.Fatalf("Campaign = %q, expected earthshaker_classic", id)
	}

	m = menuKey(m, down) // Start level
	m = menuKey(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.level != 3 {
		t.Errorf("Level wrap = %d, expected 3", m.level)
	}

	m = menuKey(m, down) // Movement
	smooth := m.smooth
	m = menuKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.smooth == smooth {
		t.Error("Enter did not toggle movement")
	}

	// Campaign change clamps the start level
	m.cursor = rowCampaign
	m = menuKey(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.level != 3 {
		t.Errorf("Level = %d after switching to caves, expected 3 kept", m.level)
	}
}

func TestMenuPlay(t *testing.T) {
	m := newTestMenu()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if !m.Selected() || cmd == nil {
		t.Fatal("Enter on Play did not select")
	}

	res := m.Result()
	if res.Quit || res.WantsScoreboard {
		t.Errorf("Unexpected result: %+v", res)
	}
	if res.GameID != "earthshaker" || res.StartLevel != 1 || res.Config.StartLevel != 1 {
		t.Errorf("Unexpected result: %+v", res)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := menuKey(newTestMenu(), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() || m.Result().Quit {
		t.Error("Tab did not open the scoreboard")
	}

	m = menuKey(newTestMenu(), runeKey('q'))
	if !m.IsQuitting() || !m.Result().Quit {
		t.Error("q did not quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quit")
	}
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(nil, core.DefaultConfig(), config.DefaultEarthshakerConfig(), SessionOptions{})

	send := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	send(tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame || s.gameModel == nil {
		t.Fatal("Play did not start a game")
	}

	now := time.Now()
	send(TickMsg(now))
	send(runeKey('p'))
	send(TickMsg(now.Add(30 * time.Millisecond)))
	if !s.gameModel.State().Paused {
		t.Fatal("Game not paused")
	}

	send(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu || s.gameModel != nil {
		t.Fatal("Esc while paused did not return to the menu")
	}
	if s.menu.Selected() {
		t.Error("Menu still reports the old selection")
	}

	// Stale ticks are ignored by the menu
	send(TickMsg(now.Add(60 * time.Millisecond)))
	if s.screen != screenMenu {
		t.Error("Tick left the menu")
	}

	send(tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenScores || s.scoreboard == nil {
		t.Fatal("Tab did not open scores")
	}
	send(runeKey('b'))
	if s.screen != screenMenu {
		t.Error("Back from scores did not return to the menu")
	}

	send(runeKey('q'))
	if !s.quitting {
		t.Error("q did not end the session")
	}
}
