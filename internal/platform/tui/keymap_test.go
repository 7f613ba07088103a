package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Aleks-Che/earth-shaker-zx/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"give up", runeKey('k'), core.ActionGiveUp, false},
		{"mode", runeKey('m'), core.ActionToggleMode, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey('l'), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('b'), MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHoldTrackerRepeatExtendsHold(t *testing.T) {
	h := NewHoldTracker(0.25)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)
	f := core.NewInputFrame()
	h.Apply(&f, t0.Add(10*time.Millisecond))
	if !f.Has(core.ActionLeft) || !f.IsHeld(core.ActionLeft) {
		t.Fatal("First press should be pressed and held")
	}

	// Auto-repeat arrives within the window: held, not a new press
	h.Press(core.ActionLeft, t0.Add(100*time.Millisecond))
	f = core.NewInputFrame()
	h.Apply(&f, t0.Add(120*time.Millisecond))
	if f.Has(core.ActionLeft) {
		t.Error("Repeat should not count as a new press")
	}
	if !f.IsHeld(core.ActionLeft) {
		t.Error("Repeat should keep the direction held")
	}

	// Window measured from the last repeat
	f = core.NewInputFrame()
	h.Apply(&f, t0.Add(300*time.Millisecond))
	if !f.IsHeld(core.ActionLeft) {
		t.Error("Direction released before its window passed")
	}

	f = core.NewInputFrame()
	h.Apply(&f, t0.Add(400*time.Millisecond))
	if f.IsHeld(core.ActionLeft) {
		t.Error("Direction still held after the window passed")
	}
}

func TestHoldTrackerNewDirectionReleasesOthers(t *testing.T) {
	h := NewHoldTracker(0.25)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionUp, t0.Add(50*time.Millisecond))

	f := core.NewInputFrame()
	h.Apply(&f, t0.Add(60*time.Millisecond))
	if f.IsHeld(core.ActionLeft) && !f.Has(core.ActionLeft) {
		t.Error("Left should no longer be held")
	}
	if !f.Has(core.ActionUp) || !f.IsHeld(core.ActionUp) {
		t.Error("Up should be pressed and held")
	}

	f = core.NewInputFrame()
	h.Apply(&f, t0.Add(100*time.Millisecond))
	if f.IsHeld(core.ActionLeft) {
		t.Error("Left held on the next frame")
	}
	if !f.IsHeld(core.ActionUp) {
		t.Error("Up released too early")
	}
}

func TestHoldTrackerNonDirectionIsOneShot(t *testing.T) {
	h := NewHoldTracker(0.25)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionPause, t0)
	f := core.NewInputFrame()
	h.Apply(&f, t0)
	if !f.Has(core.ActionPause) {
		t.Fatal("Pause not delivered")
	}

	f = core.NewInputFrame()
	h.Apply(&f, t0.Add(10*time.Millisecond))
	if f.IsHeld(core.ActionPause) {
		t.Error("Pause should not be held")
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	h := NewHoldTracker(0)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionDown, t0)
	h.Press(core.ActionGiveUp, t0)
	h.Release()

	f := core.NewInputFrame()
	h.Apply(&f, t0)
	if f.IsHeld(core.ActionDown) || f.Has(core.ActionGiveUp) {
		t.Error("Release left input behind")
	}
}
