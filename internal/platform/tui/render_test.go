package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Aleks-Che/earth-shaker-zx/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(8, 2)
	s.DrawTextColored(0, 0, "<>", core.ColorBrightCyan)
	s.DrawTextColored(2, 0, "()", core.ColorWhite)
	s.DrawTextColored(0, 1, "@@", core.ColorBrightYellow)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if w := lipgloss.Width(lines[0]); w != 8 {
		t.Errorf("Line width = %d, expected 8", w)
	}
	for _, want := range []string{"<>", "()", "@@"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q", want)
		}
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorBrightWhite; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("Color %d has no style", c)
		}
	}
	// Unknown colors fall back to the default style
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("Fallback style rendered %q", got)
	}
}

func TestFrameClock(t *testing.T) {
	c := newFrameClock(30)
	t0 := time.Unix(1000, 0)

	tests := []struct {
		name string
		at   time.Time
		want float64
	}{
		{"first frame", t0, 1.0 / 30},
		{"regular frame", t0.Add(20 * time.Millisecond), 0.02},
		{"stall is capped", t0.Add(3 * time.Second), maxFrameDT},
		{"clock going back", t0.Add(2 * time.Second), 0},
	}

	for _, tt := range tests {
		got := c.dt(tt.at)
		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("%s: dt = %v, expected %v", tt.name, got, tt.want)
		}
	}
}
