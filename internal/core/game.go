// Package core provides the platform-neutral types shared by the game and the
// terminal front end. It has no Bubble Tea dependency so game logic stays
// pure and testable.
package core

// Game is the contract between a game and the platform that drives it.
type Game interface {
	ID() string
	Title() string
	Reset(cfg RuntimeConfig)
	Step(in InputFrame) StepResult
	Render(dst *Screen)
	State() GameState
}

// Resizer is implemented by games that can follow a terminal resize without
// a Reset. The platform falls back to Reset for games that do not.
type Resizer interface {
	Resize(w, h int)
}

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW    int   // Screen width in characters
	ScreenH    int   // Screen height in characters
	TickRate   int   // Frames per second driven by the platform
	Seed       int64 // Generator seed override, 0 keeps per-level seeds
	StartLevel int   // First campaign level, 1-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   30,
		StartLevel: 1,
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int
	Level    int
	Lives    int
	GameOver bool
	Won      bool // Campaign finished with every level cleared
	Paused   bool
}

// LevelSummary describes one completed level.
type LevelSummary struct {
	Level    int
	Crystals int
	Seconds  float64
	Smooth   bool
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State   GameState
	Cleared *LevelSummary // Set on the frame a level is completed
}
