package engine

// Default tuning values.
const (
	DefaultTileSize           = 64.0
	DefaultGravityInterval    = 0.2
	DefaultPlayerMoveDuration = 0.2
	DefaultObjectMoveDuration = 0.15
	DefaultRepeatDelay        = 0.15
)

// Settings is the movement and physics configuration threaded into every move.
type Settings struct {
	SmoothMovement     bool    // Interpolate moves instead of snapping to the target tile
	GravityInterval    float64 // Seconds between gravity evaluations
	PlayerMoveDuration float64 // Seconds per player step in smooth mode
	ObjectMoveDuration float64 // Seconds per object hop in smooth mode
	RepeatDelay        float64 // Held-direction auto-repeat delay in seconds
	TileSize           float64 // World units per tile
}

// DefaultSettings returns the standard tuning with smooth movement enabled.
func DefaultSettings() Settings {
	return Settings{
		SmoothMovement:     true,
		GravityInterval:    DefaultGravityInterval,
		PlayerMoveDuration: DefaultPlayerMoveDuration,
		ObjectMoveDuration: DefaultObjectMoveDuration,
		RepeatDelay:        DefaultRepeatDelay,
		TileSize:           DefaultTileSize,
	}
}

// normalized replaces non-positive values with defaults.
func (s Settings) normalized() Settings {
	d := DefaultSettings()
	if s.GravityInterval <= 0 {
		s.GravityInterval = d.GravityInterval
	}
	if s.PlayerMoveDuration <= 0 {
		s.PlayerMoveDuration = d.PlayerMoveDuration
	}
	if s.ObjectMoveDuration <= 0 {
		s.ObjectMoveDuration = d.ObjectMoveDuration
	}
	if s.RepeatDelay <= 0 {
		s.RepeatDelay = d.RepeatDelay
	}
	if s.TileSize <= 0 {
		s.TileSize = d.TileSize
	}
	return s
}

// TickInput is everything the core consumes for one tick.
type TickInput struct {
	DT           float64 // Elapsed seconds since the previous tick
	Intent       Dir     // Direction currently requested, DirNone if none
	JustPressed  bool    // Intent was newly pressed this tick
	ToggleSmooth bool    // Settings-changed signal: flip SmoothMovement
}
