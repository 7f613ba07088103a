package engine

// EventKind identifies something that happened during a tick.
type EventKind uint8

const (
	EventTileDug EventKind = iota + 1
	EventCrystalCollected
	EventWormEaten
	EventObjectMoved
	EventSettingsChanged
	EventLevelComplete
	EventPlayerDestroyed
)

// String returns the string representation of an event kind.
func (k EventKind) String() string {
	switch k {
	case EventTileDug:
		return "TileDug"
	case EventCrystalCollected:
		return "CrystalCollected"
	case EventWormEaten:
		return "WormEaten"
	case EventObjectMoved:
		return "ObjectMoved"
	case EventSettingsChanged:
		return "SettingsChanged"
	case EventLevelComplete:
		return "LevelComplete"
	case EventPlayerDestroyed:
		return "PlayerDestroyed"
	default:
		return "Unknown"
	}
}

// Event records one state change.
type Event struct {
	Kind     EventKind
	Tile     Coord // Tile where it happened
	ObjectID int   // Object involved, -1 if none
	Dir      Dir   // Direction for ObjectMoved
}

// TickResult contains information about what happened during one tick.
type TickResult struct {
	Tick            uint64
	Events          []Event
	Completed       bool // Level has been completed (this tick or earlier)
	PlayerDestroyed bool // Player has been destroyed (this tick or earlier)
}

// Has reports whether an event of kind k happened this tick.
func (r TickResult) Has(k EventKind) bool {
	return r.Count(k) > 0
}

// Count returns how many events of kind k happened this tick.
func (r TickResult) Count(k EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == k {
			n++
		}
	}
	return n
}
