package engine

// Kind identifies what an object is.
type Kind uint8

const (
	KindStone Kind = iota
	KindCrystal
	KindWorm
	KindBubble
)

// Capabilities describes how a kind takes part in physics and interaction.
type Capabilities struct {
	CanFall      bool // Subject to gravity evaluation
	Collectible  bool // Consumed when the player arrives on its tile
	BlocksPlayer bool // The player can never step onto it
}

var capabilities = [...]Capabilities{
	KindStone:   {CanFall: true, BlocksPlayer: true},
	KindCrystal: {CanFall: true, Collectible: true},
	KindWorm:    {CanFall: true, Collectible: true},
	KindBubble:  {BlocksPlayer: true},
}

// Caps returns the capability row for the kind.
func (k Kind) Caps() Capabilities {
	if int(k) >= len(capabilities) {
		return Capabilities{}
	}
	return capabilities[k]
}

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindStone:
		return "Stone"
	case KindCrystal:
		return "Crystal"
	case KindWorm:
		return "Worm"
	case KindBubble:
		return "Bubble"
	default:
		return "Unknown"
	}
}

// FallState records what gravity last decided for an object.
type FallState uint8

const (
	FallStable FallState = iota
	FallFalling
	FallSliding
)

// String returns the string representation of a fall state.
func (s FallState) String() string {
	switch s {
	case FallStable:
		return "Stable"
	case FallFalling:
		return "Falling"
	case FallSliding:
		return "Sliding"
	default:
		return "Unknown"
	}
}

// Object is a grid-occupying entity other than the player.
// Collected objects are deactivated, never removed, so indices stay stable
// for the whole life of a level.
type Object struct {
	Body

	ID     int
	Kind   Kind
	Active bool
	Fall   FallState

	// mustFall is set when a lateral hop completes; the next gravity
	// evaluation may only fall straight down.
	mustFall bool
}

func newObject(id int, kind Kind, at Coord, tileSize float64) *Object {
	o := &Object{
		ID:     id,
		Kind:   kind,
		Active: true,
		Fall:   FallStable,
	}
	o.Body = newBody(at, tileSize, o.arrived)
	return o
}

// arrived is the object's post-move hook.
func (o *Object) arrived() {
	if o.Fall == FallSliding {
		o.mustFall = true
	}
}

// Spawn places one object in a level under construction.
type Spawn struct {
	Kind Kind
	At   Coord
}
