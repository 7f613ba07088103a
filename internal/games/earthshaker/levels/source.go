package levels

import "fmt"

// Source supplies the levels of a campaign by 1-based number.
type Source interface {
	Count() int
	Level(n int) (Level, error)
}

// ParamsFunc returns generator parameters for campaign level n.
type ParamsFunc func(n int) GenParams

// GeneratedSource produces campaign levels with the random generator.
type GeneratedSource struct {
	count  int
	params ParamsFunc
}

// NewGeneratedSource creates a source of count generated levels.
// A nil params func uses DefaultGenParams for every level.
func NewGeneratedSource(count int, params ParamsFunc) *GeneratedSource {
	if params == nil {
		params = func(int) GenParams { return DefaultGenParams() }
	}
	return &GeneratedSource{count: count, params: params}
}

// Count returns the number of levels in the campaign.
func (s *GeneratedSource) Count() int { return s.count }

// Level generates level n, 1-based.
func (s *GeneratedSource) Level(n int) (Level, error) {
	if n < 1 || n > s.count {
		return Level{}, fmt.Errorf("level %d out of range 1..%d", n, s.count)
	}
	return GenerateLevel(n, s.params(n))
}

// Pack is a fixed list of levels, usually loaded from files.
type Pack struct {
	levels []Level
}

// NewPack creates a source from loaded levels, in order.
func NewPack(levels []Level) *Pack {
	return &Pack{levels: levels}
}

// Count returns the number of levels in the pack.
func (p *Pack) Count() int { return len(p.levels) }

// Level returns level n of the pack, 1-based.
func (p *Pack) Level(n int) (Level, error) {
	if n < 1 || n > len(p.levels) {
		return Level{}, fmt.Errorf("level %d out of range 1..%d", n, len(p.levels))
	}
	lvl := p.levels[n-1]
	lvl.Number = n
	return lvl, nil
}
