package nav

import "fmt"

// ActivePath is the cursor: one index per level below the set.
type ActivePath struct {
	Item   int `json:"item"`
	Stanza int `json:"stanza"`
	Line   int `json:"line"`
}

// At returns the index held for l. The set level has no index.
func (p ActivePath) At(l Level) int {
	switch l {
	case LevelItem:
		return p.Item
	case LevelStanza:
		return p.Stanza
	case LevelLine:
		return p.Line
	default:
		return 0
	}
}

func (p *ActivePath) set(l Level, v int) {
	switch l {
	case LevelItem:
		p.Item = v
	case LevelStanza:
		p.Stanza = v
	case LevelLine:
		p.Line = v
	}
}

func (p ActivePath) String() string {
	return fmt.Sprintf("item %d, stanza %d, line %d", p.Item, p.Stanza, p.Line)
}

// SkipSize is the step distance per level for previous/next, and the
// rounding unit for last.
type SkipSize struct {
	Item   int `json:"item" yaml:"item"`
	Stanza int `json:"stanza" yaml:"stanza"`
	Line   int `json:"line" yaml:"line"`
}

// DefaultSkipSize moves one item or stanza at a time and two lines at a time.
func DefaultSkipSize() SkipSize {
	return SkipSize{Item: 1, Stanza: 1, Line: 2}
}

// At returns the step for l.
func (s SkipSize) At(l Level) int {
	switch l {
	case LevelItem:
		return s.Item
	case LevelStanza:
		return s.Stanza
	case LevelLine:
		return s.Line
	default:
		return 1
	}
}

// Validate requires every step to be strictly positive.
func (s SkipSize) Validate() error {
	for _, l := range Levels[1:] {
		if s.At(l) <= 0 {
			return fmt.Errorf("skip size for %s must be positive, got %d", l, s.At(l))
		}
	}
	return nil
}
