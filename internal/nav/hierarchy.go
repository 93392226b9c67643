// Package nav implements the cursor that moves through a normalized set:
// set → item → stanza → line.
//
// All parent/child relationships come from the single ordered Levels list.
// The Engine owns the ActivePath and updates it in place during one GoTo
// call; callers only see copies published after the call returns.
package nav

import (
	"fmt"
	"strings"

	"setlist/internal/content"
)

// Level is one level of the hierarchy.
type Level int

const (
	LevelSet Level = iota
	LevelItem
	LevelStanza
	LevelLine
)

// Levels is the hierarchy root first.
var Levels = []Level{LevelSet, LevelItem, LevelStanza, LevelLine}

var levelNames = map[Level]string{
	LevelSet:    "set",
	LevelItem:   "item",
	LevelStanza: "stanza",
	LevelLine:   "line",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel parses a level name.
func ParseLevel(s string) (Level, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, l := range Levels {
		if levelNames[l] == want {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown level %q (valid: set, item, stanza, line)", s)
}

func indexOf(l Level) int {
	for i, candidate := range Levels {
		if candidate == l {
			return i
		}
	}
	return -1
}

// ParentOf returns the level directly above l. The set has no parent.
func ParentOf(l Level) (Level, bool) {
	i := indexOf(l)
	if i <= 0 {
		return 0, false
	}
	return Levels[i-1], true
}

// DescendantsOf returns the levels strictly below l, nearest first.
func DescendantsOf(l Level) []Level {
	i := indexOf(l)
	if i < 0 {
		return nil
	}
	out := make([]Level, len(Levels)-i-1)
	copy(out, Levels[i+1:])
	return out
}

// ChildCount returns how many children the active node at parent has under
// path: items of the set, stanzas of the active item, lines of the active
// stanza. A parent that does not exist has no children.
func ChildCount(set *content.Set, parent Level, path ActivePath) int {
	if set == nil {
		return 0
	}
	switch parent {
	case LevelSet:
		return len(set.Items)
	case LevelItem:
		item, ok := set.ItemAt(path.Item)
		if !ok {
			return 0
		}
		return len(item.Stanzas)
	case LevelStanza:
		item, ok := set.ItemAt(path.Item)
		if !ok {
			return 0
		}
		stanza, ok := item.StanzaAt(path.Stanza)
		if !ok {
			return 0
		}
		return len(stanza.Lines)
	default:
		return 0
	}
}

// InBounds reports whether every index of path is valid against its active
// parent.
func InBounds(set *content.Set, path ActivePath) bool {
	for _, l := range Levels[1:] {
		parent, _ := ParentOf(l)
		idx := path.At(l)
		if idx < 0 || idx >= ChildCount(set, parent, path) {
			return false
		}
	}
	return true
}
