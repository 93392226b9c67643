package nav

import (
	"errors"
	"fmt"

	"setlist/internal/content"
	"setlist/internal/logging"
)

// Result describes what a GoTo call did.
type Result struct {
	// Committed is false when the call left the path untouched.
	Committed bool
	// Level is the level that committed. After a bubble-up this is the
	// ancestor that finally accepted the move.
	Level Level
	// ItemChanged is set when the committing level is the item level.
	ItemChanged bool
}

// Engine moves an ActivePath through a normalized set.
type Engine struct {
	set  *content.Set
	skip SkipSize
	path ActivePath
}

// NewEngine returns an engine positioned at {0,0,0}.
func NewEngine(set *content.Set, skip SkipSize) (*Engine, error) {
	if set == nil {
		return nil, errors.New("nav: nil set")
	}
	if err := skip.Validate(); err != nil {
		return nil, fmt.Errorf("nav: %w", err)
	}
	return &Engine{set: set, skip: skip}, nil
}

// Set returns the set being navigated.
func (e *Engine) Set() *content.Set {
	return e.set
}

// SkipSize returns the configured steps.
func (e *Engine) SkipSize() SkipSize {
	return e.skip
}

// Path returns a copy of the current cursor.
func (e *Engine) Path() ActivePath {
	return e.path
}

// GoTo moves level to dest. child chooses where the levels below land after
// a commit; Unset picks Last when moving backwards and First when moving
// forwards. Out-of-range moves are handed to the parent level; at the item
// level that hand-off reaches the set and nothing changes.
func (e *Engine) GoTo(level Level, dest, child Destination) Result {
	before := e.path
	res := e.goTo(level, dest, child, &e.path)
	logging.NavDebug("goto %s %s/%s: {%s} -> {%s} committed=%v at %s",
		level, dest, child, before, e.path, res.Committed, res.Level)
	return res
}

// Apply runs a parsed command.
func (e *Engine) Apply(c Command) Result {
	return e.GoTo(c.Level, c.Destination, c.Child)
}

func (e *Engine) goTo(level Level, dest, child Destination, path *ActivePath) Result {
	parent, ok := ParentOf(level)
	if !ok {
		return Result{}
	}

	current := path.At(level)
	maxIndex := ChildCount(e.set, parent, *path) - 1
	step := e.skip.At(level)

	var candidate int
	switch dest.kind {
	case destFirst:
		candidate = 0
	case destLast:
		candidate = maxIndex - maxIndex%step
	case destPrevious:
		candidate = current - step
	case destNext:
		candidate = current + step
	case destIndex:
		candidate = dest.index
	default:
		return Result{}
	}

	if candidate < current {
		if candidate < 0 {
			return e.goTo(parent, Previous, Unset, path)
		}
		if !child.IsSet() {
			child = Last
		}
	}
	if candidate > current {
		if candidate > maxIndex {
			return e.goTo(parent, Next, Unset, path)
		}
		if !child.IsSet() {
			child = First
		}
	}

	path.set(level, candidate)

	cascade := child
	if !cascade.IsSet() {
		cascade = Last
	}
	for _, d := range DescendantsOf(level) {
		e.goTo(d, cascade, Unset, path)
	}

	return Result{Committed: true, Level: level, ItemChanged: level == LevelItem}
}
