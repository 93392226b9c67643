package nav

import (
	"fmt"
	"testing"

	"setlist/internal/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureSet builds items whose stanzas have the given line counts.
//
//	item 0: 5, 6, 3 lines
//	item 1: 2, 4 lines
//	item 2: 1, 3 lines
func fixtureSet() *content.Set {
	return buildSet([][]int{{5, 6, 3}, {2, 4}, {1, 3}})
}

func buildSet(shape [][]int) *content.Set {
	set := &content.Set{}
	for i, stanzas := range shape {
		item := content.Item{Title: fmt.Sprintf("item %d", i)}
		for j, n := range stanzas {
			st := content.Stanza{Lines: make([]string, n)}
			for k := range st.Lines {
				st.Lines[k] = fmt.Sprintf("%d.%d.%d", i, j, k)
			}
			item.Stanzas = append(item.Stanzas, st)
		}
		set.Items = append(set.Items, item)
	}
	return set
}

func newEngine(t *testing.T, set *content.Set, skip SkipSize) *Engine {
	t.Helper()
	e, err := NewEngine(set, skip)
	require.NoError(t, err)
	return e
}

// at positions the engine directly; tests use it to set up a starting cursor.
func at(e *Engine, p ActivePath) *Engine {
	e.path = p
	return e
}

func TestNewEngine(t *testing.T) {
	e := newEngine(t, fixtureSet(), DefaultSkipSize())
	assert.Equal(t, ActivePath{}, e.Path())
	assert.Equal(t, DefaultSkipSize(), e.SkipSize())
	assert.NotNil(t, e.Set())

	_, err := NewEngine(nil, DefaultSkipSize())
	assert.Error(t, err)

	_, err = NewEngine(fixtureSet(), SkipSize{Item: 1, Stanza: 1, Line: 0})
	assert.Error(t, err)
}

func TestPathIsPublishedByValue(t *testing.T) {
	e := newEngine(t, fixtureSet(), DefaultSkipSize())
	p := e.Path()
	p.Line = 99
	assert.Equal(t, 0, e.Path().Line)
}

func TestLinePreviousAtOriginIsNoop(t *testing.T) {
	e := newEngine(t, fixtureSet(), DefaultSkipSize())

	res := e.GoTo(LevelLine, Previous, Unset)

	assert.False(t, res.Committed)
	assert.False(t, res.ItemChanged)
	assert.Equal(t, ActivePath{}, e.Path())
}

func TestLineNextWalksThroughItem(t *testing.T) {
	e := newEngine(t, fixtureSet(), DefaultSkipSize())

	want := []ActivePath{
		{0, 0, 2}, {0, 0, 4},
		{0, 1, 0}, {0, 1, 2}, {0, 1, 4},
		{0, 2, 0}, {0, 2, 2},
		{1, 0, 0},
	}
	for i, w := range want {
		res := e.GoTo(LevelLine, Next, Unset)
		require.True(t, res.Committed, "step %d", i)
		assert.Equal(t, w, e.Path(), "step %d", i)
	}
}

func TestLineNextFromEndOfItemLandsOnNextItemStart(t *testing.T) {
	e := at(newEngine(t, fixtureSet(), DefaultSkipSize()), ActivePath{Item: 0, Stanza: 2, Line: 2})

	res := e.GoTo(LevelLine, Next, Unset)

	assert.Equal(t, Result{Committed: true, Level: LevelItem, ItemChanged: true}, res)
	assert.Equal(t, ActivePath{Item: 1, Stanza: 0, Line: 0}, e.Path())
}

func TestLinePreviousFromItemStartLandsOnPreviousItemEnd(t *testing.T) {
	e := at(newEngine(t, fixtureSet(), DefaultSkipSize()), ActivePath{Item: 1, Stanza: 0, Line: 0})

	res := e.GoTo(LevelLine, Previous, Unset)

	assert.Equal(t, Result{Committed: true, Level: LevelItem, ItemChanged: true}, res)
	assert.Equal(t, ActivePath{Item: 0, Stanza: 2, Line: 2}, e.Path())
}

func TestLinePreviousBubblesToStanza(t *testing.T) {
	e := at(newEngine(t, fixtureSet(), DefaultSkipSize()), ActivePath{Item: 0, Stanza: 1, Line: 0})

	res := e.GoTo(LevelLine, Previous, Unset)

	assert.Equal(t, Result{Committed: true, Level: LevelStanza}, res)
	// Stanza 0 has 5 lines: last = 4 - 4%2 = 4.
	assert.Equal(t, ActivePath{Item: 0, Stanza: 0, Line: 4}, e.Path())
}

func TestLastRoundsToSkipSize(t *testing.T) {
	tests := []struct {
		lines int
		want  int
	}{
		{lines: 5, want: 4},
		{lines: 6, want: 4},
		{lines: 1, want: 0},
		{lines: 2, want: 0},
		{lines: 3, want: 2},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d lines", tt.lines), func(t *testing.T) {
			e := newEngine(t, buildSet([][]int{{tt.lines}}), DefaultSkipSize())
			e.GoTo(LevelLine, Last, Unset)
			assert.Equal(t, tt.want, e.Path().Line)
		})
	}
}

func TestRejectedFullChainBubbleLeavesPathUntouched(t *testing.T) {
	tests := []struct {
		name  string
		start ActivePath
		level Level
		dest  Destination
	}{
		{"line next at very end", ActivePath{Item: 2, Stanza: 1, Line: 2}, LevelLine, Next},
		{"stanza next in last item", ActivePath{Item: 2, Stanza: 1, Line: 1}, LevelStanza, Next},
		{"item next at last item", ActivePath{Item: 2, Stanza: 0, Line: 0}, LevelItem, Next},
		{"line previous at origin", ActivePath{}, LevelLine, Previous},
		{"stanza previous at origin", ActivePath{Line: 4}, LevelStanza, Previous},
		{"item index past end", ActivePath{Item: 1, Stanza: 1, Line: 3}, LevelItem, Index(3)},
		{"negative index", ActivePath{Item: 0, Stanza: 2, Line: 1}, LevelItem, Index(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := at(newEngine(t, fixtureSet(), DefaultSkipSize()), tt.start)

			res := e.GoTo(tt.level, tt.dest, Unset)

			assert.Equal(t, Result{}, res)
			assert.Equal(t, tt.start, e.Path())
		})
	}
}

func TestStanzaPreviousWithExplicitFirst(t *testing.T) {
	e := at(newEngine(t, fixtureSet(), DefaultSkipSize()), ActivePath{Item: 0, Stanza: 1, Line: 4})

	e.GoTo(LevelStanza, Previous, First)

	assert.Equal(t, ActivePath{Item: 0, Stanza: 0, Line: 0}, e.Path())
}

func TestStanzaPreviousDefaultsChildToLast(t *testing.T) {
	e := at(newEngine(t, fixtureSet(), DefaultSkipSize()), ActivePath{Item: 0, Stanza: 1, Line: 2})

	e.GoTo(LevelStanza, Previous, Unset)

	assert.Equal(t, ActivePath{Item: 0, Stanza: 0, Line: 4}, e.Path())
}

func TestStanzaNextDefaultsChildToFirst(t *testing.T) {
	e := at(newEngine(t, fixtureSet(), DefaultSkipSize()), ActivePath{Item: 0, Stanza: 0, Line: 4})

	res := e.GoTo(LevelStanza, Next, Unset)

	assert.Equal(t, Result{Committed: true, Level: LevelStanza}, res)
	assert.Equal(t, ActivePath{Item: 0, Stanza: 1, Line: 0}, e.Path())
}

func TestExplicitChildOverridesDirection(t *testing.T) {
	e := newEngine(t, fixtureSet(), DefaultSkipSize())

	e.GoTo(LevelStanza, Next, Last)

	assert.Equal(t, ActivePath{Item: 0, Stanza: 1, Line: 4}, e.Path())
}

func TestItemPreviousCascadesToLast(t *testing.T) {
	e := at(newEngine(t, fixtureSet(), DefaultSkipSize()), ActivePath{Item: 1, Stanza: 1, Line: 3})

	res := e.GoTo(LevelItem, Previous, Unset)

	assert.True(t, res.ItemChanged)
	assert.Equal(t, ActivePath{Item: 0, Stanza: 2, Line: 2}, e.Path())
}

func TestItemNextCascadesToFirst(t *testing.T) {
	e := at(newEngine(t, fixtureSet(), DefaultSkipSize()), ActivePath{Item: 0, Stanza: 2, Line: 2})

	res := e.GoTo(LevelItem, Next, Unset)

	assert.Equal(t, Result{Committed: true, Level: LevelItem, ItemChanged: true}, res)
	assert.Equal(t, ActivePath{Item: 1, Stanza: 0, Line: 0}, e.Path())
}

func TestSameIndexCascadesToLast(t *testing.T) {
	e := at(newEngine(t, fixtureSet(), DefaultSkipSize()), ActivePath{Item: 0, Stanza: 1, Line: 0})

	res := e.GoTo(LevelStanza, Index(1), Unset)

	assert.True(t, res.Committed)
	assert.Equal(t, ActivePath{Item: 0, Stanza: 1, Line: 4}, e.Path())
}

func TestItemFirstAndLast(t *testing.T) {
	e := at(newEngine(t, fixtureSet(), DefaultSkipSize()), ActivePath{Item: 1, Stanza: 1, Line: 2})

	e.GoTo(LevelItem, Last, Unset)
	assert.Equal(t, ActivePath{Item: 2, Stanza: 0, Line: 0}, e.Path())

	e.GoTo(LevelItem, First, Unset)
	assert.Equal(t, ActivePath{Item: 0, Stanza: 2, Line: 2}, e.Path())
}

func TestAbsoluteIndex(t *testing.T) {
	e := at(newEngine(t, fixtureSet(), DefaultSkipSize()), ActivePath{Item: 0, Stanza: 0, Line: 3})

	e.GoTo(LevelStanza, Index(2), Unset)
	assert.Equal(t, ActivePath{Item: 0, Stanza: 2, Line: 0}, e.Path())

	e.GoTo(LevelLine, Index(1), Unset)
	assert.Equal(t, ActivePath{Item: 0, Stanza: 2, Line: 1}, e.Path())
}

func TestSetLevelIsNoop(t *testing.T) {
	e := at(newEngine(t, fixtureSet(), DefaultSkipSize()), ActivePath{Item: 1, Stanza: 1, Line: 1})

	for _, d := range []Destination{First, Last, Previous, Next, Index(0)} {
		res := e.GoTo(LevelSet, d, Unset)
		assert.False(t, res.Committed)
	}
	assert.Equal(t, ActivePath{Item: 1, Stanza: 1, Line: 1}, e.Path())
}

func TestUnresolvedDestinationIsNoop(t *testing.T) {
	e := at(newEngine(t, fixtureSet(), DefaultSkipSize()), ActivePath{Item: 0, Stanza: 1, Line: 2})

	res := e.GoTo(LevelLine, ParseDestination("sideways"), Unset)
	assert.False(t, res.Committed)
	res = e.GoTo(LevelStanza, Unset, Unset)
	assert.False(t, res.Committed)

	assert.Equal(t, ActivePath{Item: 0, Stanza: 1, Line: 2}, e.Path())
}

func TestLargerSkipSizes(t *testing.T) {
	set := buildSet([][]int{{3}, {3}, {3}, {3}, {3}})
	e := newEngine(t, set, SkipSize{Item: 2, Stanza: 1, Line: 1})

	e.GoTo(LevelItem, Next, Unset)
	assert.Equal(t, 2, e.Path().Item)
	e.GoTo(LevelItem, Next, Unset)
	assert.Equal(t, 4, e.Path().Item)

	res := e.GoTo(LevelItem, Next, Unset)
	assert.False(t, res.Committed)
	assert.Equal(t, 4, e.Path().Item)

	// 4 items past the first: last = 4 - 4%2 = 4.
	at(e, ActivePath{})
	e.GoTo(LevelItem, Last, Unset)
	assert.Equal(t, 4, e.Path().Item)
}

func TestApplyCommand(t *testing.T) {
	e := newEngine(t, fixtureSet(), DefaultSkipSize())
	cmd, err := ParseCommand("stanza:next:last")
	require.NoError(t, err)

	res := e.Apply(cmd)
	assert.True(t, res.Committed)
	assert.Equal(t, ActivePath{Item: 0, Stanza: 1, Line: 4}, e.Path())
}

func TestEmptyContentNeverPanics(t *testing.T) {
	sets := map[string]*content.Set{
		"no items":        {},
		"item no stanzas": buildSet([][]int{{}, {2}}),
		"empty stanza":    buildSet([][]int{{0, 2}}),
	}
	for name, set := range sets {
		t.Run(name, func(t *testing.T) {
			e := newEngine(t, set, DefaultSkipSize())
			assert.NotPanics(t, func() {
				for _, c := range allCommands() {
					e.Apply(c)
				}
			})
		})
	}
}

func allCommands() []Command {
	var cmds []Command
	for _, l := range []Level{LevelItem, LevelStanza, LevelLine} {
		for _, d := range []Destination{First, Last, Previous, Next} {
			for _, c := range []Destination{Unset, First, Last} {
				cmds = append(cmds, Command{Level: l, Destination: d, Child: c})
			}
		}
	}
	return cmds
}

// Every state reachable from the origin keeps every index in bounds.
func TestInvariantHoldsForAllReachableStates(t *testing.T) {
	shapes := map[string][][]int{
		"fixture":     {{5, 6, 3}, {2, 4}, {1, 3}},
		"single line": {{1}},
		"uneven":      {{1, 7, 2, 9}, {3}, {4, 1, 1}, {8, 8}},
		"single item": {{2, 2, 2, 2}},
	}
	skips := []SkipSize{DefaultSkipSize(), {Item: 1, Stanza: 1, Line: 1}, {Item: 2, Stanza: 3, Line: 4}}

	for name, shape := range shapes {
		for _, skip := range skips {
			t.Run(fmt.Sprintf("%s/%+v", name, skip), func(t *testing.T) {
				set := buildSet(shape)
				seen := map[ActivePath]bool{{}: true}
				queue := []ActivePath{{}}
				for len(queue) > 0 {
					start := queue[0]
					queue = queue[1:]
					for _, c := range allCommands() {
						e := at(newEngine(t, set, skip), start)
						e.Apply(c)
						p := e.Path()
						require.True(t, InBounds(set, p), "%v from {%s} gave {%s}", c, start, p)
						if !seen[p] {
							seen[p] = true
							queue = append(queue, p)
						}
					}
				}
			})
		}
	}
}
