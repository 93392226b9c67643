package nav

import (
	"testing"

	"setlist/internal/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParentOf(t *testing.T) {
	_, ok := ParentOf(LevelSet)
	assert.False(t, ok)

	tests := map[Level]Level{
		LevelItem:   LevelSet,
		LevelStanza: LevelItem,
		LevelLine:   LevelStanza,
	}
	for child, want := range tests {
		got, ok := ParentOf(child)
		require.True(t, ok, "ParentOf(%s)", child)
		assert.Equal(t, want, got, "ParentOf(%s)", child)
	}

	_, ok = ParentOf(Level(42))
	assert.False(t, ok)
}

func TestDescendantsOf(t *testing.T) {
	assert.Equal(t, []Level{LevelItem, LevelStanza, LevelLine}, DescendantsOf(LevelSet))
	assert.Equal(t, []Level{LevelStanza, LevelLine}, DescendantsOf(LevelItem))
	assert.Equal(t, []Level{LevelLine}, DescendantsOf(LevelStanza))
	assert.Empty(t, DescendantsOf(LevelLine))
	assert.Nil(t, DescendantsOf(Level(-1)))

	// Callers may not corrupt the level list through the returned slice.
	d := DescendantsOf(LevelItem)
	d[0] = LevelSet
	assert.Equal(t, []Level{LevelStanza, LevelLine}, DescendantsOf(LevelItem))
}

func TestParseLevel(t *testing.T) {
	for _, l := range Levels {
		got, err := ParseLevel(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}
	got, err := ParseLevel(" Stanza ")
	require.NoError(t, err)
	assert.Equal(t, LevelStanza, got)

	_, err = ParseLevel("verse")
	assert.Error(t, err)
	assert.Equal(t, "level(9)", Level(9).String())
}

func TestChildCount(t *testing.T) {
	set := fixtureSet()

	assert.Equal(t, 3, ChildCount(set, LevelSet, ActivePath{}))
	assert.Equal(t, 3, ChildCount(set, LevelItem, ActivePath{Item: 0}))
	assert.Equal(t, 2, ChildCount(set, LevelItem, ActivePath{Item: 1}))
	assert.Equal(t, 5, ChildCount(set, LevelStanza, ActivePath{Item: 0, Stanza: 0}))
	assert.Equal(t, 6, ChildCount(set, LevelStanza, ActivePath{Item: 0, Stanza: 1}))
	assert.Equal(t, 4, ChildCount(set, LevelStanza, ActivePath{Item: 1, Stanza: 1}))

	// Same query, different active parent.
	assert.Equal(t, 1, ChildCount(set, LevelStanza, ActivePath{Item: 2, Stanza: 0}))
	assert.Equal(t, 3, ChildCount(set, LevelStanza, ActivePath{Item: 2, Stanza: 1}))

	assert.Zero(t, ChildCount(set, LevelItem, ActivePath{Item: 7}))
	assert.Zero(t, ChildCount(set, LevelStanza, ActivePath{Item: 0, Stanza: 9}))
	assert.Zero(t, ChildCount(set, LevelLine, ActivePath{}))
	assert.Zero(t, ChildCount(nil, LevelSet, ActivePath{}))
}

func TestInBounds(t *testing.T) {
	set := fixtureSet()
	assert.True(t, InBounds(set, ActivePath{}))
	assert.True(t, InBounds(set, ActivePath{Item: 0, Stanza: 1, Line: 5}))
	assert.False(t, InBounds(set, ActivePath{Item: 0, Stanza: 0, Line: 5}))
	assert.False(t, InBounds(set, ActivePath{Item: 3}))
	assert.False(t, InBounds(set, ActivePath{Line: -1}))
	assert.False(t, InBounds(&content.Set{}, ActivePath{}))
}

func TestSkipSizeValidate(t *testing.T) {
	assert.NoError(t, DefaultSkipSize().Validate())
	assert.Error(t, SkipSize{Item: 1, Stanza: 0, Line: 2}.Validate())
	assert.Error(t, SkipSize{Item: -1, Stanza: 1, Line: 1}.Validate())
	assert.Equal(t, 2, DefaultSkipSize().At(LevelLine))
}
