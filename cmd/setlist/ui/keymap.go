package ui

import (
	"setlist/internal/nav"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the presenter key bindings.
type KeyMap struct {
	LinePrevious, LineNext     key.Binding
	StanzaPrevious, StanzaNext key.Binding
	ItemPrevious, ItemNext     key.Binding
	ItemFirst, ItemLast        key.Binding

	Copy, Help, Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		LinePrevious: key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous lines")),
		LineNext:     key.NewBinding(key.WithKeys("down", "j", " "), key.WithHelp("↓/j", "next lines")),

		// Left lands on the start of the previous stanza rather than its end.
		StanzaPrevious: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous stanza")),
		StanzaNext:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next stanza")),

		ItemPrevious: key.NewBinding(key.WithKeys("pgup", "p"), key.WithHelp("pgup/p", "previous item")),
		ItemNext:     key.NewBinding(key.WithKeys("pgdown", "n"), key.WithHelp("pgdn/n", "next item")),
		ItemFirst:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home/g", "first item")),
		ItemLast:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "last item")),

		Copy: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy item")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LineNext, k.StanzaNext, k.ItemNext, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LinePrevious, k.LineNext},
		{k.StanzaPrevious, k.StanzaNext},
		{k.ItemPrevious, k.ItemNext, k.ItemFirst, k.ItemLast},
		{k.Copy, k.Help, k.Quit},
	}
}

// binding pairs a key with the navigation it triggers.
type binding struct {
	key key.Binding
	cmd nav.Command
}

func (k KeyMap) navigation() []binding {
	return []binding{
		{k.LinePrevious, nav.Command{Level: nav.LevelLine, Destination: nav.Previous}},
		{k.LineNext, nav.Command{Level: nav.LevelLine, Destination: nav.Next}},
		{k.StanzaPrevious, nav.Command{Level: nav.LevelStanza, Destination: nav.Previous, Child: nav.First}},
		{k.StanzaNext, nav.Command{Level: nav.LevelStanza, Destination: nav.Next}},
		// Item jumps always open the item at its top.
		{k.ItemPrevious, nav.Command{Level: nav.LevelItem, Destination: nav.Previous, Child: nav.First}},
		{k.ItemNext, nav.Command{Level: nav.LevelItem, Destination: nav.Next, Child: nav.First}},
		{k.ItemFirst, nav.Command{Level: nav.LevelItem, Destination: nav.First, Child: nav.First}},
		{k.ItemLast, nav.Command{Level: nav.LevelItem, Destination: nav.Last, Child: nav.First}},
	}
}
