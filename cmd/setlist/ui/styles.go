// Package ui is the interactive presenter for setlist: a bubbletea model that
// renders the active item of a set and moves the cursor with the keyboard.
package ui

import (
	"os"
	"strconv"
	"strings"

	"setlist/internal/content"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Light Mode Colors (Default)
	LightForeground = lipgloss.Color("#101F38")
	LightPrimary    = lipgloss.Color("#101F38")
	LightAccent     = lipgloss.Color("#8BC34A")
	LightMuted      = lipgloss.Color("#8a94a3")
	LightBorder     = lipgloss.Color("#dce0e5")
	LightHighlight  = lipgloss.Color("#eef6e4")

	// Dark Mode Colors
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#8BC34A")
	DarkAccent     = lipgloss.Color("#8BC34A")
	DarkMuted      = lipgloss.Color("#6b7a90")
	DarkBorder     = lipgloss.Color("#2a3850")
	DarkHighlight  = lipgloss.Color("#24331c")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e53935")
	Warning     = lipgloss.Color("#FFC107")
	Info        = lipgloss.Color("#2196F3")

	// Stanza kind colors
	ChorusColor  = lipgloss.Color("#e57373")
	BridgeColor  = lipgloss.Color("#4db6ac")
	RefrainColor = lipgloss.Color("#ff8a65")
	FrameColor   = lipgloss.Color("#9575cd") // intro and outro
)

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		Highlight:  LightHighlight,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Highlight:  DarkHighlight,
		IsDark:     true,
	}
}

// DetectTheme guesses from COLORFGBG, then SETLIST_DARK_MODE, and falls back
// to light mode.
func DetectTheme() Theme {
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		// "foreground;background"; ANSI 0-6 and 8 are dark backgrounds.
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	if os.Getenv("SETLIST_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// ThemeFor resolves a configured theme name. Unknown names and "auto" detect.
func ThemeFor(name string) Theme {
	switch strings.ToLower(name) {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	Header lipgloss.Style
	Footer lipgloss.Style

	// Item meta
	Title     lipgloss.Style
	Author    lipgloss.Style
	Copyright lipgloss.Style
	ItemType  lipgloss.Style

	// Stanzas
	StanzaLabel  lipgloss.Style
	Stanza       lipgloss.Style
	ActiveStanza lipgloss.Style
	Line         lipgloss.Style
	ActiveLine   lipgloss.Style

	// Status
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	kindColors map[content.StanzaKind]lipgloss.Color
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Author: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Copyright: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Faint(true),

		ItemType: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		StanzaLabel: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Bold(true),

		Stanza: lipgloss.NewStyle().
			PaddingLeft(2).
			BorderLeft(true).
			BorderStyle(lipgloss.HiddenBorder()),

		ActiveStanza: lipgloss.NewStyle().
			PaddingLeft(2).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(theme.Accent),

		Line: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		ActiveLine: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.Highlight).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(Info),

		kindColors: map[content.StanzaKind]lipgloss.Color{
			content.KindChorus:  ChorusColor,
			content.KindBridge:  BridgeColor,
			content.KindRefrain: RefrainColor,
			content.KindIntro:   FrameColor,
			content.KindOutro:   FrameColor,
		},
	}
}

// LabelFor styles a stanza label by kind. Choruses are also italic.
func (s Styles) LabelFor(kind content.StanzaKind) lipgloss.Style {
	st := s.StanzaLabel
	if c, ok := s.kindColors[kind]; ok {
		st = st.Foreground(c)
	}
	if kind == content.KindChorus {
		st = st.Italic(true)
	}
	return st
}

// LineFor styles an inactive line by the kind of its stanza.
func (s Styles) LineFor(kind content.StanzaKind) lipgloss.Style {
	if kind == content.KindChorus {
		return s.Line.Italic(true)
	}
	return s.Line
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	return lipgloss.NewStyle().Foreground(s.Theme.Border).Render(strings.Repeat("─", width))
}
