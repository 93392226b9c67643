package content

import (
	"regexp"
	"strings"
)

// Set is the normalized root of a document.
type Set struct {
	Title string `json:"title,omitempty"`
	Items []Item `json:"items"`
}

// Item is one titled unit of a set (usually a song).
type Item struct {
	Title     string   `json:"title,omitempty"`
	Author    string   `json:"author,omitempty"`
	Copyright string   `json:"copyright,omitempty"`
	Type      string   `json:"type,omitempty"`
	Stanzas   []Stanza `json:"stanzas"`
}

// Stanza is an ordered group of lines. Type is the normalized stanza ref it
// was keyed by, or empty.
type Stanza struct {
	Lines []string `json:"lines"`
	Type  string   `json:"type"`
}

// StanzaKind classifies a stanza type tag for presentation.
type StanzaKind string

const (
	KindNone    StanzaKind = ""
	KindChorus  StanzaKind = "chorus"
	KindBridge  StanzaKind = "bridge"
	KindIntro   StanzaKind = "intro"
	KindOutro   StanzaKind = "outro"
	KindRefrain StanzaKind = "refrain"
	KindVerse   StanzaKind = "verse"
)

var versePattern = regexp.MustCompile(`^v(\d+)$`)

// KindOf maps a normalized stanza ref to its kind.
func KindOf(tag string) StanzaKind {
	switch tag {
	case "c":
		return KindChorus
	case "b":
		return KindBridge
	case "i":
		return KindIntro
	case "o":
		return KindOutro
	case "r":
		return KindRefrain
	}
	if versePattern.MatchString(tag) {
		return KindVerse
	}
	return KindNone
}

// Kind returns the stanza's kind.
func (s Stanza) Kind() StanzaKind {
	return KindOf(s.Type)
}

// Label is a human readable name for the stanza type: "Verse 2", "Chorus",
// the raw tag for unknown refs, or "" when untyped.
func (s Stanza) Label() string {
	kind := s.Kind()
	switch kind {
	case KindNone:
		return s.Type
	case KindVerse:
		return "Verse " + versePattern.FindStringSubmatch(s.Type)[1]
	default:
		return strings.ToUpper(string(kind[:1])) + string(kind[1:])
	}
}

// ItemAt returns the item at index i.
func (s *Set) ItemAt(i int) (*Item, bool) {
	if s == nil || i < 0 || i >= len(s.Items) {
		return nil, false
	}
	return &s.Items[i], true
}

// StanzaAt returns the stanza at index i.
func (it *Item) StanzaAt(i int) (*Stanza, bool) {
	if it == nil || i < 0 || i >= len(it.Stanzas) {
		return nil, false
	}
	return &it.Stanzas[i], true
}

// LineCount returns the total number of lines across all stanzas.
func (it *Item) LineCount() int {
	n := 0
	for _, s := range it.Stanzas {
		n += len(s.Lines)
	}
	return n
}
