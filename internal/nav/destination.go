package nav

import (
	"strconv"
	"strings"
)

type destKind int

const (
	destUnset destKind = iota
	destFirst
	destLast
	destPrevious
	destNext
	destIndex
	destUnresolved
)

// Destination is where a GoTo should move a level: a symbolic position or an
// absolute index. The zero value is Unset, which as a child destination means
// "pick by direction".
type Destination struct {
	kind  destKind
	index int
	raw   string
}

var (
	Unset    = Destination{}
	First    = Destination{kind: destFirst}
	Last     = Destination{kind: destLast}
	Previous = Destination{kind: destPrevious}
	Next     = Destination{kind: destNext}
)

// Index is an absolute destination.
func Index(n int) Destination {
	return Destination{kind: destIndex, index: n}
}

// ParseDestination parses first, last, previous (prev), next or an integer.
// The empty string is Unset. Anything else yields a destination that GoTo
// ignores.
func ParseDestination(s string) Destination {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return Unset
	case "first":
		return First
	case "last":
		return Last
	case "previous", "prev":
		return Previous
	case "next":
		return Next
	}
	if n, err := strconv.Atoi(s); err == nil {
		return Index(n)
	}
	return Destination{kind: destUnresolved, raw: s}
}

// IsSet reports whether d is anything but Unset.
func (d Destination) IsSet() bool {
	return d.kind != destUnset
}

// Resolvable reports whether GoTo can turn d into an index.
func (d Destination) Resolvable() bool {
	return d.kind != destUnset && d.kind != destUnresolved
}

func (d Destination) String() string {
	switch d.kind {
	case destUnset:
		return ""
	case destFirst:
		return "first"
	case destLast:
		return "last"
	case destPrevious:
		return "previous"
	case destNext:
		return "next"
	case destIndex:
		return strconv.Itoa(d.index)
	default:
		return d.raw
	}
}
