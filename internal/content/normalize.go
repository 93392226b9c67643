package content

import (
	"strings"
)

// NormalizeStanza turns a stanza body into a Stanza. Text is split on
// newlines (a trailing carriage return on each line is dropped); a line list
// is copied as-is.
func NormalizeStanza(src StanzaSource, typeTag string) Stanza {
	var lines []string
	if src.IsText {
		lines = strings.Split(src.Text, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimSuffix(line, "\r")
		}
	} else {
		lines = make([]string, len(src.Lines))
		copy(lines, src.Lines)
	}
	return Stanza{Lines: lines, Type: typeTag}
}

// NormalizeStanzaRef lowercases a stanza ref and rewrites bare verse numbers:
// "2" becomes "v2".
func NormalizeStanzaRef(ref string) string {
	ref = strings.ToLower(ref)
	if isDigits(ref) {
		return "v" + ref
	}
	return ref
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// NormalizeItemStanzas converts the raw content of the item at index into its
// ordered stanzas. The returned slice is never nil.
func NormalizeItemStanzas(index int, item RawItem) ([]Stanza, error) {
	c := item.Content
	switch c.Shape {
	case ShapeText:
		return []Stanza{NormalizeStanza(TextSource(c.Text), "")}, nil

	case ShapeMapping:
		refs := make([]string, 0, len(c.Sections))
		bodies := make(map[string]StanzaSource, len(c.Sections))
		for _, sec := range c.Sections {
			ref := NormalizeStanzaRef(sec.Ref)
			if _, seen := bodies[ref]; !seen {
				refs = append(refs, ref)
			}
			bodies[ref] = sec.Source
		}

		order := refs
		if item.Order.Present {
			if item.Order.Found != "" {
				return nil, &ShapeError{Item: index, Title: item.Title, Field: "order", Found: item.Order.Found, err: ErrInvalidOrder}
			}
			order = strings.Fields(item.Order.Text)
			for i, ref := range order {
				order[i] = NormalizeStanzaRef(ref)
			}
		}

		stanzas := make([]Stanza, 0, len(order))
		for _, ref := range order {
			src, ok := bodies[ref]
			if !ok || src.Null {
				continue
			}
			stanzas = append(stanzas, NormalizeStanza(src, ref))
		}
		return stanzas, nil

	case ShapeSequence:
		stanzas := make([]Stanza, 0, len(c.Stanzas))
		for _, src := range c.Stanzas {
			stanzas = append(stanzas, NormalizeStanza(src, ""))
		}
		return stanzas, nil

	default:
		found := c.Found
		if c.Shape == ShapeMissing {
			found = "no content"
		}
		return nil, &ShapeError{Item: index, Title: item.Title, Field: "content", Found: found, err: ErrInvalidContent}
	}
}

// NormalizeSet normalizes every item of doc. The first failing item aborts
// the whole set; there is no partial result.
func NormalizeSet(doc Document) (*Set, error) {
	set := &Set{
		Title: doc.Title,
		Items: make([]Item, 0, len(doc.Items)),
	}
	for i, raw := range doc.Items {
		stanzas, err := NormalizeItemStanzas(i, raw)
		if err != nil {
			return nil, err
		}
		set.Items = append(set.Items, Item{
			Title:     raw.Title,
			Author:    raw.Author,
			Copyright: raw.Copyright,
			Type:      raw.Type,
			Stanzas:   stanzas,
		})
	}
	return set, nil
}
