// Package content decodes set documents and normalizes every item's content
// into an ordered list of stanzas.
//
// A set document is JSON or YAML (optionally xz-compressed) shaped as
//
//	{title?, items: [{title?, author?, copyright?, type?, content, order?}]}
//
// where content is a newline-delimited string, a mapping of stanza refs to
// stanza bodies, or a list of stanza bodies. Shape detection happens once at
// decode time; the normalized Set is read-only afterwards.
package content
