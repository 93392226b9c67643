package ui

import (
	"fmt"
	"strings"

	"setlist/internal/content"

	"github.com/charmbracelet/glamour"
)

// Markdown writes the normalized set as a markdown document: one section per
// item, one paragraph per stanza with hard line breaks.
func Markdown(set *content.Set) string {
	var b strings.Builder
	if set.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", set.Title)
	}
	for i, item := range set.Items {
		title := item.Title
		if title == "" {
			title = fmt.Sprintf("Item %d", i+1)
		}
		fmt.Fprintf(&b, "## %s\n\n", title)

		var meta []string
		if item.Author != "" {
			meta = append(meta, "*"+item.Author+"*")
		}
		if item.Type != "" {
			meta = append(meta, "`"+item.Type+"`")
		}
		if item.Copyright != "" {
			meta = append(meta, "© "+item.Copyright)
		}
		if len(meta) > 0 {
			b.WriteString(strings.Join(meta, " · ") + "\n\n")
		}

		for _, st := range item.Stanzas {
			if label := st.Label(); label != "" {
				fmt.Fprintf(&b, "**%s**\n\n", label)
			}
			lines := make([]string, len(st.Lines))
			for k, line := range st.Lines {
				lines[k] = escapeLine(line)
			}
			// Two trailing spaces keep each lyric line on its own row.
			b.WriteString(strings.Join(lines, "  \n") + "\n\n")
		}
	}
	return b.String()
}

// escapeLine backslash-escapes a leading block marker so a lyric line stays
// paragraph text. Leading indentation is dropped.
func escapeLine(line string) string {
	body := strings.TrimLeft(line, " \t")
	if body == "" {
		return body
	}
	switch body[0] {
	case '#', '>', '-', '*', '+', '=', '`', '~', '|':
		return `\` + body
	}
	digits := len(body) - len(strings.TrimLeft(body, "0123456789"))
	if digits > 0 && digits < len(body) && (body[digits] == '.' || body[digits] == ')') {
		return body[:digits] + `\` + body[digits:]
	}
	return body
}

// NewMarkdownRenderer returns a glamour renderer for a configured theme name.
// "light", "dark" and "notty" select built-in styles; anything else detects.
func NewMarkdownRenderer(theme string, wordWrap int) (*glamour.TermRenderer, error) {
	if wordWrap <= 0 {
		wordWrap = 80
	}
	style := glamour.WithAutoStyle()
	switch theme {
	case "light", "dark", "notty":
		style = glamour.WithStylePath(theme)
	}
	return glamour.NewTermRenderer(style, glamour.WithWordWrap(wordWrap))
}

// RenderMarkdown renders the set for a terminal.
func RenderMarkdown(set *content.Set, theme string, wordWrap int) (string, error) {
	r, err := NewMarkdownRenderer(theme, wordWrap)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(Markdown(set))
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
