package ui

import (
	"strings"

	"setlist/internal/content"
	"setlist/internal/nav"

	"github.com/charmbracelet/lipgloss"
)

// Options configures the presenter.
type Options struct {
	Styles   Styles
	ShowMeta bool
	WordWrap int // 0 leaves lines unwrapped
}

// rendered is one item laid out for the viewport.
type rendered struct {
	body string
	// activeRow is the first terminal row of the active line window.
	activeRow int
}

// renderItem lays out the item under the cursor. The active stanza gets a
// border and the lines [path.Line, path.Line+skip.Line) are highlighted.
func renderItem(s Styles, item *content.Item, path nav.ActivePath, skip nav.SkipSize, o Options) rendered {
	if item == nil {
		return rendered{body: s.Author.Render("(empty set)")}
	}

	var blocks []string
	row := 0
	add := func(b string) {
		blocks = append(blocks, b)
		row += lipgloss.Height(b)
	}

	if o.ShowMeta {
		if meta := renderMeta(s, item); meta != "" {
			add(meta)
			add("")
		}
	}

	out := rendered{}
	for j, st := range item.Stanzas {
		if j > 0 {
			add("")
		}
		active := j == path.Stanza
		var lines []string
		stanzaRow := row
		if label := st.Label(); label != "" {
			lines = append(lines, s.LabelFor(st.Kind()).Render(label))
			stanzaRow++
		}
		for k, text := range st.Lines {
			style := s.LineFor(st.Kind())
			if active && k >= path.Line && k < path.Line+skip.Line {
				style = s.ActiveLine
			}
			if o.WordWrap > 0 {
				style = style.Width(o.WordWrap)
			}
			if active && k == path.Line {
				out.activeRow = stanzaRow
			}
			r := style.Render(text)
			stanzaRow += lipgloss.Height(r)
			lines = append(lines, r)
		}
		frame := s.Stanza
		if active {
			frame = s.ActiveStanza
		}
		add(frame.Render(strings.Join(lines, "\n")))
	}

	out.body = strings.Join(blocks, "\n")
	return out
}

func renderMeta(s Styles, item *content.Item) string {
	var parts []string
	if item.Title != "" || item.Type != "" {
		head := s.Title.Render(item.Title)
		if item.Type != "" {
			head = lipgloss.JoinHorizontal(lipgloss.Top, head, " ", s.ItemType.Render(item.Type))
		}
		parts = append(parts, head)
	}
	if item.Author != "" {
		parts = append(parts, s.Author.Render(item.Author))
	}
	if item.Copyright != "" {
		parts = append(parts, s.Copyright.Render("© "+item.Copyright))
	}
	return strings.Join(parts, "\n")
}
