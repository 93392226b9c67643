package ui

import (
	"fmt"
	"strings"

	"setlist/internal/logging"
	"setlist/internal/nav"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// SourceChangedMsg reports that the set document changed on disk. The
// presenter keeps showing the set it loaded at startup.
type SourceChangedMsg struct {
	Path    string
	Removed bool
}

// Model is the presenter: the active item in a scrolling viewport between a
// position header and a help footer.
type Model struct {
	engine *nav.Engine
	opts   Options
	keys   KeyMap
	help   help.Model

	viewport  viewport.Model
	activeRow int

	width  int
	height int
	status string
}

// New returns a presenter driving engine.
func New(engine *nav.Engine, opts Options) Model {
	vp := viewport.New(0, 0)
	// Arrow and page keys belong to navigation; the viewport only scrolls
	// with the mouse wheel or to follow the cursor.
	vp.KeyMap = viewport.KeyMap{}

	m := Model{
		engine:   engine,
		opts:     opts,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		viewport: vp,
	}
	m.refresh()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case SourceChangedMsg:
		if msg.Removed {
			m.status = m.opts.Styles.Error.Render(fmt.Sprintf("%s was removed; showing the copy loaded at startup", msg.Path))
		} else {
			m.status = m.opts.Styles.Warning.Render(fmt.Sprintf("%s changed on disk; restart to reload", msg.Path))
		}
		logging.UI("source change reported: %s removed=%v", msg.Path, msg.Removed)
		m.setSize(m.width, m.height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Copy):
			m.copyItem()
			m.setSize(m.width, m.height)
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.setSize(m.width, m.height)
			return m, nil
		}
		for _, b := range m.keys.navigation() {
			if key.Matches(msg, b.key) {
				m.navigate(b.cmd)
				return m, nil
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// Path returns the engine cursor.
func (m Model) Path() nav.ActivePath {
	return m.engine.Path()
}

// Status returns the current status line, if any.
func (m Model) Status() string {
	return m.status
}

func (m *Model) navigate(c nav.Command) {
	res := m.engine.Apply(c)
	logging.UIDebug("key %s -> {%s} committed=%v", c, m.engine.Path(), res.Committed)
	if !res.Committed {
		return
	}
	if res.ItemChanged {
		m.viewport.GotoTop()
	}
	m.refresh()
}

// copyItem puts the active item's lyrics on the clipboard, one blank line
// between stanzas.
func (m *Model) copyItem() {
	item, ok := m.engine.Set().ItemAt(m.engine.Path().Item)
	if !ok {
		return
	}
	stanzas := make([]string, 0, len(item.Stanzas))
	for _, st := range item.Stanzas {
		stanzas = append(stanzas, strings.Join(st.Lines, "\n"))
	}
	if err := clipboardWriteAll(strings.Join(stanzas, "\n\n")); err != nil {
		logging.UIDebug("clipboard write failed: %v", err)
		m.status = m.opts.Styles.Error.Render("Failed to copy item to clipboard")
		return
	}
	m.status = m.opts.Styles.Info.Render(fmt.Sprintf("Copied %q to clipboard", item.Title))
}

func (m *Model) refresh() {
	item, _ := m.engine.Set().ItemAt(m.engine.Path().Item)
	r := renderItem(m.opts.Styles, item, m.engine.Path(), m.engine.SkipSize(), m.opts)
	m.viewport.SetContent(r.body)
	m.activeRow = r.activeRow
	m.follow()
}

// follow scrolls just enough to keep the active line visible.
func (m *Model) follow() {
	h := m.viewport.Height
	if h <= 0 {
		return
	}
	top := m.viewport.YOffset
	switch {
	case m.activeRow < top:
		m.viewport.SetYOffset(m.activeRow)
	case m.activeRow >= top+h:
		// Show the whole active window when it fits, else pin its first line.
		m.viewport.SetYOffset(min(m.activeRow-h+m.engine.SkipSize().Line, m.activeRow))
	}
}

func (m *Model) setSize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	bodyHeight := height - lipgloss.Height(m.headerView()) - lipgloss.Height(m.footerView())
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.viewport.Width = width
	m.viewport.Height = bodyHeight
	m.follow()
}

func (m Model) headerView() string {
	set := m.engine.Set()
	p := m.engine.Path()

	title := set.Title
	if title == "" {
		title = "setlist"
	}
	text := title
	if n := len(set.Items); n > 0 {
		text = fmt.Sprintf("%s  ·  item %d/%d", title, p.Item+1, n)
		if item, ok := set.ItemAt(p.Item); ok {
			if st, ok := item.StanzaAt(p.Stanza); ok && st.Label() != "" {
				text += "  ·  " + st.Label()
			}
		}
	}
	if m.width <= 0 {
		return m.opts.Styles.Header.Render(text)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.opts.Styles.Header.Width(m.width).Render(text),
		m.opts.Styles.RenderDivider(m.width))
}

func (m Model) footerView() string {
	footer := m.opts.Styles.Footer.Render(m.help.View(m.keys))
	if m.status == "" {
		return footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.opts.Styles.Footer.Render(m.status), footer)
}

// View renders the model.
func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), m.viewport.View(), m.footerView())
}
