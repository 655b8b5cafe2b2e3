package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/effortlog/internal/cli/formatter"
	"github.com/alexanderramin/effortlog/internal/domain"
	"github.com/alexanderramin/effortlog/internal/report"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// browseKeyMap holds the bindings of the report browser.
type browseKeyMap struct {
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

func defaultBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next report")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "previous report")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// browseModel shows one report at a time in a scrollable viewport.
type browseModel struct {
	summary *report.Summary
	names   []domain.ReportName
	current int
	keys    browseKeyMap

	vp       viewport.Model
	ready    bool
	width    int
	quitting bool
}

func newBrowseModel(summary *report.Summary) browseModel {
	vp := viewport.New(0, 0)
	vp.KeyMap = browseViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return browseModel{
		summary: summary,
		names:   domain.AllReportNames,
		keys:    defaultBrowseKeyMap(),
		vp:      vp,
	}
}

// browseViewportKeyMap leaves letter keys free for report navigation.
func browseViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown", " ")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
}

// header and footer lines around the viewport.
const browseChromeHeight = 4

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-browseChromeHeight, 1)
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.current = (m.current + 1) % len(m.names)
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.current = (m.current - 1 + len(m.names)) % len(m.names)
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// refresh renders the current report into the viewport.
func (m *browseModel) refresh() {
	content, err := formatter.FormatReport(m.summary, m.names[m.current])
	if err != nil {
		content = formatter.StyleRed.Render(err.Error())
	}
	m.vp.SetContent(content)
	m.vp.GotoTop()
}

func (m browseModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.tabs())
	b.WriteString("\n\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m browseModel) tabs() string {
	name := m.names[m.current]
	return fmt.Sprintf("%s %s",
		formatter.StyleHeader.Render(formatter.ReportTitle(name, m.summary.Years())),
		formatter.Dim(fmt.Sprintf("(%d/%d)", m.current+1, len(m.names))),
	)
}

func (m browseModel) footer() string {
	help := formatter.Dim("tab/shift+tab switch report · ↑/↓ scroll · q quit")
	warnings := ""
	if n := len(m.summary.Warnings()); n > 0 {
		warnings = formatter.StyleYellow.Render(fmt.Sprintf(" %d warnings", n))
	}
	return help + warnings + " " + scrollIndicator(m.vp)
}

// scrollIndicator returns a dim scroll position string for the status bar.
func scrollIndicator(vp viewport.Model) string {
	if vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	pct := int(vp.ScrollPercent() * 100)
	return formatter.Dim(fmt.Sprintf("[%d%%]", pct))
}

// currentReport returns the name of the report on screen.
func (m browseModel) currentReport() domain.ReportName {
	return m.names[m.current]
}
