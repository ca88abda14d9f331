package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cinderc/cinder/ir/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browserModel struct {
	all        []types.Type
	filtered   []types.Type
	filter     textinput.Model
	selected   int
	filtering  bool
	showDetail bool
}

func newBrowserModel() *browserModel {
	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.Prompt = "/ "
	ti.Width = 20

	all := types.Catalog()
	return &browserModel{
		all:      all,
		filtered: all,
		filter:   ti,
	}
}

func (m *browserModel) Init() tea.Cmd {
	return nil
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if m.filtering {
			switch key.String() {
			case "enter", "esc":
				m.filtering = false
				m.filter.Blur()
				if key.String() == "esc" {
					m.filter.SetValue("")
					m.applyFilter()
				}
				return m, nil
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.applyFilter()
				return m, cmd
			}
		}

		switch key.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.selected < len(m.filtered)-1 {
				m.selected++
			}

		case "/":
			m.filtering = true
			m.filter.Focus()

		case "enter":
			m.showDetail = !m.showDetail

		case "esc":
			if m.showDetail {
				m.showDetail = false
			} else if m.filter.Value() != "" {
				m.filter.SetValue("")
				m.applyFilter()
			}
		}
	}
	return m, nil
}

func (m *browserModel) applyFilter() {
	q := strings.ToLower(m.filter.Value())
	if q == "" {
		m.filtered = m.all
	} else {
		m.filtered = nil
		for _, t := range m.all {
			if strings.Contains(t.String(), q) {
				m.filtered = append(m.filtered, t)
			}
		}
	}
	if m.selected >= len(m.filtered) {
		m.selected = 0
	}
}

func (m *browserModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("IR Type Catalog"))
	b.WriteString("\n\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	if len(m.filtered) == 0 {
		b.WriteString(helpStyle.Render("no types match"))
		b.WriteString("\n")
	}

	for i, t := range m.filtered {
		line := t.String()
		if !t.IsScalar() {
			line += " " + typeStyle.Render("("+t.LaneType().String()+" lanes)")
		}
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + t.String()))
			if !t.IsScalar() {
				b.WriteString(" " + typeStyle.Render("("+t.LaneType().String()+" lanes)"))
			}
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.showDetail && m.selected < len(m.filtered) {
		b.WriteString("\n")
		b.WriteString(detailStyle.Render(describe(m.filtered[m.selected])))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • enter details • / filter • q quit"))
	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newBrowserModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
