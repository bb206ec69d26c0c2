// Package tui implements the interactive directory browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wanderfolk/wayfarer/internal/cli"
	"github.com/wanderfolk/wayfarer/internal/directory"
	"github.com/wanderfolk/wayfarer/internal/model"
)

const maxVisible = 12

// Model holds the browser state. The search input re-filters the club
// directory on every keystroke.
type Model struct {
	search   *directory.ClubSearch
	input    textinput.Model
	lastErr  error
	results  []model.Club
	cursor   int
	width    int
	height   int
	quitting bool
}

// NewModel builds a browser over the given club search service.
func NewModel(search *directory.ClubSearch) Model {
	ti := textinput.New()
	ti.Placeholder = "Search clubs by name or description..."
	ti.Prompt = "/ "
	ti.CharLimit = 80
	ti.Focus()

	m := Model{
		search: search,
		input:  ti,
	}
	m.refilter()
	return m
}

// Run starts the browser and blocks until the user quits.
func Run(search *directory.ClubSearch) error {
	p := tea.NewProgram(NewModel(search), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case tea.KeyDown:
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refilter()
	}
	return m, cmd
}

func (m *Model) refilter() {
	results, err := m.search.Search(directory.ClubCriteria{Query: m.input.Value()})
	if err != nil {
		m.lastErr = err
		return
	}
	m.lastErr = nil
	m.results = results
	if m.cursor >= len(results) {
		m.cursor = 0
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(cli.TitleStyle.Render("Club Directory"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.lastErr != nil {
		b.WriteString(cli.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.lastErr)))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.results) == 0 {
		b.WriteString(cli.SubtleStyle.Render("No clubs match."))
		b.WriteString("\n")
	} else {
		for i, club := range m.visible() {
			b.WriteString(m.renderRow(club, m.visibleIndex(i) == m.cursor))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(cli.FilterSummary(len(m.results), activeCount(m.input.Value())))
	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render("↑/↓ navigate · type to filter · esc to quit"))
	b.WriteString("\n")

	if sel := m.selected(); sel != nil {
		b.WriteString("\n")
		b.WriteString(m.renderDetail(*sel))
	}
	return b.String()
}

// visible returns the window of results around the cursor.
func (m Model) visible() []model.Club {
	start := m.windowStart()
	end := start + maxVisible
	if end > len(m.results) {
		end = len(m.results)
	}
	return m.results[start:end]
}

func (m Model) windowStart() int {
	if m.cursor < maxVisible {
		return 0
	}
	return m.cursor - maxVisible + 1
}

func (m Model) visibleIndex(i int) int {
	return m.windowStart() + i
}

func (m Model) selected() *model.Club {
	if m.cursor < 0 || m.cursor >= len(m.results) {
		return nil
	}
	return &m.results[m.cursor]
}

func (m Model) renderRow(club model.Club, selected bool) string {
	line := fmt.Sprintf("%-28s %-14s %-10s %s",
		truncate(club.Name, 28), club.City, club.Category, cli.Rating(club.Rating))
	if selected {
		return lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.PrimaryColor).
			Render("> " + line)
	}
	return "  " + line
}

func (m Model) renderDetail(club model.Club) string {
	lines := []string{
		cli.BoldStyle.Render(club.Name),
		cli.KeyValue("Location", fmt.Sprintf("%s, %s", club.City, club.Country)),
		cli.KeyValue("Annual fee", fmt.Sprintf("$%.0f", club.AnnualFeeUSD)),
		cli.KeyValue("Waitlist", fmt.Sprintf("%.0f months", club.WaitlistMonths)),
		cli.KeyValue("Amenities", strings.Join(club.Amenities, ", ")),
		cli.SubtleStyle.Render(club.Description),
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cli.SubtleColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func activeCount(query string) int {
	if strings.TrimSpace(query) == "" {
		return 0
	}
	return 1
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
