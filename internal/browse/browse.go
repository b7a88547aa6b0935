// Package browse renders the element table, either as plain text or as a
// scrollable Bubble Tea view.
package browse

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/elemquiz/internal/generator"
	"github.com/verte-zerg/elemquiz/internal/model"
	"github.com/verte-zerg/elemquiz/internal/stats"
)

const ruleWidth = 70

// Headers are the column titles of the element table.
var Headers = []string{"#", "Symbol", "Name", "Valence", "Discovered"}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	ancientMark = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// Row returns the table cells for one element.
func Row(e model.Element) []string {
	return []string{
		strconv.Itoa(e.Number),
		e.Symbol,
		e.Name,
		strconv.Itoa(e.Valence),
		e.Discovered.String(),
	}
}

// RenderPlain writes the element table as aligned text.
func RenderPlain(w io.Writer, elems []model.Element) error {
	rows := make([][]string, len(elems))
	for i, e := range elems {
		rows[i] = Row(e)
	}
	rule := strings.Repeat("=", ruleWidth)
	lines := []string{"", rule, "PERIODIC TABLE OF ELEMENTS", rule}
	formatted := stats.FormatTable(Headers, rows, map[int]bool{0: true, 3: true})
	if len(formatted) > 0 {
		lines = append(lines, formatted[0], strings.Repeat("-", ruleWidth))
		lines = append(lines, formatted[1:]...)
	}
	lines = append(lines, "", fmt.Sprintf("Total: %d elements", len(elems)))
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Model implements the Bubble Tea element browser.
type Model struct {
	elems []model.Element
	table table.Model

	width  int
	height int
}

// NewModel constructs a browser over elems.
func NewModel(elems []model.Element) *Model {
	columns := []table.Column{
		{Title: Headers[0], Width: 4},
		{Title: Headers[1], Width: 6},
		{Title: Headers[2], Width: 15},
		{Title: Headers[3], Width: 8},
		{Title: Headers[4], Width: 10},
	}
	rows := make([]table.Row, len(elems))
	for i, e := range elems {
		rows[i] = table.Row(Row(e))
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(20),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#F0F0F0")).
		Background(lipgloss.Color("#C89A3A")).
		Bold(false)
	t.SetStyles(styles)
	return &Model{elems: elems, table: t}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Title, blank line, detail line and footer.
		if h := m.height - 6; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("PERIODIC TABLE OF ELEMENTS"))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.detail())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(fmt.Sprintf("Total: %d elements  ↑/↓ scroll · q quit", len(m.elems))))
	return b.String()
}

func (m *Model) detail() string {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.elems) {
		return ""
	}
	e := m.elems[idx]
	weight := "drawn at base weight"
	if generator.BaseWeight(e) > 1 {
		weight = "drawn twice as often"
	}
	line := detailStyle.Render(fmt.Sprintf("%s (%s), atomic number %d, %d valence electron(s)", e.Name, e.Symbol, e.Number, e.Valence))
	return line + "  " + ancientMark.Render(fmt.Sprintf("discovered %s, %s", e.Discovered, weight))
}

// Run starts the interactive browser on the terminal.
func Run(elems []model.Element) error {
	program := tea.NewProgram(NewModel(elems), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}
