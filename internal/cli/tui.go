package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"

	"github.com/exoplaneteu/exoplaneteu/pkg/table"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseColumns are shown in the list view when the catalog has them.
var browseColumns = []string{
	table.NameColumn,
	"mass",
	"radius",
	"orbital_period",
	"discovered",
	"star_name",
}

// =============================================================================
// PlanetListModel - Interactive planet browser
// =============================================================================

// PlanetListModel is the bubbletea model for browsing the catalog.
// Enter toggles a detail view of the planet under the cursor.
type PlanetListModel struct {
	Table   *table.Table
	Columns []string
	Cursor  int
	Height  int
	Offset  int
	Detail  bool
}

// NewPlanetListModel creates a browser over t.
func NewPlanetListModel(t *table.Table) PlanetListModel {
	var cols []string
	for _, name := range browseColumns {
		if t.HasColumn(name) {
			cols = append(cols, name)
		}
	}
	return PlanetListModel{
		Table:   t,
		Columns: cols,
		Height:  15,
	}
}

func (m PlanetListModel) Init() tea.Cmd {
	return nil
}

func (m PlanetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	n := m.Table.RowCount()
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.Detail {
				m.Detail = false
				return m, nil
			}
			return m, tea.Quit
		case "enter":
			if n > 0 {
				m.Detail = !m.Detail
			}
		case "up", "k":
			m.moveTo(m.Cursor - 1)
		case "down", "j":
			m.moveTo(m.Cursor + 1)
		case "pgup":
			m.moveTo(m.Cursor - m.Height)
		case "pgdown":
			m.moveTo(m.Cursor + m.Height)
		case "home", "g":
			m.moveTo(0)
		case "end", "G":
			m.moveTo(n - 1)
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
		m.moveTo(m.Cursor)
	}
	return m, nil
}

// moveTo places the cursor on row i, clamped to the table, and scrolls it
// into view.
func (m *PlanetListModel) moveTo(i int) {
	n := m.Table.RowCount()
	if n == 0 {
		m.Cursor, m.Offset = 0, 0
		return
	}
	m.Cursor = min(max(i, 0), n-1)
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m PlanetListModel) View() string {
	if m.Detail {
		return m.detailView()
	}

	var b strings.Builder

	b.WriteString(StyleTitle.Render("exoplanet.eu catalog"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ details  q quit"))
	b.WriteString("\n\n")

	n := m.Table.RowCount()
	if n == 0 {
		b.WriteString(listDimStyle.Render("  no planets"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, n)
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		row, err := m.Table.GetRow(i)
		if err != nil {
			break
		}
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		cells := []string{cursor}
		for _, name := range m.Columns {
			v, _ := row.Get(name)
			cells = append(cells, cellText(v))
		}
		rows = append(rows, cells)
	}

	headers := append([]string{""}, m.Columns...)
	t := lgtable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return styleHeader
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			if col == 1 {
				return listNormalStyle
			}
			return listDimStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%s/%s]", formatCount(m.Cursor+1), formatCount(n))))

	return b.String()
}

func (m PlanetListModel) detailView() string {
	var b strings.Builder

	row, err := m.Table.GetRow(m.Cursor)
	if err != nil {
		return err.Error()
	}
	name, _ := row.Get(table.NameColumn)
	b.WriteString(StyleTitle.Render(name.String()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("esc back  q quit"))
	b.WriteString("\n\n")

	width := 0
	for _, n := range row.Names() {
		width = max(width, len(n))
	}
	for i, n := range row.Names() {
		v := row.Values()[i]
		if v.IsNaN() || (v.Kind == table.Text && v.Text == "") {
			continue
		}
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  %-*s  ", width, n)))
		b.WriteString(listNormalStyle.Render(v.String()))
		b.WriteString("\n")
	}
	return b.String()
}

// cellText renders a list cell; missing values show as a dash.
func cellText(v table.Value) string {
	if v.IsNaN() || (v.Kind == table.Text && v.Text == "") {
		return "—"
	}
	return v.String()
}
