package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leadline-crm/leadline/internal/filter"
	"github.com/leadline-crm/leadline/internal/model"
	"github.com/leadline-crm/leadline/internal/tui/themes"
)

// EditFollowUpMsg asks the root model to open the follow-up form.
type EditFollowUpMsg struct {
	FollowUp model.FollowUp
	IsNew    bool
}

// FollowUpListModel shows scheduled follow-ups as a filterable table.
type FollowUpListModel struct {
	theme       themes.Theme
	table       table.Model
	search      textinput.Model
	raw         []model.FollowUp
	criteria    filter.Criteria
	searching   bool
	stale       bool
	statusIdx   int
	employeeIdx int
	width       int
	height      int
}

// NewFollowUpList creates an empty follow-up list.
func NewFollowUpList(theme themes.Theme) FollowUpListModel {
	search := textinput.New()
	search.Placeholder = "lead, feedback, or employee"
	search.Prompt = "Search: "
	search.CharLimit = 100

	columns := []table.Column{
		{Title: "Lead", Width: 20},
		{Title: "Mobile", Width: 14},
		{Title: "Status", Width: 16},
		{Title: "Followed By", Width: 16},
		{Title: "Next", Width: 16},
		{Title: "Feedback", Width: 24},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = theme.Selected
	t.SetStyles(s)

	return FollowUpListModel{
		theme:  theme,
		table:  t,
		search: search,
		width:  80,
		height: 24,
	}
}

// SetFollowUps replaces the raw collection.
func (m FollowUpListModel) SetFollowUps(followUps []model.FollowUp, stale bool) FollowUpListModel {
	m.raw = followUps
	m.stale = stale
	m.applyFilter()
	return m
}

// UpsertFollowUp patches a saved follow-up into the raw collection.
func (m FollowUpListModel) UpsertFollowUp(fu model.FollowUp) FollowUpListModel {
	replaced := false
	for i, f := range m.raw {
		if f.ID == fu.ID {
			m.raw[i] = fu
			replaced = true
			break
		}
	}
	if !replaced {
		m.raw = append(m.raw, fu)
	}
	m.applyFilter()
	return m
}

// SelectedFollowUp returns the follow-up under the cursor.
func (m FollowUpListModel) SelectedFollowUp() (model.FollowUp, bool) {
	visible := filter.FollowUps(m.raw, m.criteria)
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(visible) {
		return model.FollowUp{}, false
	}
	return visible[idx], true
}

// Resize updates the component dimensions.
func (m FollowUpListModel) Resize(width, height int) FollowUpListModel {
	m.width = width
	m.height = height
	tableHeight := height - 8
	if tableHeight < 4 {
		tableHeight = 4
	}
	m.table.SetHeight(tableHeight)
	return m
}

// Update handles messages.
func (m FollowUpListModel) Update(msg tea.Msg) (FollowUpListModel, tea.Cmd) {
	if m.searching {
		return m.updateSearching(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "/":
			m.searching = true
			m.search.Focus()
			return m, textinput.Blink

		case "s":
			m.statusIdx = (m.statusIdx + 1) % (len(model.AllStatuses) + 1)
			if m.statusIdx == 0 {
				m.criteria.Status = ""
			} else {
				m.criteria.Status = string(model.AllStatuses[m.statusIdx-1])
			}
			m.applyFilter()
			return m, nil

		case "f":
			m.employeeIdx, m.criteria.Employee = cycleFacet(m.employeeIdx, filter.FollowUpEmployees(m.raw))
			m.applyFilter()
			return m, nil

		case "c":
			m.criteria = filter.Criteria{}
			m.statusIdx, m.employeeIdx = 0, 0
			m.search.SetValue("")
			m.applyFilter()
			return m, nil

		case "a":
			return m, func() tea.Msg { return EditFollowUpMsg{IsNew: true} }

		case "enter", "e":
			if fu, ok := m.SelectedFollowUp(); ok {
				return m, func() tea.Msg { return EditFollowUpMsg{FollowUp: fu} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m FollowUpListModel) updateSearching(msg tea.Msg) (FollowUpListModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", "esc":
			m.searching = false
			m.search.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.criteria.Search = m.search.Value()
	m.applyFilter()
	return m, cmd
}

func (m *FollowUpListModel) applyFilter() {
	visible := filter.FollowUps(m.raw, m.criteria)
	rows := make([]table.Row, len(visible))
	for i, f := range visible {
		next := f.NextFollowUpDate
		if f.NextFollowUpTime != "" {
			next += " " + f.NextFollowUpTime
		}
		rows[i] = table.Row{f.Lead.Name, f.Lead.Mobile, string(f.Status), f.FollowedBy, next, f.Feedback}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

// View renders the list.
func (m FollowUpListModel) View() string {
	title := m.theme.Title.Render("Follow-ups")
	if m.stale {
		title += "  " + m.theme.StatusWarning.Render("(cached)")
	}

	var filterLine string
	if m.criteria.IsZero() {
		filterLine = lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render("/ search  s status  f followed-by  a add  enter edit")
	} else {
		filterLine = m.theme.Highlighted.Render(describeCriteria(m.criteria)) +
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render("  c clear")
	}

	count := lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render(fmt.Sprintf("%d of %d follow-ups", len(filter.FollowUps(m.raw, m.criteria)), len(m.raw)))

	sections := []string{title}
	if m.searching || m.search.Value() != "" {
		sections = append(sections, m.search.View())
	}
	sections = append(sections, filterLine, m.table.View(), count)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Searching reports whether the search input currently owns the
// keyboard.
func (m FollowUpListModel) Searching() bool {
	return m.searching
}
