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

// EditLeadMsg asks the root model to open the lead form.
type EditLeadMsg struct {
	Lead  model.Lead
	IsNew bool
}

// DeleteLeadRequestMsg asks the root model to delete a confirmed lead.
type DeleteLeadRequestMsg struct {
	ID   string
	Name string
}

// LeadListModel shows the lead pipeline as a filterable table. The raw
// collection is kept unfiltered; every view is derived from it on
// demand so clearing filters always restores the full set.
type LeadListModel struct {
	theme       themes.Theme
	table       table.Model
	search      textinput.Model
	raw         []model.Lead
	criteria    filter.Criteria
	confirm     *ConfirmModel
	pendingID   string
	searching   bool
	stale       bool
	statusIdx   int
	branchIdx   int
	sourceIdx   int
	employeeIdx int
	width       int
	height      int
}

// NewLeadList creates an empty lead list.
func NewLeadList(theme themes.Theme) LeadListModel {
	search := textinput.New()
	search.Placeholder = "name, mobile, or email"
	search.Prompt = "Search: "
	search.CharLimit = 100

	columns := []table.Column{
		{Title: "Name", Width: 22},
		{Title: "Mobile", Width: 14},
		{Title: "Status", Width: 16},
		{Title: "Branch", Width: 14},
		{Title: "Source", Width: 14},
		{Title: "Handled By", Width: 16},
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

	return LeadListModel{
		theme:  theme,
		table:  t,
		search: search,
		width:  80,
		height: 24,
	}
}

// SetLeads replaces the raw collection and rebuilds the visible rows.
// stale marks the data as a cached snapshot rather than a live fetch.
func (m LeadListModel) SetLeads(leads []model.Lead, stale bool) LeadListModel {
	m.raw = leads
	m.stale = stale
	m.applyFilter()
	return m
}

// RemoveLead drops a lead from the raw collection after the backend
// confirmed the delete.
func (m LeadListModel) RemoveLead(id string) LeadListModel {
	kept := make([]model.Lead, 0, len(m.raw))
	for _, l := range m.raw {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	m.raw = kept
	m.applyFilter()
	return m
}

// UpsertLead patches a saved lead into the raw collection, appending
// when it is new.
func (m LeadListModel) UpsertLead(lead model.Lead) LeadListModel {
	replaced := false
	for i, l := range m.raw {
		if l.ID == lead.ID {
			m.raw[i] = lead
			replaced = true
			break
		}
	}
	if !replaced {
		m.raw = append(m.raw, lead)
	}
	m.applyFilter()
	return m
}

// SelectedLead returns the lead under the cursor.
func (m LeadListModel) SelectedLead() (model.Lead, bool) {
	visible := filter.Leads(m.raw, m.criteria)
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(visible) {
		return model.Lead{}, false
	}
	return visible[idx], true
}

// Resize updates the component dimensions.
func (m LeadListModel) Resize(width, height int) LeadListModel {
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
func (m LeadListModel) Update(msg tea.Msg) (LeadListModel, tea.Cmd) {
	if m.confirm != nil {
		return m.updateConfirming(msg)
	}
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

		case "b":
			m.branchIdx, m.criteria.Branch = cycleFacet(m.branchIdx, filter.LeadBranches(m.raw))
			m.applyFilter()
			return m, nil

		case "o":
			m.sourceIdx, m.criteria.Source = cycleFacet(m.sourceIdx, filter.LeadSources(m.raw))
			m.applyFilter()
			return m, nil

		case "c":
			m.criteria = filter.Criteria{}
			m.statusIdx, m.branchIdx, m.sourceIdx, m.employeeIdx = 0, 0, 0, 0
			m.search.SetValue("")
			m.applyFilter()
			return m, nil

		case "a":
			return m, func() tea.Msg { return EditLeadMsg{IsNew: true} }

		case "enter", "e":
			if lead, ok := m.SelectedLead(); ok {
				return m, func() tea.Msg { return EditLeadMsg{Lead: lead} }
			}
			return m, nil

		case "d":
			if lead, ok := m.SelectedLead(); ok {
				confirm := NewConfirm(fmt.Sprintf("Delete lead %q?", lead.Name), m.theme)
				confirm.width = m.width
				confirm.height = m.height
				m.confirm = &confirm
				m.pendingID = lead.ID
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m LeadListModel) updateConfirming(msg tea.Msg) (LeadListModel, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm

	if res, ok := collectConfirmResult(cmd); ok {
		m.confirm = nil
		id := m.pendingID
		m.pendingID = ""
		if res.Accepted {
			var name string
			for _, l := range m.raw {
				if l.ID == id {
					name = l.Name
					break
				}
			}
			return m, func() tea.Msg { return DeleteLeadRequestMsg{ID: id, Name: name} }
		}
		return m, nil
	}
	return m, cmd
}

// collectConfirmResult inspects a command for an immediate confirm
// answer. Confirm commands are synchronous closures, so running one
// here is safe.
func collectConfirmResult(cmd tea.Cmd) (ConfirmResultMsg, bool) {
	if cmd == nil {
		return ConfirmResultMsg{}, false
	}
	if res, ok := cmd().(ConfirmResultMsg); ok {
		return res, true
	}
	return ConfirmResultMsg{}, false
}

func (m LeadListModel) updateSearching(msg tea.Msg) (LeadListModel, tea.Cmd) {
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
	// Filtering re-derives the view on every keystroke; the raw
	// collection never changes here.
	m.criteria.Search = m.search.Value()
	m.applyFilter()
	return m, cmd
}

// applyFilter re-derives visible rows from the raw collection.
func (m *LeadListModel) applyFilter() {
	visible := filter.Leads(m.raw, m.criteria)
	rows := make([]table.Row, len(visible))
	for i, l := range visible {
		rows[i] = table.Row{l.Name, l.Mobile, string(l.Status), l.Branch, l.LeadSource, l.HandledBy}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

// View renders the list.
func (m LeadListModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	title := m.theme.Title.Render("Leads")
	if m.stale {
		title += "  " + m.theme.StatusWarning.Render("(cached)")
	}

	var filterLine string
	if m.criteria.IsZero() {
		filterLine = lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render("/ search  s status  b branch  o source  a add  d delete")
	} else {
		filterLine = m.theme.Highlighted.Render(describeCriteria(m.criteria)) +
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render("  c clear")
	}

	count := lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render(fmt.Sprintf("%d of %d leads", len(filter.Leads(m.raw, m.criteria)), len(m.raw)))

	sections := []string{title}
	if m.searching || m.search.Value() != "" {
		sections = append(sections, m.search.View())
	}
	sections = append(sections, filterLine, m.table.View(), count)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// cycleFacet advances through the facet options, returning to "all"
// after the last value.
func cycleFacet(idx int, options []string) (int, string) {
	if len(options) == 0 {
		return 0, ""
	}
	idx = (idx + 1) % (len(options) + 1)
	if idx == 0 {
		return 0, ""
	}
	return idx, options[idx-1]
}

func describeCriteria(c filter.Criteria) string {
	out := ""
	add := func(label, value string) {
		if value == "" {
			return
		}
		if out != "" {
			out += "  "
		}
		out += label + ": " + value
	}
	add("search", c.Search)
	add("status", c.Status)
	add("branch", c.Branch)
	add("source", c.Source)
	add("employee", c.Employee)
	return out
}

// Searching reports whether the search input currently owns the
// keyboard, so the root model leaves those keys alone.
func (m LeadListModel) Searching() bool {
	return m.searching || m.confirm != nil
}
