package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leadline-crm/leadline/internal/model"
	"github.com/leadline-crm/leadline/internal/tui/themes"
)

// FollowUpSubmitMsg asks the root model to persist a follow-up.
type FollowUpSubmitMsg struct {
	FollowUp model.FollowUp
	IsNew    bool
}

// Positions of the follow-up form fields, top to bottom.
const (
	fuFieldLead = iota
	fuFieldDate
	fuFieldTime
	fuFieldFollowedBy
	fuFieldStatus
	fuFieldFeedback
	fuFieldNextDate
	fuFieldNextTime
	fuFieldCount
)

// FollowUpFormModel edits a single follow-up. Selecting a terminal
// status hides the next-follow-up fields and clears them on save.
type FollowUpFormModel struct {
	theme    themes.Theme
	followUp model.FollowUp
	isNew    bool
	leads    []model.Lead

	lead       selectField
	date       textinput.Model
	timeOfDay  textinput.Model
	followedBy selectField
	status     selectField
	feedback   textinput.Model
	nextDate   textinput.Model
	nextTime   textinput.Model

	focus   int
	errText string
	width   int
	height  int
}

// NewFollowUpForm builds a form prefilled from fu. The lead selector is
// only active for new follow-ups; an existing one keeps its lead.
func NewFollowUpForm(fu model.FollowUp, isNew bool, leads []model.Lead, employees []model.Employee, theme themes.Theme) FollowUpFormModel {
	leadOptions := make([]string, len(leads))
	for i, l := range leads {
		leadOptions[i] = l.Name
	}
	lead := newSelect("Lead", leadOptions, false)
	if !isNew {
		lead.setValue(fu.Lead.Name)
	}

	date := textinput.New()
	date.Prompt = ""
	date.Placeholder = "YYYY-MM-DD"
	date.CharLimit = 10
	date.SetValue(fu.Date)
	date.Focus()

	timeOfDay := textinput.New()
	timeOfDay.Prompt = ""
	timeOfDay.Placeholder = "HH:MM"
	timeOfDay.CharLimit = 5
	timeOfDay.SetValue(fu.Time)

	employeeOptions := make([]string, len(employees))
	for i, e := range employees {
		employeeOptions[i] = e.Name
	}
	followedBy := newSelect("Followed by", employeeOptions, false)
	followedBy.setValue(fu.FollowedBy)

	statusOptions := make([]string, len(model.AllStatuses))
	for i, s := range model.AllStatuses {
		statusOptions[i] = string(s)
	}
	status := newSelect("Status", statusOptions, false)
	if isNew && fu.Status == "" {
		fu.Status = model.StatusNextFollowUp
	}
	status.setValue(string(fu.Status))

	feedback := textinput.New()
	feedback.Prompt = ""
	feedback.CharLimit = 500
	feedback.SetValue(fu.Feedback)

	nextDate := textinput.New()
	nextDate.Prompt = ""
	nextDate.Placeholder = "YYYY-MM-DD"
	nextDate.CharLimit = 10
	nextDate.SetValue(fu.NextFollowUpDate)

	nextTime := textinput.New()
	nextTime.Prompt = ""
	nextTime.Placeholder = "HH:MM"
	nextTime.CharLimit = 5
	nextTime.SetValue(fu.NextFollowUpTime)

	m := FollowUpFormModel{
		theme:      theme,
		followUp:   fu,
		isNew:      isNew,
		leads:      leads,
		lead:       lead,
		date:       date,
		timeOfDay:  timeOfDay,
		followedBy: followedBy,
		status:     status,
		feedback:   feedback,
		nextDate:   nextDate,
		nextTime:   nextTime,
		focus:      fuFieldDate,
		width:      80,
		height:     24,
	}
	if isNew && len(leadOptions) > 0 {
		m.focus = fuFieldLead
		m.date.Blur()
	}
	return m
}

// terminal reports whether the currently selected status ends the
// pipeline.
func (m FollowUpFormModel) terminal() bool {
	return model.Status(m.status.value()).IsTerminal()
}

// Resize updates the component dimensions.
func (m FollowUpFormModel) Resize(width, height int) FollowUpFormModel {
	m.width = width
	m.height = height
	return m
}

// Update handles messages.
func (m FollowUpFormModel) Update(msg tea.Msg) (FollowUpFormModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch key.String() {
	case "esc":
		return m, func() tea.Msg { return CancelFormMsg{} }

	case "ctrl+s":
		return m.submit()

	case "up", "shift+tab":
		m.moveFocus(-1)
		return m, nil

	case "down", "tab", "enter":
		m.moveFocus(1)
		return m, nil

	case "left":
		if f := m.focusedSelect(); f != nil {
			f.prev()
			return m, nil
		}

	case "right":
		if f := m.focusedSelect(); f != nil {
			f.next()
			return m, nil
		}
	}

	return m.updateInputs(msg)
}

func (m FollowUpFormModel) updateInputs(msg tea.Msg) (FollowUpFormModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fuFieldDate:
		m.date, cmd = m.date.Update(msg)
	case fuFieldTime:
		m.timeOfDay, cmd = m.timeOfDay.Update(msg)
	case fuFieldFeedback:
		m.feedback, cmd = m.feedback.Update(msg)
	case fuFieldNextDate:
		m.nextDate, cmd = m.nextDate.Update(msg)
	case fuFieldNextTime:
		m.nextTime, cmd = m.nextTime.Update(msg)
	}
	return m, cmd
}

func (m *FollowUpFormModel) focusedSelect() *selectField {
	switch m.focus {
	case fuFieldLead:
		if m.isNew {
			return &m.lead
		}
	case fuFieldFollowedBy:
		return &m.followedBy
	case fuFieldStatus:
		return &m.status
	}
	return nil
}

func (m *FollowUpFormModel) moveFocus(delta int) {
	m.date.Blur()
	m.timeOfDay.Blur()
	m.feedback.Blur()
	m.nextDate.Blur()
	m.nextTime.Blur()

	for {
		m.focus = (m.focus + delta + fuFieldCount) % fuFieldCount
		if m.focus == fuFieldLead && !m.isNew {
			continue
		}
		if (m.focus == fuFieldNextDate || m.focus == fuFieldNextTime) && m.terminal() {
			continue
		}
		break
	}

	switch m.focus {
	case fuFieldDate:
		m.date.Focus()
	case fuFieldTime:
		m.timeOfDay.Focus()
	case fuFieldFeedback:
		m.feedback.Focus()
	case fuFieldNextDate:
		m.nextDate.Focus()
	case fuFieldNextTime:
		m.nextTime.Focus()
	}
}

func (m FollowUpFormModel) submit() (FollowUpFormModel, tea.Cmd) {
	fu := m.followUp
	if m.isNew {
		for _, l := range m.leads {
			if l.Name == m.lead.value() {
				fu.LeadID = l.ID
				fu.Lead = model.LeadRef{ID: l.ID, Name: l.Name, Mobile: l.Mobile}
				break
			}
		}
	}
	fu.Date = m.date.Value()
	fu.Time = m.timeOfDay.Value()
	fu.FollowedBy = m.followedBy.value()
	fu.Status = model.Status(m.status.value())
	fu.Feedback = m.feedback.Value()
	fu.NextFollowUpDate = m.nextDate.Value()
	fu.NextFollowUpTime = m.nextTime.Value()

	// A terminal status drops whatever next-follow-up values were typed
	// before the status changed.
	fu.Normalize()
	if err := fu.Validate(); err != nil {
		m.errText = err.Error()
		return m, nil
	}

	isNew := m.isNew
	return m, func() tea.Msg { return FollowUpSubmitMsg{FollowUp: fu, IsNew: isNew} }
}

// View renders the form.
func (m FollowUpFormModel) View() string {
	title := "Edit Follow-up"
	if m.isNew {
		title = "New Follow-up"
	}

	lines := []string{m.theme.Title.Render(title)}
	if m.isNew {
		lines = append(lines, m.lead.view(m.theme, m.focus == fuFieldLead))
	} else {
		lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render("Lead: ")+m.followUp.Lead.Name)
	}

	lines = append(lines,
		m.textLine("Date", m.date, fuFieldDate),
		m.textLine("Time", m.timeOfDay, fuFieldTime),
		m.followedBy.view(m.theme, m.focus == fuFieldFollowedBy),
		m.status.view(m.theme, m.focus == fuFieldStatus),
		m.textLine("Feedback", m.feedback, fuFieldFeedback),
	)

	if m.terminal() {
		lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render("No next follow-up for a closed lead."))
	} else {
		lines = append(lines,
			m.textLine("Next date", m.nextDate, fuFieldNextDate),
			m.textLine("Next time", m.nextTime, fuFieldNextTime),
		)
	}

	if m.errText != "" {
		lines = append(lines, m.theme.StatusError.Render(m.errText))
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render("tab next  ◂▸ change  ctrl+s save  esc cancel"))

	return m.theme.BorderedBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m FollowUpFormModel) textLine(label string, input textinput.Model, field int) string {
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)
	if m.focus == field {
		labelStyle = m.theme.Highlighted
	}
	return labelStyle.Render(label+": ") + input.View()
}
