package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leadline-crm/leadline/internal/model"
	"github.com/leadline-crm/leadline/internal/tui/themes"
)

// LeadSubmitMsg asks the root model to persist a lead. The list is only
// patched once the backend confirms the save.
type LeadSubmitMsg struct {
	Lead  model.Lead
	IsNew bool
}

// Positions of the lead form fields, top to bottom.
const (
	leadFieldName = iota
	leadFieldMobile
	leadFieldEmail
	leadFieldStatus
	leadFieldBranch
	leadFieldSource
	leadFieldCourse
	leadFieldSpecialization
	leadFieldHandledBy
	leadFieldCount
)

// LeadFormModel edits a single lead. The specialization selector only
// applies when the chosen course defines specializations; changing the
// course resets it.
type LeadFormModel struct {
	theme   themes.Theme
	lead    model.Lead
	isNew   bool
	courses []model.Course

	name           textinput.Model
	mobile         textinput.Model
	email          textinput.Model
	status         selectField
	branch         selectField
	source         selectField
	course         selectField
	specialization selectField
	handledBy      selectField

	focus   int
	errText string
	width   int
	height  int
}

// NewLeadForm builds a form prefilled from lead, with selectors fed by
// the reference collections.
func NewLeadForm(lead model.Lead, isNew bool, branches []model.Branch, courses []model.Course, sources []model.LeadSource, employees []model.Employee, theme themes.Theme) LeadFormModel {
	name := textinput.New()
	name.Prompt = ""
	name.CharLimit = 100
	name.SetValue(lead.Name)
	name.Focus()

	mobile := textinput.New()
	mobile.Prompt = ""
	mobile.CharLimit = 20
	mobile.SetValue(lead.Mobile)

	email := textinput.New()
	email.Prompt = ""
	email.CharLimit = 100
	email.SetValue(lead.Email)

	statusOptions := make([]string, len(model.AllStatuses))
	for i, s := range model.AllStatuses {
		statusOptions[i] = string(s)
	}
	status := newSelect("Status", statusOptions, false)
	if isNew && lead.Status == "" {
		lead.Status = model.StatusNextFollowUp
	}
	status.setValue(string(lead.Status))

	branchOptions := make([]string, len(branches))
	for i, b := range branches {
		branchOptions[i] = b.Name
	}
	branch := newSelect("Branch", branchOptions, false)
	branch.setValue(lead.Branch)

	sourceOptions := make([]string, len(sources))
	for i, s := range sources {
		sourceOptions[i] = s.Name
	}
	source := newSelect("Source", sourceOptions, false)
	source.setValue(lead.LeadSource)

	courseOptions := make([]string, len(courses))
	for i, c := range courses {
		courseOptions[i] = c.Name
	}
	course := newSelect("Course", courseOptions, false)
	course.setValue(lead.Course)

	employeeOptions := make([]string, len(employees))
	for i, e := range employees {
		employeeOptions[i] = e.Name
	}
	handledBy := newSelect("Handled by", employeeOptions, true)
	handledBy.setValue(lead.HandledBy)

	m := LeadFormModel{
		theme:     theme,
		lead:      lead,
		isNew:     isNew,
		courses:   courses,
		name:      name,
		mobile:    mobile,
		email:     email,
		status:    status,
		branch:    branch,
		source:    source,
		course:    course,
		handledBy: handledBy,
		width:     80,
		height:    24,
	}
	m.rebuildSpecializations(lead.Specialization)
	return m
}

// rebuildSpecializations resets the specialization selector to the
// options of the currently selected course.
func (m *LeadFormModel) rebuildSpecializations(current string) {
	var options []string
	for _, c := range m.courses {
		if c.Name == m.course.value() {
			options = append(options, c.Specializations...)
			break
		}
	}
	m.specialization = newSelect("Specialization", options, true)
	m.specialization.setValue(current)
}

// hasSpecializations reports whether the selected course offers any.
func (m LeadFormModel) hasSpecializations() bool {
	// The optional selector always carries the empty choice; anything
	// beyond it is a real option.
	return len(m.specialization.options) > 1
}

// Resize updates the component dimensions.
func (m LeadFormModel) Resize(width, height int) LeadFormModel {
	m.width = width
	m.height = height
	return m
}

// Update handles messages.
func (m LeadFormModel) Update(msg tea.Msg) (LeadFormModel, tea.Cmd) {
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
			m.afterSelectChange()
			return m, nil
		}

	case "right":
		if f := m.focusedSelect(); f != nil {
			f.next()
			m.afterSelectChange()
			return m, nil
		}
	}

	return m.updateInputs(msg)
}

func (m LeadFormModel) updateInputs(msg tea.Msg) (LeadFormModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case leadFieldName:
		m.name, cmd = m.name.Update(msg)
	case leadFieldMobile:
		m.mobile, cmd = m.mobile.Update(msg)
	case leadFieldEmail:
		m.email, cmd = m.email.Update(msg)
	}
	return m, cmd
}

func (m *LeadFormModel) focusedSelect() *selectField {
	switch m.focus {
	case leadFieldStatus:
		return &m.status
	case leadFieldBranch:
		return &m.branch
	case leadFieldSource:
		return &m.source
	case leadFieldCourse:
		return &m.course
	case leadFieldSpecialization:
		return &m.specialization
	case leadFieldHandledBy:
		return &m.handledBy
	}
	return nil
}

func (m *LeadFormModel) afterSelectChange() {
	if m.focus == leadFieldCourse {
		m.rebuildSpecializations("")
	}
}

func (m *LeadFormModel) moveFocus(delta int) {
	m.name.Blur()
	m.mobile.Blur()
	m.email.Blur()

	for {
		m.focus = (m.focus + delta + leadFieldCount) % leadFieldCount
		if m.focus != leadFieldSpecialization || m.hasSpecializations() {
			break
		}
	}

	switch m.focus {
	case leadFieldName:
		m.name.Focus()
	case leadFieldMobile:
		m.mobile.Focus()
	case leadFieldEmail:
		m.email.Focus()
	}
}

func (m LeadFormModel) submit() (LeadFormModel, tea.Cmd) {
	lead := m.lead
	lead.Name = m.name.Value()
	lead.Mobile = m.mobile.Value()
	lead.Email = m.email.Value()
	lead.Status = model.Status(m.status.value())
	lead.Branch = m.branch.value()
	lead.LeadSource = m.source.value()
	lead.Course = m.course.value()
	lead.HandledBy = m.handledBy.value()
	if m.hasSpecializations() {
		lead.Specialization = m.specialization.value()
	} else {
		lead.Specialization = ""
	}

	if err := lead.Validate(); err != nil {
		m.errText = err.Error()
		return m, nil
	}

	isNew := m.isNew
	return m, func() tea.Msg { return LeadSubmitMsg{Lead: lead, IsNew: isNew} }
}

// View renders the form.
func (m LeadFormModel) View() string {
	title := "Edit Lead"
	if m.isNew {
		title = "New Lead"
	}

	lines := []string{
		m.theme.Title.Render(title),
		m.textLine("Name", m.name, leadFieldName),
		m.textLine("Mobile", m.mobile, leadFieldMobile),
		m.textLine("Email", m.email, leadFieldEmail),
		m.status.view(m.theme, m.focus == leadFieldStatus),
		m.branch.view(m.theme, m.focus == leadFieldBranch),
		m.source.view(m.theme, m.focus == leadFieldSource),
		m.course.view(m.theme, m.focus == leadFieldCourse),
	}
	if m.hasSpecializations() {
		lines = append(lines, m.specialization.view(m.theme, m.focus == leadFieldSpecialization))
	}
	lines = append(lines, m.handledBy.view(m.theme, m.focus == leadFieldHandledBy))

	if m.errText != "" {
		lines = append(lines, m.theme.StatusError.Render(m.errText))
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render("tab next  ◂▸ change  ctrl+s save  esc cancel"))

	return m.theme.BorderedBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m LeadFormModel) textLine(label string, input textinput.Model, field int) string {
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)
	if m.focus == field {
		labelStyle = m.theme.Highlighted
	}
	return labelStyle.Render(label+": ") + input.View()
}
