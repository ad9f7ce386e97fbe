package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadline-crm/leadline/internal/model"
	"github.com/leadline-crm/leadline/internal/tui/themes"
)

func testFormRefs() ([]model.Branch, []model.Course, []model.LeadSource, []model.Employee) {
	branches := []model.Branch{{ID: "b1", Name: "North"}, {ID: "b2", Name: "South"}}
	courses := []model.Course{
		{ID: "c1", Name: "Engineering", Specializations: []string{"Mechanical", "Civil"}},
		{ID: "c2", Name: "Commerce"},
	}
	sources := []model.LeadSource{{ID: "s1", Name: "Walk-in"}}
	employees := []model.Employee{{ID: "e1", Name: "Ravi"}}
	return branches, courses, sources, employees
}

func newTestLeadForm(lead model.Lead, isNew bool) LeadFormModel {
	branches, courses, sources, employees := testFormRefs()
	return NewLeadForm(lead, isNew, branches, courses, sources, employees, themes.Default)
}

func TestLeadForm_NewLeadDefaultsStatus(t *testing.T) {
	m := newTestLeadForm(model.Lead{}, true)
	assert.Equal(t, string(model.StatusNextFollowUp), m.status.value())
}

func TestLeadForm_SpecializationFollowsCourse(t *testing.T) {
	lead := model.Lead{Course: "Engineering", Specialization: "Civil"}
	m := newTestLeadForm(lead, false)

	require.True(t, m.hasSpecializations())
	assert.Equal(t, "Civil", m.specialization.value())
}

func TestLeadForm_NoSpecializationsForPlainCourse(t *testing.T) {
	m := newTestLeadForm(model.Lead{Course: "Commerce"}, false)

	assert.False(t, m.hasSpecializations())
	assert.NotContains(t, m.View(), "Specialization")
}

func TestLeadForm_CourseChangeResetsSpecialization(t *testing.T) {
	lead := model.Lead{Course: "Engineering", Specialization: "Civil"}
	m := newTestLeadForm(lead, false)
	m.focus = leadFieldCourse

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})

	assert.Equal(t, "Commerce", m.course.value())
	assert.Empty(t, m.specialization.value())
	assert.False(t, m.hasSpecializations())
}

func TestLeadForm_FocusSkipsMissingSpecialization(t *testing.T) {
	m := newTestLeadForm(model.Lead{Course: "Commerce"}, false)
	m.focus = leadFieldCourse

	m.moveFocus(1)
	assert.Equal(t, leadFieldHandledBy, m.focus)
}

func TestLeadForm_SubmitValidates(t *testing.T) {
	m := newTestLeadForm(model.Lead{}, true)
	m.name.SetValue("Asha")
	// Mobile left empty.

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.errText)
}

func TestLeadForm_SubmitEmitsLead(t *testing.T) {
	m := newTestLeadForm(model.Lead{}, true)
	m.name.SetValue("Asha Verma")
	m.mobile.SetValue("9876543210")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.Empty(t, m.errText)

	msg, ok := cmd().(LeadSubmitMsg)
	require.True(t, ok)
	assert.True(t, msg.IsNew)
	assert.Equal(t, "Asha Verma", msg.Lead.Name)
	assert.Equal(t, model.StatusNextFollowUp, msg.Lead.Status)
}

func TestLeadForm_SubmitDropsOrphanSpecialization(t *testing.T) {
	// A specialization typed under one course must not survive a switch
	// to a course without any.
	lead := model.Lead{Name: "Asha", Mobile: "987", Course: "Engineering", Specialization: "Civil"}
	m := newTestLeadForm(lead, false)
	m.focus = leadFieldCourse
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, "Commerce", m.course.value())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	msg, ok := cmd().(LeadSubmitMsg)
	require.True(t, ok)
	assert.Empty(t, msg.Lead.Specialization)
}

func TestLeadForm_EscCancels(t *testing.T) {
	m := newTestLeadForm(model.Lead{}, true)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	_, ok := cmd().(CancelFormMsg)
	assert.True(t, ok)
}
