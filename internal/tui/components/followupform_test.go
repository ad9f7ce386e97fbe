package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadline-crm/leadline/internal/model"
	"github.com/leadline-crm/leadline/internal/tui/themes"
)

func newTestFollowUpForm(fu model.FollowUp, isNew bool) FollowUpFormModel {
	leads := []model.Lead{
		{ID: "1", Name: "Asha Verma", Mobile: "987"},
		{ID: "2", Name: "Bilal Khan", Mobile: "912"},
	}
	employees := []model.Employee{{ID: "e1", Name: "Ravi"}, {ID: "e2", Name: "Meena"}}
	return NewFollowUpForm(fu, isNew, leads, employees, themes.Default)
}

func TestFollowUpForm_NewDefaultsStatus(t *testing.T) {
	m := newTestFollowUpForm(model.FollowUp{}, true)
	assert.Equal(t, string(model.StatusNextFollowUp), m.status.value())
	assert.Equal(t, fuFieldLead, m.focus)
}

func TestFollowUpForm_ExistingSkipsLeadSelector(t *testing.T) {
	fu := model.FollowUp{ID: "f1", LeadID: "1", Lead: model.LeadRef{ID: "1", Name: "Asha Verma"}}
	m := newTestFollowUpForm(fu, false)

	assert.Equal(t, fuFieldDate, m.focus)

	// Tabbing backwards from the first editable field must not land on
	// the lead selector.
	m.moveFocus(-1)
	assert.Equal(t, fuFieldNextTime, m.focus)
}

func TestFollowUpForm_TerminalStatusHidesNextFields(t *testing.T) {
	fu := model.FollowUp{Status: model.StatusConverted, Lead: model.LeadRef{Name: "Asha"}}
	m := newTestFollowUpForm(fu, false)

	require.True(t, m.terminal())
	view := m.View()
	assert.Contains(t, view, "No next follow-up for a closed lead.")
	assert.NotContains(t, view, "Next date")

	// Focus must skip the hidden fields.
	m.focus = fuFieldFeedback
	m.moveFocus(1)
	assert.Equal(t, fuFieldDate, m.focus)
}

func TestFollowUpForm_SubmitClearsScheduleOnTerminal(t *testing.T) {
	fu := model.FollowUp{
		ID:     "f1",
		LeadID: "1",
		Lead:   model.LeadRef{ID: "1", Name: "Asha Verma"},
		Date:   "2026-02-10",
	}
	m := newTestFollowUpForm(fu, false)
	m.followedBy.setValue("Ravi")
	m.status.setValue(string(model.StatusConverted))
	m.nextDate.SetValue("2026-02-20")
	m.nextTime.SetValue("10:00")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd, m.errText)

	msg, ok := cmd().(FollowUpSubmitMsg)
	require.True(t, ok)
	assert.Empty(t, msg.FollowUp.NextFollowUpDate)
	assert.Empty(t, msg.FollowUp.NextFollowUpTime)
}

func TestFollowUpForm_NewSubmitResolvesLead(t *testing.T) {
	m := newTestFollowUpForm(model.FollowUp{}, true)
	m.lead.setValue("Bilal Khan")
	m.date.SetValue("2026-02-10")
	m.followedBy.setValue("Meena")
	m.nextDate.SetValue("2026-02-20")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd, m.errText)

	msg, ok := cmd().(FollowUpSubmitMsg)
	require.True(t, ok)
	assert.True(t, msg.IsNew)
	assert.Equal(t, "2", msg.FollowUp.LeadID)
	assert.Equal(t, "912", msg.FollowUp.Lead.Mobile)
}

func TestFollowUpForm_SubmitValidates(t *testing.T) {
	m := newTestFollowUpForm(model.FollowUp{}, true)
	// No lead, no date.

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.errText)
}
