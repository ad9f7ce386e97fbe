package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/leadline-crm/leadline/internal/common"
)

// View renders the whole TUI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.form {
	case formLead:
		content = m.leadForm.View()
	case formFollowUp:
		content = m.followUpForm.View()
	default:
		content = m.renderScreen()
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderStatusBar())
}

func (m Model) renderScreen() string {
	if !m.loaded[m.screen] {
		return m.renderLoading()
	}
	if err := m.screenErr[m.screen]; err != nil {
		return m.renderError(err)
	}

	switch m.screen {
	case ScreenLeads:
		return m.leadList.View()
	case ScreenFollowUps:
		return m.followUpList.View()
	case ScreenStatistics:
		return m.statistics.View()
	default:
		return m.dashboard.View()
	}
}

// renderLoading renders the per-screen loading state.
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("Loading "+m.screenName()+"..."),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Fetching from the CRM backend"),
	)

	return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, content)
}

// renderError renders a failed fetch with a retry hint. No partial data
// is shown; the batch either landed whole or not at all.
func (m Model) renderError(err error) string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.StatusError.Render("Could not load "+m.screenName()),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(common.UserMessage(err)),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press Ctrl+R to retry"),
	)

	return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, content)
}

// renderStatusBar renders the bottom bar: screen tabs, then either the
// current notification or the key hints.
func (m Model) renderStatusBar() string {
	names := []string{"1 Dashboard", "2 Leads", "3 Follow-ups", "4 Statistics"}
	tabs := ""
	for i, name := range names {
		style := lipgloss.NewStyle().Foreground(m.theme.Muted)
		if Screen(i) == m.screen {
			style = m.theme.Highlighted
		}
		if tabs != "" {
			tabs += "  "
		}
		tabs += style.Render(name)
	}

	right := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("ctrl+r refresh  q quit")
	if m.notification != "" {
		if m.notificationErr {
			right = m.theme.StatusError.Render(m.notification)
		} else {
			right = m.theme.StatusSuccess.Render(m.notification)
		}
	}

	gap := m.width - lipgloss.Width(tabs) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return tabs + lipgloss.NewStyle().Width(gap).Render("") + right
}

func (m Model) screenName() string {
	switch m.screen {
	case ScreenLeads:
		return "leads"
	case ScreenFollowUps:
		return "follow-ups"
	case ScreenStatistics:
		return "statistics"
	default:
		return "dashboard"
	}
}
