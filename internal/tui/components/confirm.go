// Package components contains the screen building blocks of the TUI.
package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leadline-crm/leadline/internal/tui/themes"
)

// ConfirmResultMsg reports the user's answer to a confirmation dialog.
// Accepted is false for any dismissal, so destructive actions abort
// silently unless explicitly confirmed.
type ConfirmResultMsg struct {
	Accepted bool
}

// ConfirmModel is a modal yes/no dialog shown before destructive
// operations.
type ConfirmModel struct {
	theme   themes.Theme
	message string
	width   int
	height  int
}

// NewConfirm creates a confirmation dialog with the given question.
func NewConfirm(message string, theme themes.Theme) ConfirmModel {
	return ConfirmModel{
		message: message,
		theme:   theme,
		width:   80,
		height:  24,
	}
}

// Update handles messages.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			return m, func() tea.Msg { return ConfirmResultMsg{Accepted: true} }
		case "n", "N", "esc":
			return m, func() tea.Msg { return ConfirmResultMsg{Accepted: false} }
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the dialog centered on screen.
func (m ConfirmModel) View() string {
	box := m.theme.BorderedBox.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render(m.message),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("[y] Yes  [n] No"),
	))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
