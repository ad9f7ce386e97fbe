// Package themes defines the visual styles for the TUI.
package themes

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/leadline-crm/leadline/internal/model"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Selected      lipgloss.Style
	Highlighted   lipgloss.Style
	BorderedBox   lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusWarning lipgloss.Style
	BarPrimary    lipgloss.Style
	BarSecondary  lipgloss.Style
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Error         lipgloss.Color
	Info          lipgloss.Color
}

// Default is the default theme.
var Default = Theme{
	Primary: lipgloss.Color("#3B82F6"),
	Success: lipgloss.Color("#10B981"),
	Warning: lipgloss.Color("#F59E0B"),
	Error:   lipgloss.Color("#EF4444"),
	Info:    lipgloss.Color("#60A5FA"),
	Muted:   lipgloss.Color("#737373"),
	Border:  lipgloss.Color("#404040"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FAFAFA")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#A3A3A3")).
		MarginBottom(1),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#3B82F6")).
		Bold(true),
	Highlighted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F59E0B")).
		Bold(true),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(1, 2),
	StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
	StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
	StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA")),
	StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
	BarPrimary:    lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")),
	BarSecondary:  lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
}

// StatusStyle returns the style for a pipeline stage via its display
// tone.
func (t Theme) StatusStyle(s model.Status) lipgloss.Style {
	switch s.Tone() {
	case model.ToneSuccess:
		return t.StatusSuccess
	case model.ToneDanger:
		return t.StatusError
	case model.ToneInfo:
		return t.StatusInfo
	default:
		return t.StatusWarning
	}
}
