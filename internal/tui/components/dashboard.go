package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/leadline-crm/leadline/internal/charts"
	"github.com/leadline-crm/leadline/internal/model"
	"github.com/leadline-crm/leadline/internal/tui/themes"
)

// DashboardData is the joined result of the dashboard's backend reads.
type DashboardData struct {
	Stats        model.DashboardStats
	BySource     []model.SourcePerformance
	ByBranch     []model.BranchPerformance
	FollowUpPerf model.FollowUpPerformance
	Conversion   model.ConversionRatio
	RecentLeads  []model.Lead
	Upcoming     []model.FollowUp
}

// DashboardModel renders the overview screen. It holds no cursor state;
// the screen is read-only.
type DashboardModel struct {
	theme  themes.Theme
	data   DashboardData
	width  int
	height int
}

// NewDashboard creates an empty dashboard.
func NewDashboard(theme themes.Theme) DashboardModel {
	return DashboardModel{theme: theme, width: 80, height: 24}
}

// SetData installs a complete batch of dashboard data.
func (m DashboardModel) SetData(data DashboardData) DashboardModel {
	m.data = data
	return m
}

// Resize updates the component dimensions.
func (m DashboardModel) Resize(width, height int) DashboardModel {
	m.width = width
	m.height = height
	return m
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.statCard("Total", m.data.Stats.TotalLeads, m.theme.StatusInfo),
		m.statCard("Converted", m.data.Stats.ConvertedLeads, m.theme.StatusSuccess),
		m.statCard("Pending", m.data.Stats.PendingLeads, m.theme.StatusWarning),
		m.statCard("Dropped", m.data.Stats.DroppedLeads, m.theme.StatusError),
	)

	ratio := m.theme.BorderedBox.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Subtitle.Render("Conversion"),
		fmt.Sprintf("%d of %d leads converted (%.1f%%)",
			m.data.Conversion.Converted, m.data.Conversion.Total, m.data.Conversion.Ratio*100),
		fmt.Sprintf("Follow-ups: %s done, %s pending",
			m.theme.StatusSuccess.Render(fmt.Sprintf("%d", m.data.FollowUpPerf.Completed)),
			m.theme.StatusWarning.Render(fmt.Sprintf("%d", m.data.FollowUpPerf.Pending))),
	))

	chartWidth := m.width/2 - 4
	if chartWidth < 30 {
		chartWidth = 30
	}

	sourceRows := make([]BarRow, len(m.data.BySource))
	for i, s := range m.data.BySource {
		sourceRows[i] = BarRow{Label: s.Source, Primary: s.Leads, Secondary: s.Converted}
	}
	branchRows := make([]BarRow, len(m.data.ByBranch))
	for i, b := range m.data.ByBranch {
		branchRows[i] = BarRow{Label: b.Branch, Primary: b.Leads, Secondary: b.Converted}
	}

	chartsRow := lipgloss.JoinHorizontal(lipgloss.Top,
		RenderBarChart("Leads by source", sourceRows, chartWidth, m.theme, charts.DefaultPerItem, true),
		"    ",
		RenderBarChart("Leads by branch", branchRows, chartWidth, m.theme, charts.DefaultPerItem, true),
	)

	listsRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.recentLeadsPanel(),
		"  ",
		m.upcomingPanel(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("Dashboard"),
		cards,
		ratio,
		chartsRow,
		listsRow,
	)
}

func (m DashboardModel) statCard(label string, value int, style lipgloss.Style) string {
	return m.theme.BorderedBox.Render(lipgloss.JoinVertical(lipgloss.Center,
		style.Bold(true).Render(fmt.Sprintf("%d", value)),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(label),
	))
}

func (m DashboardModel) recentLeadsPanel() string {
	lines := []string{m.theme.Subtitle.Render("Recent leads")}
	if len(m.data.RecentLeads) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).Render("None"))
	}
	for i, l := range m.data.RecentLeads {
		if i >= 5 {
			break
		}
		lines = append(lines, fmt.Sprintf("%s  %s",
			truncate(l.Name, 20),
			m.theme.StatusStyle(l.Status).Render(string(l.Status))))
	}
	return m.theme.BorderedBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m DashboardModel) upcomingPanel() string {
	lines := []string{m.theme.Subtitle.Render("Upcoming follow-ups")}
	if len(m.data.Upcoming) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).Render("None"))
	}
	for i, f := range m.data.Upcoming {
		if i >= 5 {
			break
		}
		when := f.NextFollowUpDate
		if f.NextFollowUpTime != "" {
			when += " " + f.NextFollowUpTime
		}
		lines = append(lines, fmt.Sprintf("%s  %s",
			truncate(f.Lead.Name, 20),
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render(when)))
	}
	return m.theme.BorderedBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
