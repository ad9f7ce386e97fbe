package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leadline-crm/leadline/internal/charts"
	"github.com/leadline-crm/leadline/internal/model"
	"github.com/leadline-crm/leadline/internal/tui/themes"
)

// StatisticsData is the joined result of the statistics screen's reads.
// All three bucket variants arrive pre-aggregated; switching the range
// is a pure selection, no refetch.
type StatisticsData struct {
	Employees []model.EmployeePerformance
	Daily     []model.PerformancePoint
	Weekly    []model.PerformancePoint
	Monthly   []model.PerformancePoint
	BySource  []model.SourcePerformance
	ByBranch  []model.BranchPerformance
}

// StatisticsModel renders the statistics screen.
type StatisticsModel struct {
	theme     themes.Theme
	data      StatisticsData
	timeRange charts.TimeRange
	width     int
	height    int
}

// NewStatistics creates an empty statistics screen defaulting to the
// daily bucket.
func NewStatistics(theme themes.Theme) StatisticsModel {
	return StatisticsModel{
		theme:     theme,
		timeRange: charts.RangeDaily,
		width:     80,
		height:    24,
	}
}

// SetData installs a complete batch of statistics data.
func (m StatisticsModel) SetData(data StatisticsData) StatisticsModel {
	m.data = data
	return m
}

// Resize updates the component dimensions.
func (m StatisticsModel) Resize(width, height int) StatisticsModel {
	m.width = width
	m.height = height
	return m
}

// Update handles the time range toggle.
func (m StatisticsModel) Update(msg tea.Msg) (StatisticsModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "d":
			m.timeRange = charts.RangeDaily
		case "w":
			m.timeRange = charts.RangeWeekly
		case "m":
			m.timeRange = charts.RangeMonthly
		}
	}
	return m, nil
}

// View renders the statistics screen.
func (m StatisticsModel) View() string {
	series := charts.SelectSeries(m.timeRange, m.data.Daily, m.data.Weekly, m.data.Monthly)

	seriesRows := make([]BarRow, len(series))
	for i, p := range series {
		seriesRows[i] = BarRow{Label: p.Date, Primary: p.Leads, Secondary: p.Converted}
	}
	employeeRows := make([]BarRow, len(m.data.Employees))
	for i, e := range m.data.Employees {
		employeeRows[i] = BarRow{Label: e.Name, Primary: e.LeadsCount, Secondary: e.FollowUpsCount}
	}
	sourceRows := make([]BarRow, len(m.data.BySource))
	for i, s := range m.data.BySource {
		sourceRows[i] = BarRow{Label: s.Source, Primary: s.Leads, Secondary: s.Converted}
	}
	branchRows := make([]BarRow, len(m.data.ByBranch))
	for i, b := range m.data.ByBranch {
		branchRows[i] = BarRow{Label: b.Branch, Primary: b.Leads, Secondary: b.Converted}
	}

	chartWidth := m.width - 4
	if chartWidth < 40 {
		chartWidth = 40
	}
	halfWidth := m.width/2 - 4
	if halfWidth < 30 {
		halfWidth = 30
	}

	rangeLine := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Range: ") +
		m.theme.Highlighted.Render(m.timeRange.Label()) +
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("  (d/w/m to switch)")

	perfTitle := fmt.Sprintf("Lead performance, %s", m.timeRange.Label())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("Statistics"),
		rangeLine,
		RenderBarChart(perfTitle, seriesRows, chartWidth, m.theme, charts.DefaultPerItem, true),
		RenderBarChart("Employee workload", employeeRows, chartWidth, m.theme, charts.DefaultPerItem, true),
		lipgloss.JoinHorizontal(lipgloss.Top,
			RenderBarChart("Source performance", sourceRows, halfWidth, m.theme, charts.DefaultPerItem, true),
			"    ",
			RenderBarChart("Branch performance", branchRows, halfWidth, m.theme, charts.DefaultPerItem, true),
		),
	)
}
