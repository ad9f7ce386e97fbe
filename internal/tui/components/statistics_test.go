package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leadline-crm/leadline/internal/charts"
	"github.com/leadline-crm/leadline/internal/model"
	"github.com/leadline-crm/leadline/internal/tui/themes"
)

func testStatisticsData() StatisticsData {
	return StatisticsData{
		Daily:   []model.PerformancePoint{{Date: "2026-02-10", Leads: 4, Converted: 1}},
		Weekly:  []model.PerformancePoint{{Date: "2026-W06", Leads: 20, Converted: 5}},
		Monthly: []model.PerformancePoint{{Date: "2026-02", Leads: 80, Converted: 18}},
		Employees: []model.EmployeePerformance{
			{Name: "Ravi", LeadsCount: 12, FollowUpsCount: 30},
		},
	}
}

func TestStatistics_DefaultsToDaily(t *testing.T) {
	m := NewStatistics(themes.Default).SetData(testStatisticsData())
	assert.Equal(t, charts.RangeDaily, m.timeRange)
	assert.Contains(t, m.View(), "Lead performance, Daily")
}

func TestStatistics_RangeSwitchIsPureSelection(t *testing.T) {
	m := NewStatistics(themes.Default).SetData(testStatisticsData())

	m, cmd := m.Update(keyMsg("w"))
	assert.Nil(t, cmd, "switching the range must not trigger a refetch")
	assert.Equal(t, charts.RangeWeekly, m.timeRange)
	assert.Contains(t, m.View(), "Lead performance, Weekly")

	m, _ = m.Update(keyMsg("m"))
	assert.Contains(t, m.View(), "Lead performance, Monthly")

	m, _ = m.Update(keyMsg("d"))
	assert.Contains(t, m.View(), "Lead performance, Daily")
}

func TestStatistics_IgnoresOtherKeys(t *testing.T) {
	m := NewStatistics(themes.Default).SetData(testStatisticsData())
	m, _ = m.Update(keyMsg("x"))
	assert.Equal(t, charts.RangeDaily, m.timeRange)
}
