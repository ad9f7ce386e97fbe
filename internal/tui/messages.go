package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/leadline-crm/leadline/internal/model"
)

// Data loading messages. Every joined fetch lands as a single message:
// either the whole batch or an error, never partial results.
type leadsLoadedMsg struct {
	err   error
	stale bool
	leads []model.Lead
}

type followUpsLoadedMsg struct {
	err       error
	stale     bool
	followUps []model.FollowUp
}

type dashboardLoadedMsg struct {
	err          error
	stats        model.DashboardStats
	bySource     []model.SourcePerformance
	byBranch     []model.BranchPerformance
	followUpPerf model.FollowUpPerformance
	conversion   model.ConversionRatio
	recentLeads  []model.Lead
	upcoming     []model.FollowUp
}

type statisticsLoadedMsg struct {
	err       error
	employees []model.EmployeePerformance
	daily     []model.PerformancePoint
	weekly    []model.PerformancePoint
	monthly   []model.PerformancePoint
	bySource  []model.SourcePerformance
	byBranch  []model.BranchPerformance
}

type formDataLoadedMsg struct {
	err       error
	branches  []model.Branch
	courses   []model.Course
	sources   []model.LeadSource
	employees []model.Employee
}

// Mutation results. The raw collection is only patched when err is nil.
type leadDeletedMsg struct {
	err error
	id  string
}

type leadSavedMsg struct {
	err  error
	lead model.Lead
}

type followUpSavedMsg struct {
	err      error
	followUp model.FollowUp
}

// notificationMsg is an ephemeral status-bar notice.
type notificationMsg struct {
	text    string
	isError bool
}

// clearNotificationMsg removes the current status-bar notice.
type clearNotificationMsg struct{}

// notificationTTL is how long a notice stays in the status bar.
const notificationTTL = 4 * time.Second

func clearNotificationAfter() tea.Cmd {
	return tea.Tick(notificationTTL, func(time.Time) tea.Msg {
		return clearNotificationMsg{}
	})
}
