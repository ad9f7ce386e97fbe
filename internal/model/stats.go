package model

// PerformancePoint is one pre-aggregated bucket of the lead performance
// series. The backend supplies daily, weekly and monthly variants; the
// client only chooses which array to render.
type PerformancePoint struct {
	Date      string `json:"date"`
	Leads     int    `json:"leads"`
	Converted int    `json:"converted"`
}

// SourcePerformance aggregates leads and conversions per lead source.
type SourcePerformance struct {
	Source    string `json:"source"`
	Leads     int    `json:"leads"`
	Converted int    `json:"converted"`
}

// BranchPerformance aggregates leads and conversions per branch.
type BranchPerformance struct {
	Branch    string `json:"branch"`
	Leads     int    `json:"leads"`
	Converted int    `json:"converted"`
}

// EmployeePerformance aggregates per-employee workload.
type EmployeePerformance struct {
	Name           string `json:"name"`
	LeadsCount     int    `json:"leadsCount"`
	FollowUpsCount int    `json:"followUpsCount"`
}

// DashboardStats is the headline card row on the dashboard.
type DashboardStats struct {
	TotalLeads     int `json:"totalLeads"`
	ConvertedLeads int `json:"convertedLeads"`
	PendingLeads   int `json:"pendingLeads"`
	DroppedLeads   int `json:"droppedLeads"`
}

// FollowUpPerformance splits follow-ups into done and outstanding.
type FollowUpPerformance struct {
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// ConversionRatio is the overall conversion summary.
type ConversionRatio struct {
	Total     int     `json:"total"`
	Converted int     `json:"converted"`
	Ratio     float64 `json:"ratio"`
}
