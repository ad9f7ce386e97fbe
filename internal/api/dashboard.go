package api

import (
	"context"

	"github.com/leadline-crm/leadline/internal/model"
)

// DashboardStats fetches the headline lead counts.
func (c *Client) DashboardStats(ctx context.Context) (model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := c.Get(ctx, "/dashboard/stats", nil, &stats); err != nil {
		return model.DashboardStats{}, err
	}
	return stats, nil
}

// LeadsBySource fetches per-source lead counts for the dashboard.
func (c *Client) LeadsBySource(ctx context.Context) ([]model.SourcePerformance, error) {
	var rows []model.SourcePerformance
	if err := c.Get(ctx, "/dashboard/leads-by-source", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// LeadsByBranch fetches per-branch lead counts for the dashboard.
func (c *Client) LeadsByBranch(ctx context.Context) ([]model.BranchPerformance, error) {
	var rows []model.BranchPerformance
	if err := c.Get(ctx, "/dashboard/leads-by-branch", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// FollowUpPerformance fetches the completed/pending follow-up split.
func (c *Client) FollowUpPerformance(ctx context.Context) (model.FollowUpPerformance, error) {
	var perf model.FollowUpPerformance
	if err := c.Get(ctx, "/dashboard/follow-up-performance", nil, &perf); err != nil {
		return model.FollowUpPerformance{}, err
	}
	return perf, nil
}

// ConversionRatio fetches the overall conversion summary.
func (c *Client) ConversionRatio(ctx context.Context) (model.ConversionRatio, error) {
	var ratio model.ConversionRatio
	if err := c.Get(ctx, "/dashboard/conversion-ratio", nil, &ratio); err != nil {
		return model.ConversionRatio{}, err
	}
	return ratio, nil
}

// EmployeePerformance fetches per-employee workload for the statistics
// screen.
func (c *Client) EmployeePerformance(ctx context.Context) ([]model.EmployeePerformance, error) {
	var rows []model.EmployeePerformance
	if err := c.Get(ctx, "/dashboard/employee-performance", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
