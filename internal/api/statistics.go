package api

import (
	"context"

	"github.com/leadline-crm/leadline/internal/model"
)

// PerformanceSeries fetches one pre-aggregated lead performance series.
// The bucket must be one of daily, weekly or monthly; aggregation is the
// backend's job.
func (c *Client) PerformanceSeries(ctx context.Context, bucket string) ([]model.PerformancePoint, error) {
	var points []model.PerformancePoint
	if err := c.Get(ctx, "/statistics/"+bucket, nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// SourceWisePerformance fetches per-source conversion statistics.
func (c *Client) SourceWisePerformance(ctx context.Context) ([]model.SourcePerformance, error) {
	var rows []model.SourcePerformance
	if err := c.Get(ctx, "/statistics/source-wise", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// BranchWisePerformance fetches per-branch conversion statistics.
func (c *Client) BranchWisePerformance(ctx context.Context) ([]model.BranchPerformance, error) {
	var rows []model.BranchPerformance
	if err := c.Get(ctx, "/statistics/branch-wise", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
