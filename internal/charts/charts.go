// Package charts holds the pure layout decisions for the statistics
// screens: which pre-aggregated series to show and how tall or wide a
// bar chart should be for a given category count.
package charts

import "github.com/leadline-crm/leadline/internal/model"

// TimeRange selects which pre-aggregated performance series to render.
type TimeRange string

// Supported time ranges.
const (
	RangeDaily   TimeRange = "daily"
	RangeWeekly  TimeRange = "weekly"
	RangeMonthly TimeRange = "monthly"
)

// Label returns the capitalized display name of the range.
func (r TimeRange) Label() string {
	switch r {
	case RangeWeekly:
		return "Weekly"
	case RangeMonthly:
		return "Monthly"
	default:
		return "Daily"
	}
}

// SelectSeries picks the series matching the range. Unrecognized ranges
// fall back to daily; no aggregation happens client-side.
func SelectSeries(r TimeRange, daily, weekly, monthly []model.PerformancePoint) []model.PerformancePoint {
	switch r {
	case RangeWeekly:
		return weekly
	case RangeMonthly:
		return monthly
	default:
		return daily
	}
}

// Layout defaults. The orientation threshold is a fixed constant chosen
// so per-category labels stay legible, not derived from available space.
const (
	DefaultBaseHeight     = 300
	DefaultPerItem        = 36
	horizontalThreshold   = 8
	HorizontalLabelGutter = 80
)

// PlotHeight grows the plot with the category count but never shrinks it
// below the base height: max(base, count*perItem).
func PlotHeight(count, base, perItem int) int {
	if h := count * perItem; h > base {
		return h
	}
	return base
}

// Horizontal reports whether a category chart should switch to the
// horizontal (category-on-Y) layout. Used by the employee performance
// chart only.
func Horizontal(count int) bool {
	return count > horizontalThreshold
}
