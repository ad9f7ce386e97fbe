package charts

import (
	"testing"

	"github.com/leadline-crm/leadline/internal/model"
)

func TestPlotHeight(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  int
	}{
		{name: "empty stays at base", count: 0, want: 300},
		{name: "small count stays at base", count: 5, want: 300},
		{name: "boundary below base", count: 8, want: 300},
		{name: "crossover point", count: 9, want: 324},
		{name: "grows linearly", count: 20, want: 720},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlotHeight(tt.count, DefaultBaseHeight, DefaultPerItem); got != tt.want {
				t.Fatalf("PlotHeight(%d) = %d, want %d", tt.count, got, tt.want)
			}
		})
	}
}

func TestPlotHeight_NeverBelowBase(t *testing.T) {
	for count := 0; count <= 50; count++ {
		if got := PlotHeight(count, DefaultBaseHeight, DefaultPerItem); got < DefaultBaseHeight {
			t.Fatalf("PlotHeight(%d) = %d, below base %d", count, got, DefaultBaseHeight)
		}
	}
}

func TestHorizontal(t *testing.T) {
	if Horizontal(8) {
		t.Fatal("8 categories should stay vertical")
	}
	if !Horizontal(9) {
		t.Fatal("9 categories should switch to horizontal")
	}
	if Horizontal(0) {
		t.Fatal("empty chart should stay vertical")
	}
}

func TestSelectSeries(t *testing.T) {
	daily := []model.PerformancePoint{{Date: "d"}}
	weekly := []model.PerformancePoint{{Date: "w"}}
	monthly := []model.PerformancePoint{{Date: "m"}}

	tests := []struct {
		name     string
		r        TimeRange
		wantDate string
	}{
		{name: "daily", r: RangeDaily, wantDate: "d"},
		{name: "weekly", r: RangeWeekly, wantDate: "w"},
		{name: "monthly", r: RangeMonthly, wantDate: "m"},
		{name: "unknown falls back to daily", r: TimeRange("hourly"), wantDate: "d"},
		{name: "empty falls back to daily", r: TimeRange(""), wantDate: "d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectSeries(tt.r, daily, weekly, monthly)
			if len(got) != 1 || got[0].Date != tt.wantDate {
				t.Fatalf("SelectSeries(%q) = %+v, want date %q", tt.r, got, tt.wantDate)
			}
		})
	}
}

func TestTimeRange_Label(t *testing.T) {
	if RangeWeekly.Label() != "Weekly" {
		t.Fatalf("unexpected label %q", RangeWeekly.Label())
	}
	if TimeRange("bogus").Label() != "Daily" {
		t.Fatal("unknown range should label as Daily")
	}
}
