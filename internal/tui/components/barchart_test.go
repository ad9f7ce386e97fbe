package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leadline-crm/leadline/internal/tui/themes"
)

func chartRows(n int) []BarRow {
	rows := make([]BarRow, n)
	for i := range rows {
		rows[i] = BarRow{Label: fmt.Sprintf("Source %d", i+1), Primary: i + 1, Secondary: i}
	}
	return rows
}

func TestRenderBarChart_Empty(t *testing.T) {
	out := RenderBarChart("By Source", nil, 80, themes.Default, 36, true)
	assert.Contains(t, out, "No data")
}

func TestRenderBarChart_FewCategoriesGoVertical(t *testing.T) {
	out := RenderBarChart("By Source", chartRows(4), 80, themes.Default, 36, true)

	// The vertical layout carries the series legend; the horizontal one
	// prints full labels instead.
	assert.Contains(t, out, "converted")
	assert.NotContains(t, out, "Source 1")
}

func TestRenderBarChart_ManyCategoriesGoHorizontal(t *testing.T) {
	out := RenderBarChart("By Source", chartRows(9), 80, themes.Default, 36, true)

	assert.Contains(t, out, "Source 1")
	assert.NotContains(t, out, "converted")
}

func TestRenderBarChart_OrientationSwitchDisabled(t *testing.T) {
	out := RenderBarChart("Daily", chartRows(3), 80, themes.Default, 36, false)
	assert.Contains(t, out, "Source 1")
}

func TestRenderBarChart_ElidesBeyondHeight(t *testing.T) {
	// At 20px per category the plot height caps well below forty rows,
	// so the long tail is elided rather than overflowing.
	out := RenderBarChart("By Source", chartRows(40), 80, themes.Default, 20, true)
	assert.Contains(t, out, "more")
}

func TestScale(t *testing.T) {
	assert.Equal(t, 0, scale(0, 10, 40))
	assert.Equal(t, 40, scale(10, 10, 40))
	assert.Equal(t, 20, scale(5, 10, 40))
	// Non-zero values always get at least one cell.
	assert.Equal(t, 1, scale(1, 1000, 40))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 20))
	got := truncate("a very long source name", 10)
	assert.Len(t, got, 10)
	assert.True(t, strings.HasSuffix(got, "..."))
}
