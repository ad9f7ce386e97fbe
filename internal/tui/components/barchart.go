package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/leadline-crm/leadline/internal/charts"
	"github.com/leadline-crm/leadline/internal/tui/themes"
)

// BarRow is one category of a two-series bar chart.
type BarRow struct {
	Label     string
	Primary   int
	Secondary int
}

// pixelsPerRow converts the layout heuristic's pixel heights to
// terminal rows.
const pixelsPerRow = 30

// RenderBarChart draws a two-series category chart, choosing the
// orientation with the shared layout heuristic when allowVertical is
// false the chart is always horizontal (category per line).
func RenderBarChart(title string, rows []BarRow, width int, theme themes.Theme, perItem int, allowOrientationSwitch bool) string {
	header := theme.Subtitle.Render(title)
	if len(rows) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header,
			lipgloss.NewStyle().Foreground(theme.Muted).Render("No data"))
	}

	if allowOrientationSwitch && !charts.Horizontal(len(rows)) {
		return lipgloss.JoinVertical(lipgloss.Left, header, renderColumns(rows, theme))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, renderHorizontalBars(rows, width, theme, perItem))
}

// renderHorizontalBars draws one category per line with a fixed label
// gutter, so long names stay readable regardless of category count.
func renderHorizontalBars(rows []BarRow, width int, theme themes.Theme, perItem int) string {
	gutter := charts.HorizontalLabelGutter / 4
	barSpace := width - gutter - 14
	if barSpace < 10 {
		barSpace = 10
	}

	maxValue := 1
	for _, r := range rows {
		if r.Primary > maxValue {
			maxValue = r.Primary
		}
		if r.Secondary > maxValue {
			maxValue = r.Secondary
		}
	}

	// The heuristic height bounds how many rows we draw before eliding.
	maxRows := charts.PlotHeight(len(rows), charts.DefaultBaseHeight, perItem) / pixelsPerRow

	var lines []string
	for i, r := range rows {
		if i >= maxRows {
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.Muted).
				Render(fmt.Sprintf("… %d more", len(rows)-i)))
			break
		}

		label := truncate(r.Label, gutter)
		primary := theme.BarPrimary.Render(strings.Repeat("█", scale(r.Primary, maxValue, barSpace)))
		secondary := theme.BarSecondary.Render(strings.Repeat("█", scale(r.Secondary, maxValue, barSpace)))

		lines = append(lines,
			fmt.Sprintf("%-*s %s %d", gutter, label, primary, r.Primary),
			fmt.Sprintf("%-*s %s %d", gutter, "", secondary, r.Secondary),
		)
	}

	return strings.Join(lines, "\n")
}

// renderColumns draws the compact vertical layout used while the
// category count is small.
func renderColumns(rows []BarRow, theme themes.Theme) string {
	maxValue := 1
	for _, r := range rows {
		if r.Primary > maxValue {
			maxValue = r.Primary
		}
		if r.Secondary > maxValue {
			maxValue = r.Secondary
		}
	}

	height := charts.DefaultBaseHeight / pixelsPerRow

	var lines []string
	for level := height; level > 0; level-- {
		var sb strings.Builder
		for _, r := range rows {
			if scale(r.Primary, maxValue, height) >= level {
				sb.WriteString(theme.BarPrimary.Render("█"))
			} else {
				sb.WriteString(" ")
			}
			if scale(r.Secondary, maxValue, height) >= level {
				sb.WriteString(theme.BarSecondary.Render("█"))
			} else {
				sb.WriteString(" ")
			}
			sb.WriteString("  ")
		}
		lines = append(lines, sb.String())
	}

	// Column labels, one initial per category.
	var labels strings.Builder
	for _, r := range rows {
		initial := "?"
		if r.Label != "" {
			initial = strings.ToUpper(r.Label[:1])
		}
		labels.WriteString(fmt.Sprintf("%-4s", initial))
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.Muted).Render(labels.String()))

	legend := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.BarPrimary.Render("█ "), "leads  ",
		theme.BarSecondary.Render("█ "), "converted")
	lines = append(lines, legend)

	return strings.Join(lines, "\n")
}

func scale(value, maxValue, space int) int {
	if value <= 0 || maxValue <= 0 {
		return 0
	}
	scaled := value * space / maxValue
	if scaled == 0 {
		scaled = 1
	}
	return scaled
}

// truncate shortens a string to maxLen with ellipsis.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
