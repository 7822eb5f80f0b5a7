package report

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ember/internal/aggregate"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	cellGlyph  = "■"
	emptyGlyph = "·"
)

// dayLabels mark alternating rows of the grid, GitHub-style.
var dayLabels = map[int]string{1: "Mon", 3: "Wed", 5: "Fri"}

// RenderTerminal renders the heatmap and summary panel for an ANSI
// terminal.
func RenderTerminal(result aggregate.Result) string {
	grid := BuildGrid(result)

	var b strings.Builder
	b.WriteString(renderHeader(result))
	b.WriteString("\n\n")
	b.WriteString(renderMonthRow(grid))
	b.WriteString("\n")
	b.WriteString(renderRows(grid))
	b.WriteString(renderLegend())
	b.WriteString("\n\n")
	b.WriteString(RenderSummary(result))
	b.WriteString("\n")
	return b.String()
}

func renderHeader(result aggregate.Result) string {
	title := fmt.Sprintf("ACTIVITY %s - %s",
		result.Range.Start.Format("2006-01-02"),
		result.Range.End.Format("2006-01-02"))
	line := strings.Repeat("─", len(title))
	return StyleHeader.Render(title) + "\n" + StyleDim.Render(line)
}

// renderMonthRow prints month labels above the columns they start at,
// aligned to the first grid row. Each column is two characters wide.
func renderMonthRow(grid Grid) string {
	buf := []byte(strings.Repeat(" ", len(grid.Columns)*2+4))
	for i, col := range grid.Columns {
		if col.Month == "" {
			continue
		}
		at := i * 2
		if at+len(col.Month) > len(buf) {
			buf = append(buf, strings.Repeat(" ", at+len(col.Month)-len(buf))...)
		}
		copy(buf[at:], col.Month)
	}
	// day-label gutter
	return strings.Repeat(" ", 4) + StyleDim.Render(strings.TrimRight(string(buf), " "))
}

func renderRows(grid Grid) string {
	var b strings.Builder
	for row := 0; row < 7; row++ {
		label := dayLabels[row]
		b.WriteString(StyleDim.Render(fmt.Sprintf("%-4s", label)))
		for _, col := range grid.Columns {
			b.WriteString(cellAt(col, row))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// cellAt finds the cell occupying a row of a column, or blank padding when
// the column does not cover that weekday.
func cellAt(col Column, row int) string {
	for _, c := range col.Cells {
		if c.Row == row {
			if c.Level == domain.LevelNone {
				return StyleDim.Render(emptyGlyph)
			}
			return LevelStyle(c.Level).Render(cellGlyph)
		}
	}
	return " "
}

func renderLegend() string {
	var b strings.Builder
	b.WriteString(StyleDim.Render("    less "))
	b.WriteString(StyleDim.Render(emptyGlyph + " "))
	for lvl := domain.LevelLight; lvl <= domain.LevelMax; lvl++ {
		b.WriteString(LevelStyle(lvl).Render(cellGlyph))
		b.WriteString(" ")
	}
	b.WriteString(StyleDim.Render("more"))
	return b.String()
}

// RenderSummary renders the textual stats panel in a rounded box.
func RenderSummary(result aggregate.Result) string {
	rows := []struct {
		label string
		value string
	}{
		{"Total time", FormatMinutes(result.TotalMinutes)},
		{"Active days", fmt.Sprintf("%d of %d tracked", result.ActiveDays, result.DaysTracked)},
		{"Longest streak", streakText(result.LongestStreak)},
		{"Current streak", streakText(result.CurrentStreak)},
	}
	if result.TopProject != "" {
		rows = append(rows, struct{ label, value string }{
			"Top project",
			fmt.Sprintf("%s (%s)", result.TopProject, FormatMinutes(result.ProjectMinutes[result.TopProject])),
		})
	}

	var content strings.Builder
	for i, r := range rows {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(StyleDim.Render(fmt.Sprintf("%-15s", r.label)))
		content.WriteString(StyleBold.Render(r.value))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)
	return box.Render(content.String())
}

func streakText(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
