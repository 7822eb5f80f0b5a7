package report

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/ember/internal/aggregate"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences so assertions are
// terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func activeWeekResult() aggregate.Result {
	return aggregate.Run(aggregate.Input{
		Range: domain.ReportRange{Start: day("2024-03-03"), End: day("2024-03-09")},
		Today: day("2024-03-09"),
		Load: func(d time.Time) []domain.Session {
			switch domain.DateKey(d) {
			case "2024-03-04":
				return []domain.Session{{Date: d, Minutes: 90, Project: "alpha"}}
			case "2024-03-05":
				return []domain.Session{{Date: d, Minutes: 250}}
			}
			return nil
		},
	})
}

func TestRenderTerminal_ContainsSummaryStats(t *testing.T) {
	out := stripANSI(RenderTerminal(activeWeekResult()))

	assert.Contains(t, out, "Total time")
	assert.Contains(t, out, "5h 40m")
	assert.Contains(t, out, "2 of 7 tracked")
	assert.Contains(t, out, "Longest streak")
	assert.Contains(t, out, "2 days")
	assert.Contains(t, out, "Top project")
	assert.Contains(t, out, "alpha (1h 30m)")
}

func TestRenderTerminal_HeaderCarriesRange(t *testing.T) {
	out := stripANSI(RenderTerminal(activeWeekResult()))
	assert.Contains(t, out, "ACTIVITY 2024-03-03 - 2024-03-09")
}

func TestRenderTerminal_GridRowsAndLegend(t *testing.T) {
	out := stripANSI(RenderTerminal(activeWeekResult()))

	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "Wed")
	assert.Contains(t, out, "Fri")
	assert.Contains(t, out, "less")
	assert.Contains(t, out, "more")
	// Two active days render as filled blocks, the rest as dots.
	assert.Equal(t, 2, strings.Count(stripLegend(out), cellGlyph))
	assert.Equal(t, 5, strings.Count(stripLegend(out), emptyGlyph))
}

// stripLegend removes the legend line so glyph counts reflect only the grid.
func stripLegend(out string) string {
	var kept []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "less") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func TestRenderSummary_StreakSingular(t *testing.T) {
	result := aggregate.Run(aggregate.Input{
		Range: domain.ReportRange{Start: day("2024-03-03"), End: day("2024-03-09")},
		Today: day("2024-03-09"),
		Load: func(d time.Time) []domain.Session {
			if domain.DateKey(d) == "2024-03-09" {
				return []domain.Session{{Date: d, Minutes: 15}}
			}
			return nil
		},
	})

	out := stripANSI(RenderSummary(result))
	assert.Contains(t, out, "1 day")
	assert.NotContains(t, out, "1 days")
}

func TestRenderMonthRow_AlignsToColumns(t *testing.T) {
	grid := BuildGrid(emptyResult("2024-03-24", "2024-04-13"))
	row := stripANSI(renderMonthRow(grid))

	// "Mar" over column 0 (after the 4-char gutter), "Apr" over column 2.
	assert.Equal(t, 4+0, strings.Index(row, "Mar"))
	assert.Equal(t, 4+2*2, strings.Index(row, "Apr"))
}
