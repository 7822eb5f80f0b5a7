package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/alexanderramin/ember/internal/aggregate"
)

// SVG cell geometry: 11px squares on a 13px pitch with small gutters for
// the month and day labels.
const (
	svgCell    = 11
	svgPitch   = 13
	svgLeft    = 32
	svgTop     = 20
	svgPadding = 10
)

type svgCellData struct {
	X, Y  int
	Fill  string
	Title string
}

type svgLabel struct {
	X, Y int
	Text string
}

type htmlData struct {
	RangeLabel    string
	GeneratedAt   string
	TotalTime     string
	ActiveDays    int
	DaysTracked   int
	LongestStreak int
	CurrentStreak int
	TopProject    string
	TopProjectMin string

	Width, Height int
	Cells         []svgCellData
	MonthLabels   []svgLabel
	DayLabels     []svgLabel
	Legend        []string
}

// RenderHTML renders the self-contained report document. The output embeds
// everything inline; it references no external resources.
func RenderHTML(result aggregate.Result) ([]byte, error) {
	grid := BuildGrid(result)

	data := htmlData{
		RangeLabel: fmt.Sprintf("%s — %s",
			result.Range.Start.Format("Jan 2, 2006"),
			result.Range.End.Format("Jan 2, 2006")),
		GeneratedAt:   result.Range.End.Format("2006-01-02"),
		TotalTime:     FormatMinutes(result.TotalMinutes),
		ActiveDays:    result.ActiveDays,
		DaysTracked:   result.DaysTracked,
		LongestStreak: result.LongestStreak,
		CurrentStreak: result.CurrentStreak,
		TopProject:    result.TopProject,
		Width:         svgLeft + len(grid.Columns)*svgPitch + svgPadding,
		Height:        svgTop + 7*svgPitch + svgPadding,
	}
	if result.TopProject != "" {
		data.TopProjectMin = FormatMinutes(result.ProjectMinutes[result.TopProject])
	}

	for i, col := range grid.Columns {
		x := svgLeft + i*svgPitch
		if col.Month != "" {
			data.MonthLabels = append(data.MonthLabels, svgLabel{X: x, Y: svgTop - 6, Text: col.Month})
		}
		for _, c := range col.Cells {
			data.Cells = append(data.Cells, svgCellData{
				X:     x,
				Y:     svgTop + c.Row*svgPitch,
				Fill:  LevelHex(c.Level),
				Title: CellTitle(c),
			})
		}
	}
	for row, label := range dayLabels {
		data.DayLabels = append(data.DayLabels, svgLabel{
			X:    svgLeft - 6,
			Y:    svgTop + row*svgPitch + svgCell - 2,
			Text: label,
		})
	}
	for lvl := 0; lvl <= 4; lvl++ {
		data.Legend = append(data.Legend, levelHex[lvl])
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering report template: %w", err)
	}
	return buf.Bytes(), nil
}

var reportTemplate = template.Must(template.New("report").Parse(htmlTemplate))
