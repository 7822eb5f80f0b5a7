package report

import (
	"time"

	"github.com/alexanderramin/ember/internal/aggregate"
	"github.com/alexanderramin/ember/internal/domain"
)

// Cell is one date in the heatmap.
type Cell struct {
	Date    time.Time
	Row     int // day of week, Sunday = 0
	Minutes int
	Level   domain.ActivityLevel
	Project string // the day's top project, "" when unlabeled
}

// Column is one calendar week of cells. The first column may start below
// row zero when the range does not begin on a Sunday.
type Column struct {
	Month string // set when this column starts a new calendar month
	Cells []Cell
}

// Grid arranges every date of the report range into 7-row week columns.
type Grid struct {
	Columns []Column
}

// Cells returns the total number of cells across all columns.
func (g Grid) Cells() int {
	n := 0
	for _, c := range g.Columns {
		n += len(c.Cells)
	}
	return n
}

// BuildGrid lays out the aggregation result as week columns with
// month-transition labels. It is a pure mapping; no aggregation state is
// recomputed here.
func BuildGrid(result aggregate.Result) Grid {
	var g Grid
	var col Column
	prevMonth := time.Month(0)

	flush := func() {
		if len(col.Cells) > 0 {
			g.Columns = append(g.Columns, col)
			col = Column{}
		}
	}

	result.Range.Each(func(day time.Time) {
		if day.Weekday() == time.Sunday {
			flush()
		}
		if len(col.Cells) == 0 && day.Month() != prevMonth {
			col.Month = day.Format("Jan")
			prevMonth = day.Month()
		}
		total := result.Days[domain.DateKey(day)]
		col.Cells = append(col.Cells, Cell{
			Date:    day,
			Row:     int(day.Weekday()),
			Minutes: total.Minutes,
			Level:   domain.LevelFor(total.Minutes),
			Project: total.TopProject(),
		})
	})
	flush()

	return g
}
