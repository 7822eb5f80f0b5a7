package domain

import "time"

// ReportRange is the inclusive span of days covered by one report.
// Start always falls on a Sunday so the heatmap grid forms complete
// 7-row columns; End is "today".
type ReportRange struct {
	Start time.Time
	End   time.Time
}

// NewReportRange builds the range ending at today and starting on the most
// recent Sunday at or before (today - weeks*7 days).
func NewReportRange(today time.Time, weeks int) ReportRange {
	end := Midnight(today)
	start := end.AddDate(0, 0, -7*weeks)
	for start.Weekday() != time.Sunday {
		start = start.AddDate(0, 0, -1)
	}
	return ReportRange{Start: start, End: end}
}

// Days returns the number of days in the range, inclusive of both ends.
// Counted by calendar day rather than elapsed hours so DST transitions
// cannot skew the count.
func (r ReportRange) Days() int {
	n := 0
	r.Each(func(time.Time) { n++ })
	return n
}

// Each calls fn for every day in the range in chronological order.
func (r ReportRange) Each(fn func(day time.Time)) {
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}
