package domain

import "time"

// Session is one recorded block of activity parsed from a day's log file.
type Session struct {
	Date    time.Time // day precision
	Minutes int       // zero when the log block carried no duration line
	Project string    // optional free-text label
}

// Active reports whether the session contributes minutes to aggregation.
func (s Session) Active() bool {
	return s.Minutes > 0
}

// DailyTotal is the summed activity for a single calendar day.
type DailyTotal struct {
	Date     time.Time
	Minutes  int
	Projects map[string]int // label -> minutes for this day
}

// TopProject returns the label with the most minutes for the day, or ""
// when the day has no labeled activity. Ties go to the lexically smaller
// label so the result is deterministic.
func (d DailyTotal) TopProject() string {
	var best string
	bestMin := 0
	for label, min := range d.Projects {
		if min > bestMin || (min == bestMin && bestMin > 0 && label < best) {
			best = label
			bestMin = min
		}
	}
	return best
}

// DateKey is the canonical ISO day key used for per-day lookups and for
// locating log files on disk.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Midnight truncates t to day precision in its own location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
