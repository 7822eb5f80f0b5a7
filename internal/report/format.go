package report

import "fmt"

// FormatMinutes renders a minute count as "3h 20m", or "45m" when under an
// hour.
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// CellTitle is the human-readable per-cell description: date, hours, and
// the day's top project when it has one.
func CellTitle(c Cell) string {
	title := fmt.Sprintf("%s: %s", c.Date.Format("2006-01-02"), FormatMinutes(c.Minutes))
	if c.Project != "" {
		title += fmt.Sprintf(" (%s)", c.Project)
	}
	return title
}
