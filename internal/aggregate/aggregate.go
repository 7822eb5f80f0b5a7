package aggregate

import (
	"time"

	"github.com/alexanderramin/ember/internal/domain"
)

// Input carries everything one aggregation pass needs. Load maps a day to
// its parsed sessions; days without a log file return nil.
type Input struct {
	Range domain.ReportRange
	Today time.Time
	Load  func(day time.Time) []domain.Session
}

// Result is the outcome of one pass over the report range. All streak and
// total state lives here; nothing is accumulated at package level.
type Result struct {
	Range          domain.ReportRange
	TotalMinutes   int
	ActiveDays     int
	DaysTracked    int // days from range start through today, inclusive
	LongestStreak  int
	CurrentStreak  int
	TopProject     string
	ProjectMinutes map[string]int
	Days           map[string]domain.DailyTotal // keyed by ISO date; active days only
}

// Minutes returns the total for a day, zero when the day had no activity.
func (r Result) Minutes(day time.Time) int {
	return r.Days[domain.DateKey(day)].Minutes
}

// Run walks the range once in chronological order. A day is active when
// its summed minutes exceed zero; sessions without a duration contribute
// nothing. A past zero-minute day resets the running streak, today at zero
// leaves it alone (the day is not over), and future days are skipped.
func Run(input Input) Result {
	result := Result{
		Range:          input.Range,
		ProjectMinutes: make(map[string]int),
		Days:           make(map[string]domain.DailyTotal),
	}

	today := domain.Midnight(input.Today)
	var projectOrder []string
	run := 0

	input.Range.Each(func(day time.Time) {
		if day.After(today) {
			return
		}
		result.DaysTracked++

		total := domain.DailyTotal{Date: day}
		for _, s := range input.Load(day) {
			if !s.Active() {
				continue
			}
			total.Minutes += s.Minutes
			if s.Project != "" {
				if total.Projects == nil {
					total.Projects = make(map[string]int)
				}
				total.Projects[s.Project] += s.Minutes
				if _, seen := result.ProjectMinutes[s.Project]; !seen {
					projectOrder = append(projectOrder, s.Project)
				}
				result.ProjectMinutes[s.Project] += s.Minutes
			}
		}

		if total.Minutes > 0 {
			result.Days[domain.DateKey(day)] = total
			result.TotalMinutes += total.Minutes
			result.ActiveDays++
			run++
			if run > result.LongestStreak {
				result.LongestStreak = run
			}
		} else if day.Before(today) {
			run = 0
		}
	})

	result.CurrentStreak = run

	// Ties on range-wide totals go to the label seen first.
	best := 0
	for _, label := range projectOrder {
		if result.ProjectMinutes[label] > best {
			best = result.ProjectMinutes[label]
			result.TopProject = label
		}
	}

	return result
}
