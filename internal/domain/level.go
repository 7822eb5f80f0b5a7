package domain

// ActivityLevel buckets a day's total minutes into one of five discrete
// intensities used for visual encoding.
type ActivityLevel int

const (
	LevelNone   ActivityLevel = 0 // no recorded activity
	LevelLight  ActivityLevel = 1 // under 30 minutes
	LevelMedium ActivityLevel = 2 // under 2 hours
	LevelHigh   ActivityLevel = 3 // under 4 hours
	LevelMax    ActivityLevel = 4 // 4 hours or more
)

// LevelFor maps total minutes to an activity level. Boundaries are exact:
// 0, 30, 120 and 240 minutes.
func LevelFor(minutes int) ActivityLevel {
	switch {
	case minutes <= 0:
		return LevelNone
	case minutes < 30:
		return LevelLight
	case minutes < 120:
		return LevelMedium
	case minutes < 240:
		return LevelHigh
	default:
		return LevelMax
	}
}
