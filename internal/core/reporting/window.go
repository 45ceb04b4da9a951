package reporting

import "time"

const (
	// TrendDays is the length of the trailing trend window, today included.
	TrendDays = 30

	// PoorPerformerDays is how far back a sale keeps an item off the poor-performer list.
	// The cutoff day (today minus PoorPerformerDays) is itself inside the window.
	PoorPerformerDays = 30

	dateLayout = "2006-01-02"
)

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysAgo returns midnight of the day n days before now's calendar day.
func DaysAgo(now time.Time, n int) time.Time {
	return StartOfDay(now).AddDate(0, 0, -n)
}

// TrendStart is the first day of the trend window: today minus TrendDays-1.
func TrendStart(now time.Time) time.Time {
	return DaysAgo(now, TrendDays-1)
}

// PoorPerformerCutoff is the first day of the poor-performer window: today minus PoorPerformerDays.
func PoorPerformerCutoff(now time.Time) time.Time {
	return DaysAgo(now, PoorPerformerDays)
}

// FormatDate renders t's calendar date.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
