package season

import "time"

const (
	// MaxWeek is the last week of the regular season.
	MaxWeek = 18

	// LookaheadDays is how far into a 7-day window a date still counts as
	// that window's week. Dates at or past this offset roll to the next week.
	LookaheadDays = 4

	daysPerWeek = 7
)

// Date truncates t to its UTC calendar date.
func Date(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekNumber maps current to a regular season week in [1, MaxWeek].
// Both times are compared as UTC calendar dates.
//
// Each 7-day window starting at seasonStart hands over to the next week after
// LookaheadDays days rather than at the end of the window, so a Monday after a
// Thursday opener already reports the following week.
func WeekNumber(current, seasonStart time.Time) int {
	day := Date(current)
	start := Date(seasonStart)
	end := start.AddDate(0, 0, daysPerWeek*MaxWeek)

	if day.Before(start) {
		return 1
	}
	if day.After(end) {
		return MaxWeek
	}

	week := 1
	for windowStart := start; !windowStart.After(day); windowStart = windowStart.AddDate(0, 0, daysPerWeek) {
		if day.Before(windowStart.AddDate(0, 0, LookaheadDays)) {
			break
		}
		week++
	}

	// The final windows before the clamp boundary can walk one past the season.
	return min(week, MaxWeek)
}

// WeekRange returns the first and last calendar dates of week, counting
// 7-day blocks from seasonStart. Both ends are inclusive.
func WeekRange(seasonStart time.Time, week int) (time.Time, time.Time) {
	start := Date(seasonStart).AddDate(0, 0, (week-1)*daysPerWeek)
	return start, start.AddDate(0, 0, daysPerWeek-1)
}
