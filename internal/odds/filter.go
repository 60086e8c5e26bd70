package odds

import (
	"time"

	"nfl-odds-bot/internal/season"
)

// FilterToWeek returns the games whose commence date falls within the given
// season week, inclusive of both end dates. Dates are compared in UTC with the
// time of day dropped. Input order is preserved and games is not modified.
func FilterToWeek(games []Game, week int, seasonStart time.Time) []Game {
	weekStart, weekEnd := season.WeekRange(seasonStart, week)

	filtered := make([]Game, 0, len(games))
	for _, g := range games {
		d := season.Date(g.CommenceTime)
		if d.Before(weekStart) || d.After(weekEnd) {
			continue
		}
		filtered = append(filtered, g)
	}
	return filtered
}

// BookmakerCount returns how many games carry an offer from the given book.
func BookmakerCount(games []Game, key string) int {
	n := 0
	for _, g := range games {
		if _, ok := g.Bookmaker(key); ok {
			n++
		}
	}
	return n
}
