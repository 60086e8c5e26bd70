package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"nfl-odds-bot/internal/api"
	"nfl-odds-bot/internal/config"
	"nfl-odds-bot/internal/format"
	"nfl-odds-bot/internal/odds"
	"nfl-odds-bot/internal/season"
)

func main() {
	cfg := config.Load()
	if cfg.OddsAPIKey == "" || cfg.SeasonStart.IsZero() {
		fmt.Fprintln(os.Stderr, "ODDS_API_KEY and NFL_START_DATE are required")
		os.Exit(2)
	}

	client := api.NewOddsClient(cfg.OddsAPIKey,
		api.WithBaseURL(cfg.OddsBaseURL),
		api.WithSport(cfg.Sport),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	res, err := client.GetOdds(ctx, cfg.Bookmaker)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	week := season.WeekNumber(time.Now(), cfg.SeasonStart)
	games := odds.FilterToWeek(res.Games, week, cfg.SeasonStart)
	fmt.Printf("Week %d: %d of %d games (quota remaining %d)\n\n", week, len(games), len(res.Games), res.Quota.Remaining)

	for _, g := range games {
		fmt.Printf("%s @ %s\n", format.AbbreviateTeam(g.AwayTeam), format.AbbreviateTeam(g.HomeTeam))
		book, ok := g.Bookmaker(cfg.Bookmaker)
		if !ok {
			fmt.Println("  no offer from", cfg.Bookmaker)
			continue
		}
		for _, m := range book.Markets {
			a, b := m.Outcomes.NoVig()
			fmt.Printf("  %-8s %-22s %5.1f%% | %-22s %5.1f%%  hold=%.2f%%\n",
				m.Key,
				m.Outcomes.Side0().Name, a*100,
				m.Outcomes.Side1().Name, b*100,
				m.Outcomes.Hold()*100)
		}
	}
}
