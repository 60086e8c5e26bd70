package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"nfl-odds-bot/internal/season"
)

func main() {
	_ = godotenv.Load()

	start := flag.String("start", os.Getenv("NFL_START_DATE"), "season start date (YYYY-MM-DD)")
	date := flag.String("date", "", "date to check (YYYY-MM-DD, default today UTC)")
	flag.Parse()

	seasonStart, err := time.Parse(time.DateOnly, *start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad start date %q: %v\n", *start, err)
		os.Exit(2)
	}

	current := time.Now().UTC()
	if *date != "" {
		if current, err = time.Parse(time.DateOnly, *date); err != nil {
			fmt.Fprintf(os.Stderr, "bad date %q: %v\n", *date, err)
			os.Exit(2)
		}
	}

	week := season.WeekNumber(current, seasonStart)
	from, to := season.WeekRange(seasonStart, week)
	fmt.Printf("%s -> week %d (%s .. %s)\n",
		current.Format(time.DateOnly), week, from.Format(time.DateOnly), to.Format(time.DateOnly))
}
