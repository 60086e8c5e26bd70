package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"nfl-odds-bot/internal/api"
)

func main() {
	_ = godotenv.Load()
	client := api.NewOddsClient(os.Getenv("ODDS_API_KEY"))

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	sports, err := client.GetSports(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, s := range sports {
		marker := ""
		if s.Key == api.DefaultSport {
			marker = " <-- configured default"
		}
		fmt.Printf("  %-35s %-20s active=%v%s\n", s.Key, s.Title, s.Active, marker)
	}
}
