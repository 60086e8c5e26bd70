package odds

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// MarketKey identifies a betting market as named by the odds provider.
type MarketKey string

const (
	MarketH2H     MarketKey = "h2h"     // Moneyline
	MarketSpreads MarketKey = "spreads" // Point spread
	MarketTotals  MarketKey = "totals"  // Over/under
)

// ErrOutcomeCount is returned when a market does not carry exactly two outcomes.
var ErrOutcomeCount = errors.New("market must have exactly two outcomes")

// Game is a single scheduled matchup with the odds offered on it.
type Game struct {
	ID           string      `json:"id"`
	SportKey     string      `json:"sport_key"`
	SportTitle   string      `json:"sport_title,omitempty"`
	CommenceTime time.Time   `json:"commence_time"` // UTC
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

// Bookmaker returns the offer from the sportsbook with the given key.
func (g Game) Bookmaker(key string) (Bookmaker, bool) {
	for _, b := range g.Bookmakers {
		if b.Key == key {
			return b, true
		}
	}
	return Bookmaker{}, false
}

// Bookmaker is one sportsbook's set of markets for a game.
type Bookmaker struct {
	Key        string    `json:"key"`
	Title      string    `json:"title"`
	LastUpdate time.Time `json:"last_update"`
	Markets    []Market  `json:"markets"`
}

// Market returns the market with the given key, if the book offers it.
func (b Bookmaker) Market(key MarketKey) (Market, bool) {
	for _, m := range b.Markets {
		if m.Key == key {
			return m, true
		}
	}
	return Market{}, false
}

// Market holds both sides of a single bet type.
type Market struct {
	Key        MarketKey   `json:"key"`
	LastUpdate time.Time   `json:"last_update"`
	Outcomes   OutcomePair `json:"outcomes"`
}

// Outcome is one side of a market.
type Outcome struct {
	Name  string   `json:"name"`
	Price int      `json:"price"`           // American odds (e.g., -110, +150)
	Point *float64 `json:"point,omitempty"` // Spread or total line; absent for h2h
}

// OutcomePair holds the two sides of a market in provider order.
//
// The provider does not keep the order stable per team: Side0 may be the home
// team in one market and the away team in the next. Consumers render sides
// positionally and must not assume which team sits where.
type OutcomePair struct {
	side0 Outcome
	side1 Outcome
}

// NewOutcomePair builds a pair in the given order.
func NewOutcomePair(side0, side1 Outcome) OutcomePair {
	return OutcomePair{side0: side0, side1: side1}
}

// Side0 returns the first outcome as listed by the provider.
func (p OutcomePair) Side0() Outcome { return p.side0 }

// Side1 returns the second outcome as listed by the provider.
func (p OutcomePair) Side1() Outcome { return p.side1 }

// UnmarshalJSON decodes a two-element outcome array.
func (p *OutcomePair) UnmarshalJSON(data []byte) error {
	var outcomes []Outcome
	if err := json.Unmarshal(data, &outcomes); err != nil {
		return err
	}
	if len(outcomes) != 2 {
		return fmt.Errorf("%w, got %d", ErrOutcomeCount, len(outcomes))
	}
	p.side0, p.side1 = outcomes[0], outcomes[1]
	return nil
}

// MarshalJSON encodes the pair back into the provider's array form.
func (p OutcomePair) MarshalJSON() ([]byte, error) {
	return json.Marshal([]Outcome{p.side0, p.side1})
}
