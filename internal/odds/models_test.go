package odds

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

const sampleGameJSON = `{
	"id": "e912304de2b2ce35b473ce2ecd3d1502",
	"sport_key": "americanfootball_nfl",
	"sport_title": "NFL",
	"commence_time": "2024-09-06T00:20:00Z",
	"home_team": "Kansas City Chiefs",
	"away_team": "Baltimore Ravens",
	"bookmakers": [
		{
			"key": "draftkings",
			"title": "DraftKings",
			"last_update": "2024-09-05T18:00:00Z",
			"markets": [
				{
					"key": "h2h",
					"last_update": "2024-09-05T18:00:00Z",
					"outcomes": [
						{"name": "Baltimore Ravens", "price": 124},
						{"name": "Kansas City Chiefs", "price": -148}
					]
				},
				{
					"key": "spreads",
					"last_update": "2024-09-05T18:00:00Z",
					"outcomes": [
						{"name": "Baltimore Ravens", "price": -110, "point": 3},
						{"name": "Kansas City Chiefs", "price": -110, "point": -3}
					]
				},
				{
					"key": "totals",
					"last_update": "2024-09-05T18:00:00Z",
					"outcomes": [
						{"name": "Over", "price": -110, "point": 46.5},
						{"name": "Under", "price": -110, "point": 46.5}
					]
				}
			]
		}
	]
}`

func TestDecodeGame(t *testing.T) {
	var g Game
	if err := json.Unmarshal([]byte(sampleGameJSON), &g); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if g.AwayTeam != "Baltimore Ravens" || g.HomeTeam != "Kansas City Chiefs" {
		t.Errorf("teams = %q @ %q", g.AwayTeam, g.HomeTeam)
	}
	want := time.Date(2024, time.September, 6, 0, 20, 0, 0, time.UTC)
	if !g.CommenceTime.Equal(want) {
		t.Errorf("CommenceTime = %v, want %v", g.CommenceTime, want)
	}

	book, ok := g.Bookmaker("draftkings")
	if !ok {
		t.Fatal("expected draftkings bookmaker")
	}

	h2h, ok := book.Market(MarketH2H)
	if !ok {
		t.Fatal("expected h2h market")
	}
	if got := h2h.Outcomes.Side0(); got.Name != "Baltimore Ravens" || got.Price != 124 || got.Point != nil {
		t.Errorf("h2h side0 = %+v", got)
	}
	if got := h2h.Outcomes.Side1(); got.Name != "Kansas City Chiefs" || got.Price != -148 {
		t.Errorf("h2h side1 = %+v", got)
	}

	totals, ok := book.Market(MarketTotals)
	if !ok {
		t.Fatal("expected totals market")
	}
	if p := totals.Outcomes.Side0().Point; p == nil || *p != 46.5 {
		t.Errorf("totals point = %v, want 46.5", p)
	}
}

func TestBookmakerMissing(t *testing.T) {
	g := Game{Bookmakers: []Bookmaker{{Key: "fanduel"}}}
	if _, ok := g.Bookmaker("draftkings"); ok {
		t.Error("expected no draftkings bookmaker")
	}
	if _, ok := (Bookmaker{}).Market(MarketSpreads); ok {
		t.Error("expected no spreads market")
	}
}

func TestOutcomePairRejectsWrongCount(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Empty", `[]`},
		{"One side", `[{"name": "Over", "price": -110}]`},
		{"Three way", `[{"name": "A", "price": 100}, {"name": "B", "price": 100}, {"name": "Draw", "price": 250}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p OutcomePair
			err := json.Unmarshal([]byte(tt.data), &p)
			if !errors.Is(err, ErrOutcomeCount) {
				t.Errorf("err = %v, want ErrOutcomeCount", err)
			}
		})
	}
}

func TestOutcomePairMarshal(t *testing.T) {
	p := NewOutcomePair(Outcome{Name: "Over", Price: -105}, Outcome{Name: "Under", Price: -115})

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `[{"name":"Over","price":-105},{"name":"Under","price":-115}]`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}
}
