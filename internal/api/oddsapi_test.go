package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"nfl-odds-bot/internal/odds"
)

const oddsBody = `[
	{
		"id": "g1",
		"sport_key": "americanfootball_nfl",
		"commence_time": "2024-09-08T17:00:00Z",
		"home_team": "Buffalo Bills",
		"away_team": "Kansas City Chiefs",
		"bookmakers": [
			{
				"key": "draftkings",
				"title": "DraftKings",
				"last_update": "2024-09-07T12:00:00Z",
				"markets": [
					{"key": "h2h", "outcomes": [
						{"name": "Kansas City Chiefs", "price": 150},
						{"name": "Buffalo Bills", "price": -180}
					]}
				]
			}
		]
	}
]`

func TestOddsURL(t *testing.T) {
	c := NewOddsClient("secret", WithBaseURL("https://example.test/v4/"))

	u, err := url.Parse(c.OddsURL("fanduel"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if u.Path != "/v4/sports/americanfootball_nfl/odds/" {
		t.Errorf("path = %q", u.Path)
	}

	q := u.Query()
	want := map[string]string{
		"regions":    "us",
		"oddsFormat": "american",
		"bookmakers": "fanduel",
		"markets":    "h2h,spreads,totals",
		"apiKey":     "secret",
	}
	for k, v := range want {
		if got := q.Get(k); got != v {
			t.Errorf("query %s = %q, want %q", k, got, v)
		}
	}
}

func TestGetOdds(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		gotQuery = r.URL.Query()
		w.Header().Set("X-Requests-Remaining", "482")
		w.Header().Set("X-Requests-Used", "18")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(oddsBody))
	}))
	defer srv.Close()

	c := NewOddsClient("key", WithBaseURL(srv.URL), WithHTTPClient(NewClient(time.Second)))
	res, err := c.GetOdds(context.Background(), "draftkings")
	if err != nil {
		t.Fatalf("GetOdds: %v", err)
	}

	if gotQuery.Get("bookmakers") != "draftkings" {
		t.Errorf("bookmakers = %q", gotQuery.Get("bookmakers"))
	}
	if len(res.Games) != 1 {
		t.Fatalf("got %d games, want 1", len(res.Games))
	}
	book, ok := res.Games[0].Bookmaker("draftkings")
	if !ok {
		t.Fatal("expected draftkings")
	}
	h2h, ok := book.Market(odds.MarketH2H)
	if !ok || h2h.Outcomes.Side0().Price != 150 {
		t.Errorf("h2h = %+v", h2h)
	}

	if !res.Quota.Known || res.Quota.Remaining != 482 || res.Quota.Used != 18 {
		t.Errorf("quota = %+v", res.Quota)
	}
}

func TestGetOddsQuotaMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	res, err := NewOddsClient("key", WithBaseURL(srv.URL)).GetOdds(context.Background(), "draftkings")
	if err != nil {
		t.Fatalf("GetOdds: %v", err)
	}
	if res.Quota.Known {
		t.Errorf("quota should be unknown, got %+v", res.Quota)
	}
	if len(res.Games) != 0 {
		t.Errorf("got %d games, want 0", len(res.Games))
	}
}

func TestGetOddsErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantBody   string
	}{
		{"Unauthorized", http.StatusUnauthorized, `{"message":"API key is not valid"}`, 401, "API key is not valid"},
		{"Quota exhausted", http.StatusTooManyRequests, `{"message":"quota"}`, 429, "quota"},
		{"Server error", http.StatusInternalServerError, "boom", 500, "boom"},
		{"Bad JSON", http.StatusOK, `{"not":"a list"}`, 200, ""},
		{"Three-way market", http.StatusOK, `[{"id":"x","bookmakers":[{"key":"dk","markets":[{"key":"h2h","outcomes":[{"name":"a","price":1},{"name":"b","price":1},{"name":"c","price":1}]}]}]}]`, 200, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewOddsClient("key", WithBaseURL(srv.URL)).GetOdds(context.Background(), "draftkings")

			var fe *FetchError
			if !errors.As(err, &fe) {
				t.Fatalf("err = %v, want *FetchError", err)
			}
			if fe.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", fe.StatusCode, tt.wantStatus)
			}
			if !strings.Contains(fe.Body, tt.wantBody) {
				t.Errorf("Body = %q, want to contain %q", fe.Body, tt.wantBody)
			}
		})
	}
}

func TestGetOddsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	_, err := NewOddsClient("key", WithBaseURL(addr)).GetOdds(context.Background(), "draftkings")

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want *FetchError", err)
	}
	if fe.StatusCode != 0 || fe.Err == nil {
		t.Errorf("FetchError = %+v, want transport error", fe)
	}
}

func TestGetSports(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sports" {
			t.Errorf("path = %q, want /sports", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"key":"americanfootball_nfl","group":"American Football","title":"NFL","description":"US Football","active":true,"has_outrights":false}]`))
	}))
	defer srv.Close()

	sports, err := NewOddsClient("key", WithBaseURL(srv.URL)).GetSports(context.Background())
	if err != nil {
		t.Fatalf("GetSports: %v", err)
	}
	if len(sports) != 1 || sports[0].Key != "americanfootball_nfl" || !sports[0].Active {
		t.Errorf("sports = %+v", sports)
	}
}

func TestFetchErrorMessage(t *testing.T) {
	err := &FetchError{StatusCode: 401, Body: "bad key"}
	if got := err.Error(); !strings.Contains(got, "401") || !strings.Contains(got, "bad key") {
		t.Errorf("Error() = %q", got)
	}

	inner := errors.New("dial tcp: refused")
	err = &FetchError{Err: inner}
	if !errors.Is(err, inner) {
		t.Error("FetchError should unwrap to the transport error")
	}
}
