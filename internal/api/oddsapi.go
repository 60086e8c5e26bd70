package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"nfl-odds-bot/internal/odds"
)

const (
	DefaultBaseURL = "https://api.the-odds-api.com/v4"
	DefaultSport   = "americanfootball_nfl"

	region     = "us"
	oddsFormat = "american"

	headerRequestsRemaining = "x-requests-remaining"
	headerRequestsUsed      = "x-requests-used"
)

// DefaultMarkets are requested on every odds call.
var DefaultMarkets = []odds.MarketKey{odds.MarketH2H, odds.MarketSpreads, odds.MarketTotals}

// OddsClient handles API communication with The Odds API
type OddsClient struct {
	apiKey  string
	baseURL string
	sport   string
	client  *Client
	logger  *zap.Logger
}

// Option configures an OddsClient.
type Option func(*OddsClient)

// WithBaseURL points the client at a different API root, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(c *OddsClient) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithSport selects the sport key, e.g. "americanfootball_nfl".
func WithSport(sport string) Option {
	return func(c *OddsClient) { c.sport = sport }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *Client) Option {
	return func(c *OddsClient) { c.client = client }
}

// WithLogger sets the logger used for quota reporting.
func WithLogger(logger *zap.Logger) Option {
	return func(c *OddsClient) { c.logger = logger }
}

// NewOddsClient creates a new API client
func NewOddsClient(apiKey string, opts ...Option) *OddsClient {
	c := &OddsClient{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		sport:   DefaultSport,
		client:  NewClient(DefaultTimeout),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Quota is the provider's request allowance as reported in response headers.
type Quota struct {
	Remaining int
	Used      int
	Known     bool // false when the headers were missing or malformed
}

// OddsResult is the outcome of a successful odds request.
type OddsResult struct {
	Games []odds.Game
	Quota Quota
}

// Sport is an entry from the provider's sport listing.
type Sport struct {
	Key          string `json:"key"`
	Group        string `json:"group"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Active       bool   `json:"active"`
	HasOutrights bool   `json:"has_outrights"`
}

// OddsURL builds the odds request URL for a single bookmaker.
func (c *OddsClient) OddsURL(bookmaker string) string {
	markets := make([]string, len(DefaultMarkets))
	for i, m := range DefaultMarkets {
		markets[i] = string(m)
	}

	params := url.Values{}
	params.Set("regions", region)
	params.Set("oddsFormat", oddsFormat)
	params.Set("bookmakers", bookmaker)
	params.Set("markets", strings.Join(markets, ","))
	params.Set("apiKey", c.apiKey)

	return fmt.Sprintf("%s/sports/%s/odds/?%s", c.baseURL, url.PathEscape(c.sport), params.Encode())
}

// GetOdds fetches upcoming games with h2h, spread, and total markets from one
// bookmaker. Any failure is returned as a *FetchError.
func (c *OddsClient) GetOdds(ctx context.Context, bookmaker string) (OddsResult, error) {
	resp, err := c.client.Get(ctx, c.OddsURL(bookmaker), nil)
	if err != nil {
		return OddsResult{}, &FetchError{Err: err}
	}

	if !resp.OK() {
		return OddsResult{}, &FetchError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}

	quota := parseQuota(resp)
	c.logger.Info("odds api quota",
		zap.String("remaining", resp.Header.Get(headerRequestsRemaining)),
		zap.String("used", resp.Header.Get(headerRequestsUsed)),
	)

	var games []odds.Game
	if err := json.Unmarshal(resp.Body, &games); err != nil {
		return OddsResult{}, &FetchError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("parsing odds response: %w", err),
		}
	}

	return OddsResult{Games: games, Quota: quota}, nil
}

// GetSports lists the sports the provider currently has in season.
func (c *OddsClient) GetSports(ctx context.Context) ([]Sport, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)

	resp, err := c.client.Get(ctx, fmt.Sprintf("%s/sports?%s", c.baseURL, params.Encode()), nil)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	if !resp.OK() {
		return nil, &FetchError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}

	var sports []Sport
	if err := json.Unmarshal(resp.Body, &sports); err != nil {
		return nil, &FetchError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("parsing sports response: %w", err),
		}
	}
	return sports, nil
}

func parseQuota(resp *Response) Quota {
	remaining, err := strconv.Atoi(strings.TrimSpace(resp.Header.Get(headerRequestsRemaining)))
	if err != nil {
		return Quota{}
	}
	used, _ := strconv.Atoi(strings.TrimSpace(resp.Header.Get(headerRequestsUsed)))
	return Quota{Remaining: remaining, Used: used, Known: true}
}
