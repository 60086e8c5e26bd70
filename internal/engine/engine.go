package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nfl-odds-bot/internal/alerts"
	"nfl-odds-bot/internal/api"
	"nfl-odds-bot/internal/config"
	"nfl-odds-bot/internal/format"
	"nfl-odds-bot/internal/metrics"
	"nfl-odds-bot/internal/odds"
	"nfl-odds-bot/internal/season"
)

// Stages reported on failure.
const (
	StageFetch  = "fetch"
	StageNotify = "notify"
)

// OddsFetcher returns the current odds for one bookmaker.
type OddsFetcher interface {
	GetOdds(ctx context.Context, bookmaker string) (api.OddsResult, error)
}

// MessageSender delivers a formatted message.
type MessageSender interface {
	Notify(ctx context.Context, msg string) error
}

// Engine runs one fetch, filter, format, send cycle.
type Engine struct {
	cfg       config.Config
	fetcher   OddsFetcher
	sender    MessageSender
	formatter *format.Formatter
	metrics   *metrics.Recorder
	logger    *zap.Logger
	now       func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source used to pick the season week.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithMetrics sets the recorder; by default a recorder with no gateway is used.
func WithMetrics(r *metrics.Recorder) Option {
	return func(e *Engine) { e.metrics = r }
}

// New creates a new Engine with all dependencies.
func New(
	cfg config.Config,
	fetcher OddsFetcher,
	sender MessageSender,
	formatter *format.Formatter,
	logger *zap.Logger,
	opts ...Option,
) *Engine {
	e := &Engine{
		cfg:       cfg,
		fetcher:   fetcher,
		sender:    sender,
		formatter: formatter,
		metrics:   metrics.NewRecorder(""),
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FromConfig wires the production odds client, Discord notifier, formatter
// and metrics recorder from cfg.
func FromConfig(cfg config.Config, logger *zap.Logger) (*Engine, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("loading timezone: %w", err)
	}

	httpClient := api.NewClient(cfg.HTTPTimeout)
	fetcher := api.NewOddsClient(cfg.OddsAPIKey,
		api.WithBaseURL(cfg.OddsBaseURL),
		api.WithSport(cfg.Sport),
		api.WithHTTPClient(httpClient),
		api.WithLogger(logger),
	)
	notifier := alerts.NewNotifier(cfg.DiscordWebhookURL, httpClient, logger)

	return New(cfg, fetcher, notifier, format.NewFormatter(cfg.Bookmaker, loc), logger,
		WithMetrics(metrics.NewRecorder(cfg.PushgatewayURL)),
	), nil
}

// Result summarises a run.
type Result struct {
	RunID    string
	Week     int
	Fetched  int
	Filtered int
	Message  string
	Sent     bool
}

// Run performs a single cycle: compute the week, fetch odds, keep this week's
// games, format them and post the message. The first failure ends the run
// and is returned; errors.As finds *api.FetchError or *alerts.NotifyError.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	started := e.now()
	res := Result{RunID: uuid.NewString()}
	log := e.logger.With(zap.String("run_id", res.RunID))

	res.Week = season.WeekNumber(started, e.cfg.SeasonStart)
	weekStart, weekEnd := season.WeekRange(e.cfg.SeasonStart, res.Week)
	e.metrics.SetWeek(res.Week)
	log.Info("run started",
		zap.Int("week", res.Week),
		zap.String("week_start", weekStart.Format(time.DateOnly)),
		zap.String("week_end", weekEnd.Format(time.DateOnly)),
		zap.String("bookmaker", e.cfg.Bookmaker),
	)

	oddsRes, err := e.fetcher.GetOdds(ctx, e.cfg.Bookmaker)
	if err != nil {
		e.fail(ctx, log, StageFetch, started, err)
		return res, fmt.Errorf("fetching odds: %w", err)
	}
	res.Fetched = len(oddsRes.Games)
	e.metrics.SetGamesFetched(res.Fetched)
	if oddsRes.Quota.Known {
		e.metrics.SetRequestsRemaining(oddsRes.Quota.Remaining)
	}

	games := odds.FilterToWeek(oddsRes.Games, res.Week, e.cfg.SeasonStart)
	res.Filtered = len(games)
	e.metrics.SetGamesPosted(res.Filtered)
	log.Info("filtered games to week",
		zap.Int("fetched", res.Fetched),
		zap.Int("in_week", res.Filtered),
		zap.Int("with_bookmaker", odds.BookmakerCount(games, e.cfg.Bookmaker)),
	)

	res.Message = e.formatter.Format(games)

	if e.cfg.DryRun {
		log.Info("dry run, message not sent", zap.String("message", res.Message))
	} else {
		if err := e.sender.Notify(ctx, res.Message); err != nil {
			e.fail(ctx, log, StageNotify, started, err)
			return res, fmt.Errorf("sending message: %w", err)
		}
		res.Sent = true
	}

	finished := e.now()
	e.metrics.Finished(finished.Sub(started))
	e.metrics.Succeeded(finished)
	e.push(ctx, log)

	log.Info("run complete", zap.Duration("elapsed", finished.Sub(started)), zap.Bool("sent", res.Sent))
	return res, nil
}

func (e *Engine) fail(ctx context.Context, log *zap.Logger, stage string, started time.Time, err error) {
	log.Error("run failed", zap.String("stage", stage), zap.Error(err))
	e.metrics.Failed(stage)
	e.metrics.Finished(e.now().Sub(started))
	e.push(ctx, log)
}

func (e *Engine) push(ctx context.Context, log *zap.Logger) {
	if err := e.metrics.Push(ctx); err != nil {
		log.Warn("metrics push failed", zap.Error(err))
	}
}
