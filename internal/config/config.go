package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // Lambda images ship without zoneinfo

	"github.com/joho/godotenv"
)

// Defaults for configuration values.
const (
	DefaultBookmaker   = "draftkings"
	DefaultTimezone    = "America/New_York"
	DefaultSport       = "americanfootball_nfl"
	DefaultOddsBaseURL = "https://api.the-odds-api.com/v4"
	DefaultHTTPTimeout = 10 * time.Second
	DefaultLogLevel    = "info"
	DefaultEnv         = "production"

	// DateLayout is the format of NFL_START_DATE.
	DateLayout = time.DateOnly
)

// Config holds all application configuration. It is loaded once per run and
// passed by value.
type Config struct {
	OddsAPIKey        string
	DiscordWebhookURL string

	// Season start; zero if NFL_START_DATE was missing or malformed.
	SeasonStart    time.Time
	SeasonStartRaw string

	Bookmaker   string
	Timezone    string
	Sport       string
	OddsBaseURL string
	HTTPTimeout time.Duration

	LogLevel       string
	LogFile        string
	Env            string
	PushgatewayURL string

	// Log the message instead of posting it
	DryRun bool
}

// Load reads configuration from environment variables (and .env file if present).
func Load() Config {
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	cfg := Config{
		OddsAPIKey:        os.Getenv("ODDS_API_KEY"),
		DiscordWebhookURL: os.Getenv("DISCORD_BOT_URL"),
		SeasonStartRaw:    strings.TrimSpace(os.Getenv("NFL_START_DATE")),
		Bookmaker:         getEnv("BOOKMAKER", DefaultBookmaker),
		Timezone:          getEnv("TIMEZONE", DefaultTimezone),
		Sport:             getEnv("ODDS_SPORT", DefaultSport),
		OddsBaseURL:       getEnv("ODDS_API_BASE_URL", DefaultOddsBaseURL),
		HTTPTimeout:       DefaultHTTPTimeout,
		LogLevel:          getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFile:           os.Getenv("LOG_FILE"),
		Env:               getEnv("APP_ENV", DefaultEnv),
		PushgatewayURL:    os.Getenv("PUSHGATEWAY_URL"),
		DryRun:            os.Getenv("DRY_RUN") == "true",
	}

	if cfg.SeasonStartRaw != "" {
		if t, err := time.Parse(DateLayout, cfg.SeasonStartRaw); err == nil {
			cfg.SeasonStart = t
		}
	}

	if v := os.Getenv("HTTP_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.HTTPTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	return cfg
}

// Validate checks that required values are present and well formed.
func Validate(cfg Config) error {
	var errs []error

	if cfg.OddsAPIKey == "" {
		errs = append(errs, errors.New("ODDS_API_KEY is required"))
	}
	if cfg.DiscordWebhookURL == "" && !cfg.DryRun {
		errs = append(errs, errors.New("DISCORD_BOT_URL is required unless DRY_RUN=true"))
	}
	if cfg.DiscordWebhookURL != "" {
		if u, err := url.Parse(cfg.DiscordWebhookURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("DISCORD_BOT_URL must be an absolute URL, got %q", cfg.DiscordWebhookURL))
		}
	}
	if cfg.SeasonStart.IsZero() {
		errs = append(errs, fmt.Errorf("NFL_START_DATE must be a %s date, got %q", DateLayout, cfg.SeasonStartRaw))
	}
	if cfg.Bookmaker == "" {
		errs = append(errs, errors.New("BOOKMAKER must not be empty"))
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE %q is not a known zone: %w", cfg.Timezone, err))
	}
	if cfg.HTTPTimeout < 100*time.Millisecond {
		errs = append(errs, fmt.Errorf("HTTP_TIMEOUT_MS must be at least 100ms, got %v", cfg.HTTPTimeout))
	}

	return errors.Join(errs...)
}

// Location resolves the display timezone.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Summary renders the non-secret settings for a startup log line.
func (c Config) Summary() string {
	return fmt.Sprintf("start=%s book=%s tz=%s sport=%s dry_run=%t",
		c.SeasonStartRaw, c.Bookmaker, c.Timezone, c.Sport, c.DryRun)
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
