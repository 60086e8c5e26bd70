// Package metrics records per-run gauges for the odds job and pushes them to
// a Prometheus Pushgateway. The job exits after one run, so there is nothing
// to scrape; without a gateway URL the recorder only keeps values in memory.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// JobName groups pushed series in the gateway.
const JobName = "nfl_odds_bot"

// Recorder holds the gauges for a single run.
type Recorder struct {
	registry *prometheus.Registry
	pushURL  string

	week              prometheus.Gauge
	gamesFetched      prometheus.Gauge
	gamesPosted       prometheus.Gauge
	requestsRemaining prometheus.Gauge
	runDuration       prometheus.Gauge
	lastSuccess       prometheus.Gauge
	failures          *prometheus.CounterVec
}

// NewRecorder creates a recorder with its own registry. pushURL may be empty.
func NewRecorder(pushURL string) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		pushURL:  pushURL,
		week: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "nfl_odds_week",
			Help: "Season week the last run posted",
		}),
		gamesFetched: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "nfl_odds_games_fetched",
			Help: "Games returned by the odds provider",
		}),
		gamesPosted: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "nfl_odds_games_posted",
			Help: "Games left after filtering to the current week",
		}),
		requestsRemaining: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "nfl_odds_api_requests_remaining",
			Help: "Odds API quota remaining as reported by the provider",
		}),
		runDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "nfl_odds_run_duration_seconds",
			Help: "Wall time of the last run",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "nfl_odds_last_success_timestamp_seconds",
			Help: "Unix time of the last run that delivered its message",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nfl_odds_failures_total",
			Help: "Failed runs by stage",
		}, []string{"stage"}),
	}

	r.registry.MustRegister(
		r.week, r.gamesFetched, r.gamesPosted, r.requestsRemaining,
		r.runDuration, r.lastSuccess, r.failures,
	)
	return r
}

// Registry exposes the underlying registry, e.g. for tests or a local dump.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) SetWeek(week int)           { r.week.Set(float64(week)) }
func (r *Recorder) SetGamesFetched(n int)      { r.gamesFetched.Set(float64(n)) }
func (r *Recorder) SetGamesPosted(n int)       { r.gamesPosted.Set(float64(n)) }
func (r *Recorder) SetRequestsRemaining(n int) { r.requestsRemaining.Set(float64(n)) }
func (r *Recorder) Failed(stage string)        { r.failures.WithLabelValues(stage).Inc() }
func (r *Recorder) Finished(d time.Duration)   { r.runDuration.Set(d.Seconds()) }
func (r *Recorder) Succeeded(at time.Time)     { r.lastSuccess.Set(float64(at.Unix())) }

// Push sends the current values to the Pushgateway, replacing the job's
// previous group. It is a no-op when no gateway is configured.
func (r *Recorder) Push(ctx context.Context) error {
	if r.pushURL == "" {
		return nil
	}
	if err := push.New(r.pushURL, JobName).Gatherer(r.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("pushing metrics: %w", err)
	}
	return nil
}
