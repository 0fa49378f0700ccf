package stats

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/jakekohl/portfolio/cfg"
	githubapi "github.com/jakekohl/portfolio/internal/github_api"
	"github.com/jakekohl/portfolio/internal/limiter"
	"github.com/jakekohl/portfolio/internal/model"
	kafkapkg "github.com/jakekohl/portfolio/pkg/kafka"
	"github.com/jakekohl/portfolio/pkg/log"
)

// Fetcher is the upstream contribution provider. githubapi.Caller is the
// real implementation; tests substitute a fake.
type Fetcher interface {
	CallViewer(ctx context.Context) (string, error)
	CallContributions(ctx context.Context, username string, from, to time.Time) ([]githubapi.ContributionDay, error)
}

// IngestResult reports what a successful ingestion wrote.
type IngestResult struct {
	Status             string
	Year               int
	ContributionsCount int
	TotalContributions int
	LastUpdated        time.Time
}

// ValidateSecret checks the ingestion secret. A missing server-side secret is
// an operator error, not an authorization failure, and is reported first.
// The comparison is constant time.
func ValidateSecret(configured, provided string) error {
	if configured == "" {
		return ErrSecretNotConfigured
	}
	if provided == "" || subtle.ConstantTimeCompare([]byte(configured), []byte(provided)) != 1 {
		return ErrUnauthorized
	}
	return nil
}

// Ingester is the gatekeeper for refreshing contribution data: it validates
// the shared secret, enforces the ingestion cooldown, pulls a full calendar
// year from the upstream provider and replaces that year in the store. The
// store is never touched on any failure path.
type Ingester struct {
	Logger      log.Logger
	Config      *cfg.Config
	Store       Store
	Fetcher     Fetcher
	Tracker     *FreshnessTracker
	rateLimiter *limiter.RateLimiter
	producer    *kafkapkg.Producer

	// now is swappable for tests
	now func() time.Time
}

func NewIngester(logger log.Logger, config *cfg.Config, store Store, fetcher Fetcher, tracker *FreshnessTracker) (*Ingester, error) {
	rps := config.GithubApi.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}

	return &Ingester{
		Logger:      logger,
		Config:      config,
		Store:       store,
		Fetcher:     fetcher,
		Tracker:     tracker,
		rateLimiter: limiter.NewRateLimiter(rps),
		now:         time.Now,
	}, nil
}

// WithProducer attaches a kafka producer; every successful ingestion then
// publishes a per-year snapshot event.
func (g *Ingester) WithProducer(producer *kafkapkg.Producer) *Ingester {
	g.producer = producer
	return g
}

// Ingest refreshes one calendar year of contribution data. year == 0 means
// the current year; an explicit year is a backfill and skips the cooldown.
func (g *Ingester) Ingest(ctx context.Context, providedSecret string, year int) (*IngestResult, error) {
	if err := ValidateSecret(g.Config.GithubStats.Secret, providedSecret); err != nil {
		return nil, err
	}

	backfill := year != 0
	if !backfill {
		year = g.now().UTC().Year()

		if err := g.checkCooldown(); err != nil {
			return nil, err
		}
	}

	// Pace outbound calls against the shared limiter
	throttle := time.Duration(g.Config.GithubApi.ThrottleDelay) * time.Millisecond
	for !g.rateLimiter.Allow() {
		time.Sleep(throttle)
	}

	username, err := g.Fetcher.CallViewer(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)

	for !g.rateLimiter.Allow() {
		time.Sleep(throttle)
	}

	fetched, err := g.Fetcher.CallContributions(ctx, username, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	days := make([]model.ContributionDay, 0, len(fetched))
	total := 0
	for _, d := range fetched {
		days = append(days, model.ContributionDay{
			Date:  d.Date,
			Count: d.ContributionCount,
		})
		total += d.ContributionCount
	}

	now := g.now().UTC()
	rec := YearRecord{
		Year:               year,
		Username:           username,
		Contributions:      days,
		TotalContributions: total,
		LastUpdated:        now,
	}

	if err := g.Store.PutYear(rec); err != nil {
		return nil, fmt.Errorf("failed to store contributions for %d: %w", year, err)
	}

	g.Tracker.RecordSuccess(now)
	g.Logger.Info(ctx, "Ingested %d contribution days for %s, year %d, total %d", len(days), username, year, total)

	g.publishSnapshot(ctx, rec)

	return &IngestResult{
		Status:             "updated",
		Year:               year,
		ContributionsCount: len(days),
		TotalContributions: total,
		LastUpdated:        now,
	}, nil
}

// checkCooldown blocks back-to-back ingestions outside the dev environment.
func (g *Ingester) checkCooldown() error {
	if g.Config.App.Env == "dev" {
		return nil
	}

	cooldown := time.Duration(g.Config.GithubStats.CooldownMinutes) * time.Minute
	if cooldown <= 0 {
		return nil
	}

	last, ok := g.Tracker.Get()
	if !ok {
		// Fall back to the store so restarts do not reset the window
		stored, err := g.Store.LastUpdated()
		if err != nil || stored.IsZero() {
			return nil
		}
		last = stored
	}

	elapsed := g.now().UTC().Sub(last)
	if elapsed < cooldown {
		return &CooldownError{Remaining: cooldown - elapsed}
	}

	return nil
}

func (g *Ingester) publishSnapshot(ctx context.Context, rec YearRecord) {
	if g.producer == nil {
		return
	}

	msg := model.StatsIngestedMessage{
		Year:               rec.Year,
		Username:           rec.Username,
		ContributionsCount: len(rec.Contributions),
		TotalContributions: rec.TotalContributions,
		LastUpdated:        rec.LastUpdated.Format(time.RFC3339),
	}

	// Publishing is best effort; the store is already consistent
	if err := g.producer.Publish(ctx, "github-stats", msg); err != nil {
		g.Logger.Error(ctx, "Failed to publish ingestion event: %v", err)
	}
}
