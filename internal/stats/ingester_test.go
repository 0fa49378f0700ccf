package stats

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakekohl/portfolio/cfg"
	githubapi "github.com/jakekohl/portfolio/internal/github_api"
	"github.com/jakekohl/portfolio/pkg/log"
)

// fakeFetcher is a canned upstream for ingestion tests.
type fakeFetcher struct {
	login      string
	days       []githubapi.ContributionDay
	viewerErr  error
	fetchErr   error
	fetchCalls int
	lastFrom   time.Time
	lastTo     time.Time
}

func (f *fakeFetcher) CallViewer(ctx context.Context) (string, error) {
	if f.viewerErr != nil {
		return "", f.viewerErr
	}
	return f.login, nil
}

func (f *fakeFetcher) CallContributions(ctx context.Context, username string, from, to time.Time) ([]githubapi.ContributionDay, error) {
	f.fetchCalls++
	f.lastFrom = from
	f.lastTo = to
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.days, nil
}

func testConfig(t *testing.T) *cfg.Config {
	t.Helper()
	loader, err := cfg.NewMockLoader()
	require.NoError(t, err)
	config, err := loader.Load()
	require.NoError(t, err)
	return config
}

func testLogger(t *testing.T) log.Logger {
	t.Helper()
	logger, err := log.NewLogger("console", "debug")
	require.NoError(t, err)
	return logger
}

func newTestIngester(t *testing.T, config *cfg.Config, store Store, fetcher Fetcher) *Ingester {
	t.Helper()
	ingester, err := NewIngester(testLogger(t), config, store, fetcher, NewFreshnessTracker())
	require.NoError(t, err)
	return ingester
}

func TestValidateSecret(t *testing.T) {
	t.Run("no configured secret reports configuration error", func(t *testing.T) {
		assert.ErrorIs(t, ValidateSecret("", ""), ErrSecretNotConfigured)
		assert.ErrorIs(t, ValidateSecret("", "anything"), ErrSecretNotConfigured)
	})

	t.Run("missing or wrong secret is unauthorized", func(t *testing.T) {
		assert.ErrorIs(t, ValidateSecret("s3cret", ""), ErrUnauthorized)
		assert.ErrorIs(t, ValidateSecret("s3cret", "wrong"), ErrUnauthorized)
		assert.ErrorIs(t, ValidateSecret("s3cret", "s3cret "), ErrUnauthorized)
	})

	t.Run("matching secret passes", func(t *testing.T) {
		assert.NoError(t, ValidateSecret("s3cret", "s3cret"))
	})
}

func TestIngest(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the fetched year and totals the counts", func(t *testing.T) {
		config := testConfig(t)
		store := NewMemoryStore()
		fetcher := &fakeFetcher{
			login: "jakekohl",
			days: []githubapi.ContributionDay{
				{Date: "2025-01-01", ContributionCount: 3},
				{Date: "2025-01-02", ContributionCount: 0},
				{Date: "2025-01-03", ContributionCount: 7},
			},
		}

		ingester := newTestIngester(t, config, store, fetcher)
		frozen := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
		ingester.now = func() time.Time { return frozen }

		result, err := ingester.Ingest(ctx, "test-secret", 0)
		require.NoError(t, err)

		assert.Equal(t, "updated", result.Status)
		assert.Equal(t, 2025, result.Year)
		assert.Equal(t, 3, result.ContributionsCount)
		assert.Equal(t, 10, result.TotalContributions)
		assert.Equal(t, frozen, result.LastUpdated)

		rec, err := store.GetYear(2025)
		require.NoError(t, err)
		assert.Equal(t, "jakekohl", rec.Username)
		assert.Equal(t, 10, rec.TotalContributions)
		assert.Len(t, rec.Contributions, 3)

		// The fetch range covers the full calendar year
		assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), fetcher.lastFrom)
		assert.Equal(t, time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC), fetcher.lastTo)
	})

	t.Run("rejects a bad secret before anything else", func(t *testing.T) {
		config := testConfig(t)
		store := NewMemoryStore()
		fetcher := &fakeFetcher{login: "jakekohl"}

		ingester := newTestIngester(t, config, store, fetcher)

		_, err := ingester.Ingest(ctx, "wrong", 0)
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Equal(t, 0, fetcher.fetchCalls)

		years, _ := store.Years()
		assert.Empty(t, years)
	})

	t.Run("missing server secret reports configuration error even with a bad header", func(t *testing.T) {
		config := testConfig(t)
		config.GithubStats.Secret = ""
		store := NewMemoryStore()

		ingester := newTestIngester(t, config, store, &fakeFetcher{})

		_, err := ingester.Ingest(ctx, "wrong", 0)
		assert.ErrorIs(t, err, ErrSecretNotConfigured)
	})

	t.Run("upstream viewer failure leaves the store untouched", func(t *testing.T) {
		config := testConfig(t)
		store := NewMemoryStore()
		fetcher := &fakeFetcher{viewerErr: errors.New("boom")}

		ingester := newTestIngester(t, config, store, fetcher)

		_, err := ingester.Ingest(ctx, "test-secret", 0)
		assert.ErrorIs(t, err, ErrUpstream)

		years, _ := store.Years()
		assert.Empty(t, years)
		last, ok := ingester.Tracker.Get()
		assert.False(t, ok)
		assert.True(t, last.IsZero())
	})

	t.Run("upstream contribution failure preserves the previous data", func(t *testing.T) {
		config := testConfig(t)
		store := NewMemoryStore()
		require.NoError(t, store.PutYear(YearRecord{
			Year:               2025,
			Username:           "jakekohl",
			TotalContributions: 42,
			LastUpdated:        time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		}))

		fetcher := &fakeFetcher{login: "jakekohl", fetchErr: errors.New("boom")}
		ingester := newTestIngester(t, config, store, fetcher)
		ingester.now = func() time.Time {
			return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
		}

		_, err := ingester.Ingest(ctx, "test-secret", 2025)
		assert.ErrorIs(t, err, ErrUpstream)

		rec, err := store.GetYear(2025)
		require.NoError(t, err)
		assert.Equal(t, 42, rec.TotalContributions)
	})

	t.Run("re-ingesting a year replaces it wholesale", func(t *testing.T) {
		config := testConfig(t)
		store := NewMemoryStore()
		fetcher := &fakeFetcher{
			login: "jakekohl",
			days: []githubapi.ContributionDay{
				{Date: "2024-03-01", ContributionCount: 5},
			},
		}

		ingester := newTestIngester(t, config, store, fetcher)

		_, err := ingester.Ingest(ctx, "test-secret", 2024)
		require.NoError(t, err)

		fetcher.days = []githubapi.ContributionDay{
			{Date: "2024-03-01", ContributionCount: 2},
			{Date: "2024-03-02", ContributionCount: 2},
		}

		result, err := ingester.Ingest(ctx, "test-secret", 2024)
		require.NoError(t, err)
		assert.Equal(t, 2, result.ContributionsCount)
		assert.Equal(t, 4, result.TotalContributions)

		rec, err := store.GetYear(2024)
		require.NoError(t, err)
		assert.Len(t, rec.Contributions, 2)
		assert.Equal(t, 4, rec.TotalContributions)
	})
}

func TestIngestCooldown(t *testing.T) {
	ctx := context.Background()

	newProdIngester := func(t *testing.T) (*Ingester, *fakeFetcher, *MemoryStore) {
		config := testConfig(t)
		config.App.Env = "prod"
		config.GithubStats.CooldownMinutes = 60
		store := NewMemoryStore()
		fetcher := &fakeFetcher{
			login: "jakekohl",
			days:  []githubapi.ContributionDay{{Date: "2025-01-01", ContributionCount: 1}},
		}
		return newTestIngester(t, config, store, fetcher), fetcher, store
	}

	t.Run("second ingestion inside the window is rejected", func(t *testing.T) {
		ingester, _, _ := newProdIngester(t)
		base := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
		ingester.now = func() time.Time { return base }

		_, err := ingester.Ingest(ctx, "test-secret", 0)
		require.NoError(t, err)

		ingester.now = func() time.Time { return base.Add(10 * time.Minute) }
		_, err = ingester.Ingest(ctx, "test-secret", 0)

		var cooldownErr *CooldownError
		require.ErrorAs(t, err, &cooldownErr)
		assert.Equal(t, 50*time.Minute, cooldownErr.Remaining)
		assert.Contains(t, cooldownErr.Error(), "Rate limit")
	})

	t.Run("ingestion after the window passes", func(t *testing.T) {
		ingester, _, _ := newProdIngester(t)
		base := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
		ingester.now = func() time.Time { return base }

		_, err := ingester.Ingest(ctx, "test-secret", 0)
		require.NoError(t, err)

		ingester.now = func() time.Time { return base.Add(61 * time.Minute) }
		_, err = ingester.Ingest(ctx, "test-secret", 0)
		assert.NoError(t, err)
	})

	t.Run("backfill of an explicit year skips the cooldown", func(t *testing.T) {
		ingester, fetcher, _ := newProdIngester(t)
		base := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
		ingester.now = func() time.Time { return base }

		_, err := ingester.Ingest(ctx, "test-secret", 0)
		require.NoError(t, err)

		_, err = ingester.Ingest(ctx, "test-secret", 2023)
		assert.NoError(t, err)
		assert.Equal(t, 2, fetcher.fetchCalls)
	})

	t.Run("dev environment skips the cooldown", func(t *testing.T) {
		config := testConfig(t)
		require.Equal(t, "dev", config.App.Env)
		store := NewMemoryStore()
		fetcher := &fakeFetcher{login: "jakekohl"}

		ingester := newTestIngester(t, config, store, fetcher)

		_, err := ingester.Ingest(ctx, "test-secret", 0)
		require.NoError(t, err)
		_, err = ingester.Ingest(ctx, "test-secret", 0)
		assert.NoError(t, err)
	})

	t.Run("store timestamp backs the cooldown after a restart", func(t *testing.T) {
		config := testConfig(t)
		config.App.Env = "prod"
		store := NewMemoryStore()
		base := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
		require.NoError(t, store.PutYear(YearRecord{
			Year:        2025,
			Username:    "jakekohl",
			LastUpdated: base,
		}))

		// Fresh tracker simulates a restarted process
		ingester := newTestIngester(t, config, store, &fakeFetcher{login: "jakekohl"})
		ingester.now = func() time.Time { return base.Add(5 * time.Minute) }

		_, err := ingester.Ingest(ctx, "test-secret", 0)
		var cooldownErr *CooldownError
		assert.ErrorAs(t, err, &cooldownErr)
	})
}

func TestIngestErrorMessages(t *testing.T) {
	t.Run("cooldown error reports remaining seconds", func(t *testing.T) {
		err := &CooldownError{Remaining: 90 * time.Second}
		assert.Equal(t, "Rate limit: Please wait 90 seconds before next ingestion", err.Error())
	})

	t.Run("upstream errors keep the cause", func(t *testing.T) {
		wrapped := fmt.Errorf("%w: %v", ErrUpstream, errors.New("dial tcp: timeout"))
		assert.ErrorIs(t, wrapped, ErrUpstream)
		assert.Contains(t, wrapped.Error(), "dial tcp")
	})
}
