package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakekohl/portfolio/internal/model"
)

func TestMemoryStore(t *testing.T) {
	t.Run("missing year is not found", func(t *testing.T) {
		store := NewMemoryStore()

		_, err := store.GetYear(2025)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("put then get round trips", func(t *testing.T) {
		store := NewMemoryStore()
		rec := YearRecord{
			Year:     2025,
			Username: "jakekohl",
			Contributions: []model.ContributionDay{
				{Date: "2025-01-01", Count: 4},
			},
			TotalContributions: 4,
			LastUpdated:        time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(t, store.PutYear(rec))

		got, err := store.GetYear(2025)
		require.NoError(t, err)
		assert.Equal(t, rec.Username, got.Username)
		assert.Equal(t, rec.Contributions, got.Contributions)
		assert.Equal(t, rec.TotalContributions, got.TotalContributions)
	})

	t.Run("put replaces the year wholesale", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.PutYear(YearRecord{
			Year: 2025,
			Contributions: []model.ContributionDay{
				{Date: "2025-01-01", Count: 1},
				{Date: "2025-01-02", Count: 2},
			},
			TotalContributions: 3,
		}))
		require.NoError(t, store.PutYear(YearRecord{
			Year: 2025,
			Contributions: []model.ContributionDay{
				{Date: "2025-01-03", Count: 9},
			},
			TotalContributions: 9,
		}))

		got, err := store.GetYear(2025)
		require.NoError(t, err)
		assert.Len(t, got.Contributions, 1)
		assert.Equal(t, 9, got.TotalContributions)
	})

	t.Run("callers cannot mutate stored contributions", func(t *testing.T) {
		store := NewMemoryStore()
		days := []model.ContributionDay{{Date: "2025-01-01", Count: 1}}
		require.NoError(t, store.PutYear(YearRecord{Year: 2025, Contributions: days}))

		// Mutating the slice given to PutYear must not leak into the store
		days[0].Count = 99

		got, err := store.GetYear(2025)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Contributions[0].Count)

		// Nor must mutating a returned record
		got.Contributions[0].Count = 42
		again, err := store.GetYear(2025)
		require.NoError(t, err)
		assert.Equal(t, 1, again.Contributions[0].Count)
	})

	t.Run("years come back sorted ascending", func(t *testing.T) {
		store := NewMemoryStore()
		for _, y := range []int{2025, 2022, 2024} {
			require.NoError(t, store.PutYear(YearRecord{Year: y}))
		}

		years, err := store.Years()
		require.NoError(t, err)
		assert.Equal(t, []int{2022, 2024, 2025}, years)
	})

	t.Run("last updated is the newest across years", func(t *testing.T) {
		store := NewMemoryStore()

		last, err := store.LastUpdated()
		require.NoError(t, err)
		assert.True(t, last.IsZero())

		older := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
		newer := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, store.PutYear(YearRecord{Year: 2024, LastUpdated: newer}))
		require.NoError(t, store.PutYear(YearRecord{Year: 2025, LastUpdated: older}))

		last, err = store.LastUpdated()
		require.NoError(t, err)
		assert.Equal(t, newer, last)
	})
}

func TestFreshnessTracker(t *testing.T) {
	t.Run("empty until the first success", func(t *testing.T) {
		tracker := NewFreshnessTracker()

		last, ok := tracker.Get()
		assert.False(t, ok)
		assert.True(t, last.IsZero())
	})

	t.Run("advances on newer timestamps", func(t *testing.T) {
		tracker := NewFreshnessTracker()
		first := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
		second := first.Add(time.Hour)

		tracker.RecordSuccess(first)
		tracker.RecordSuccess(second)

		last, ok := tracker.Get()
		assert.True(t, ok)
		assert.Equal(t, second, last)
	})

	t.Run("never moves backwards", func(t *testing.T) {
		tracker := NewFreshnessTracker()
		newer := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

		tracker.RecordSuccess(newer)
		tracker.RecordSuccess(newer.Add(-time.Hour))

		last, _ := tracker.Get()
		assert.Equal(t, newer, last)
	})
}
