package stats

import (
	"sort"
	"sync"
	"time"

	"github.com/jakekohl/portfolio/internal/model"
)

// YearRecord is the stored contribution series of one calendar year for the
// tracked account.
type YearRecord struct {
	Year               int
	Username           string
	Contributions      []model.ContributionDay
	TotalContributions int
	LastUpdated        time.Time
}

// Store is the year-partitioned contribution store. PutYear replaces a year
// wholesale; readers never observe a partially written year.
type Store interface {
	GetYear(year int) (*YearRecord, error)
	Years() ([]int, error)
	PutYear(rec YearRecord) error
	LastUpdated() (time.Time, error)
}

// MemoryStore keeps the contribution data in process memory. Reads run
// concurrently; writes take the single write lock.
type MemoryStore struct {
	mu    sync.RWMutex
	years map[int]YearRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		years: make(map[int]YearRecord),
	}
}

func (s *MemoryStore) GetYear(year int) (*YearRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.years[year]
	if !ok {
		return nil, ErrNotFound
	}

	// Copy the series so callers cannot mutate the stored record
	out := rec
	out.Contributions = append([]model.ContributionDay(nil), rec.Contributions...)
	return &out, nil
}

func (s *MemoryStore) Years() ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	years := make([]int, 0, len(s.years))
	for y := range s.years {
		years = append(years, y)
	}
	sort.Ints(years)
	return years, nil
}

func (s *MemoryStore) PutYear(rec YearRecord) error {
	rec.Contributions = append([]model.ContributionDay(nil), rec.Contributions...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.years[rec.Year] = rec
	return nil
}

func (s *MemoryStore) LastUpdated() (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var last time.Time
	for _, rec := range s.years {
		if rec.LastUpdated.After(last) {
			last = rec.LastUpdated
		}
	}
	return last, nil
}
