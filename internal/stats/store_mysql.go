package stats

import (
	"errors"
	"sync"
	"time"

	"github.com/jakekohl/portfolio/internal/model"
	"gorm.io/gorm"
)

// MysqlStore persists year partitions through the StatsYear model, so the
// data survives process restarts. Writes are serialized; the per-year upsert
// itself is a single statement and stays all-or-nothing.
type MysqlStore struct {
	statsMd *model.StatsYear
	writeMu sync.Mutex
}

func NewMysqlStore(statsMd *model.StatsYear) *MysqlStore {
	return &MysqlStore{
		statsMd: statsMd,
	}
}

func (s *MysqlStore) GetYear(year int) (*YearRecord, error) {
	row, err := s.statsMd.ByYear(year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &YearRecord{
		Year:               row.Year,
		Username:           row.Username,
		Contributions:      row.Contributions,
		TotalContributions: row.TotalContributions,
		LastUpdated:        row.LastUpdated,
	}, nil
}

func (s *MysqlStore) Years() ([]int, error) {
	return s.statsMd.Years()
}

func (s *MysqlStore) PutYear(rec YearRecord) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.statsMd.Upsert(rec.Year, rec.Username, rec.Contributions, rec.TotalContributions, rec.LastUpdated)
}

func (s *MysqlStore) LastUpdated() (time.Time, error) {
	last, err := s.statsMd.LastUpdatedAt()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}
	return last, nil
}
