package model

import (
	"context"
	"time"

	"github.com/jakekohl/portfolio/cfg"
	"github.com/jakekohl/portfolio/pkg/db"
	"github.com/jakekohl/portfolio/pkg/log"
	"gorm.io/gorm/clause"
)

// ContributionDay is one calendar day of recorded GitHub activity.
type ContributionDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// StatsYear is the year partition of contribution data: one row per calendar
// year ever ingested, replaced wholesale on each successful ingestion.
type StatsYear struct {
	Model
	Year               int               `json:"year" gorm:"column:year;primaryKey;autoIncrement:false"`
	Username           string            `json:"username" gorm:"column:username;type:varchar(255);not null"`
	Contributions      []ContributionDay `json:"contributions" gorm:"column:contributions;serializer:json;type:longtext"`
	TotalContributions int               `json:"total_contributions" gorm:"column:total_contributions;default:0"`
	LastUpdated        time.Time         `json:"last_updated" gorm:"column:last_updated;not null"`
}

func NewStatsYear(config *cfg.Config, logger log.Logger, db *db.Mysql) (*StatsYear, error) {
	statsYear := &StatsYear{
		Model: Model{
			Config: config,
			Logger: logger,
			Mysql:  db,
		},
	}
	return statsYear, nil
}

func (s *StatsYear) TableName() string {
	return "stats_years"
}

// Upsert replaces the record for a year in a single statement, so a reader
// never observes a half-written year.
func (s *StatsYear) Upsert(year int, username string, days []ContributionDay, total int, updatedAt time.Time) error {
	ctx := context.Background()

	row := &StatsYear{
		Year:               year,
		Username:           TruncateString(username, 250),
		Contributions:      days,
		TotalContributions: total,
		LastUpdated:        updatedAt,
	}
	row.CreatedAt = time.Now()
	row.UpdatedAt = time.Now()

	db, err := s.Mysql.Db()
	if err != nil {
		s.Logger.Error(ctx, "Failed to get database connection: %v", err)
		return err
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "year"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "contributions", "total_contributions", "last_updated", "updated_at"}),
	}).Create(row).Error; err != nil {
		s.Logger.Error(ctx, "Failed to upsert stats year %d: %v", year, err)
		return err
	}

	return nil
}

// ByYear loads a single year partition. Returns gorm.ErrRecordNotFound when
// the year was never ingested.
func (s *StatsYear) ByYear(year int) (*StatsYear, error) {
	db, err := s.Mysql.Db()
	if err != nil {
		return nil, err
	}

	var row StatsYear
	if err := db.Where("year = ?", year).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Years lists every ingested year, ascending.
func (s *StatsYear) Years() ([]int, error) {
	db, err := s.Mysql.Db()
	if err != nil {
		return nil, err
	}

	var years []int
	if err := db.Model(&StatsYear{}).Order("year ASC").Pluck("year", &years).Error; err != nil {
		return nil, err
	}
	return years, nil
}

// LastUpdatedAt returns the most recent successful ingestion time across all
// years, or the zero time when nothing was ever ingested.
func (s *StatsYear) LastUpdatedAt() (time.Time, error) {
	db, err := s.Mysql.Db()
	if err != nil {
		return time.Time{}, err
	}

	var row StatsYear
	err = db.Order("last_updated DESC").First(&row).Error
	if err != nil {
		return time.Time{}, err
	}
	return row.LastUpdated, nil
}
