package model

import (
	"context"
	"time"

	"github.com/jakekohl/portfolio/cfg"
	"github.com/jakekohl/portfolio/pkg/db"
	"github.com/jakekohl/portfolio/pkg/log"
)

// IngestionEvent is the audit record written by the kafka consumer for every
// successful contribution ingestion.
type IngestionEvent struct {
	Model
	ID                 uint      `json:"id" gorm:"column:id;primaryKey"`
	Year               int       `json:"year" gorm:"column:year;not null"`
	Username           string    `json:"username" gorm:"column:username;type:varchar(255);not null"`
	ContributionsCount int       `json:"contributions_count" gorm:"column:contributions_count;default:0"`
	TotalContributions int       `json:"total_contributions" gorm:"column:total_contributions;default:0"`
	IngestedAt         time.Time `json:"ingested_at" gorm:"column:ingested_at;not null"`
}

func NewIngestionEvent(config *cfg.Config, logger log.Logger, db *db.Mysql) (*IngestionEvent, error) {
	event := &IngestionEvent{
		Model: Model{
			Config: config,
			Logger: logger,
			Mysql:  db,
		},
	}
	return event, nil
}

func (e *IngestionEvent) TableName() string {
	return "ingestion_events"
}

func (e *IngestionEvent) Create(year int, username string, contributionsCount, totalContributions int, ingestedAt time.Time) error {
	ctx := context.Background()

	row := &IngestionEvent{
		Year:               year,
		Username:           TruncateString(username, 250),
		ContributionsCount: contributionsCount,
		TotalContributions: totalContributions,
		IngestedAt:         ingestedAt,
	}
	row.CreatedAt = time.Now()
	row.UpdatedAt = time.Now()

	db, err := e.Mysql.Db()
	if err != nil {
		e.Logger.Error(ctx, "Failed to get database connection: %v", err)
		return err
	}

	if err := db.Create(row).Error; err != nil {
		e.Logger.Error(ctx, "Failed to create ingestion event: %v", err)
		return err
	}

	return nil
}
