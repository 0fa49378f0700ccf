package model

import (
	"github.com/jakekohl/portfolio/cfg"
	"github.com/jakekohl/portfolio/pkg/db"
	"github.com/jakekohl/portfolio/pkg/log"
)

// Experience is one entry of the profile's experience timeline. The shape is
// intentionally loose: the frontend renders whatever keys are present.
type Experience map[string]interface{}

// Profile is the single "about me" document served by /me.
type Profile struct {
	Model
	ID          uint         `json:"-" gorm:"column:id;primaryKey"`
	Name        string       `json:"name" gorm:"column:name;type:varchar(255);not null"`
	Experiences []Experience `json:"experiences" gorm:"column:experiences;serializer:json;type:text"`
}

func NewProfile(config *cfg.Config, logger log.Logger, db *db.Mysql) (*Profile, error) {
	profile := &Profile{
		Model: Model{
			Config: config,
			Logger: logger,
			Mysql:  db,
		},
	}
	return profile, nil
}

func (p *Profile) TableName() string {
	return "profiles"
}

// Get returns the first (and in practice only) profile row.
func (p *Profile) Get() (*Profile, error) {
	db, err := p.Mysql.Db()
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := db.First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
