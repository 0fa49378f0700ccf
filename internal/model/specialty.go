package model

import (
	"github.com/jakekohl/portfolio/cfg"
	"github.com/jakekohl/portfolio/pkg/db"
	"github.com/jakekohl/portfolio/pkg/log"
)

// Specialty is one highlighted skill area shown on the contact view.
type Specialty struct {
	Model
	ID          uint   `json:"-" gorm:"column:id;primaryKey"`
	Title       string `json:"title" gorm:"column:title;type:varchar(255);not null"`
	Description string `json:"description" gorm:"column:description;type:text"`
	DataTest    string `json:"dataTest" gorm:"column:data_test;type:varchar(255)"`
}

func NewSpecialty(config *cfg.Config, logger log.Logger, db *db.Mysql) (*Specialty, error) {
	specialty := &Specialty{
		Model: Model{
			Config: config,
			Logger: logger,
			Mysql:  db,
		},
	}
	return specialty, nil
}

func (s *Specialty) TableName() string {
	return "specialties"
}

func (s *Specialty) All() ([]Specialty, error) {
	db, err := s.Mysql.Db()
	if err != nil {
		return nil, err
	}

	var specialties []Specialty
	if err := db.Order("id ASC").Find(&specialties).Error; err != nil {
		return nil, err
	}
	return specialties, nil
}
