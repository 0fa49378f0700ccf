package model

import (
	"github.com/jakekohl/portfolio/cfg"
	"github.com/jakekohl/portfolio/pkg/db"
	"github.com/jakekohl/portfolio/pkg/log"
)

// Role is one work-experience entry, ordered by SortOrder on the roles view.
type Role struct {
	Model
	ID          uint     `json:"-" gorm:"column:id;primaryKey"`
	Title       string   `json:"title" gorm:"column:title;type:varchar(255);not null"`
	Company     string   `json:"company" gorm:"column:company;type:varchar(255);not null"`
	Location    string   `json:"location" gorm:"column:location;type:varchar(255)"`
	StartDate   string   `json:"startDate" gorm:"column:start_date;type:varchar(32)"`
	EndDate     string   `json:"endDate" gorm:"column:end_date;type:varchar(32)"`
	Description []string `json:"description" gorm:"column:description;serializer:json;type:text"`
	Url         string   `json:"url" gorm:"column:url;type:varchar(512)"`
	SortOrder   int      `json:"order" gorm:"column:sort_order;default:0"`
}

func NewRole(config *cfg.Config, logger log.Logger, db *db.Mysql) (*Role, error) {
	role := &Role{
		Model: Model{
			Config: config,
			Logger: logger,
			Mysql:  db,
		},
	}
	return role, nil
}

func (r *Role) TableName() string {
	return "roles"
}

// All lists roles in display order.
func (r *Role) All() ([]Role, error) {
	db, err := r.Mysql.Db()
	if err != nil {
		return nil, err
	}

	var roles []Role
	if err := db.Order("sort_order ASC").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}
