package model

import (
	"github.com/jakekohl/portfolio/cfg"
	"github.com/jakekohl/portfolio/pkg/db"
	"github.com/jakekohl/portfolio/pkg/log"
)

// Contact is one way to reach the site owner (email, LinkedIn, ...).
type Contact struct {
	Model
	ID          uint   `json:"-" gorm:"column:id;primaryKey"`
	Type        string `json:"type" gorm:"column:type;type:varchar(64);not null"`
	Value       string `json:"value" gorm:"column:value;type:varchar(512);not null"`
	Description string `json:"description" gorm:"column:description;type:text"`
	DataTest    string `json:"dataTest" gorm:"column:data_test;type:varchar(255)"`
}

func NewContact(config *cfg.Config, logger log.Logger, db *db.Mysql) (*Contact, error) {
	contact := &Contact{
		Model: Model{
			Config: config,
			Logger: logger,
			Mysql:  db,
		},
	}
	return contact, nil
}

func (c *Contact) TableName() string {
	return "contacts"
}

func (c *Contact) All() ([]Contact, error) {
	db, err := c.Mysql.Db()
	if err != nil {
		return nil, err
	}

	var contacts []Contact
	if err := db.Order("id ASC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}
