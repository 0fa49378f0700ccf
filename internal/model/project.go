package model

import (
	"github.com/jakekohl/portfolio/cfg"
	"github.com/jakekohl/portfolio/pkg/db"
	"github.com/jakekohl/portfolio/pkg/log"
)

// Project is one portfolio project card.
type Project struct {
	Model
	ID              uint     `json:"-" gorm:"column:id;primaryKey"`
	Entity          string   `json:"entity" gorm:"column:entity;type:varchar(255);index"`
	Title           string   `json:"title" gorm:"column:title;type:varchar(255);not null"`
	Description     string   `json:"description" gorm:"column:description;type:text"`
	Technologies    []string `json:"technologies" gorm:"column:technologies;serializer:json;type:text"`
	SkillsLeveraged []string `json:"skillsLeveraged" gorm:"column:skills_leveraged;serializer:json;type:text"`
	Status          string   `json:"status" gorm:"column:status;type:varchar(64)"`
	Github          string   `json:"github" gorm:"column:github;type:varchar(512)"`
	Demo            string   `json:"demo" gorm:"column:demo;type:varchar(512)"`
	Features        []string `json:"features" gorm:"column:features;serializer:json;type:text"`
	DataTest        string   `json:"dataTest" gorm:"column:data_test;type:varchar(255)"`
	Images          []string `json:"images" gorm:"column:images;serializer:json;type:text"`
}

func NewProject(config *cfg.Config, logger log.Logger, db *db.Mysql) (*Project, error) {
	project := &Project{
		Model: Model{
			Config: config,
			Logger: logger,
			Mysql:  db,
		},
	}
	return project, nil
}

func (p *Project) TableName() string {
	return "projects"
}

// All lists projects, optionally filtered by owning entity.
func (p *Project) All(entity string) ([]Project, error) {
	db, err := p.Mysql.Db()
	if err != nil {
		return nil, err
	}

	query := db.Order("id ASC")
	if entity != "" {
		query = query.Where("entity = ?", entity)
	}

	var projects []Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Entities lists the distinct entity values across all projects.
func (p *Project) Entities() ([]string, error) {
	db, err := p.Mysql.Db()
	if err != nil {
		return nil, err
	}

	var entities []string
	if err := db.Model(&Project{}).Distinct().Order("entity ASC").Pluck("entity", &entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}
