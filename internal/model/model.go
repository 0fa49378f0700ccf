package model

import (
	"time"

	"github.com/jakekohl/portfolio/cfg"
	"github.com/jakekohl/portfolio/pkg/db"
	"github.com/jakekohl/portfolio/pkg/log"
)

// Model carries the shared dependencies injected into every table model.
// Key columns are declared per table.
type Model struct {
	Config    *cfg.Config `gorm:"-" json:"-"`
	Logger    log.Logger  `gorm:"-" json:"-"`
	Mysql     *db.Mysql   `gorm:"-" json:"-"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
