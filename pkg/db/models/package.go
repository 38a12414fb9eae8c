package models

import (
	"time"

	"github.com/google/uuid"
)

// Package is a curated home-gym equipment bundle.
type Package struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string     `gorm:"type:text;not null" json:"name"`
	Tier        string     `gorm:"type:text;not null" json:"tier"`
	Price       float64    `gorm:"not null" json:"price"`
	Items       StringList `gorm:"type:text" json:"items"`
	Description string     `gorm:"type:text" json:"description"`
	Image       string     `gorm:"type:text" json:"image"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}
