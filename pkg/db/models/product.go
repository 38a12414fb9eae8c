package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a marketplace equipment listing.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Category    string    `gorm:"type:text;not null;index" json:"category"`
	Price       float64   `gorm:"not null" json:"price"`
	Image       string    `gorm:"type:text" json:"image"`
	Rating      float64   `gorm:"not null;default:0" json:"rating"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}
