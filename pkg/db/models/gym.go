package models

import (
	"time"

	"github.com/fitnexus/fitnexus-backend/pkg/enums"
	"github.com/google/uuid"
)

// Gym is a bookable facility, trainer, or class listing.
type Gym struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string        `gorm:"type:text;not null;index" json:"name"`
	Location        string        `gorm:"type:text;not null;index" json:"location"`
	Type            enums.GymType `gorm:"type:text;not null" json:"type"`
	PricePerSession float64       `gorm:"column:price_per_session;not null" json:"pricePerSession"`
	Rating          float64       `gorm:"not null;default:0" json:"rating"`
	Image           string        `gorm:"type:text" json:"image"`
	Features        StringList    `gorm:"type:text" json:"features"`
	CreatedAt       time.Time     `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt       time.Time     `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}
