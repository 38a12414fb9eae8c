package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutSession is one logged training day rendered on the dashboard chart.
type WorkoutSession struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    *string   `gorm:"column:user_id;index" json:"-"`
	Day       string    `gorm:"type:text;not null" json:"day"`
	Calories  int       `gorm:"not null" json:"calories"`
	Duration  int       `gorm:"not null" json:"duration"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}
