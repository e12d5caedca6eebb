package models

import (
	"time"

	"gorm.io/gorm"
)

// Workout is one logged exercise event, attributed to a calendar day.
// Day is always a start-of-day timestamp; multiple rows may share a day.
type Workout struct {
	gorm.Model
	UserID    uint      `json:"user_id" gorm:"index"`
	ClientRef string    `json:"client_ref" gorm:"uniqueIndex"` // UUID assigned by the client for offline dedup
	Day       time.Time `json:"day" gorm:"index"`
	Kind      int       `json:"kind"` // 0..5, display metadata in WorkoutType
}
