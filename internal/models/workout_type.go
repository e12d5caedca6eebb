package models

import (
	"gorm.io/gorm"
)

// WorkoutType holds the user-configurable display metadata for one of the
// six workout kind slots.
type WorkoutType struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"uniqueIndex:idx_user_slot"`
	Slot   int    `json:"slot" gorm:"uniqueIndex:idx_user_slot"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
}
