package models

import (
	"time"

	"gorm.io/gorm"
)

// Achievement is one earned trophy row. Tag is the stable persisted
// identity of the trophy variant (see internal/trophy). EarnedOn is the
// day the trophy was earned; OrderKey is EarnedOn shifted by a few minutes
// when several trophies land on the same day, so rows stay distinguishable
// in storage. OrderKey carries no semantic meaning.
type Achievement struct {
	gorm.Model
	UserID   uint      `json:"user_id" gorm:"index"`
	Tag      int       `json:"tag"`
	EarnedOn time.Time `json:"earned_on"`
	OrderKey time.Time `json:"-"`
}
