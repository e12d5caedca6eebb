package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	DiscordID string `gorm:"uniqueIndex"`
	Username  string
	Email     string
	Avatar    string
	// Timezone is the IANA name of the user's current calendar timezone,
	// updated by the client; workout days are normalized in it.
	Timezone string
}
