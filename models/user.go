package models

import (
	"gorm.io/gorm"
)

// User represents a player account.
type User struct {
	gorm.Model
	Name         string `json:"name" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"not null"`

	// Salt is generated once at registration and never changes.
	Salt string `json:"-" gorm:"not null"`
}
