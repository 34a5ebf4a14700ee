package models

import (
	"gorm.io/gorm"
)

// Score is a single submitted result. A user may have any number of scores;
// rows are never updated or deleted.
type Score struct {
	gorm.Model
	Score    int  `json:"score" gorm:"not null"`
	AuthorID uint `json:"authorId" gorm:"not null;index"`
	Author   User `json:"author" gorm:"foreignKey:AuthorID"`
}
