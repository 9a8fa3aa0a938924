package models

import (
	"time"

	"gorm.io/gorm"
)

// Certificate exists at most once per user; the unique index on UserID is
// what makes concurrent issuance safe.
type Certificate struct {
	gorm.Model
	UserID     uint      `gorm:"uniqueIndex;not null"`
	Slug       string    `gorm:"uniqueIndex;not null"`
	IssuedDate time.Time `gorm:"not null"`
}
