package models

import (
	"time"

	"gorm.io/gorm"
)

// OTPCode is one issued verification code. Only the bcrypt hash of the code
// is stored; the plaintext exists only in the delivery path.
type OTPCode struct {
	gorm.Model
	Contact   string `gorm:"index;not null"`
	CodeHash  string `gorm:"not null"`
	ExpiresAt time.Time
	Consumed  bool `gorm:"default:false"`
}
