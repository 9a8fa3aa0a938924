package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	PhoneNumber      string `gorm:"unique;not null"`
	PhoneVerified    bool   `gorm:"default:false"`
	PhoneVerifiedAt  *time.Time
	Email            string
	EmailVerified    bool `gorm:"default:false"`
	EmailVerifiedAt  *time.Time
	FullName         string
	Age              int
	Qualification    string
	HasPaid          bool `gorm:"default:false"`
	PaymentDate      *time.Time
	WantsCertificate bool `gorm:"default:true"`
	IsAdmin          bool `gorm:"default:false"`
}
