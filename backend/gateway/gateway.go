// Package gateway is the persistence boundary. The rest of the app talks to
// the Store interface; backing it with postgres or with memory is a wiring
// decision made in main.
package gateway

import (
	"errors"

	"project/backend/models"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicate     = errors.New("record already exists")
	ErrNotConfigured = errors.New("persistence not configured")
)

type Store interface {
	CreateUser(user *models.User) error
	GetUser(id uint) (*models.User, error)
	GetUserByPhone(phone string) (*models.User, error)
	UpdateUser(user *models.User) error
	ListUsers() ([]models.User, error)

	GetProgress(userID uint) (*models.UserProgress, error)
	UpsertProgress(p *models.UserProgress) error

	UpsertTestResult(r *models.TestResult) error
	GetTestResult(userID uint, chapterNumber int) (*models.TestResult, error)
	ListTestResults(userID uint) ([]models.TestResult, error)

	// CreateCertificate returns ErrDuplicate when the user already holds a
	// certificate; the unique constraint lives in the store, not the caller.
	CreateCertificate(c *models.Certificate) error
	GetCertificate(userID uint) (*models.Certificate, error)
	GetCertificateBySlug(slug string) (*models.Certificate, error)

	SaveOTP(code *models.OTPCode) error
	LatestOTP(contact string) (*models.OTPCode, error)
	ConsumeOTP(id uint) error
}
