package services

import (
	"errors"
	"fmt"
	"time"

	"project/backend/gateway"
	"project/backend/models"

	"github.com/google/uuid"
)

// TotalRequiredChapters is how many chapters must be passed before a
// certificate can be issued. The epilogue has no test and does not count.
const TotalRequiredChapters = 10

// certNumberPrefix goes on the printed certificate number.
const certNumberPrefix = "LLAW"

var ErrNotEligible = errors.New("not eligible for certificate")

type CertificateService struct {
	Store   gateway.Store
	Tracker *ProgressTracker
}

func NewCertificateService(store gateway.Store, tracker *ProgressTracker) *CertificateService {
	return &CertificateService{Store: store, Tracker: tracker}
}

// Eligible reports whether the user has passed enough chapters. The count
// comes from the completed-chapter set, which is add-only, so eligibility
// never flips back to false after a failing retake.
func (s *CertificateService) Eligible(userID uint) (bool, error) {
	p, err := s.Tracker.Get(userID)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return len(p.CompletedChapters) >= TotalRequiredChapters, nil
}

// Issue mints the user's certificate. It re-checks eligibility, creates at
// most one record per user and returns the existing one on any later call.
// The store's uniqueness guarantee, not a lock, handles concurrent calls.
func (s *CertificateService) Issue(userID uint) (*models.Certificate, error) {
	if existing, err := s.Store.GetCertificate(userID); err == nil {
		return existing, nil
	} else if !errors.Is(err, gateway.ErrNotFound) {
		return nil, err
	}

	ok, err := s.Eligible(userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotEligible
	}

	cert := &models.Certificate{
		UserID:     userID,
		Slug:       uuid.NewString(),
		IssuedDate: time.Now(),
	}
	err = s.Store.CreateCertificate(cert)
	if errors.Is(err, gateway.ErrDuplicate) {
		// Lost the race; the winner's record is the certificate.
		return s.Store.GetCertificate(userID)
	}
	if err != nil {
		return nil, err
	}
	return cert, nil
}

// Get returns the user's certificate, if issued.
func (s *CertificateService) Get(userID uint) (*models.Certificate, error) {
	return s.Store.GetCertificate(userID)
}

// GetBySlug resolves the public verification link.
func (s *CertificateService) GetBySlug(slug string) (*models.Certificate, error) {
	return s.Store.GetCertificateBySlug(slug)
}

// Number renders the printed certificate number, e.g. LLAW-2026-000042.
// Presentational only; the slug is what verification links use.
func Number(userID uint, issued time.Time) string {
	return fmt.Sprintf("%s-%d-%06d", certNumberPrefix, issued.Year(), userID)
}
