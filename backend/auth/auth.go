// Package auth is the authentication gateway: one-time codes are issued to a
// phone number or email address and verified against the store. Actual
// delivery sits behind CodeSender.
package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"project/backend/gateway"
	"project/backend/models"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCode = errors.New("invalid verification code")
	ErrExpiredCode = errors.New("verification code expired")
)

// DefaultTTL is how long an issued code stays valid.
const DefaultTTL = 10 * time.Minute

// CodeSender delivers a plaintext code to a contact. SMS/email transports
// plug in here; the service itself never keeps the plaintext.
type CodeSender interface {
	Send(contact, code string) error
}

// LogSender writes codes to the application log. It stands in for a real
// transport in demo mode and in tests.
type LogSender struct {
	Logger *log.Logger
}

func (s *LogSender) Send(contact, code string) error {
	if s.Logger != nil {
		s.Logger.Printf("verification code for %s: %s", contact, code)
	}
	return nil
}

type Service struct {
	Store  gateway.Store
	Sender CodeSender
	TTL    time.Duration
}

func NewService(store gateway.Store, sender CodeSender) *Service {
	return &Service{Store: store, Sender: sender, TTL: DefaultTTL}
}

// SendCode issues a fresh 6-digit code for the contact. Only the bcrypt hash
// reaches the store.
func (s *Service) SendCode(contact string) error {
	code, err := generateCode()
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	record := models.OTPCode{
		Contact:   contact,
		CodeHash:  string(hash),
		ExpiresAt: time.Now().Add(s.TTL),
	}
	if err := s.Store.SaveOTP(&record); err != nil {
		return err
	}

	return s.Sender.Send(contact, code)
}

// VerifyCode checks the latest unconsumed code for the contact and, on
// success, returns the user behind it. A first-time contact gets a profile
// created with the phone marked verified.
func (s *Service) VerifyCode(contact, code string) (*models.User, error) {
	record, err := s.Store.LatestOTP(contact)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, err
	}

	if time.Now().After(record.ExpiresAt) {
		return nil, ErrExpiredCode
	}
	if bcrypt.CompareHashAndPassword([]byte(record.CodeHash), []byte(code)) != nil {
		return nil, ErrInvalidCode
	}
	if err := s.Store.ConsumeOTP(record.ID); err != nil {
		return nil, err
	}

	user, err := s.Store.GetUserByPhone(contact)
	if errors.Is(err, gateway.ErrNotFound) {
		now := time.Now()
		user = &models.User{
			PhoneNumber:      contact,
			PhoneVerified:    true,
			PhoneVerifiedAt:  &now,
			WantsCertificate: true,
		}
		if err := s.Store.CreateUser(user); err != nil {
			return nil, err
		}
		return user, nil
	}
	if err != nil {
		return nil, err
	}

	if !user.PhoneVerified {
		now := time.Now()
		user.PhoneVerified = true
		user.PhoneVerifiedAt = &now
		if err := s.Store.UpdateUser(user); err != nil {
			return nil, err
		}
	}
	return user, nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
