package auth

import (
	"testing"
	"time"

	"project/backend/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureSender records the last code handed to the delivery path.
type captureSender struct {
	contact string
	code    string
}

func (s *captureSender) Send(contact, code string) error {
	s.contact = contact
	s.code = code
	return nil
}

func TestSendAndVerifyCreatesUser(t *testing.T) {
	store := gateway.NewMemStore()
	sender := &captureSender{}
	svc := NewService(store, sender)

	require.NoError(t, svc.SendCode("+911111111111"))
	require.Len(t, sender.code, 6)
	assert.Equal(t, "+911111111111", sender.contact)

	user, err := svc.VerifyCode("+911111111111", sender.code)
	require.NoError(t, err)
	assert.Equal(t, "+911111111111", user.PhoneNumber)
	assert.True(t, user.PhoneVerified)
	assert.True(t, user.WantsCertificate)

	// Verifying again with the same code fails: codes are single use.
	_, err = svc.VerifyCode("+911111111111", sender.code)
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestVerifyExistingUser(t *testing.T) {
	store := gateway.NewMemStore()
	sender := &captureSender{}
	svc := NewService(store, sender)

	require.NoError(t, svc.SendCode("+912222222222"))
	first, err := svc.VerifyCode("+912222222222", sender.code)
	require.NoError(t, err)

	require.NoError(t, svc.SendCode("+912222222222"))
	second, err := svc.VerifyCode("+912222222222", sender.code)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "same contact resolves to the same user")
}

func TestVerifyWrongCode(t *testing.T) {
	store := gateway.NewMemStore()
	sender := &captureSender{}
	svc := NewService(store, sender)

	require.NoError(t, svc.SendCode("+913333333333"))

	wrong := "000000"
	if wrong == sender.code {
		wrong = "000001"
	}
	_, err := svc.VerifyCode("+913333333333", wrong)
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestVerifyUnknownContact(t *testing.T) {
	svc := NewService(gateway.NewMemStore(), &captureSender{})

	_, err := svc.VerifyCode("+914444444444", "123456")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestVerifyExpiredCode(t *testing.T) {
	store := gateway.NewMemStore()
	sender := &captureSender{}
	svc := NewService(store, sender)
	svc.TTL = -time.Minute

	require.NoError(t, svc.SendCode("+915555555555"))
	_, err := svc.VerifyCode("+915555555555", sender.code)
	assert.ErrorIs(t, err, ErrExpiredCode)
}
