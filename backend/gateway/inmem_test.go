package gateway

import (
	"testing"
	"time"

	"project/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreUserLifecycle(t *testing.T) {
	store := NewMemStore()

	user := &models.User{PhoneNumber: "+911234567890"}
	require.NoError(t, store.CreateUser(user))
	require.NotZero(t, user.ID)

	dup := &models.User{PhoneNumber: "+911234567890"}
	assert.ErrorIs(t, store.CreateUser(dup), ErrDuplicate)

	got, err := store.GetUserByPhone("+911234567890")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	got.FullName = "A Reader"
	require.NoError(t, store.UpdateUser(got))

	again, err := store.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "A Reader", again.FullName)

	_, err = store.GetUser(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemStoreProgressUpsert(t *testing.T) {
	store := NewMemStore()

	p := &models.UserProgress{UserID: 1, CurrentChapter: 1, CompletedChapters: models.ChapterSet{}}
	require.NoError(t, store.UpsertProgress(p))
	firstID := p.ID

	p.CurrentChapter = 4
	p.CompletedChapters = models.ChapterSet{1, 2, 3}
	require.NoError(t, store.UpsertProgress(p))
	assert.Equal(t, firstID, p.ID, "upsert keeps one record per user")

	got, err := store.GetProgress(1)
	require.NoError(t, err)
	assert.Equal(t, 4, got.CurrentChapter)
	assert.Equal(t, models.ChapterSet{1, 2, 3}, got.CompletedChapters)

	// The returned set is a copy; mutating it must not touch the store.
	got.CompletedChapters[0] = 99
	fresh, err := store.GetProgress(1)
	require.NoError(t, err)
	assert.Equal(t, models.ChapterSet{1, 2, 3}, fresh.CompletedChapters)
}

func TestMemStoreTestResultUpsertByUserChapter(t *testing.T) {
	store := NewMemStore()

	r := &models.TestResult{UserID: 1, ChapterNumber: 2, Score: 90, Passed: true}
	require.NoError(t, store.UpsertTestResult(r))

	r2 := &models.TestResult{UserID: 1, ChapterNumber: 2, Score: 40, Passed: false}
	require.NoError(t, store.UpsertTestResult(r2))

	other := &models.TestResult{UserID: 1, ChapterNumber: 3, Score: 75, Passed: true}
	require.NoError(t, store.UpsertTestResult(other))

	results, err := store.ListTestResults(1)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 2, results[0].ChapterNumber)
	assert.Equal(t, 40, results[0].Score)
	assert.Equal(t, 3, results[1].ChapterNumber)
}

func TestMemStoreCertificateUniqueness(t *testing.T) {
	store := NewMemStore()

	c := &models.Certificate{UserID: 7, Slug: "abc", IssuedDate: time.Now()}
	require.NoError(t, store.CreateCertificate(c))

	second := &models.Certificate{UserID: 7, Slug: "def", IssuedDate: time.Now()}
	assert.ErrorIs(t, store.CreateCertificate(second), ErrDuplicate)

	got, err := store.GetCertificate(7)
	require.NoError(t, err)
	assert.Equal(t, "abc", got.Slug)

	bySlug, err := store.GetCertificateBySlug("abc")
	require.NoError(t, err)
	assert.Equal(t, uint(7), bySlug.UserID)
}

func TestMemStoreOTPLatestAndConsume(t *testing.T) {
	store := NewMemStore()

	first := &models.OTPCode{Contact: "+91999", CodeHash: "h1", ExpiresAt: time.Now().Add(time.Minute)}
	require.NoError(t, store.SaveOTP(first))
	second := &models.OTPCode{Contact: "+91999", CodeHash: "h2", ExpiresAt: time.Now().Add(time.Minute)}
	require.NoError(t, store.SaveOTP(second))

	latest, err := store.LatestOTP("+91999")
	require.NoError(t, err)
	assert.Equal(t, "h2", latest.CodeHash)

	require.NoError(t, store.ConsumeOTP(latest.ID))

	latest, err = store.LatestOTP("+91999")
	require.NoError(t, err)
	assert.Equal(t, "h1", latest.CodeHash, "consumed codes are skipped")

	_, err = store.LatestOTP("+91000")
	assert.ErrorIs(t, err, ErrNotFound)
}
