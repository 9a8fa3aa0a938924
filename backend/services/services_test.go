package services

import (
	"fmt"
	"testing"
	"time"

	"project/backend/content"
	"project/backend/gateway"
	"project/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCore(t *testing.T) (*gateway.MemStore, *ProgressTracker, *TestRecorder, *CertificateService) {
	t.Helper()
	store := gateway.NewMemStore()
	tracker := NewProgressTracker(store)
	recorder := NewTestRecorder(store, tracker)
	certs := NewCertificateService(store, tracker)
	return store, tracker, recorder, certs
}

func newUser(t *testing.T, store *gateway.MemStore) *models.User {
	t.Helper()
	user := &models.User{PhoneNumber: fmt.Sprintf("+91%d", time.Now().UnixNano()), HasPaid: true}
	require.NoError(t, store.CreateUser(user))
	return user
}

func TestSubmitPassAddsChapterToCompleted(t *testing.T) {
	store, tracker, recorder, _ := newCore(t)
	user := newUser(t, store)

	result, err := recorder.Submit(user.ID, 3, 85, models.AnswerMap{1: 0})
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Equal(t, 85, result.Score)

	p, err := tracker.Get(user.ID)
	require.NoError(t, err)
	assert.True(t, p.CompletedChapters.Contains(3))
	assert.Equal(t, 3, p.CurrentChapter)
}

func TestSubmitFailDoesNotAddChapter(t *testing.T) {
	store, tracker, recorder, _ := newCore(t)
	user := newUser(t, store)

	result, err := recorder.Submit(user.ID, 4, 69, models.AnswerMap{})
	require.NoError(t, err)
	assert.False(t, result.Passed)

	_, err = tracker.Get(user.ID)
	assert.ErrorIs(t, err, gateway.ErrNotFound)
}

func TestSubmitExactThresholdPasses(t *testing.T) {
	store, _, recorder, _ := newCore(t)
	user := newUser(t, store)

	result, err := recorder.Submit(user.ID, 1, PassThreshold, models.AnswerMap{})
	require.NoError(t, err)
	assert.True(t, result.Passed)
}

func TestSubmitUnknownChapter(t *testing.T) {
	store, _, recorder, _ := newCore(t)
	user := newUser(t, store)

	_, err := recorder.Submit(user.ID, 99, 100, models.AnswerMap{})
	assert.ErrorIs(t, err, ErrUnknownChapter)
}

func TestSubmitIdempotent(t *testing.T) {
	store, tracker, recorder, _ := newCore(t)
	user := newUser(t, store)

	_, err := recorder.Submit(user.ID, 2, 90, models.AnswerMap{1: 1})
	require.NoError(t, err)
	_, err = recorder.Submit(user.ID, 2, 90, models.AnswerMap{1: 1})
	require.NoError(t, err)

	results, err := recorder.Results(user.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 90, results[0].Score)

	p, err := tracker.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ChapterSet{2}, p.CompletedChapters)
}

func TestRetakeOverwritesButKeepsCompletion(t *testing.T) {
	store, tracker, recorder, _ := newCore(t)
	user := newUser(t, store)

	_, err := recorder.Submit(user.ID, 5, 90, models.AnswerMap{})
	require.NoError(t, err)
	_, err = recorder.Submit(user.ID, 5, 40, models.AnswerMap{})
	require.NoError(t, err)

	results, err := recorder.Results(user.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 40, results[0].Score)
	assert.False(t, results[0].Passed)

	// A failing retake never revokes the chapter.
	p, err := tracker.Get(user.ID)
	require.NoError(t, err)
	assert.True(t, p.CompletedChapters.Contains(5))
}

func TestAdvancePointerNeverMovesBackward(t *testing.T) {
	store, tracker, _, _ := newCore(t)
	user := newUser(t, store)

	require.NoError(t, tracker.Advance(user.ID, 7))
	require.NoError(t, tracker.Advance(user.ID, 2))

	p, err := tracker.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, p.CurrentChapter)
	assert.ElementsMatch(t, []int{7, 2}, []int(p.CompletedChapters))
}

func TestEnsureRecordIdempotent(t *testing.T) {
	store, tracker, _, _ := newCore(t)
	user := newUser(t, store)

	p1, err := tracker.EnsureRecord(user.ID)
	require.NoError(t, err)
	require.NoError(t, tracker.Advance(user.ID, 1))

	p2, err := tracker.EnsureRecord(user.ID)
	require.NoError(t, err)
	assert.Equal(t, p1.UserID, p2.UserID)
	assert.True(t, p2.CompletedChapters.Contains(1))
}

func TestEligibilityScenario(t *testing.T) {
	store, _, recorder, certs := newCore(t)
	user := newUser(t, store)

	scores := []int{85, 92, 78, 88, 95, 82, 90, 89, 93}
	for i, score := range scores {
		_, err := recorder.Submit(user.ID, i+1, score, models.AnswerMap{})
		require.NoError(t, err)
	}

	eligible, err := certs.Eligible(user.ID)
	require.NoError(t, err)
	assert.False(t, eligible, "nine passed chapters are not enough")

	_, err = certs.Issue(user.ID)
	assert.ErrorIs(t, err, ErrNotEligible)

	_, err = recorder.Submit(user.ID, 10, 86, models.AnswerMap{})
	require.NoError(t, err)

	eligible, err = certs.Eligible(user.ID)
	require.NoError(t, err)
	assert.True(t, eligible)

	cert, err := certs.Issue(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, cert.UserID)
	assert.NotEmpty(t, cert.Slug)
}

func TestEligibilityFalseWithoutProgress(t *testing.T) {
	store, _, _, certs := newCore(t)
	user := newUser(t, store)

	eligible, err := certs.Eligible(user.ID)
	require.NoError(t, err)
	assert.False(t, eligible)
}

func TestEligibilitySurvivesFailingRetake(t *testing.T) {
	store, _, recorder, certs := newCore(t)
	user := newUser(t, store)

	for ch := 1; ch <= TotalRequiredChapters; ch++ {
		_, err := recorder.Submit(user.ID, ch, 80, models.AnswerMap{})
		require.NoError(t, err)
	}

	eligible, err := certs.Eligible(user.ID)
	require.NoError(t, err)
	require.True(t, eligible)

	// Failing a retake after reaching the threshold does not flip
	// eligibility back.
	_, err = recorder.Submit(user.ID, 3, 10, models.AnswerMap{})
	require.NoError(t, err)

	eligible, err = certs.Eligible(user.ID)
	require.NoError(t, err)
	assert.True(t, eligible)
}

func TestIssueIsIdempotent(t *testing.T) {
	store, _, recorder, certs := newCore(t)
	user := newUser(t, store)

	for ch := 1; ch <= TotalRequiredChapters; ch++ {
		_, err := recorder.Submit(user.ID, ch, 100, models.AnswerMap{})
		require.NoError(t, err)
	}

	first, err := certs.Issue(user.ID)
	require.NoError(t, err)
	second, err := certs.Issue(user.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Slug, second.Slug)
}

func TestCertificateNumberFormat(t *testing.T) {
	issued := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "LLAW-2026-000042", Number(42, issued))
}

func TestGrade(t *testing.T) {
	ch, ok := content.Get(1)
	require.True(t, ok)
	require.Len(t, ch.Questions, 3)

	all := models.AnswerMap{}
	for _, q := range ch.Questions {
		all[q.ID] = q.CorrectAnswer
	}
	assert.Equal(t, 100, Grade(ch, all))

	// One of three correct rounds to 33.
	one := models.AnswerMap{ch.Questions[0].ID: ch.Questions[0].CorrectAnswer}
	assert.Equal(t, 33, Grade(ch, one))

	assert.Equal(t, 0, Grade(ch, models.AnswerMap{}))
}
