package services

import (
	"math"
	"time"

	"project/backend/content"
	"project/backend/gateway"
	"project/backend/models"
)

// PassThreshold is the score (percentage) a chapter test needs to count as
// passed. One threshold for every chapter.
const PassThreshold = 70

type TestRecorder struct {
	Store   gateway.Store
	Tracker *ProgressTracker
}

func NewTestRecorder(store gateway.Store, tracker *ProgressTracker) *TestRecorder {
	return &TestRecorder{Store: store, Tracker: tracker}
}

// Grade scores an answer sheet against the chapter's question bank and
// returns a 0-100 percentage.
func Grade(ch content.Chapter, answers models.AnswerMap) int {
	if len(ch.Questions) == 0 {
		return 0
	}
	correct := 0
	for _, q := range ch.Questions {
		if picked, ok := answers[q.ID]; ok && picked == q.CorrectAnswer {
			correct++
		}
	}
	return int(math.Round(float64(correct) / float64(len(ch.Questions)) * 100))
}

// Submit records a test attempt for (user, chapter). The latest submission
// wins; retakes are unlimited. A passing score adds the chapter to the
// user's completed set. Chapter ordering is not enforced here.
func (r *TestRecorder) Submit(userID uint, chapterNumber, score int, answers models.AnswerMap) (*models.TestResult, error) {
	if _, ok := content.Get(chapterNumber); !ok {
		return nil, ErrUnknownChapter
	}

	result := &models.TestResult{
		UserID:        userID,
		ChapterNumber: chapterNumber,
		Score:         score,
		Passed:        score >= PassThreshold,
		Answers:       answers,
		CompletedAt:   time.Now(),
	}
	if err := r.Store.UpsertTestResult(result); err != nil {
		return nil, err
	}

	if result.Passed {
		if err := r.Tracker.Advance(userID, chapterNumber); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Results returns the user's recorded attempts in chapter order.
func (r *TestRecorder) Results(userID uint) ([]models.TestResult, error) {
	return r.Store.ListTestResults(userID)
}

// Result returns the recorded attempt for one chapter.
func (r *TestRecorder) Result(userID uint, chapterNumber int) (*models.TestResult, error) {
	return r.Store.GetTestResult(userID, chapterNumber)
}
