// Package services holds the course bookkeeping: reading progress, chapter
// test results and certificate eligibility. Everything here is a thin layer
// over the persistence gateway; state lives in the store.
package services

import (
	"errors"
	"time"

	"project/backend/gateway"
	"project/backend/models"
)

var ErrUnknownChapter = errors.New("unknown chapter")

type ProgressTracker struct {
	Store gateway.Store
}

func NewProgressTracker(store gateway.Store) *ProgressTracker {
	return &ProgressTracker{Store: store}
}

// Get returns the user's progress record. gateway.ErrNotFound when the user
// has none yet.
func (t *ProgressTracker) Get(userID uint) (*models.UserProgress, error) {
	return t.Store.GetProgress(userID)
}

// EnsureRecord creates the initial progress record if the user has none.
// Called at registration completion and safe to call again.
func (t *ProgressTracker) EnsureRecord(userID uint) (*models.UserProgress, error) {
	p, err := t.Store.GetProgress(userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, gateway.ErrNotFound) {
		return nil, err
	}

	p = &models.UserProgress{
		UserID:            userID,
		CurrentChapter:    1,
		CompletedChapters: models.ChapterSet{},
		LastAccessed:      time.Now(),
	}
	if err := t.Store.UpsertProgress(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Advance marks a chapter passed: adds it to the completed set and moves the
// chapter pointer forward, never backward. Calling it twice with the same
// chapter is the same as calling it once.
func (t *ProgressTracker) Advance(userID uint, chapterNumber int) error {
	p, err := t.EnsureRecord(userID)
	if err != nil {
		return err
	}

	p.CompletedChapters = p.CompletedChapters.Add(chapterNumber)
	if chapterNumber > p.CurrentChapter {
		p.CurrentChapter = chapterNumber
	}
	p.LastAccessed = time.Now()

	return t.Store.UpsertProgress(p)
}
