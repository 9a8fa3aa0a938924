package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ChapterSet holds the chapter numbers a user has passed, stored as a jsonb
// array. Membership is unique; order carries no meaning.
type ChapterSet []int

func (s ChapterSet) Contains(n int) bool {
	for _, c := range s {
		if c == n {
			return true
		}
	}
	return false
}

// Add returns the set with n included. Adding an existing member is a no-op.
func (s ChapterSet) Add(n int) ChapterSet {
	if s.Contains(n) {
		return s
	}
	return append(s, n)
}

func (s ChapterSet) Value() (driver.Value, error) {
	if s == nil {
		s = ChapterSet{}
	}
	return json.Marshal(s)
}

func (s *ChapterSet) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = ChapterSet{}
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	}
	return errors.New("unsupported source type for ChapterSet")
}

type UserProgress struct {
	gorm.Model
	UserID            uint       `gorm:"uniqueIndex;not null"`
	CurrentChapter    int        `gorm:"default:1"`
	CompletedChapters ChapterSet `gorm:"type:jsonb"`
	LastAccessed      time.Time
}
