package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// AnswerMap maps a question ID to the option index the user picked. Stored
// as a jsonb object.
type AnswerMap map[int]int

func (m AnswerMap) Value() (driver.Value, error) {
	if m == nil {
		m = AnswerMap{}
	}
	return json.Marshal(m)
}

func (m *AnswerMap) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*m = AnswerMap{}
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	}
	return errors.New("unsupported source type for AnswerMap")
}

// TestResult is the latest attempt for one (user, chapter) pair. Retakes
// overwrite the previous attempt.
type TestResult struct {
	gorm.Model
	UserID        uint `gorm:"not null;uniqueIndex:idx_test_results_user_chapter"`
	ChapterNumber int  `gorm:"not null;uniqueIndex:idx_test_results_user_chapter"`
	Score         int
	Passed        bool
	Answers       AnswerMap `gorm:"type:jsonb"`
	CompletedAt   time.Time
}
