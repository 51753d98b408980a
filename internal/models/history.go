package models

import (
	"time"

	"github.com/google/uuid"
)

// AchievementID identifies an entry in the static achievement catalog.
type AchievementID string

// Achievement is a static catalog entry. The catalog is defined once in the
// achievements package and is not user data.
type Achievement struct {
	ID          AchievementID `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
}

// SurveyAnswers maps a question id to the chosen option or free text.
type SurveyAnswers map[string]string

// HistoryEntry records one completed check-in. UnlockedAchievements holds
// only the achievements unlocked by this submission, not the cumulative set.
type HistoryEntry struct {
	ID                   string          `json:"id"`
	Date                 string          `json:"date"`
	Answers              SurveyAnswers   `json:"answers"`
	Feedback             []string        `json:"feedback"`
	Story                []string        `json:"story"`
	Profile              string          `json:"profile"`
	MotivationalMessage  string          `json:"motivationalMessage,omitempty"`
	UnlockedAchievements []AchievementID `json:"unlockedAchievements"`
}

// NewHistoryEntry creates an entry stamped with a fresh id and the current
// UTC time.
func NewHistoryEntry(answers SurveyAnswers) HistoryEntry {
	return HistoryEntry{
		ID:      uuid.New().String(),
		Date:    time.Now().UTC().Format(time.RFC3339),
		Answers: answers,
	}
}
