package achievements

import (
	"strings"

	"drsparkle/internal/models"
)

// Survey question ids consulted by the predicates.
const (
	questionBrushFrequency = "q1_brush_frequency"
	questionFlossFrequency = "q5_floss_frequency"
	questionDrinks         = "q8_drinks"
	questionDentistFeeling = "q13_dentist_feeling"
)

// check evaluates one achievement against the prior history (newest-first)
// and the current submission's answers.
type check func(history []models.HistoryEntry, answers models.SurveyAnswers) bool

var checks = map[models.AchievementID]check{
	FirstChat: func(history []models.HistoryEntry, _ models.SurveyAnswers) bool {
		return len(history) == 0
	},
	ConsistentBrusher: func(_ []models.HistoryEntry, answers models.SurveyAnswers) bool {
		return isBrushingGood(answers)
	},
	FlossChampion: func(_ []models.HistoryEntry, answers models.SurveyAnswers) bool {
		return answers[questionFlossFrequency] == "Every day!"
	},
	// The current submission would be the 3rd check-in.
	SuperSmileStreak: func(history []models.HistoryEntry, _ models.SurveyAnswers) bool {
		return len(history) == 2
	},
	HealthyHydrator: func(_ []models.HistoryEntry, answers models.SurveyAnswers) bool {
		return strings.Contains(strings.ToLower(answers[questionDrinks]), "water")
	},
	DentistFan: func(_ []models.HistoryEntry, answers models.SurveyAnswers) bool {
		return answers[questionDentistFeeling] == "I like it!"
	},
	BrushingStreak3: func(history []models.HistoryEntry, answers models.SurveyAnswers) bool {
		return brushingStreak(history, answers) == 3
	},
	BrushingStreak7: func(history []models.HistoryEntry, answers models.SurveyAnswers) bool {
		return brushingStreak(history, answers) == 7
	},
	BrushingStreak14: func(history []models.HistoryEntry, answers models.SurveyAnswers) bool {
		return brushingStreak(history, answers) == 14
	},
}

// Unlocked returns every achievement id unlocked across the whole history,
// deduplicated, in first-seen order. This is what the trophy case renders.
func Unlocked(history []models.HistoryEntry) []models.AchievementID {
	seen := make(map[models.AchievementID]bool)
	var unlocked []models.AchievementID
	for _, entry := range history {
		for _, id := range entry.UnlockedAchievements {
			if !seen[id] {
				seen[id] = true
				unlocked = append(unlocked, id)
			}
		}
	}
	return unlocked
}

// Evaluate checks the current submission against every achievement not yet
// unlocked and returns the newly unlocked ids in catalog-definition order.
// Once unlocked, an achievement is never re-evaluated or revoked.
func Evaluate(history []models.HistoryEntry, answers models.SurveyAnswers) []models.AchievementID {
	already := make(map[models.AchievementID]bool)
	for _, id := range Unlocked(history) {
		already[id] = true
	}

	var newlyUnlocked []models.AchievementID
	for _, achievement := range Catalog {
		if already[achievement.ID] {
			continue
		}
		if checks[achievement.ID](history, answers) {
			newlyUnlocked = append(newlyUnlocked, achievement.ID)
		}
	}
	return newlyUnlocked
}

func isBrushingGood(answers models.SurveyAnswers) bool {
	freq := answers[questionBrushFrequency]
	return freq == "Twice" || freq == "More than twice"
}

// brushingStreak counts consecutive good-brushing submissions including the
// current one, walking history newest to oldest and stopping at the first
// break. A non-good current answer means no streak at all.
func brushingStreak(history []models.HistoryEntry, answers models.SurveyAnswers) int {
	if !isBrushingGood(answers) {
		return 0
	}

	streak := 1
	for _, entry := range history {
		if !isBrushingGood(entry.Answers) {
			break
		}
		streak++
	}
	return streak
}
