// Package achievements implements the pure rule engine that evaluates
// check-in submissions against the static achievement catalog.
package achievements

import "drsparkle/internal/models"

const (
	FirstChat         models.AchievementID = "FIRST_CHAT"
	ConsistentBrusher models.AchievementID = "CONSISTENT_BRUSHER"
	FlossChampion     models.AchievementID = "FLOSS_CHAMPION"
	SuperSmileStreak  models.AchievementID = "SUPER_SMILE_STREAK"
	HealthyHydrator   models.AchievementID = "HEALTHY_HYDRATOR"
	DentistFan        models.AchievementID = "DENTIST_FAN"
	BrushingStreak3   models.AchievementID = "BRUSHING_STREAK_3"
	BrushingStreak7   models.AchievementID = "BRUSHING_STREAK_7"
	BrushingStreak14  models.AchievementID = "BRUSHING_STREAK_14"
)

// Catalog lists every achievement in definition order. Evaluation order
// and the order of newly unlocked ids follow this slice.
var Catalog = []models.Achievement{
	{
		ID:          FirstChat,
		Name:        "First Chat!",
		Description: "You started your first weekly check-in. Great start!",
		Icon:        "🎉",
	},
	{
		ID:          ConsistentBrusher,
		Name:        "Consistent Brusher",
		Description: "You've reported brushing twice a day. Keep it up!",
		Icon:        "🪥",
	},
	{
		ID:          FlossChampion,
		Name:        "Floss Champion",
		Description: "You reported flossing every day. Your gums are happy!",
		Icon:        "🏆",
	},
	{
		ID:          SuperSmileStreak,
		Name:        "Super Smile Streak",
		Description: "You completed 3 weekly check-ins. Look at you go!",
		Icon:        "🌟",
	},
	{
		ID:          HealthyHydrator,
		Name:        "Healthy Hydrator",
		Description: "You mentioned drinking water. Excellent choice!",
		Icon:        "💧",
	},
	{
		ID:          DentistFan,
		Name:        "Dentist Fan",
		Description: "You feel great about visiting the dentist. That's awesome!",
		Icon:        "😄",
	},
	{
		ID:          BrushingStreak3,
		Name:        "3-Week Brush Streak",
		Description: "Three weeks of great brushing in a row. You're on fire!",
		Icon:        "🔥",
	},
	{
		ID:          BrushingStreak7,
		Name:        "7-Week Brush Streak",
		Description: "That's 7 weeks of awesome brushing. A true habit!",
		Icon:        "✨",
	},
	{
		ID:          BrushingStreak14,
		Name:        "14-Week Brush Streak",
		Description: "Wow! 14 weeks of consistent brushing. Your smile is legendary!",
		Icon:        "💎",
	},
}

// Lookup returns the catalog entry for an id.
func Lookup(id models.AchievementID) (models.Achievement, bool) {
	for _, a := range Catalog {
		if a.ID == id {
			return a, true
		}
	}
	return models.Achievement{}, false
}
