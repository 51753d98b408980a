package models

// DayPlan is one day-slot of a weekly plan.
type DayPlan struct {
	Tip            string `json:"tip"`
	FoodSuggestion string `json:"foodSuggestion"`
}

// WeeklySmilePlan covers exactly seven day-slots. Partial plans are never
// persisted.
type WeeklySmilePlan struct {
	Monday    DayPlan `json:"Monday"`
	Tuesday   DayPlan `json:"Tuesday"`
	Wednesday DayPlan `json:"Wednesday"`
	Thursday  DayPlan `json:"Thursday"`
	Friday    DayPlan `json:"Friday"`
	Saturday  DayPlan `json:"Saturday"`
	Sunday    DayPlan `json:"Sunday"`
}

// Days returns the day-slots in Monday-first order.
func (p *WeeklySmilePlan) Days() [7]DayPlan {
	return [7]DayPlan{
		p.Monday, p.Tuesday, p.Wednesday, p.Thursday,
		p.Friday, p.Saturday, p.Sunday,
	}
}

// IsComplete reports whether every day-slot has both a tip and a food
// suggestion.
func (p *WeeklySmilePlan) IsComplete() bool {
	for _, day := range p.Days() {
		if day.Tip == "" || day.FoodSuggestion == "" {
			return false
		}
	}
	return true
}
