package assistant

import (
	"context"
	"log"

	"drsparkle/internal/models"
)

// Canned payloads used when the assistant is unreachable. The child-facing
// flows must never surface a raw error.
var (
	fallbackReport = Report{
		Profile:             "Oops!",
		Story:               []string{"Oops! Dr. Sparkle's storybook seems to be stuck."},
		Feedback:            []string{"Dr. Sparkle is having a little trouble preparing your report. Please check back later!"},
		MotivationalMessage: "Keep smiling!",
	}

	fallbackChatReply = "Oops! My circuits are buzzing. I need a moment to recharge. Try again soon! 🤖"

	fallbackPlan = models.WeeklySmilePlan{
		Monday:    models.DayPlan{Tip: "Brush for 2 full minutes, the length of your favorite song!", FoodSuggestion: "Crunchy apple slices"},
		Tuesday:   models.DayPlan{Tip: "Don't forget to brush your tongue to fight bad breath!", FoodSuggestion: "A handful of almonds"},
		Wednesday: models.DayPlan{Tip: "Use a tiny bit of toothpaste, about the size of a pea.", FoodSuggestion: "A cup of yogurt"},
		Thursday:  models.DayPlan{Tip: "Floss between your teeth to get the tricky hiding spots!", FoodSuggestion: "Celery sticks with cream cheese"},
		Friday:    models.DayPlan{Tip: "Drink lots of water today to wash away sugar!", FoodSuggestion: "A yummy pear"},
		Saturday:  models.DayPlan{Tip: "Ask a grown-up to check if you missed any spots!", FoodSuggestion: "Baby carrots"},
		Sunday:    models.DayPlan{Tip: "Get your toothbrush ready for another super week!", FoodSuggestion: "A piece of cheese"},
	}
)

// fallbackAssistant wraps another assistant and substitutes canned content
// whenever the wrapped one fails.
type fallbackAssistant struct {
	inner Assistant
}

// WithFallback wraps an assistant so that failures yield the canned
// payloads instead of errors.
func WithFallback(inner Assistant) Assistant {
	return &fallbackAssistant{inner: inner}
}

func (f *fallbackAssistant) GenerateReport(ctx context.Context, answers models.SurveyAnswers, personality models.AIPersonality) (Report, error) {
	report, err := f.inner.GenerateReport(ctx, answers, personality)
	if err != nil {
		log.Printf("Assistant report failed, using fallback: %v", err)
		return fallbackReport, nil
	}
	return report, nil
}

func (f *fallbackAssistant) GenerateSmilePlan(ctx context.Context) (*models.WeeklySmilePlan, error) {
	plan, err := f.inner.GenerateSmilePlan(ctx)
	if err != nil || plan == nil || !plan.IsComplete() {
		if err != nil {
			log.Printf("Assistant smile plan failed, using fallback: %v", err)
		}
		fallback := fallbackPlan
		return &fallback, nil
	}
	return plan, nil
}

func (f *fallbackAssistant) Chat(ctx context.Context, history []models.Message, personality models.AIPersonality, message string) (string, error) {
	reply, err := f.inner.Chat(ctx, history, personality, message)
	if err != nil {
		log.Printf("Assistant chat failed, using fallback: %v", err)
		return fallbackChatReply, nil
	}
	return reply, nil
}
