// Package assistant defines the boundary to the remote coaching
// assistant. The application only depends on the interface; transports
// plug in behind it.
package assistant

import (
	"context"

	"drsparkle/internal/models"
)

// Report is the assistant's response to a weekly check-in.
type Report struct {
	Profile             string   `json:"profile"`
	Story               []string `json:"story"`
	Feedback            []string `json:"feedback"`
	MotivationalMessage string   `json:"motivationalMessage"`
}

// Assistant produces coaching content. Implementations may call a remote
// model; callers must treat every method as slow and fallible.
type Assistant interface {
	// GenerateReport turns a child's survey answers into a weekly report.
	GenerateReport(ctx context.Context, answers models.SurveyAnswers, personality models.AIPersonality) (Report, error)

	// GenerateSmilePlan produces a fresh 7-day plan of tips and snacks.
	GenerateSmilePlan(ctx context.Context) (*models.WeeklySmilePlan, error)

	// Chat continues a conversation and returns the assistant's reply.
	Chat(ctx context.Context, history []models.Message, personality models.AIPersonality, message string) (string, error)
}
