package service

import (
	"context"
	"strings"
	"testing"

	"drsparkle/internal/achievements"
	"drsparkle/internal/models"
)

func TestEmailServiceDisabledWhenUnconfigured(t *testing.T) {
	svc, err := NewEmailService("eu-west-1", "", "")
	if err != nil {
		t.Fatalf("NewEmailService failed: %v", err)
	}
	if svc.IsEnabled() {
		t.Error("Expected a disabled service without a from address")
	}

	settings := models.DefaultSettings()
	settings.EnableEmailSummary = true
	settings.ParentEmail = "parent@example.com"
	entry := models.NewHistoryEntry(models.SurveyAnswers{"q1_brush_frequency": "Twice"})

	if err := svc.SendWeeklySummary(context.Background(), settings, "Bobby", entry); err != nil {
		t.Errorf("A disabled service must skip silently, got %v", err)
	}
}

func TestSendWeeklySummaryRespectsOptOut(t *testing.T) {
	svc, err := NewEmailService("eu-west-1", "", "")
	if err != nil {
		t.Fatalf("NewEmailService failed: %v", err)
	}
	entry := models.NewHistoryEntry(nil)

	tests := []struct {
		name     string
		settings models.Settings
	}{
		{"summaries off", models.Settings{EnableEmailSummary: false, ParentEmail: "parent@example.com"}},
		{"no parent email", models.Settings{EnableEmailSummary: true, ParentEmail: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.SendWeeklySummary(context.Background(), tt.settings, "Bobby", entry); err != nil {
				t.Errorf("Expected a silent skip, got %v", err)
			}
		})
	}
}

func TestBuildSummaryBody(t *testing.T) {
	entry := models.NewHistoryEntry(models.SurveyAnswers{"q1_brush_frequency": "Twice"})
	entry.Feedback = []string{"Great brushing this week!"}
	entry.UnlockedAchievements = []models.AchievementID{achievements.FirstChat}

	body := buildSummaryBody("Bobby", entry)
	if !strings.Contains(body, "Bobby") {
		t.Error("Expected the child's name in the body")
	}
	if !strings.Contains(body, "Great brushing this week!") {
		t.Error("Expected the feedback lines in the body")
	}
	if !strings.Contains(body, "First Chat!") {
		t.Errorf("Expected the achievement name in the body, got:\n%s", body)
	}
}
