package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"drsparkle/internal/achievements"
	"drsparkle/internal/models"
)

// EmailService sends the optional weekly summary to parents via Amazon
// SES. It is entirely opt-in: per-user settings gate every send.
type EmailService struct {
	client    *sesv2.Client
	fromEmail string
	fromName  string
	enabled   bool
}

// NewEmailService creates a new email service. An empty fromEmail yields a
// disabled service that silently skips all sends.
func NewEmailService(awsRegion, fromEmail, fromName string) (*EmailService, error) {
	if fromEmail == "" {
		log.Println("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false}, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := sesv2.NewFromConfig(cfg)
	log.Printf("Email service enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   true,
	}, nil
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendWeeklySummary emails a parent the outcome of a child's check-in.
// Nothing is sent unless the user opted in and provided a parent email.
func (s *EmailService) SendWeeklySummary(ctx context.Context, settings models.Settings, childName string, entry models.HistoryEntry) error {
	if !settings.EnableEmailSummary || settings.ParentEmail == "" {
		return nil
	}
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): weekly summary to %s", settings.ParentEmail)
		return nil
	}

	subject := fmt.Sprintf("%s's weekly smile check-in", childName)
	textBody := buildSummaryBody(childName, entry)

	return s.sendEmail(ctx, settings.ParentEmail, subject, textBody)
}

func buildSummaryBody(childName string, entry models.HistoryEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi,\n\n%s completed a weekly check-in on %s.\n\n", childName, entry.Date)

	if len(entry.Feedback) > 0 {
		b.WriteString("Highlights:\n")
		for _, line := range entry.Feedback {
			fmt.Fprintf(&b, "  - %s\n", line)
		}
		b.WriteString("\n")
	}

	if len(entry.UnlockedAchievements) > 0 {
		b.WriteString("New achievements:\n")
		for _, id := range entry.UnlockedAchievements {
			if achievement, ok := achievements.Lookup(id); ok {
				fmt.Fprintf(&b, "  %s %s\n", achievement.Icon, achievement.Name)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("---\nThis is an automated email from Dr. Sparkle. Please do not reply.\n")
	return b.String()
}

func (s *EmailService) sendEmail(ctx context.Context, toEmail, subject, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}
	return nil
}
