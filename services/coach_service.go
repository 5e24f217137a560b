package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/caffeinepub/livspan-wellness-and-longevity-application/config"
	"github.com/caffeinepub/livspan-wellness-and-longevity-application/models"
)

const coachSystemPrompt = "You are LivSpan's longevity coach. You receive a user's daily scores and " +
	"rule-based coaching steps and turn them into one short, encouraging briefing " +
	"(3-5 sentences). Never invent metrics that are not in the input and never give " +
	"medical diagnoses."

// CoachService defines the interface for the LLM coach persona that narrates
// the day's rule-engine output.
type CoachService interface {
	ComposeDailyBriefing(ctx context.Context, report *models.DailyScoreReport) (string, error)
	Enabled() bool
}

type coachService struct{}

// NewCoachService creates a new instance of CoachService.
func NewCoachService() CoachService {
	return &coachService{}
}

// Enabled reports whether an LLM provider is configured. The coach endpoint
// is optional; the deterministic coaching feed works without it.
func (s *coachService) Enabled() bool {
	return config.AppConfig.LLM.APIKey != ""
}

// ComposeDailyBriefing sends the scored day to the configured model and
// returns its narrative. The scores and steps in the prompt come straight
// from the deterministic engines; the model only rephrases them.
func (s *coachService) ComposeDailyBriefing(ctx context.Context, report *models.DailyScoreReport) (string, error) {
	if report == nil {
		return "", errors.New("report cannot be nil")
	}
	if !s.Enabled() {
		return "", errors.New("coach is not configured: missing LLM API key")
	}

	clientConfig := openai.DefaultConfig(config.AppConfig.LLM.APIKey)
	if config.AppConfig.LLM.BaseURL != "" {
		clientConfig.BaseURL = config.AppConfig.LLM.BaseURL
	}
	client := openai.NewClientWithConfig(clientConfig)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: config.AppConfig.LLM.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: coachSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: briefingPrompt(report)},
		},
	})
	if err != nil {
		log.Printf("ERROR: [CoachService] LLM completion failed: %v", err)
		return "", fmt.Errorf("failed to compose daily briefing: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("LLM returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func briefingPrompt(report *models.DailyScoreReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Autophagy score: %d/100 (trend: %s)\n", report.Autophagy.TotalScore, report.AutophagyTrend)
	fmt.Fprintf(&b, "Longevity score: %d/100 (trend: %s)\n", report.Longevity.TotalScore, report.LongevityTrend)
	b.WriteString("Coaching steps:\n")
	for _, step := range report.Steps {
		fmt.Fprintf(&b, "- [P%d] %s: %s\n", step.Priority, step.Title, step.Actionable)
	}
	for _, insight := range report.Insights {
		fmt.Fprintf(&b, "Insight (%s): %s\n", insight.Type, insight.Message)
	}
	return b.String()
}
