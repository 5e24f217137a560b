package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/caffeinepub/livspan-wellness-and-longevity-application/models"
	"github.com/caffeinepub/livspan-wellness-and-longevity-application/repository"
	"github.com/caffeinepub/livspan-wellness-and-longevity-application/scoring"
)

// ScoreService defines the interface for the live dashboard computation:
// both scores, trend classification, coaching steps and insights for a
// metrics snapshot, without persisting anything.
type ScoreService interface {
	PreviewScores(userID string, metrics models.DailyMetrics) (*models.DailyScoreReport, error)
}

type scoreService struct {
	profileRepo repository.ProfileRepository
	routineRepo repository.RoutineRepository
}

// NewScoreService creates a new instance of ScoreService.
func NewScoreService(profileRepo repository.ProfileRepository, routineRepo repository.RoutineRepository) ScoreService {
	return &scoreService{profileRepo: profileRepo, routineRepo: routineRepo}
}

// PreviewScores runs the full scoring pipeline against the submitted
// snapshot plus the user's recent history. It is read-only and safe to call
// as often as the dashboard refreshes.
func (s *scoreService) PreviewScores(userID string, metrics models.DailyMetrics) (*models.DailyScoreReport, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty")
	}

	profile, err := s.profileRepo.GetProfileByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile for userID %s: %w", userID, err)
	}
	if profile == nil {
		return nil, fmt.Errorf("no profile found for userID %s: complete profile setup first", userID)
	}

	metrics.Gender = profile.Gender
	if metrics.ProteinTargetGrams <= 0 {
		metrics.ProteinTargetGrams = float64(scoring.ProteinTarget(profile.BodyWeightKg, profile.Gender))
	}
	metrics = scoring.NormalizeMetrics(metrics)

	autophagy := scoring.ComputeAutophagyScore(metrics)
	longevity, err := scoring.ComputeLongevityScore(metrics, autophagy.TotalScore, metrics.Gender)
	if err != nil {
		return nil, fmt.Errorf("failed to compute longevity score for userID %s: %w", userID, err)
	}

	autophagyHistory, longevityHistory := s.loadTrendHistory(userID)

	steps := scoring.GenerateCoachingSteps(scoring.CoachingInput{
		Metrics: metrics,
		Scores:  scoring.ScorePair{Autophagy: autophagy.TotalScore, Longevity: longevity.TotalScore},
	})
	insights := scoring.GenerateInsights(scoring.InsightInput{
		Metrics: metrics,
		Trends: &scoring.TrendInput{
			AutophagyTrend: autophagyHistory,
			LongevityTrend: longevityHistory,
		},
	})

	report := &models.DailyScoreReport{
		Autophagy:      autophagy,
		Longevity:      longevity,
		Steps:          steps,
		Insights:       insights,
		AutophagyTrend: scoring.ClassifyTrend(float64(autophagy.TotalScore), autophagyHistory),
		LongevityTrend: scoring.ClassifyTrend(float64(longevity.TotalScore), longevityHistory),
	}

	if profile.BirthYear > 0 {
		age := time.Now().UTC().Year() - profile.BirthYear
		projection := scoring.ComputeProjection(metrics, age, autophagy.TotalScore, longevity.TotalScore)
		report.Projection = &projection
	}
	return report, nil
}

// loadTrendHistory fetches the last routine days and projects out the two
// total-score series, oldest to newest. History being unavailable degrades
// to empty series (flat trends), never to a failed preview.
func (s *scoreService) loadTrendHistory(userID string) (autophagy, longevity []float64) {
	days, err := s.routineRepo.GetRecentRoutineDays(userID, trendWindowDays)
	if err != nil {
		log.Printf("WARN: [ScoreService] Failed to load trend history for userID %s: %v. Proceeding without trends.", userID, err)
		return nil, nil
	}
	for _, day := range days {
		autophagy = append(autophagy, float64(day.Autophagy.TotalScore))
		longevity = append(longevity, float64(day.Longevity.TotalScore))
	}
	return autophagy, longevity
}
