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

const dateFormat = "2006-01-02"

// trendWindowDays is how many prior routine days feed the trend analyzer.
const trendWindowDays = 7

// RoutineService defines the interface for completing and reading daily
// routines.
type RoutineService interface {
	CompleteRoutine(req models.CompleteRoutineRequest) (*models.CompleteRoutineResponse, error)
	GetHistory(userID string, limit int) ([]*models.RoutineDay, error)
}

type routineService struct {
	profileRepo  repository.ProfileRepository
	routineRepo  repository.RoutineRepository
	tokenService TokenService
	rewardAmount int64
}

// NewRoutineService creates a new instance of RoutineService.
func NewRoutineService(
	profileRepo repository.ProfileRepository,
	routineRepo repository.RoutineRepository,
	tokenService TokenService,
	rewardAmount int64,
) RoutineService {
	return &routineService{
		profileRepo:  profileRepo,
		routineRepo:  routineRepo,
		tokenService: tokenService,
		rewardAmount: rewardAmount,
	}
}

// CompleteRoutine scores the submitted snapshot, persists the day, and
// credits the routine reward. The routine store's (user, day) uniqueness
// makes the whole operation once-per-calendar-day: a duplicate submission
// fails before any tokens move.
func (s *routineService) CompleteRoutine(req models.CompleteRoutineRequest) (*models.CompleteRoutineResponse, error) {
	if req.UserID == "" {
		return nil, errors.New("userID cannot be empty")
	}

	date := req.Date
	if date == "" {
		date = time.Now().UTC().Format(dateFormat)
	} else if _, err := time.Parse(dateFormat, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", req.Date)
	}

	metrics, err := s.resolveMetrics(req.UserID, req.Metrics)
	if err != nil {
		return nil, err
	}

	autophagy := scoring.ComputeAutophagyScore(metrics)
	longevity, err := scoring.ComputeLongevityScore(metrics, autophagy.TotalScore, metrics.Gender)
	if err != nil {
		return nil, fmt.Errorf("failed to compute longevity score for userID %s: %w", req.UserID, err)
	}

	day := &models.RoutineDay{
		UserID:    req.UserID,
		Date:      date,
		Metrics:   metrics,
		Autophagy: autophagy,
		Longevity: longevity,
	}
	if err := s.routineRepo.CreateRoutineDay(day); err != nil {
		if errors.Is(err, repository.ErrRoutineAlreadyCompleted) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to store routine for userID %s: %w", req.UserID, err)
	}

	tokensEarned := int64(0)
	if s.tokenService != nil && s.rewardAmount > 0 {
		if err := s.tokenService.AwardRoutineReward(req.UserID, date, s.rewardAmount); err != nil {
			// The routine is already stored; losing the reward must not undo
			// the day. Surface it in logs and keep the response honest.
			log.Printf("ERROR: [RoutineService] Routine stored but reward failed for userID %s on %s: %v", req.UserID, date, err)
		} else {
			tokensEarned = s.rewardAmount
		}
	}

	log.Printf("INFO: [RoutineService] Routine completed for userID %s on %s (autophagy=%d, longevity=%d).",
		req.UserID, date, autophagy.TotalScore, longevity.TotalScore)
	return &models.CompleteRoutineResponse{Routine: day, TokensEarned: tokensEarned}, nil
}

// GetHistory returns up to limit routine days, oldest to newest.
func (s *routineService) GetHistory(userID string, limit int) ([]*models.RoutineDay, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty")
	}
	if limit <= 0 {
		limit = trendWindowDays
	}
	days, err := s.routineRepo.GetRecentRoutineDays(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load routine history for userID %s: %w", userID, err)
	}
	return days, nil
}

// resolveMetrics fills the profile-derived fields of the snapshot: gender
// always comes from the stored profile, and the protein target is derived
// from body weight when the client did not supply one.
func (s *routineService) resolveMetrics(userID string, metrics models.DailyMetrics) (models.DailyMetrics, error) {
	profile, err := s.profileRepo.GetProfileByUserID(userID)
	if err != nil {
		return models.DailyMetrics{}, fmt.Errorf("failed to load profile for userID %s: %w", userID, err)
	}
	if profile == nil {
		return models.DailyMetrics{}, fmt.Errorf("no profile found for userID %s: complete profile setup first", userID)
	}

	metrics.Gender = profile.Gender
	if metrics.ProteinTargetGrams <= 0 {
		metrics.ProteinTargetGrams = float64(scoring.ProteinTarget(profile.BodyWeightKg, profile.Gender))
	}
	return scoring.NormalizeMetrics(metrics), nil
}
