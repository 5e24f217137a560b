package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/caffeinepub/livspan-wellness-and-longevity-application/models"
	"github.com/caffeinepub/livspan-wellness-and-longevity-application/repository"
	"github.com/caffeinepub/livspan-wellness-and-longevity-application/scoring"
)

// ProfileService defines the interface for profile management.
type ProfileService interface {
	GetProfile(userID string) (*models.ProfileResponse, error)
	SaveProfile(profile *models.UserProfile) (*models.ProfileResponse, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new instance of ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

// GetProfile returns the stored profile plus the derived score references
// (protein target, ideal body fat). A missing profile is (nil, nil).
func (s *profileService) GetProfile(userID string) (*models.ProfileResponse, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty")
	}

	profile, err := s.profileRepo.GetProfileByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile for userID %s: %w", userID, err)
	}
	if profile == nil {
		return nil, nil
	}
	return s.buildResponse(profile)
}

// SaveProfile validates and upserts the profile. Gender is mandatory: the
// scorers refuse to guess it, so the profile layer refuses to store a
// profile without it.
func (s *profileService) SaveProfile(profile *models.UserProfile) (*models.ProfileResponse, error) {
	if profile == nil {
		return nil, errors.New("profile cannot be nil")
	}
	if profile.UserID == "" {
		return nil, errors.New("profile user ID cannot be empty")
	}
	if !profile.Gender.Valid() {
		log.Printf("WARN: [ProfileService] Rejecting profile for userID %s with invalid gender %q.", profile.UserID, profile.Gender)
		return nil, fmt.Errorf("invalid gender %q: must be male, female or other", profile.Gender)
	}

	saved, err := s.profileRepo.UpsertProfile(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile for userID %s: %w", profile.UserID, err)
	}
	log.Printf("INFO: [ProfileService] Profile saved for userID %s.", saved.UserID)
	return s.buildResponse(saved)
}

func (s *profileService) buildResponse(profile *models.UserProfile) (*models.ProfileResponse, error) {
	idealBodyFat, ok := scoring.IdealBodyFat(profile.Gender)
	if !ok {
		return nil, fmt.Errorf("stored profile for userID %s has invalid gender %q", profile.UserID, profile.Gender)
	}
	return &models.ProfileResponse{
		Profile:            *profile,
		ProteinTargetGrams: scoring.ProteinTarget(profile.BodyWeightKg, profile.Gender),
		IdealBodyFat:       idealBodyFat,
	}, nil
}
