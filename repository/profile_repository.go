package repository

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/caffeinepub/livspan-wellness-and-longevity-application/models"
)

// ProfileRepository defines the interface for interacting with user profile data.
type ProfileRepository interface {
	GetProfileByUserID(userID string) (*models.UserProfile, error)
	UpsertProfile(profile *models.UserProfile) (*models.UserProfile, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new instance of ProfileRepository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// GetProfileByUserID retrieves a user's profile. A missing profile is returned
// as (nil, nil) so callers can distinguish "not set up yet" from a real error.
func (r *profileRepository) GetProfileByUserID(userID string) (*models.UserProfile, error) {
	if userID == "" {
		return nil, errors.New("user ID cannot be empty")
	}

	var profile models.UserProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("INFO: [ProfileRepository] No profile found for userID %s.", userID)
			return nil, nil
		}
		log.Printf("ERROR: [ProfileRepository] Failed to fetch profile for userID %s: %v", userID, err)
		return nil, fmt.Errorf("failed to fetch profile for userID %s: %w", userID, err)
	}
	return &profile, nil
}

// UpsertProfile creates or replaces the profile row keyed by user_id.
func (r *profileRepository) UpsertProfile(profile *models.UserProfile) (*models.UserProfile, error) {
	if profile == nil {
		return nil, errors.New("profile cannot be nil")
	}
	if profile.UserID == "" {
		return nil, errors.New("profile user ID cannot be empty")
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "gender", "birth_year", "body_height_cm", "body_weight_kg", "language", "updated_at",
		}),
	}).Create(profile).Error
	if err != nil {
		log.Printf("ERROR: [ProfileRepository] Failed to upsert profile for userID %s: %v", profile.UserID, err)
		return nil, fmt.Errorf("failed to upsert profile for userID %s: %w", profile.UserID, err)
	}

	var saved models.UserProfile
	if fetchErr := r.db.First(&saved, "user_id = ?", profile.UserID).Error; fetchErr != nil {
		log.Printf("ERROR: [ProfileRepository] Failed to fetch profile for userID %s after upsert: %v", profile.UserID, fetchErr)
		return nil, fmt.Errorf("failed to fetch profile for userID %s after upsert: %w", profile.UserID, fetchErr)
	}
	log.Printf("INFO: [ProfileRepository] Saved profile for userID %s.", saved.UserID)
	return &saved, nil
}
