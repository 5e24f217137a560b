package models

import (
	"time"
)

// UserProfile holds the per-user reference data the scorers depend on
// (gender, body weight) plus presentation preferences.
type UserProfile struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	UserID       string    `json:"user_id" gorm:"uniqueIndex;not null"`
	Name         string    `json:"name"`
	Gender       Gender    `json:"gender" gorm:"type:varchar(20);not null"`
	BirthYear    int       `json:"birth_year"`
	BodyHeightCm float64   `json:"body_height_cm"`
	BodyWeightKg float64   `json:"body_weight_kg"`
	Language     string    `json:"language" gorm:"default:'en'"` // presentation only, scoring ignores it
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the UserProfile model.
func (UserProfile) TableName() string {
	return "user_profiles"
}

// ProfileResponse is the API view of a profile with the derived score
// references included.
type ProfileResponse struct {
	Profile            UserProfile `json:"profile"`
	ProteinTargetGrams int         `json:"protein_target_grams"`
	IdealBodyFat       float64     `json:"ideal_body_fat"`
}
