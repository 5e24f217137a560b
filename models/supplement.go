package models

import (
	"time"
)

// SupplementEntry is one supplement on the user's daily checklist.
// TakenDate records the last day the user ticked it off; adherence for a given
// day is "TakenDate == that day". Supplements affect no score, only the
// checklist completion shown on the dashboard.
type SupplementEntry struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Name      string    `json:"name" gorm:"not null"`
	Dosage    string    `json:"dosage"`
	TimeOfDay string    `json:"time_of_day"` // e.g. "morning", "with dinner"
	TakenDate string    `json:"taken_date" gorm:"type:varchar(10)"` // YYYY-MM-DD, empty if never taken
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the SupplementEntry model.
func (SupplementEntry) TableName() string {
	return "supplement_entries"
}
