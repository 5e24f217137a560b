package models

import (
	"time"
)

// JournalEntry is a dated free-text note the user attaches to a day.
type JournalEntry struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Date      string    `json:"date" gorm:"index;type:varchar(10);not null"` // YYYY-MM-DD
	Content   string    `json:"content" gorm:"type:text"`
	Mood      string    `json:"mood"` // optional free-form mood tag
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the JournalEntry model.
func (JournalEntry) TableName() string {
	return "journal_entries"
}
