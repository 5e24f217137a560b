package models

import (
	"time"
)

// RoutineDay is one completed daily routine: the metrics snapshot the user
// submitted plus the scores computed from it at submission time.
// The (UserID, Date) unique index enforces the "one completed routine per
// calendar day per user" invariant at the storage layer.
type RoutineDay struct {
	ID        uint         `json:"id" gorm:"primarykey"`
	UserID    string       `json:"user_id" gorm:"uniqueIndex:idx_routine_user_day;not null"`
	Date      string       `json:"date" gorm:"uniqueIndex:idx_routine_user_day;type:varchar(10);not null"` // YYYY-MM-DD
	Metrics   DailyMetrics `json:"metrics" gorm:"serializer:json"`
	Autophagy AutophagyScore `json:"autophagy_score" gorm:"embedded;embeddedPrefix:autophagy_"`
	Longevity LongevityScore `json:"longevity_score" gorm:"embedded;embeddedPrefix:longevity_"`
	CreatedAt time.Time    `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for the RoutineDay model.
func (RoutineDay) TableName() string {
	return "routine_days"
}

// CompleteRoutineRequest is the client payload for completing a day's routine.
type CompleteRoutineRequest struct {
	UserID  string       `json:"user_id" binding:"required"`
	Date    string       `json:"date"` // defaults to today (UTC) when empty
	Metrics DailyMetrics `json:"metrics" binding:"required"`
}

// CompleteRoutineResponse reports the persisted day and the tokens earned.
type CompleteRoutineResponse struct {
	Routine      *RoutineDay `json:"routine"`
	TokensEarned int64       `json:"tokens_earned"`
}

// DailyScoreReport is the live (non-persisted) dashboard view: both score
// breakdowns plus the coaching feed derived from the same snapshot.
type DailyScoreReport struct {
	Autophagy  AutophagyScore    `json:"autophagy_score"`
	Longevity  LongevityScore    `json:"longevity_score"`
	Steps      []CoachingStep    `json:"coaching_steps"`
	Insights   []CoachingInsight `json:"insights"`
	AutophagyTrend TrendDirection `json:"autophagy_trend"`
	LongevityTrend TrendDirection `json:"longevity_trend"`
	Projection *FutureProjection `json:"projection,omitempty"`
}
