package repository

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/caffeinepub/livspan-wellness-and-longevity-application/models"
)

// ErrRoutineAlreadyCompleted is returned when a second routine is submitted
// for the same user and calendar day. The unique (user_id, date) index is the
// authoritative guard; this sentinel translates the constraint violation.
var ErrRoutineAlreadyCompleted = errors.New("routine already completed today")

// RoutineRepository defines the interface for interacting with completed
// daily routine data.
type RoutineRepository interface {
	CreateRoutineDay(day *models.RoutineDay) error
	GetRoutineDay(userID, date string) (*models.RoutineDay, error)
	GetRecentRoutineDays(userID string, limit int) ([]*models.RoutineDay, error)
}

type routineRepository struct {
	db *gorm.DB
}

// NewRoutineRepository creates a new instance of RoutineRepository.
func NewRoutineRepository(db *gorm.DB) RoutineRepository {
	return &routineRepository{db: db}
}

// CreateRoutineDay persists a completed routine. A duplicate (user, date)
// submission fails with ErrRoutineAlreadyCompleted.
func (r *routineRepository) CreateRoutineDay(day *models.RoutineDay) error {
	if day == nil {
		return errors.New("routine day cannot be nil")
	}
	if day.UserID == "" || day.Date == "" {
		return errors.New("routine day requires user ID and date")
	}

	err := r.db.Create(day).Error
	if err != nil {
		if isUniqueViolation(err) {
			log.Printf("INFO: [RoutineRepository] Duplicate routine submission for userID %s on %s.", day.UserID, day.Date)
			return ErrRoutineAlreadyCompleted
		}
		log.Printf("ERROR: [RoutineRepository] Failed to create routine day for userID %s on %s: %v", day.UserID, day.Date, err)
		return fmt.Errorf("failed to create routine day for userID %s: %w", day.UserID, err)
	}
	log.Printf("INFO: [RoutineRepository] Stored routine day ID %d for userID %s (%s).", day.ID, day.UserID, day.Date)
	return nil
}

// GetRoutineDay fetches one completed routine; (nil, nil) when absent.
func (r *routineRepository) GetRoutineDay(userID, date string) (*models.RoutineDay, error) {
	var day models.RoutineDay
	err := r.db.First(&day, "user_id = ? AND date = ?", userID, date).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("ERROR: [RoutineRepository] Failed to fetch routine day for userID %s on %s: %v", userID, date, err)
		return nil, fmt.Errorf("failed to fetch routine day for userID %s: %w", userID, err)
	}
	return &day, nil
}

// GetRecentRoutineDays returns up to limit routine days ordered oldest to
// newest, which is the shape the trend analyzer consumes.
func (r *routineRepository) GetRecentRoutineDays(userID string, limit int) ([]*models.RoutineDay, error) {
	if userID == "" {
		return nil, errors.New("user ID cannot be empty")
	}

	var days []*models.RoutineDay
	err := r.db.Where("user_id = ?", userID).Order("date desc").Limit(limit).Find(&days).Error
	if err != nil {
		log.Printf("ERROR: [RoutineRepository] Failed to fetch recent routine days for userID %s: %v", userID, err)
		return nil, fmt.Errorf("failed to fetch recent routine days for userID %s: %w", userID, err)
	}

	// Reverse the descending page into chronological order.
	for i, j := 0, len(days)-1; i < j; i, j = i+1, j-1 {
		days[i], days[j] = days[j], days[i]
	}
	return days, nil
}

// isUniqueViolation detects the sqlite unique-constraint error across the
// driver's message variants.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "constraint failed")
}
