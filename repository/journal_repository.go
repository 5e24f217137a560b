package repository

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/caffeinepub/livspan-wellness-and-longevity-application/models"
)

// JournalRepository defines the interface for interacting with journal data.
type JournalRepository interface {
	CreateEntry(entry *models.JournalEntry) error
	GetEntriesByUserID(userID string) ([]*models.JournalEntry, error)
	GetEntriesByDate(userID, date string) ([]*models.JournalEntry, error)
	DeleteEntry(id uint) error
}

type journalRepository struct {
	db *gorm.DB
}

// NewJournalRepository creates a new instance of JournalRepository.
func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) CreateEntry(entry *models.JournalEntry) error {
	if entry == nil {
		return errors.New("journal entry cannot be nil")
	}
	if entry.UserID == "" || entry.Date == "" {
		return errors.New("journal entry requires user ID and date")
	}
	if err := r.db.Create(entry).Error; err != nil {
		log.Printf("ERROR: [JournalRepository] Failed to create journal entry for userID %s: %v", entry.UserID, err)
		return fmt.Errorf("failed to create journal entry for userID %s: %w", entry.UserID, err)
	}
	return nil
}

func (r *journalRepository) GetEntriesByUserID(userID string) ([]*models.JournalEntry, error) {
	var entries []*models.JournalEntry
	err := r.db.Where("user_id = ?", userID).Order("date desc, created_at desc").Find(&entries).Error
	if err != nil {
		log.Printf("ERROR: [JournalRepository] Failed to fetch journal entries for userID %s: %v", userID, err)
		return nil, fmt.Errorf("failed to fetch journal entries for userID %s: %w", userID, err)
	}
	return entries, nil
}

func (r *journalRepository) GetEntriesByDate(userID, date string) ([]*models.JournalEntry, error) {
	var entries []*models.JournalEntry
	err := r.db.Where("user_id = ? AND date = ?", userID, date).Order("created_at asc").Find(&entries).Error
	if err != nil {
		log.Printf("ERROR: [JournalRepository] Failed to fetch journal entries for userID %s on %s: %v", userID, date, err)
		return nil, fmt.Errorf("failed to fetch journal entries for userID %s on %s: %w", userID, date, err)
	}
	return entries, nil
}

func (r *journalRepository) DeleteEntry(id uint) error {
	if err := r.db.Delete(&models.JournalEntry{}, id).Error; err != nil {
		log.Printf("ERROR: [JournalRepository] Failed to delete journal entry ID %d: %v", id, err)
		return fmt.Errorf("failed to delete journal entry ID %d: %w", id, err)
	}
	return nil
}
