package repository

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/caffeinepub/livspan-wellness-and-longevity-application/models"
)

// SupplementRepository defines the interface for interacting with supplement
// checklist data.
type SupplementRepository interface {
	CreateSupplement(entry *models.SupplementEntry) error
	GetSupplementsByUserID(userID string) ([]*models.SupplementEntry, error)
	GetSupplementByID(id uint) (*models.SupplementEntry, error)
	MarkTaken(id uint, date string) (*models.SupplementEntry, error)
	DeleteSupplement(id uint) error
}

type supplementRepository struct {
	db *gorm.DB
}

// NewSupplementRepository creates a new instance of SupplementRepository.
func NewSupplementRepository(db *gorm.DB) SupplementRepository {
	return &supplementRepository{db: db}
}

func (r *supplementRepository) CreateSupplement(entry *models.SupplementEntry) error {
	if entry == nil {
		return errors.New("supplement entry cannot be nil")
	}
	if entry.UserID == "" || entry.Name == "" {
		return errors.New("supplement entry requires user ID and name")
	}
	if err := r.db.Create(entry).Error; err != nil {
		log.Printf("ERROR: [SupplementRepository] Failed to create supplement for userID %s: %v", entry.UserID, err)
		return fmt.Errorf("failed to create supplement for userID %s: %w", entry.UserID, err)
	}
	return nil
}

func (r *supplementRepository) GetSupplementsByUserID(userID string) ([]*models.SupplementEntry, error) {
	var entries []*models.SupplementEntry
	err := r.db.Where("user_id = ?", userID).Order("created_at asc").Find(&entries).Error
	if err != nil {
		log.Printf("ERROR: [SupplementRepository] Failed to fetch supplements for userID %s: %v", userID, err)
		return nil, fmt.Errorf("failed to fetch supplements for userID %s: %w", userID, err)
	}
	return entries, nil
}

func (r *supplementRepository) GetSupplementByID(id uint) (*models.SupplementEntry, error) {
	var entry models.SupplementEntry
	err := r.db.First(&entry, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("ERROR: [SupplementRepository] Failed to fetch supplement ID %d: %v", id, err)
		return nil, fmt.Errorf("failed to fetch supplement ID %d: %w", id, err)
	}
	return &entry, nil
}

// MarkTaken records that the supplement was taken on the given day.
func (r *supplementRepository) MarkTaken(id uint, date string) (*models.SupplementEntry, error) {
	entry, err := r.GetSupplementByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	entry.TakenDate = date
	if err := r.db.Save(entry).Error; err != nil {
		log.Printf("ERROR: [SupplementRepository] Failed to mark supplement ID %d taken: %v", id, err)
		return nil, fmt.Errorf("failed to mark supplement ID %d taken: %w", id, err)
	}
	return entry, nil
}

func (r *supplementRepository) DeleteSupplement(id uint) error {
	if err := r.db.Delete(&models.SupplementEntry{}, id).Error; err != nil {
		log.Printf("ERROR: [SupplementRepository] Failed to delete supplement ID %d: %v", id, err)
		return fmt.Errorf("failed to delete supplement ID %d: %w", id, err)
	}
	return nil
}
