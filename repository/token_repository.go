package repository

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/caffeinepub/livspan-wellness-and-longevity-application/models"
)

// TokenRepository defines the interface for interacting with the LIV token
// ledger.
type TokenRepository interface {
	CreateTransaction(tx *models.TokenTransaction) error
	GetBalance(userID string) (int64, error)
	GetTransactionsByUserID(userID string) ([]*models.TokenTransaction, error)
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new instance of TokenRepository.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) CreateTransaction(tx *models.TokenTransaction) error {
	if tx == nil {
		return errors.New("token transaction cannot be nil")
	}
	if tx.UserID == "" {
		return errors.New("token transaction requires a user ID")
	}
	if err := r.db.Create(tx).Error; err != nil {
		log.Printf("ERROR: [TokenRepository] Failed to create token transaction for userID %s: %v", tx.UserID, err)
		return fmt.Errorf("failed to create token transaction for userID %s: %w", tx.UserID, err)
	}
	log.Printf("INFO: [TokenRepository] Recorded %s of %d LIV for userID %s.", tx.Type, tx.Amount, tx.UserID)
	return nil
}

// GetBalance sums the user's ledger. A user with no transactions has a zero
// balance, not an error.
func (r *tokenRepository) GetBalance(userID string) (int64, error) {
	if userID == "" {
		return 0, errors.New("user ID cannot be empty")
	}

	var balance int64
	err := r.db.Model(&models.TokenTransaction{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&balance).Error
	if err != nil {
		log.Printf("ERROR: [TokenRepository] Failed to compute balance for userID %s: %v", userID, err)
		return 0, fmt.Errorf("failed to compute balance for userID %s: %w", userID, err)
	}
	return balance, nil
}

func (r *tokenRepository) GetTransactionsByUserID(userID string) ([]*models.TokenTransaction, error) {
	var txs []*models.TokenTransaction
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&txs).Error
	if err != nil {
		log.Printf("ERROR: [TokenRepository] Failed to fetch token transactions for userID %s: %v", userID, err)
		return nil, fmt.Errorf("failed to fetch token transactions for userID %s: %w", userID, err)
	}
	return txs, nil
}
