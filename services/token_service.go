package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/caffeinepub/livspan-wellness-and-longevity-application/models"
	"github.com/caffeinepub/livspan-wellness-and-longevity-application/repository"
)

// TokenService defines the interface for LIV token wallet operations.
type TokenService interface {
	GetWallet(userID string) (*models.TokenWallet, error)
	AwardRoutineReward(userID, date string, amount int64) error
}

type tokenService struct {
	tokenRepo repository.TokenRepository
}

// NewTokenService creates a new instance of TokenService.
func NewTokenService(tokenRepo repository.TokenRepository) TokenService {
	return &tokenService{tokenRepo: tokenRepo}
}

// GetWallet returns the balance and transaction history for a user.
func (s *tokenService) GetWallet(userID string) (*models.TokenWallet, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty")
	}

	balance, err := s.tokenRepo.GetBalance(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load balance for userID %s: %w", userID, err)
	}
	txs, err := s.tokenRepo.GetTransactionsByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for userID %s: %w", userID, err)
	}

	transactions := make([]models.TokenTransaction, 0, len(txs))
	for _, tx := range txs {
		transactions = append(transactions, *tx)
	}
	return &models.TokenWallet{
		UserID:       userID,
		Balance:      balance,
		Transactions: transactions,
	}, nil
}

// AwardRoutineReward credits the daily routine reward. Callers must have
// already established that the day's routine was accepted exactly once; the
// routine store's per-day uniqueness is what keeps this from double-paying.
func (s *tokenService) AwardRoutineReward(userID, date string, amount int64) error {
	if userID == "" {
		return errors.New("userID cannot be empty")
	}
	if amount <= 0 {
		return fmt.Errorf("invalid reward amount %d", amount)
	}

	tx := &models.TokenTransaction{
		UserID: userID,
		Amount: amount,
		Type:   models.TokenTxRoutineReward,
		Memo:   fmt.Sprintf("Daily routine completed on %s", date),
	}
	if err := s.tokenRepo.CreateTransaction(tx); err != nil {
		return fmt.Errorf("failed to award routine reward for userID %s: %w", userID, err)
	}
	log.Printf("INFO: [TokenService] Awarded %d LIV to userID %s for %s.", amount, userID, date)
	return nil
}
