package models

import (
	"time"
)

// TokenTransactionType classifies a ledger entry.
type TokenTransactionType string

const (
	TokenTxRoutineReward TokenTransactionType = "routine_reward"
	TokenTxAdjustment    TokenTransactionType = "adjustment"
)

// TokenTransaction is one credit in the LIV token ledger. Full transfer and
// checkout mechanics live outside this service; the backend only records
// routine rewards and exposes the resulting balance.
type TokenTransaction struct {
	ID        uint                 `json:"id" gorm:"primarykey"`
	UserID    string               `json:"user_id" gorm:"index;not null"`
	Amount    int64                `json:"amount" gorm:"not null"`
	Type      TokenTransactionType `json:"type" gorm:"type:varchar(50);not null"`
	Memo      string               `json:"memo"`
	CreatedAt time.Time            `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for the TokenTransaction model.
func (TokenTransaction) TableName() string {
	return "token_transactions"
}

// TokenWallet is the API view of a user's ledger state.
type TokenWallet struct {
	UserID       string             `json:"user_id"`
	Balance      int64              `json:"balance"`
	Transactions []TokenTransaction `json:"transactions"`
}
