package dto

import (
	"time"

	"github.com/quantilytix/qbeta-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the expected JSON body for recording a
// transaction. Date is an ISO date string (YYYY-MM-DD).
type CreateTransactionRequest struct {
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date" binding:"required,isodate"`
	Category    string          `json:"category"`
	AccountID   string          `json:"accountId"`
}

// UpdateTransactionRequest defines the expected JSON body for updating a
// transaction. Nil fields are left unchanged.
type UpdateTransactionRequest struct {
	Type        *string          `json:"type" binding:"omitempty,oneof=income expense"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	Date        *string          `json:"date" binding:"omitempty,isodate"`
	Category    *string          `json:"category"`
	AccountID   *string          `json:"accountId"`
}

// TransactionResponse defines the JSON representation of a transaction.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	AccountID   string          `json:"accountId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.TransactionID,
		Type:        string(txn.Type),
		Amount:      txn.Amount,
		Description: txn.Description,
		Date:        txn.Date.Format("2006-01-02"),
		Category:    txn.Category,
		AccountID:   txn.AccountID,
		CreatedAt:   txn.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain transactions to
// response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return out
}
