package dto

import (
	"time"

	"github.com/quantilytix/qbeta-backend/internal/core/domain"
)

// CreateAccountRequest defines the expected JSON body for creating an account.
type CreateAccountRequest struct {
	Name  string `json:"name" binding:"required"`
	Type  string `json:"type" binding:"required,oneof=Asset Liability Equity Income Expense"`
	Code  string `json:"code" binding:"required"`
	Class string `json:"class" binding:"omitempty,oneof=current-asset non-current-asset current-liability non-current-liability"`
}

// AccountResponse defines the JSON representation of an account.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Code      string    `json:"code"`
	Class     string    `json:"class,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToAccountResponse converts a domain account to its response DTO.
func ToAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		ID:        account.AccountID,
		Name:      account.Name,
		Type:      string(account.Type),
		Code:      account.Code,
		Class:     string(account.Class),
		CreatedAt: account.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of domain accounts to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = ToAccountResponse(&accounts[i])
	}
	return out
}
