package dto

import (
	"time"

	"bvdu-bank/internal/models"

	"github.com/shopspring/decimal"
)

// CreateAccountRequest is the input of account opening
type CreateAccountRequest struct {
	Name           string          `json:"name" validate:"required,max=49,record_text"`
	AccountType    string          `json:"account_type" validate:"omitempty,account_category"`
	PIN            int             `json:"pin" validate:"account_pin"`
	InitialDeposit decimal.Decimal `json:"initial_deposit" validate:"gte=0"`
	UPI            string          `json:"upi" validate:"omitempty,max=63,record_text"`
}

// AccountDetails is the customer view of an account; the PIN is never exposed
type AccountDetails struct {
	Number         int             `json:"account_number"`
	Name           string          `json:"name"`
	AccountType    string          `json:"account_type"`
	Balance        decimal.Decimal `json:"balance"`
	Loan           decimal.Decimal `json:"loan"`
	Active         bool            `json:"active"`
	Frozen         bool            `json:"frozen"`
	FailedAttempts int             `json:"failed_attempts"`
	UPI            string          `json:"upi"`
	LastLogin      time.Time       `json:"last_login"`
}

// NewAccountDetails copies the displayable fields of an account
func NewAccountDetails(a *models.Account) AccountDetails {
	return AccountDetails{
		Number:         a.Number,
		Name:           a.Name,
		AccountType:    a.Type,
		Balance:        a.Balance,
		Loan:           a.Loan,
		Active:         a.Active,
		Frozen:         a.Frozen,
		FailedAttempts: a.FailedAttempts,
		UPI:            a.UPI,
		LastLogin:      a.LastLogin,
	}
}
