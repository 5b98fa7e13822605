package models

import (
	"strings"
	"time"

	apperrors "bvdu-bank/internal/errors"

	"github.com/shopspring/decimal"
)

const (
	AccountTypeSavings = "Savings"
	AccountTypeCurrent = "Current"

	MinPIN = 1000
	MaxPIN = 9999

	DefaultMaxFailedAttempts = 3
)

var (
	ErrInvalidAmount     = apperrors.New(apperrors.AccountInvalidAmount)
	ErrInsufficientFunds = apperrors.New(apperrors.AccountInsufficientFunds)
	ErrAccountInactive   = apperrors.New(apperrors.AccountInactive)
	ErrAccountFrozen     = apperrors.New(apperrors.AuthAccountFrozen)
)

// Account is a customer bank account. Balance and Loan are INR with 2 decimals.
type Account struct {
	Number         int
	Name           string
	Type           string
	PIN            int
	Balance        decimal.Decimal
	Loan           decimal.Decimal
	Active         bool
	Frozen         bool
	FailedAttempts int
	UPI            string
	LastLogin      time.Time
}

// IsSavings reports whether the account earns interest
func (a *Account) IsSavings() bool {
	return strings.EqualFold(a.Type, AccountTypeSavings)
}

// CanOperate returns nil when PIN-based operations are allowed on the account
func (a *Account) CanOperate() error {
	if !a.Active {
		return ErrAccountInactive
	}
	if a.Frozen {
		return ErrAccountFrozen
	}
	return nil
}

// CanReceive reports whether funds may be credited by a transfer
func (a *Account) CanReceive() bool {
	return a.Active && !a.Frozen
}

// Credit adds a positive amount to the balance
func (a *Account) Credit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.Balance = a.Balance.Add(amount).Round(MoneyPlaces)
	return nil
}

// Debit removes a positive amount from the balance, never going below zero
func (a *Account) Debit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount).Round(MoneyPlaces)
	return nil
}

// RecordFailedAttempt counts a wrong PIN and freezes the account once max is reached.
// It returns true when this attempt froze the account.
func (a *Account) RecordFailedAttempt(max int) bool {
	a.FailedAttempts++
	if a.FailedAttempts >= max && !a.Frozen {
		a.Frozen = true
		return true
	}
	return false
}

// RecordLogin resets the failure counter after a correct PIN
func (a *Account) RecordLogin(at time.Time) {
	a.FailedAttempts = 0
	a.LastLogin = at
}

// Unfreeze clears both the frozen flag and the failure counter
func (a *Account) Unfreeze() {
	a.Frozen = false
	a.FailedAttempts = 0
}

// NormalizeAccountType maps user input to one of the two account categories.
// Empty input means Savings.
func NormalizeAccountType(input string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "savings":
		return AccountTypeSavings, true
	case "current":
		return AccountTypeCurrent, true
	default:
		return "", false
	}
}

// IsValidPIN checks the 4-digit PIN range
func IsValidPIN(pin int) bool {
	return pin >= MinPIN && pin <= MaxPIN
}
