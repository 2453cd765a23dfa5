// Package domain provides definitions of all ledger entities.
package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountNotActive indicates that the account status does not permit balance changes.
	ErrAccountNotActive = errors.New("account not active")
	// ErrInvalidAmount indicates a non-positive or malformed amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientBalance indicates that the account does not have sufficient balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInvalidStatus indicates an unknown account status.
	ErrInvalidStatus = errors.New("invalid account status")
	// ErrNotSavingsAccount indicates that the operation needs a savings account.
	ErrNotSavingsAccount = errors.New("not a savings account")
)

// MoneyPlaces is the number of decimal places money amounts are rounded to.
const MoneyPlaces = 2

// AccountStatus is the lifecycle state of an account.
type AccountStatus string

// Account statuses. Only StatusActive permits balance changes.
const (
	StatusActive    AccountStatus = "ACTIVE"
	StatusFrozen    AccountStatus = "FROZEN"
	StatusClosed    AccountStatus = "CLOSED"
	StatusSuspended AccountStatus = "SUSPENDED"
)

// Valid reports whether s is one of the known statuses.
func (s AccountStatus) Valid() bool {
	switch s {
	case StatusActive, StatusFrozen, StatusClosed, StatusSuspended:
		return true
	default:
		return false
	}
}

// AccountType tags the closed set of account variants.
type AccountType string

// Account variants.
const (
	AccountPlain   AccountType = "PLAIN"
	AccountSavings AccountType = "SAVINGS"
)

// InterestPolicy configures interest accrual on savings accounts.
type InterestPolicy struct {
	// Rate is the fraction of the balance credited per accrual call.
	Rate decimal.Decimal `json:"interest_rate"`
	// MinimumBalance is the floor below which no interest accrues.
	MinimumBalance decimal.Decimal `json:"minimum_balance"`
}

// DefaultInterestPolicy returns the 2% rate with a minimum balance of 100.
func DefaultInterestPolicy() InterestPolicy {
	return InterestPolicy{
		Rate:           decimal.RequireFromString("0.02"),
		MinimumBalance: decimal.NewFromInt(100),
	}
}

// Account is a point-in-time view of an account.
type Account struct {
	ID        string          `json:"id"`
	ClientID  string          `json:"client_id"`
	Type      AccountType     `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	Status    AccountStatus   `json:"status"`
	Interest  *InterestPolicy `json:"interest,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
