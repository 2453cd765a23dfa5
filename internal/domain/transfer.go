package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrSameAccount indicates a transfer from an account to itself.
var ErrSameAccount = errors.New("transfer accounts must differ")

// CreateTransferParams is the input data for the transfer operation.
type CreateTransferParams struct {
	FromAccountID string          `json:"from_account_id"`
	ToAccountID   string          `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Location      string          `json:"location"`
}

// TransferResult is the result of the transfer operation.
type TransferResult struct {
	FromAccount Account     `json:"from_account"`
	ToAccount   Account     `json:"to_account"`
	FromEntry   Transaction `json:"from_entry"`
	ToEntry     Transaction `json:"to_entry"`
}
