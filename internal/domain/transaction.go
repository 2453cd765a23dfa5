package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind is the kind of ledger event.
type TransactionKind string

// Transaction kinds.
const (
	KindDeposit     TransactionKind = "DEPOSIT"
	KindWithdrawal  TransactionKind = "WITHDRAWAL"
	KindTransferIn  TransactionKind = "TRANSFER_IN"
	KindTransferOut TransactionKind = "TRANSFER_OUT"
	KindInterest    TransactionKind = "INTEREST"
)

// InterestLocation is the location recorded on interest credits.
const InterestLocation = "interest"

// Transaction is an immutable record of one balance change.
type Transaction struct {
	ID        uuid.UUID       `json:"id"`
	AccountID string          `json:"account_id"`
	Timestamp time.Time       `json:"timestamp"`
	Kind      TransactionKind `json:"kind"`
	Amount    decimal.Decimal `json:"amount"` // always positive
	Location  string          `json:"location"`
}

// OperationResult is the outcome of a successful single-account operation.
type OperationResult struct {
	Account     Account     `json:"account"`
	Transaction Transaction `json:"transaction"`
}

// InterestResult is the outcome of an interest accrual call.
type InterestResult struct {
	Applied     bool         `json:"applied"`
	Account     Account      `json:"account"`
	Transaction *Transaction `json:"transaction,omitempty"`
}
