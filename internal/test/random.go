package test

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/randompkg"
)

// RandomAccount returns a random active savings account owned by the given client.
func RandomAccount(clientID string) domain.Account {
	policy := domain.DefaultInterestPolicy()

	return domain.Account{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		Type:      domain.AccountSavings,
		Balance:   decimal.RequireFromString(randompkg.MoneyAmountBetween(1000, 10_000)),
		Status:    domain.StatusActive,
		Interest:  &policy,
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

// RandomClient returns a random client owning one random account.
func RandomClient() domain.Client {
	id := uuid.NewString()

	return domain.Client{
		ID:        id,
		Name:      randompkg.Name(),
		Contact:   randompkg.Email(),
		Category:  domain.ClientCategory(randompkg.Category()),
		Accounts:  []domain.Account{RandomAccount(id)},
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

// RandomTransaction returns a random deposit recorded on the given account.
func RandomTransaction(accountID string) domain.Transaction {
	return domain.Transaction{
		ID:        uuid.New(),
		AccountID: accountID,
		Timestamp: time.Now().Truncate(time.Second).UTC(),
		Kind:      domain.KindDeposit,
		Amount:    decimal.RequireFromString(randompkg.MoneyAmountBetween(1, 1000)),
		Location:  randompkg.String(8),
	}
}
