// Package test provides shared test helpers.
package test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/ledger"
	"github.com/go-petr/pet-ledger/pkg/randompkg"
)

// SeedClient registers a random individual client.
func SeedClient(t *testing.T, r *ledger.Registry) *ledger.Client {
	t.Helper()

	return r.RegisterClient(randompkg.Name(), randompkg.Email(), domain.CategoryIndividual)
}

// SeedAccountWithBalance opens a savings account for the client and deposits balance into it.
func SeedAccountWithBalance(t *testing.T, r *ledger.Registry, clientID, balance string) *ledger.Account {
	t.Helper()

	account, err := r.OpenSavingsAccount(clientID)
	if err != nil {
		t.Fatalf("r.OpenSavingsAccount(%v) returned error: %v", clientID, err)
	}

	amount := decimal.RequireFromString(balance)
	if !amount.IsPositive() {
		return account
	}

	if _, err := account.Deposit(amount, "seed"); err != nil {
		t.Fatalf("account.Deposit(%v) returned error: %v", balance, err)
	}

	return account
}
