// Package demo seeds a registry with a sample client for manual exploration.
package demo

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/ledger"
)

// Demo client details.
const (
	ClientName    = "Demo Client"
	ClientContact = "demo@example.com"
)

type step struct {
	deposit  bool
	amount   string
	location string
}

var history = []step{
	{deposit: true, amount: "1000", location: "Branch"},
	{amount: "200", location: "ATM"},
	{deposit: true, amount: "500", location: "Online"},
}

// Seed registers the demo client with one savings account carrying a short
// deposit and withdrawal history.
func Seed(ctx context.Context, r *ledger.Registry) (*ledger.Client, error) {
	l := zerolog.Ctx(ctx)

	client := r.RegisterClient(ClientName, ClientContact, domain.CategoryIndividual)

	account, err := r.OpenSavingsAccount(client.ID())
	if err != nil {
		return nil, err
	}

	for _, s := range history {
		amount := decimal.RequireFromString(s.amount)

		if s.deposit {
			_, err = account.Deposit(amount, s.location)
		} else {
			_, err = account.Withdraw(amount, s.location)
		}

		if err != nil {
			return nil, err
		}
	}

	l.Info().
		Str("client_id", client.ID()).
		Str("account_id", account.ID()).
		Str("balance", account.Balance().String()).
		Msg("demo client seeded")

	return client, nil
}
