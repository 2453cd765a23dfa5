// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/ledger"
	"github.com/go-petr/pet-ledger/pkg/moneypkg"
)

// Repo provides the ledger operations needed by account service layer.
type Repo interface {
	OpenSavingsAccount(clientID string) (*ledger.Account, error)
	FindAccount(id string) (*ledger.Account, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account business logic.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// Open opens a savings account for the given client.
func (s *Service) Open(ctx context.Context, clientID string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := s.repo.OpenSavingsAccount(clientID)
	if err != nil {
		l.Info().Err(err).Str("client_id", clientID).Send()
		return domain.Account{}, err
	}

	l.Debug().Str("account_id", a.ID()).Str("client_id", clientID).Msg("savings account opened")

	return a.Snapshot(), nil
}

// Get returns the account with the given id.
func (s *Service) Get(ctx context.Context, id string) (domain.Account, error) {
	a, err := s.find(ctx, id)
	if err != nil {
		return domain.Account{}, err
	}

	return a.Snapshot(), nil
}

// Transactions returns the history of the account in recording order.
func (s *Service) Transactions(ctx context.Context, id string) ([]domain.Transaction, error) {
	a, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	return a.Transactions(), nil
}

// Deposit credits the account.
func (s *Service) Deposit(ctx context.Context, id, amount, location string) (domain.OperationResult, error) {
	return s.move(ctx, id, amount, location, (*ledger.Account).Deposit)
}

// Withdraw debits the account.
func (s *Service) Withdraw(ctx context.Context, id, amount, location string) (domain.OperationResult, error) {
	return s.move(ctx, id, amount, location, (*ledger.Account).Withdraw)
}

type movement func(a *ledger.Account, amount decimal.Decimal, location string) (domain.Transaction, error)

func (s *Service) move(ctx context.Context, id, amount, location string, op movement) (domain.OperationResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.OperationResult

	d, err := moneypkg.Parse(amount)
	if err != nil {
		l.Info().Err(err).Str("amount", amount).Send()
		return result, domain.ErrInvalidAmount
	}

	a, err := s.find(ctx, id)
	if err != nil {
		return result, err
	}

	tx, err := op(a, d, location)
	if err != nil {
		l.Info().Err(err).Str("account_id", id).Str("amount", amount).Send()
		return result, err
	}

	result.Transaction = tx
	result.Account = a.Snapshot()

	return result, nil
}

// AccrueInterest applies interest to a savings account once.
func (s *Service) AccrueInterest(ctx context.Context, id string) (domain.InterestResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.InterestResult

	a, err := s.find(ctx, id)
	if err != nil {
		return result, err
	}

	if a.Type() != domain.AccountSavings {
		l.Info().Err(domain.ErrNotSavingsAccount).Str("account_id", id).Send()
		return result, domain.ErrNotSavingsAccount
	}

	tx, applied := a.AccrueInterest()

	result.Applied = applied
	result.Account = a.Snapshot()

	if applied {
		result.Transaction = &tx
	}

	l.Debug().Str("account_id", id).Bool("applied", applied).Msg("interest accrual")

	return result, nil
}

// SetStatus changes the account status.
func (s *Service) SetStatus(ctx context.Context, id, status string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := s.find(ctx, id)
	if err != nil {
		return domain.Account{}, err
	}

	if err := a.SetStatus(domain.AccountStatus(status)); err != nil {
		l.Info().Err(err).Str("status", status).Send()
		return domain.Account{}, err
	}

	l.Info().Str("account_id", id).Str("status", status).Msg("account status changed")

	return a.Snapshot(), nil
}

func (s *Service) find(ctx context.Context, id string) (*ledger.Account, error) {
	a, err := s.repo.FindAccount(id)
	if err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Str("account_id", id).Send()
		return nil, err
	}

	return a, nil
}
