// Package transferservice manages business logic layer of transfers.
package transferservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/moneypkg"
)

// Repo provides ledger operations needed by transfer service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transferservice
type Repo interface {
	Transfer(arg domain.CreateTransferParams) (domain.TransferResult, error)
}

// Service facilitates transfer service layer logic.
type Service struct {
	repo Repo
}

// New return transfer service struct to manage transfer business logic.
func New(tr Repo) *Service {
	return &Service{repo: tr}
}

// Transfer parses the amount and moves it between two accounts.
func (s *Service) Transfer(ctx context.Context, fromID, toID, amount, location string) (domain.TransferResult, error) {
	l := zerolog.Ctx(ctx)

	d, err := moneypkg.Parse(amount)
	if err != nil {
		l.Info().Err(err).Str("amount", amount).Send()
		return domain.TransferResult{}, domain.ErrInvalidAmount
	}

	if fromID == toID {
		l.Info().Err(domain.ErrSameAccount).Str("account_id", fromID).Send()
		return domain.TransferResult{}, domain.ErrSameAccount
	}

	arg := domain.CreateTransferParams{
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        d,
		Location:      location,
	}

	result, err := s.repo.Transfer(arg)
	if err != nil {
		l.Info().Err(err).Str("from_account_id", fromID).Str("to_account_id", toID).Send()
		return domain.TransferResult{}, err
	}

	l.Debug().
		Str("from_account_id", fromID).
		Str("to_account_id", toID).
		Str("amount", d.String()).
		Msg("transfer completed")

	return result, nil
}
