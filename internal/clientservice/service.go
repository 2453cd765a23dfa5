// Package clientservice manages business logic layer of clients.
package clientservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/ledger"
)

// Repo provides the ledger operations needed by client service layer.
type Repo interface {
	RegisterClient(name, contact string, category domain.ClientCategory) *ledger.Client
	FindClient(id string) (*ledger.Client, error)
	ListClients() []*ledger.Client
	ListTransactions(clientID string) []domain.Transaction
}

// Service facilitates client service layer logic.
type Service struct {
	repo Repo
}

// New returns client service struct to manage client business logic.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// Register creates and returns a client without accounts.
func (s *Service) Register(ctx context.Context, arg domain.RegisterClientParams) (domain.Client, error) {
	l := zerolog.Ctx(ctx)

	if !arg.Category.Valid() {
		l.Info().Err(domain.ErrInvalidCategory).Str("category", string(arg.Category)).Send()
		return domain.Client{}, domain.ErrInvalidCategory
	}

	c := s.repo.RegisterClient(arg.Name, arg.Contact, arg.Category)

	l.Info().Str("client_id", c.ID()).Msg("client registered")

	return c.Snapshot(), nil
}

// Get returns the client with the given id.
func (s *Service) Get(ctx context.Context, id string) (domain.Client, error) {
	c, err := s.repo.FindClient(id)
	if err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Str("client_id", id).Send()
		return domain.Client{}, err
	}

	return c.Snapshot(), nil
}

// List returns all clients in registration order.
func (s *Service) List(ctx context.Context) ([]domain.Client, error) {
	clients := s.repo.ListClients()

	out := make([]domain.Client, 0, len(clients))
	for _, c := range clients {
		out = append(out, c.Snapshot())
	}

	return out, nil
}

// Transactions returns every record of the client's accounts, newest first.
// Unknown clients have no transactions.
func (s *Service) Transactions(ctx context.Context, clientID string) ([]domain.Transaction, error) {
	return s.repo.ListTransactions(clientID), nil
}
