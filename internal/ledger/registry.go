// Package ledger is the in-memory core of the bank: clients, their accounts and
// the balance-changing operations that record transaction history.
//
// Every account serializes its own mutations; the Registry serializes identifier
// generation and index insertion. State lives for the lifetime of the process.
package ledger

import (
	"sort"
	"sync"
	"time"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// Registry creates clients and accounts and indexes them by identifier.
//
// Clients own their accounts; the registry indexes are derived lookups only.
type Registry struct {
	policy domain.InterestPolicy
	now    func() time.Time
	newID  func() string

	mu         sync.RWMutex
	clients    []*Client
	clientIdx  map[string]*Client
	accounts   []*Account
	accountIdx map[string]*Account
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	clock := &monotonicClock{}

	r := &Registry{
		policy:     domain.DefaultInterestPolicy(),
		now:        clock.Now,
		newID:      defaultIDGenerator,
		clientIdx:  make(map[string]*Client),
		accountIdx: make(map[string]*Account),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RegisterClient creates a client with no accounts.
func (r *Registry) RegisterClient(name, contact string, category domain.ClientCategory) *Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := &Client{
		id:        r.uniqueID(func(id string) bool { _, ok := r.clientIdx[id]; return ok }),
		name:      name,
		contact:   contact,
		category:  category,
		createdAt: r.now(),
	}

	r.clients = append(r.clients, c)
	r.clientIdx[c.id] = c

	return c
}

// OpenSavingsAccount opens an active savings account with zero balance for the client.
func (r *Registry) OpenSavingsAccount(clientID string) (*Account, error) {
	return r.open(clientID, domain.AccountSavings)
}

// OpenAccount opens an active plain account with zero balance for the client.
func (r *Registry) OpenAccount(clientID string) (*Account, error) {
	return r.open(clientID, domain.AccountPlain)
}

func (r *Registry) open(clientID string, typ domain.AccountType) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.clientIdx[clientID]
	if !ok {
		return nil, domain.ErrClientNotFound
	}

	var p domain.InterestPolicy
	if typ == domain.AccountSavings {
		p = r.policy
	}

	id := r.uniqueID(func(id string) bool { _, ok := r.accountIdx[id]; return ok })
	a := newAccount(id, c.id, typ, p, r.now)

	c.addAccount(a)
	r.accounts = append(r.accounts, a)
	r.accountIdx[a.id] = a

	return a, nil
}

// FindClient returns the client with the given identifier.
func (r *Registry) FindClient(id string) (*Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.clientIdx[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}

	return c, nil
}

// FindAccount returns the account with the given identifier.
func (r *Registry) FindAccount(id string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accountIdx[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	return a, nil
}

// ListClients returns all clients in registration order.
func (r *Registry) ListClients() []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Client, len(r.clients))
	copy(out, r.clients)

	return out
}

// ListTransactions returns the records of every account the client owns, newest
// first. Records with equal timestamps keep their relative order. An unknown
// client yields an empty slice.
func (r *Registry) ListTransactions(clientID string) []domain.Transaction {
	out := []domain.Transaction{}

	c, err := r.FindClient(clientID)
	if err != nil {
		return out
	}

	for _, a := range c.Accounts() {
		out = append(out, a.Transactions()...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})

	return out
}

// Transfer moves an amount between two active accounts, recording TRANSFER_OUT on
// the source and TRANSFER_IN on the destination.
func (r *Registry) Transfer(arg domain.CreateTransferParams) (domain.TransferResult, error) {
	var result domain.TransferResult

	if !arg.Amount.IsPositive() {
		return result, domain.ErrInvalidAmount
	}

	if arg.FromAccountID == arg.ToAccountID {
		return result, domain.ErrSameAccount
	}

	from, err := r.FindAccount(arg.FromAccountID)
	if err != nil {
		return result, err
	}

	to, err := r.FindAccount(arg.ToAccountID)
	if err != nil {
		return result, err
	}

	// Lock in identifier order so that opposite transfers cannot deadlock.
	first, second := from, to
	if second.id < first.id {
		first, second = second, first
	}

	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if from.status != domain.StatusActive || to.status != domain.StatusActive {
		return result, domain.ErrAccountNotActive
	}

	if from.balance.LessThan(arg.Amount) {
		return result, domain.ErrInsufficientBalance
	}

	result.FromEntry = from.debit(domain.KindTransferOut, arg.Amount, arg.Location)
	result.ToEntry = to.credit(domain.KindTransferIn, arg.Amount, arg.Location)
	result.FromAccount = from.snapshot()
	result.ToAccount = to.snapshot()

	return result, nil
}

// uniqueID draws identifiers until one is not taken. r.mu must be held for writing.
func (r *Registry) uniqueID(taken func(string) bool) string {
	for {
		if id := r.newID(); id != "" && !taken(id) {
			return id
		}
	}
}
