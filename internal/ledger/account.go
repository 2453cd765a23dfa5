package ledger

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// Account holds a balance and its append-only transaction history.
//
// All balance changes go through the account mutex so that the balance update
// and the appended record are never observed apart.
type Account struct {
	id        string
	clientID  string
	typ       domain.AccountType
	interest  domain.InterestPolicy
	createdAt time.Time
	now       func() time.Time

	mu      sync.Mutex
	balance decimal.Decimal
	status  domain.AccountStatus
	txs     []domain.Transaction
}

func newAccount(id, clientID string, typ domain.AccountType, p domain.InterestPolicy, now func() time.Time) *Account {
	return &Account{
		id:        id,
		clientID:  clientID,
		typ:       typ,
		interest:  p,
		createdAt: now(),
		now:       now,
		balance:   decimal.Zero,
		status:    domain.StatusActive,
	}
}

// ID returns the account identifier.
func (a *Account) ID() string { return a.id }

// ClientID returns the identifier of the owning client.
func (a *Account) ClientID() string { return a.clientID }

// Type returns the account variant.
func (a *Account) Type() domain.AccountType { return a.typ }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.balance
}

// Status returns the current status.
func (a *Account) Status() domain.AccountStatus {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.status
}

// SetStatus moves the account to the given status.
func (a *Account) SetStatus(s domain.AccountStatus) error {
	if !s.Valid() {
		return domain.ErrInvalidStatus
	}

	a.mu.Lock()
	a.status = s
	a.mu.Unlock()

	return nil
}

// Transactions returns a copy of the history in recording order.
func (a *Account) Transactions() []domain.Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]domain.Transaction, len(a.txs))
	copy(out, a.txs)

	return out
}

// Snapshot returns a point-in-time view of the account.
func (a *Account) Snapshot() domain.Account {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.snapshot()
}

// Deposit credits amount and records a DEPOSIT.
func (a *Account) Deposit(amount decimal.Decimal, location string) (domain.Transaction, error) {
	if !amount.IsPositive() {
		return domain.Transaction{}, domain.ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.status != domain.StatusActive {
		return domain.Transaction{}, domain.ErrAccountNotActive
	}

	return a.credit(domain.KindDeposit, amount, location), nil
}

// Withdraw debits amount and records a WITHDRAWAL. Overdrafts are rejected.
func (a *Account) Withdraw(amount decimal.Decimal, location string) (domain.Transaction, error) {
	if !amount.IsPositive() {
		return domain.Transaction{}, domain.ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.status != domain.StatusActive {
		return domain.Transaction{}, domain.ErrAccountNotActive
	}

	if a.balance.LessThan(amount) {
		return domain.Transaction{}, domain.ErrInsufficientBalance
	}

	return a.debit(domain.KindWithdrawal, amount, location), nil
}

// AccrueInterest credits balance*rate once when the account is an active savings
// account holding at least the minimum balance. It reports whether interest was applied.
func (a *Account) AccrueInterest() (domain.Transaction, bool) {
	if a.typ != domain.AccountSavings {
		return domain.Transaction{}, false
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.status != domain.StatusActive || a.balance.LessThan(a.interest.MinimumBalance) {
		return domain.Transaction{}, false
	}

	interest := a.balance.Mul(a.interest.Rate).RoundBank(domain.MoneyPlaces)
	if !interest.IsPositive() {
		return domain.Transaction{}, false
	}

	return a.credit(domain.KindInterest, interest, domain.InterestLocation), true
}

// The helpers below expect a.mu to be held.

func (a *Account) credit(kind domain.TransactionKind, amount decimal.Decimal, location string) domain.Transaction {
	a.balance = a.balance.Add(amount)
	return a.record(kind, amount, location)
}

func (a *Account) debit(kind domain.TransactionKind, amount decimal.Decimal, location string) domain.Transaction {
	a.balance = a.balance.Sub(amount)
	return a.record(kind, amount, location)
}

func (a *Account) record(kind domain.TransactionKind, amount decimal.Decimal, location string) domain.Transaction {
	tx := domain.Transaction{
		ID:        uuid.New(),
		AccountID: a.id,
		Timestamp: a.now(),
		Kind:      kind,
		Amount:    amount,
		Location:  location,
	}
	a.txs = append(a.txs, tx)

	return tx
}

func (a *Account) snapshot() domain.Account {
	s := domain.Account{
		ID:        a.id,
		ClientID:  a.clientID,
		Type:      a.typ,
		Balance:   a.balance,
		Status:    a.status,
		CreatedAt: a.createdAt,
	}

	if a.typ == domain.AccountSavings {
		p := a.interest
		s.Interest = &p
	}

	return s
}
