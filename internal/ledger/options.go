package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// Option configures a Registry.
type Option func(*Registry)

// WithInterestPolicy sets the policy given to newly opened savings accounts.
func WithInterestPolicy(p domain.InterestPolicy) Option {
	return func(r *Registry) {
		r.policy = p
	}
}

// WithInterestTerms sets the policy given to newly opened savings accounts
// from a rate and a minimum balance.
func WithInterestTerms(rate, minimumBalance decimal.Decimal) Option {
	return WithInterestPolicy(domain.InterestPolicy{Rate: rate, MinimumBalance: minimumBalance})
}

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// WithIDGenerator replaces the identifier source. Generated values that are
// already taken are discarded and drawn again.
func WithIDGenerator(gen func() string) Option {
	return func(r *Registry) {
		r.newID = gen
	}
}

func defaultIDGenerator() string {
	return uuid.NewString()
}
