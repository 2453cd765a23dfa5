package ledger

import (
	"sync"
	"time"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// Client owns zero or more accounts in opening order.
type Client struct {
	id        string
	name      string
	contact   string
	category  domain.ClientCategory
	createdAt time.Time

	mu       sync.RWMutex
	accounts []*Account
}

// ID returns the client identifier.
func (c *Client) ID() string { return c.id }

// Name returns the display name.
func (c *Client) Name() string { return c.name }

// Contact returns the contact address.
func (c *Client) Contact() string { return c.contact }

// Category returns the client category.
func (c *Client) Category() domain.ClientCategory { return c.category }

// Accounts returns the owned accounts in opening order.
func (c *Client) Accounts() []*Account {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*Account, len(c.accounts))
	copy(out, c.accounts)

	return out
}

// Snapshot returns a point-in-time view of the client and its accounts.
func (c *Client) Snapshot() domain.Client {
	accounts := c.Accounts()

	s := domain.Client{
		ID:        c.id,
		Name:      c.name,
		Contact:   c.contact,
		Category:  c.category,
		Accounts:  make([]domain.Account, 0, len(accounts)),
		CreatedAt: c.createdAt,
	}

	for _, a := range accounts {
		s.Accounts = append(s.Accounts, a.Snapshot())
	}

	return s
}

func (c *Client) addAccount(a *Account) {
	c.mu.Lock()
	c.accounts = append(c.accounts, a)
	c.mu.Unlock()
}
