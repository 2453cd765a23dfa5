package domain

import (
	"errors"
	"time"
)

var (
	// ErrClientNotFound indicates that the client is not found.
	ErrClientNotFound = errors.New("client not found")
	// ErrInvalidCategory indicates an unknown client category.
	ErrInvalidCategory = errors.New("invalid client category")
)

// ClientCategory classifies clients.
type ClientCategory string

// Client categories.
const (
	CategoryIndividual ClientCategory = "INDIVIDUAL"
	CategoryEnterprise ClientCategory = "ENTERPRISE"
)

// Valid reports whether c is one of the known categories.
func (c ClientCategory) Valid() bool {
	return c == CategoryIndividual || c == CategoryEnterprise
}

// Client is a point-in-time view of a client and the accounts it owns.
type Client struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Contact   string         `json:"contact"`
	Category  ClientCategory `json:"category"`
	Accounts  []Account      `json:"accounts"`
	CreatedAt time.Time      `json:"created_at"`
}

// RegisterClientParams is the input data to register a client.
type RegisterClientParams struct {
	Name     string         `json:"name"`
	Contact  string         `json:"contact"`
	Category ClientCategory `json:"category"`
}
