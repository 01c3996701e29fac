package domain

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Person is the identity behind a client. The ledger treats it as opaque.
type Person struct {
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birthDate"`
	TaxID     string    `json:"taxId"`
	Address   string    `json:"address"`
}

// Client owns accounts and performs transactions through them.
type Client struct {
	ID      uuid.UUID
	Profile Person

	mu       sync.RWMutex
	accounts []*Account
}

func NewClient(profile Person) *Client {
	return &Client{
		ID:       uuid.New(),
		Profile:  profile,
		accounts: make([]*Account, 0),
	}
}

// AddAccount registers an account created for this client. Adding the same
// account twice is a no-op.
func (c *Client) AddAccount(account *Account) error {
	if account == nil {
		return NewDomainError("cannot add nil account to client %s", c.ID)
	}
	if account.Owner() != c {
		return fmt.Errorf("%w: account %s belongs to another client", ErrAccountNotOwned, account.ID())
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if slices.Contains(c.accounts, account) {
		return nil
	}
	c.accounts = append(c.accounts, account)
	return nil
}

func (c *Client) Owns(account *Account) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Contains(c.accounts, account)
}

// Accounts returns the client's accounts in the order they were added.
func (c *Client) Accounts() []*Account {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.accounts)
}

// Account looks up one of the client's accounts by number.
func (c *Client) Account(number int) (*Account, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, a := range c.accounts {
		if a.Number() == number {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: client %s has no account %d", ErrAccountNotFound, c.ID, number)
}

// PerformTransaction registers tx on account, which must be one of the
// client's own accounts.
func (c *Client) PerformTransaction(account *Account, tx Transaction) error {
	if account == nil || !c.Owns(account) {
		id := "<nil>"
		if account != nil {
			id = account.ID()
		}
		return fmt.Errorf("%w: client %s cannot operate account %s", ErrAccountNotOwned, c.ID, id)
	}
	return tx.Register(account)
}
