package store

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"

	"personal-ledger/domain"
)

var (
	ErrDuplicate = errors.New("duplicate key")
)

type AccountStore interface {
	NextNumber() int
	Save(account *domain.Account) error
	Get(number int) (*domain.Account, error)
	List() []*domain.Account
}

// InMemoryAccountStore keeps accounts for the lifetime of the process and
// hands out sequential account numbers starting at 1.
type InMemoryAccountStore struct {
	sync.RWMutex
	accounts map[int]*domain.Account
	next     int
}

func NewInMemoryAccountStore() *InMemoryAccountStore {
	return &InMemoryAccountStore{
		accounts: make(map[int]*domain.Account),
		next:     1,
	}
}

// NextNumber reserves a number. Numbers are never reused, even when the
// account that would have taken one is never saved.
func (s *InMemoryAccountStore) NextNumber() int {
	s.Lock()
	defer s.Unlock()

	n := s.next
	s.next++
	return n
}

func (s *InMemoryAccountStore) Save(account *domain.Account) error {
	if account == nil {
		return fmt.Errorf("cannot save nil account")
	}
	s.Lock()
	defer s.Unlock()

	if _, exists := s.accounts[account.Number()]; exists {
		return fmt.Errorf("%w: account number %d already registered", ErrDuplicate, account.Number())
	}
	s.accounts[account.Number()] = account
	if account.Number() >= s.next {
		log.Printf("Warning: account %d saved ahead of the sequence, advancing next number", account.Number())
		s.next = account.Number() + 1
	}
	return nil
}

func (s *InMemoryAccountStore) Get(number int) (*domain.Account, error) {
	s.RLock()
	defer s.RUnlock()

	account, ok := s.accounts[number]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrAccountNotFound, number)
	}
	return account, nil
}

// List returns the accounts ordered by number.
func (s *InMemoryAccountStore) List() []*domain.Account {
	s.RLock()
	defer s.RUnlock()

	out := make([]*domain.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		out = append(out, account)
	}
	slices.SortFunc(out, func(a, b *domain.Account) int {
		return a.Number() - b.Number()
	})
	return out
}
