package store

import (
	"fmt"
	"slices"
	"sync"

	"personal-ledger/domain"
)

type ClientStore interface {
	Save(client *domain.Client) error
	FindByTaxID(taxID string) (*domain.Client, error)
	List() []*domain.Client
}

// InMemoryClientStore indexes clients by tax id and remembers registration order.
type InMemoryClientStore struct {
	sync.RWMutex
	byTaxID map[string]*domain.Client
	order   []*domain.Client
}

func NewInMemoryClientStore() *InMemoryClientStore {
	return &InMemoryClientStore{
		byTaxID: make(map[string]*domain.Client),
		order:   make([]*domain.Client, 0),
	}
}

func (s *InMemoryClientStore) Save(client *domain.Client) error {
	if client == nil {
		return fmt.Errorf("cannot save nil client")
	}
	taxID := client.Profile.TaxID
	if taxID == "" {
		return fmt.Errorf("%w: empty tax id", domain.ErrInvalidTaxID)
	}

	s.Lock()
	defer s.Unlock()

	if _, exists := s.byTaxID[taxID]; exists {
		return fmt.Errorf("%w: tax id %s", domain.ErrClientExists, taxID)
	}
	s.byTaxID[taxID] = client
	s.order = append(s.order, client)
	return nil
}

func (s *InMemoryClientStore) FindByTaxID(taxID string) (*domain.Client, error) {
	s.RLock()
	defer s.RUnlock()

	client, ok := s.byTaxID[taxID]
	if !ok {
		return nil, fmt.Errorf("%w: tax id %s", domain.ErrClientNotFound, taxID)
	}
	return client, nil
}

func (s *InMemoryClientStore) List() []*domain.Client {
	s.RLock()
	defer s.RUnlock()
	return slices.Clone(s.order)
}
