package memory

import (
	"context"
	"sort"
	"sync"

	"pos-backend/domain/core/entities"
	apperrors "pos-backend/pkg/errors"
)

// CustomerStore is a mutex-guarded in-memory customer repository.
type CustomerStore struct {
	mu    sync.RWMutex
	items map[string]entities.Customer
}

// NewCustomerStore creates an empty customer store.
func NewCustomerStore() *CustomerStore {
	return &CustomerStore{items: make(map[string]entities.Customer)}
}

// Save inserts or replaces a customer.
func (s *CustomerStore) Save(ctx context.Context, customer *entities.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[customer.ID] = *customer
	return nil
}

// FindByID returns a copy of the customer.
func (s *CustomerStore) FindByID(ctx context.Context, id string) (*entities.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("customer")
	}
	return &item, nil
}

// FindAll returns all customers ordered by name.
func (s *CustomerStore) FindAll(ctx context.Context) ([]*entities.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*entities.Customer, 0, len(s.items))
	for _, item := range s.items {
		copied := item
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// Delete removes a customer.
func (s *CustomerStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return apperrors.NewNotFoundError("customer")
	}
	delete(s.items, id)
	return nil
}
