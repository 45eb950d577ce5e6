// Package memory provides in-memory repository implementations. Stores keep
// entity copies so callers never share pointers with the store.
package memory

import (
	"context"
	"sort"
	"sync"

	"pos-backend/domain/core/entities"
	apperrors "pos-backend/pkg/errors"
)

// ProductStore is a mutex-guarded in-memory product repository.
type ProductStore struct {
	mu    sync.RWMutex
	items map[string]entities.Product
}

// NewProductStore creates an empty product store.
func NewProductStore() *ProductStore {
	return &ProductStore{items: make(map[string]entities.Product)}
}

// Save inserts or replaces a product.
func (s *ProductStore) Save(ctx context.Context, product *entities.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[product.ID] = *product
	return nil
}

// FindByID returns a copy of the product.
func (s *ProductStore) FindByID(ctx context.Context, id string) (*entities.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("product")
	}
	return &item, nil
}

// FindAll returns all products ordered by name.
func (s *ProductStore) FindAll(ctx context.Context) ([]*entities.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*entities.Product, 0, len(s.items))
	for _, item := range s.items {
		copied := item
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// Delete removes a product.
func (s *ProductStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return apperrors.NewNotFoundError("product")
	}
	delete(s.items, id)
	return nil
}
