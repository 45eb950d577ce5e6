package memory

import (
	"context"
	"sort"
	"sync"

	"pos-backend/domain/core/entities"
	apperrors "pos-backend/pkg/errors"
)

// CategoryStore is a mutex-guarded in-memory category repository.
type CategoryStore struct {
	mu    sync.RWMutex
	items map[string]entities.Category
}

// NewCategoryStore creates an empty category store.
func NewCategoryStore() *CategoryStore {
	return &CategoryStore{items: make(map[string]entities.Category)}
}

// Save inserts or replaces a category.
func (s *CategoryStore) Save(ctx context.Context, category *entities.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[category.ID] = *category
	return nil
}

// FindByID returns a copy of the category.
func (s *CategoryStore) FindByID(ctx context.Context, id string) (*entities.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("category")
	}
	return &item, nil
}

// FindAll returns all categories ordered by name.
func (s *CategoryStore) FindAll(ctx context.Context) ([]*entities.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*entities.Category, 0, len(s.items))
	for _, item := range s.items {
		copied := item
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// Delete removes a category.
func (s *CategoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return apperrors.NewNotFoundError("category")
	}
	delete(s.items, id)
	return nil
}
