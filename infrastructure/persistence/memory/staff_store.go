package memory

import (
	"context"
	"sort"
	"sync"

	"pos-backend/domain/core/entities"
	apperrors "pos-backend/pkg/errors"
)

// StaffStore is a mutex-guarded in-memory staff repository.
type StaffStore struct {
	mu    sync.RWMutex
	items map[string]entities.Staff
}

// NewStaffStore creates an empty staff store.
func NewStaffStore() *StaffStore {
	return &StaffStore{items: make(map[string]entities.Staff)}
}

// Save inserts or replaces a staff member.
func (s *StaffStore) Save(ctx context.Context, staff *entities.Staff) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[staff.ID] = *staff
	return nil
}

// FindByID returns a copy of the staff member.
func (s *StaffStore) FindByID(ctx context.Context, id string) (*entities.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("staff")
	}
	return &item, nil
}

// FindAll returns all staff ordered by name.
func (s *StaffStore) FindAll(ctx context.Context) ([]*entities.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*entities.Staff, 0, len(s.items))
	for _, item := range s.items {
		copied := item
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// Delete removes a staff member.
func (s *StaffStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return apperrors.NewNotFoundError("staff")
	}
	delete(s.items, id)
	return nil
}
