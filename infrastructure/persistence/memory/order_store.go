package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"pos-backend/domain/core/entities"
	apperrors "pos-backend/pkg/errors"
)

// OrderStore is a mutex-guarded in-memory order repository.
type OrderStore struct {
	mu    sync.RWMutex
	items map[string]entities.Order
}

// NewOrderStore creates an empty order store.
func NewOrderStore() *OrderStore {
	return &OrderStore{items: make(map[string]entities.Order)}
}

// Save inserts or replaces an order.
func (s *OrderStore) Save(ctx context.Context, order *entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *order
	stored.Items = append([]entities.OrderItem(nil), order.Items...)
	s.items[order.ID] = stored
	return nil
}

// FindByID returns a copy of the order, line items included.
func (s *OrderStore) FindByID(ctx context.Context, id string) (*entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("order")
	}
	return copyOrder(item), nil
}

// FindAll returns all orders, newest first.
func (s *OrderStore) FindAll(ctx context.Context) ([]*entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*entities.Order, 0, len(s.items))
	for _, item := range s.items {
		result = append(result, copyOrder(item))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

// FindByDateRange returns orders created within [from, to], newest first.
func (s *OrderStore) FindByDateRange(ctx context.Context, from, to time.Time) ([]*entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*entities.Order, 0)
	for _, item := range s.items {
		if item.CreatedAt.Before(from) || item.CreatedAt.After(to) {
			continue
		}
		result = append(result, copyOrder(item))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func copyOrder(order entities.Order) *entities.Order {
	copied := order
	copied.Items = append([]entities.OrderItem(nil), order.Items...)
	return &copied
}
