// Package ports declares the interfaces the application layer depends on.
// Infrastructure provides the implementations.
package ports

import (
	"context"
	"time"

	"pos-backend/domain/core/entities"
	"pos-backend/domain/events"
)

// EventPublisher delivers domain events to subscribers. Publishing never
// fails from the publisher's point of view; delivery problems are handled
// on the subscriber side.
type EventPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent)
}

// ProductRepository stores products.
type ProductRepository interface {
	Save(ctx context.Context, product *entities.Product) error
	FindByID(ctx context.Context, id string) (*entities.Product, error)
	FindAll(ctx context.Context) ([]*entities.Product, error)
	Delete(ctx context.Context, id string) error
}

// CategoryRepository stores categories.
type CategoryRepository interface {
	Save(ctx context.Context, category *entities.Category) error
	FindByID(ctx context.Context, id string) (*entities.Category, error)
	FindAll(ctx context.Context) ([]*entities.Category, error)
	Delete(ctx context.Context, id string) error
}

// OrderRepository stores orders.
type OrderRepository interface {
	Save(ctx context.Context, order *entities.Order) error
	FindByID(ctx context.Context, id string) (*entities.Order, error)
	FindAll(ctx context.Context) ([]*entities.Order, error)
	FindByDateRange(ctx context.Context, from, to time.Time) ([]*entities.Order, error)
}

// CustomerRepository stores customers.
type CustomerRepository interface {
	Save(ctx context.Context, customer *entities.Customer) error
	FindByID(ctx context.Context, id string) (*entities.Customer, error)
	FindAll(ctx context.Context) ([]*entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

// StaffRepository stores staff members.
type StaffRepository interface {
	Save(ctx context.Context, staff *entities.Staff) error
	FindByID(ctx context.Context, id string) (*entities.Staff, error)
	FindAll(ctx context.Context) ([]*entities.Staff, error)
	Delete(ctx context.Context, id string) error
}
