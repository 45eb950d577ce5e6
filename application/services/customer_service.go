package services

import (
	"context"

	"go.uber.org/zap"

	"pos-backend/application/ports"
	"pos-backend/domain/core/entities"
	"pos-backend/domain/core/valueobjects"
	"pos-backend/domain/events"
	apperrors "pos-backend/pkg/errors"
)

// CustomerService manages customers and their loyalty balance.
type CustomerService struct {
	customers ports.CustomerRepository
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewCustomerService creates a customer service.
func NewCustomerService(customers ports.CustomerRepository, publisher ports.EventPublisher, logger *zap.Logger) *CustomerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerService{
		customers: customers,
		publisher: publisher,
		logger:    logger,
	}
}

// Create registers a customer.
func (s *CustomerService) Create(ctx context.Context, name, email, phone string) (*entities.Customer, error) {
	customer, err := entities.NewCustomer(name, email, phone)
	if err != nil {
		return nil, err
	}
	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, apperrors.Wrap(err, "save customer")
	}
	s.publisher.Publish(ctx, events.NewCustomerCreated(customer.ID))
	return customer, nil
}

// UpdateCustomerInput carries optional field updates; nil means unchanged.
type UpdateCustomerInput struct {
	Name  *string
	Email *string
	Phone *string
}

// Update edits customer contact fields.
func (s *CustomerService) Update(ctx context.Context, id string, input UpdateCustomerInput) (*entities.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperrors.NewValidationError("customer name is required")
		}
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	customer.UpdatedAt = now()

	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, apperrors.Wrap(err, "save customer")
	}
	s.publisher.Publish(ctx, events.NewCustomerUpdated(customer.ID, "", ""))
	return customer, nil
}

// Get returns a customer by id.
func (s *CustomerService) Get(ctx context.Context, id string) (*entities.Customer, error) {
	return s.customers.FindByID(ctx, id)
}

// List returns all customers.
func (s *CustomerService) List(ctx context.Context) ([]*entities.Customer, error) {
	return s.customers.FindAll(ctx)
}

// Delete removes a customer.
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if err := s.customers.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(ctx, events.NewCustomerDeleted(id))
	return nil
}

// AddLoyaltyPoints changes a customer's point balance by delta (negative to
// deduct; the balance floors at zero) and publishes the change.
func (s *CustomerService) AddLoyaltyPoints(ctx context.Context, id string, delta int) (*entities.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldPoints := customer.LoyaltyPoints
	newPoints := oldPoints + delta
	if newPoints < 0 {
		newPoints = 0
	}
	if newPoints == oldPoints {
		return customer, nil
	}

	customer.LoyaltyPoints = newPoints
	customer.UpdatedAt = now()
	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, apperrors.Wrap(err, "save customer")
	}

	s.logger.Debug("loyalty points changed",
		zap.String("customerId", customer.ID),
		zap.Int("delta", delta),
		zap.Int("points", newPoints),
	)
	s.publisher.Publish(ctx, events.NewCustomerLoyaltyChanged(customer.ID, oldPoints, newPoints))
	return customer, nil
}

// SetMembership persists a new membership tier and publishes the tier
// change. A no-op when the tier is unchanged.
func (s *CustomerService) SetMembership(ctx context.Context, id string, level valueobjects.MembershipLevel) (*entities.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldLevel := customer.Membership
	if oldLevel == level {
		return customer, nil
	}

	customer.Membership = level
	customer.UpdatedAt = now()
	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, apperrors.Wrap(err, "save customer")
	}

	s.logger.Info("membership tier changed",
		zap.String("customerId", customer.ID),
		zap.String("from", oldLevel.String()),
		zap.String("to", level.String()),
	)
	s.publisher.Publish(ctx, events.NewCustomerUpdated(customer.ID, oldLevel.String(), level.String()))
	return customer, nil
}
