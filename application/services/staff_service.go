package services

import (
	"context"

	"go.uber.org/zap"

	"pos-backend/application/ports"
	"pos-backend/domain/core/entities"
	"pos-backend/domain/events"
	apperrors "pos-backend/pkg/errors"
)

// StaffService manages staff accounts.
type StaffService struct {
	staff     ports.StaffRepository
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewStaffService creates a staff service.
func NewStaffService(staff ports.StaffRepository, publisher ports.EventPublisher, logger *zap.Logger) *StaffService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StaffService{
		staff:     staff,
		publisher: publisher,
		logger:    logger,
	}
}

// Create adds a staff member.
func (s *StaffService) Create(ctx context.Context, name, email string, role entities.StaffRole) (*entities.Staff, error) {
	member, err := entities.NewStaff(name, email, role)
	if err != nil {
		return nil, err
	}
	if err := s.staff.Save(ctx, member); err != nil {
		return nil, apperrors.Wrap(err, "save staff")
	}
	s.publisher.Publish(ctx, events.NewStaffChanged(member.ID))
	return member, nil
}

// UpdateStaffInput carries optional field updates; nil means unchanged.
type UpdateStaffInput struct {
	Name   *string
	Email  *string
	Role   *entities.StaffRole
	Active *bool
}

// Update edits a staff member.
func (s *StaffService) Update(ctx context.Context, id string, input UpdateStaffInput) (*entities.Staff, error) {
	member, err := s.staff.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		member.Name = *input.Name
	}
	if input.Email != nil {
		member.Email = *input.Email
	}
	if input.Role != nil {
		role, err := entities.ParseStaffRole(string(*input.Role))
		if err != nil {
			return nil, err
		}
		member.Role = role
	}
	if input.Active != nil {
		member.Active = *input.Active
	}
	member.UpdatedAt = now()

	if err := s.staff.Save(ctx, member); err != nil {
		return nil, apperrors.Wrap(err, "save staff")
	}
	s.publisher.Publish(ctx, events.NewStaffChanged(member.ID))
	return member, nil
}

// Get returns a staff member by id.
func (s *StaffService) Get(ctx context.Context, id string) (*entities.Staff, error) {
	return s.staff.FindByID(ctx, id)
}

// List returns all staff.
func (s *StaffService) List(ctx context.Context) ([]*entities.Staff, error) {
	return s.staff.FindAll(ctx)
}

// Delete removes a staff member.
func (s *StaffService) Delete(ctx context.Context, id string) error {
	if err := s.staff.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(ctx, events.NewStaffChanged(id))
	return nil
}
