package services

import (
	"context"

	"go.uber.org/zap"

	"pos-backend/application/ports"
	"pos-backend/domain/core/entities"
	"pos-backend/domain/events"
	apperrors "pos-backend/pkg/errors"
)

// CategoryService manages product categories.
type CategoryService struct {
	categories ports.CategoryRepository
	publisher  ports.EventPublisher
	logger     *zap.Logger
}

// NewCategoryService creates a category service.
func NewCategoryService(categories ports.CategoryRepository, publisher ports.EventPublisher, logger *zap.Logger) *CategoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CategoryService{
		categories: categories,
		publisher:  publisher,
		logger:     logger,
	}
}

// Create adds a category.
func (s *CategoryService) Create(ctx context.Context, name, description string) (*entities.Category, error) {
	category, err := entities.NewCategory(name, description)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Save(ctx, category); err != nil {
		return nil, apperrors.Wrap(err, "save category")
	}
	s.publisher.Publish(ctx, events.NewCategoryChanged(category.ID))
	return category, nil
}

// Update edits a category.
func (s *CategoryService) Update(ctx context.Context, id, name, description string) (*entities.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		category.Name = name
	}
	category.Description = description
	category.UpdatedAt = now()

	if err := s.categories.Save(ctx, category); err != nil {
		return nil, apperrors.Wrap(err, "save category")
	}
	s.publisher.Publish(ctx, events.NewCategoryChanged(category.ID))
	return category, nil
}

// Get returns a category by id.
func (s *CategoryService) Get(ctx context.Context, id string) (*entities.Category, error) {
	return s.categories.FindByID(ctx, id)
}

// List returns all categories.
func (s *CategoryService) List(ctx context.Context) ([]*entities.Category, error) {
	return s.categories.FindAll(ctx)
}

// Delete removes a category.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(ctx, events.NewCategoryChanged(id))
	return nil
}
