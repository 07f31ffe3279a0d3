package category

import (
	"context"
	"fmt"

	"github.com/narwhalmedia/catalog/internal/application"
	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/events"
	"github.com/narwhalmedia/catalog/internal/domain/pagination"
	"github.com/narwhalmedia/catalog/internal/domain/validation"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// UseCases is the category application surface consumed by transports.
type UseCases interface {
	Create(ctx context.Context, cmd CreateCategoryCommand) (*CreateCategoryOutput, error)
	Update(ctx context.Context, cmd UpdateCategoryCommand) (*UpdateCategoryOutput, error)
	GetByID(ctx context.Context, id string) (*CategoryOutput, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context, query pagination.SearchQuery) (*pagination.Pagination[CategoryListOutput], error)
}

// Service orchestrates category use cases.
type Service struct {
	gateway   category.Gateway
	publisher events.Publisher
	logger    interfaces.Logger
}

var _ UseCases = (*Service)(nil)

// NewService creates a new category service
func NewService(gateway category.Gateway, publisher events.Publisher, logger interfaces.Logger) *Service {
	return &Service{
		gateway:   gateway,
		publisher: publisher,
		logger:    logger,
	}
}

// Create validates and stores a new category.
func (s *Service) Create(ctx context.Context, cmd CreateCategoryCommand) (*CreateCategoryOutput, error) {
	notification := validation.NewNotification()
	c := validation.Build(notification, func() (*category.Category, error) {
		return category.New(cmd.Name, cmd.Description, cmd.IsActive)
	})

	if notification.HasError() {
		s.logger.Debug("category rejected", interfaces.Int("errors", len(notification.Errors())))
		return nil, validation.NewNotificationError("Could not create Aggregate Category", notification)
	}

	created, err := s.gateway.Create(ctx, c.Clone())
	if err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}

	s.logger.Info("category created", interfaces.String("category_id", created.ID().String()))
	application.Notify(ctx, s.publisher, s.logger, events.AggregateCategory, created.ID().String(), events.ActionCreated)

	return &CreateCategoryOutput{ID: created.ID().String()}, nil
}

// Update applies new values to an existing category.
func (s *Service) Update(ctx context.Context, cmd UpdateCategoryCommand) (*UpdateCategoryOutput, error) {
	id, err := category.ParseID(cmd.ID)
	if err != nil {
		return nil, err
	}

	c, err := s.gateway.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading category: %w", err)
	}

	notification := validation.NewNotification()
	notification.Validate(func() error {
		return c.Update(cmd.Name, cmd.Description, cmd.IsActive)
	})

	if notification.HasError() {
		return nil, validation.NewNotificationError(
			fmt.Sprintf("Could not update Aggregate Category %s", id), notification,
		)
	}

	updated, err := s.gateway.Update(ctx, c.Clone())
	if err != nil {
		return nil, fmt.Errorf("updating category: %w", err)
	}

	application.Notify(ctx, s.publisher, s.logger, events.AggregateCategory, updated.ID().String(), events.ActionUpdated)

	return &UpdateCategoryOutput{ID: updated.ID().String()}, nil
}

// GetByID returns one category.
func (s *Service) GetByID(ctx context.Context, rawID string) (*CategoryOutput, error) {
	id, err := category.ParseID(rawID)
	if err != nil {
		return nil, err
	}

	c, err := s.gateway.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading category: %w", err)
	}
	return toOutput(c), nil
}

// DeleteByID removes a category. Unknown ids are not an error.
func (s *Service) DeleteByID(ctx context.Context, rawID string) error {
	id, err := category.ParseID(rawID)
	if err != nil {
		return err
	}

	if err := s.gateway.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	application.Notify(ctx, s.publisher, s.logger, events.AggregateCategory, id.String(), events.ActionDeleted)
	return nil
}

// List returns one page of categories.
func (s *Service) List(ctx context.Context, query pagination.SearchQuery) (*pagination.Pagination[CategoryListOutput], error) {
	page, err := s.gateway.FindAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	result := pagination.Map(page, toListOutput)
	return &result, nil
}
