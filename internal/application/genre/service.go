package genre

import (
	"context"
	"fmt"

	"github.com/narwhalmedia/catalog/internal/application"
	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/events"
	"github.com/narwhalmedia/catalog/internal/domain/genre"
	"github.com/narwhalmedia/catalog/internal/domain/pagination"
	"github.com/narwhalmedia/catalog/internal/domain/validation"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// UseCases is the genre application surface consumed by transports.
type UseCases interface {
	Create(ctx context.Context, cmd CreateGenreCommand) (*CreateGenreOutput, error)
	Update(ctx context.Context, cmd UpdateGenreCommand) (*UpdateGenreOutput, error)
	GetByID(ctx context.Context, id string) (*GenreOutput, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context, query pagination.SearchQuery) (*pagination.Pagination[GenreListOutput], error)
}

// Service orchestrates genre use cases, including the category reference check.
type Service struct {
	genres     genre.Gateway
	categories category.Gateway
	publisher  events.Publisher
	logger     interfaces.Logger
}

var _ UseCases = (*Service)(nil)

// NewService creates a new genre service
func NewService(genres genre.Gateway, categories category.Gateway, publisher events.Publisher, logger interfaces.Logger) *Service {
	return &Service{
		genres:     genres,
		categories: categories,
		publisher:  publisher,
		logger:     logger,
	}
}

// Create validates the referenced categories and the genre fields, then stores the genre.
func (s *Service) Create(ctx context.Context, cmd CreateGenreCommand) (*CreateGenreOutput, error) {
	categories, err := application.ParseIDs(cmd.Categories, category.ParseID)
	if err != nil {
		return nil, err
	}

	notification := validation.NewNotification()
	if err := s.validateCategories(ctx, notification, categories); err != nil {
		return nil, err
	}

	g := validation.Build(notification, func() (*genre.Genre, error) {
		return genre.New(cmd.Name, cmd.IsActive)
	})
	if g != nil {
		notification.Validate(func() error { return g.AddCategories(categories) })
	}

	if notification.HasError() {
		s.logger.Debug("genre rejected", interfaces.Int("errors", len(notification.Errors())))
		return nil, validation.NewNotificationError("Could not create Aggregate Genre", notification)
	}

	created, err := s.genres.Create(ctx, g.Clone())
	if err != nil {
		return nil, fmt.Errorf("creating genre: %w", err)
	}

	s.logger.Info("genre created",
		interfaces.String("genre_id", created.ID().String()),
		interfaces.Int("categories", len(categories)),
	)
	application.Notify(ctx, s.publisher, s.logger, events.AggregateGenre, created.ID().String(), events.ActionCreated)

	return &CreateGenreOutput{ID: created.ID().String()}, nil
}

// Update loads the genre, validates references and fields together, then stores it.
func (s *Service) Update(ctx context.Context, cmd UpdateGenreCommand) (*UpdateGenreOutput, error) {
	id, err := genre.ParseID(cmd.ID)
	if err != nil {
		return nil, err
	}
	categories, err := application.ParseIDs(cmd.Categories, category.ParseID)
	if err != nil {
		return nil, err
	}

	g, err := s.genres.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading genre: %w", err)
	}

	notification := validation.NewNotification()
	if err := s.validateCategories(ctx, notification, categories); err != nil {
		return nil, err
	}
	notification.Validate(func() error {
		return g.Update(cmd.Name, cmd.IsActive, categories)
	})

	if notification.HasError() {
		return nil, validation.NewNotificationError(
			fmt.Sprintf("Could not update Aggregate Genre %s", id), notification,
		)
	}

	updated, err := s.genres.Update(ctx, g.Clone())
	if err != nil {
		return nil, fmt.Errorf("updating genre: %w", err)
	}

	application.Notify(ctx, s.publisher, s.logger, events.AggregateGenre, updated.ID().String(), events.ActionUpdated)

	return &UpdateGenreOutput{ID: updated.ID().String()}, nil
}

// GetByID returns one genre.
func (s *Service) GetByID(ctx context.Context, rawID string) (*GenreOutput, error) {
	id, err := genre.ParseID(rawID)
	if err != nil {
		return nil, err
	}

	g, err := s.genres.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading genre: %w", err)
	}
	return toOutput(g), nil
}

// DeleteByID removes a genre. Unknown ids are not an error.
func (s *Service) DeleteByID(ctx context.Context, rawID string) error {
	id, err := genre.ParseID(rawID)
	if err != nil {
		return err
	}

	if err := s.genres.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("deleting genre: %w", err)
	}

	application.Notify(ctx, s.publisher, s.logger, events.AggregateGenre, id.String(), events.ActionDeleted)
	return nil
}

// List returns one page of genres.
func (s *Service) List(ctx context.Context, query pagination.SearchQuery) (*pagination.Pagination[GenreListOutput], error) {
	page, err := s.genres.FindAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing genres: %w", err)
	}

	result := pagination.Map(page, toListOutput)
	return &result, nil
}

func (s *Service) validateCategories(ctx context.Context, handler validation.Handler, ids []category.ID) error {
	return application.ValidateReferences(ctx, handler, "categories", ids, s.categories.ExistsByIDs)
}
