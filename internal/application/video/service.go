package video

import (
	"context"
	"fmt"

	"github.com/narwhalmedia/catalog/internal/application"
	"github.com/narwhalmedia/catalog/internal/domain/castmember"
	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/events"
	"github.com/narwhalmedia/catalog/internal/domain/genre"
	"github.com/narwhalmedia/catalog/internal/domain/pagination"
	"github.com/narwhalmedia/catalog/internal/domain/validation"
	"github.com/narwhalmedia/catalog/internal/domain/video"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// UseCases is the video application surface consumed by transports.
type UseCases interface {
	Create(ctx context.Context, cmd CreateVideoCommand) (*CreateVideoOutput, error)
	Update(ctx context.Context, cmd UpdateVideoCommand) (*UpdateVideoOutput, error)
	GetByID(ctx context.Context, id string) (*VideoOutput, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context, query pagination.SearchQuery) (*pagination.Pagination[VideoListOutput], error)
}

// Service orchestrates video use cases. Create and Update check all three
// reference sets before the video's own fields.
type Service struct {
	videos      video.Gateway
	categories  category.Gateway
	genres      genre.Gateway
	castMembers castmember.Gateway
	publisher   events.Publisher
	logger      interfaces.Logger
}

var _ UseCases = (*Service)(nil)

// NewService creates a new video service
func NewService(
	videos video.Gateway,
	categories category.Gateway,
	genres genre.Gateway,
	castMembers castmember.Gateway,
	publisher events.Publisher,
	logger interfaces.Logger,
) *Service {
	return &Service{
		videos:      videos,
		categories:  categories,
		genres:      genres,
		castMembers: castMembers,
		publisher:   publisher,
		logger:      logger,
	}
}

type references struct {
	categories  []category.ID
	genres      []genre.ID
	castMembers []castmember.ID
}

func parseReferences(categories, genres, castMembers []string) (references, error) {
	var (
		refs references
		err  error
	)
	if refs.categories, err = application.ParseIDs(categories, category.ParseID); err != nil {
		return refs, err
	}
	if refs.genres, err = application.ParseIDs(genres, genre.ParseID); err != nil {
		return refs, err
	}
	if refs.castMembers, err = application.ParseIDs(castMembers, castmember.ParseID); err != nil {
		return refs, err
	}
	return refs, nil
}

// Create validates references and fields, then stores a new video.
func (s *Service) Create(ctx context.Context, cmd CreateVideoCommand) (*CreateVideoOutput, error) {
	refs, err := parseReferences(cmd.Categories, cmd.Genres, cmd.CastMembers)
	if err != nil {
		return nil, err
	}

	notification := validation.NewNotification()
	if err := s.validateReferences(ctx, notification, refs); err != nil {
		return nil, err
	}

	v := validation.Build(notification, func() (*video.Video, error) {
		return video.New(video.Props{
			Title:       cmd.Title,
			Description: cmd.Description,
			LaunchedAt:  cmd.LaunchedAt,
			Duration:    cmd.Duration,
			Opened:      cmd.Opened,
			Published:   cmd.Published,
			Rating:      video.ParseRating(cmd.Rating),
			Categories:  refs.categories,
			Genres:      refs.genres,
			CastMembers: refs.castMembers,
		})
	})

	if notification.HasError() {
		s.logger.Debug("video rejected", interfaces.Int("errors", len(notification.Errors())))
		return nil, validation.NewNotificationError("Could not create Aggregate Video", notification)
	}

	created, err := s.videos.Create(ctx, v.Clone())
	if err != nil {
		return nil, fmt.Errorf("creating video: %w", err)
	}

	s.logger.Info("video created", interfaces.String("video_id", created.ID().String()))
	application.Notify(ctx, s.publisher, s.logger, events.AggregateVideo, created.ID().String(), events.ActionCreated)

	return &CreateVideoOutput{ID: created.ID().String()}, nil
}

// Update loads the video, validates references and fields together, then stores it.
func (s *Service) Update(ctx context.Context, cmd UpdateVideoCommand) (*UpdateVideoOutput, error) {
	id, err := video.ParseID(cmd.ID)
	if err != nil {
		return nil, err
	}
	refs, err := parseReferences(cmd.Categories, cmd.Genres, cmd.CastMembers)
	if err != nil {
		return nil, err
	}

	v, err := s.videos.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading video: %w", err)
	}

	notification := validation.NewNotification()
	if err := s.validateReferences(ctx, notification, refs); err != nil {
		return nil, err
	}
	notification.Validate(func() error {
		return v.Update(video.Props{
			Title:       cmd.Title,
			Description: cmd.Description,
			LaunchedAt:  cmd.LaunchedAt,
			Duration:    cmd.Duration,
			Opened:      cmd.Opened,
			Published:   cmd.Published,
			Rating:      video.ParseRating(cmd.Rating),
			Categories:  refs.categories,
			Genres:      refs.genres,
			CastMembers: refs.castMembers,
		})
	})

	if notification.HasError() {
		return nil, validation.NewNotificationError(
			fmt.Sprintf("Could not update Aggregate Video %s", id), notification,
		)
	}

	updated, err := s.videos.Update(ctx, v.Clone())
	if err != nil {
		return nil, fmt.Errorf("updating video: %w", err)
	}

	application.Notify(ctx, s.publisher, s.logger, events.AggregateVideo, updated.ID().String(), events.ActionUpdated)

	return &UpdateVideoOutput{ID: updated.ID().String()}, nil
}

// GetByID returns one video.
func (s *Service) GetByID(ctx context.Context, rawID string) (*VideoOutput, error) {
	id, err := video.ParseID(rawID)
	if err != nil {
		return nil, err
	}

	v, err := s.videos.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading video: %w", err)
	}
	return toOutput(v), nil
}

// DeleteByID removes a video. Unknown ids are not an error.
func (s *Service) DeleteByID(ctx context.Context, rawID string) error {
	id, err := video.ParseID(rawID)
	if err != nil {
		return err
	}

	if err := s.videos.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("deleting video: %w", err)
	}

	application.Notify(ctx, s.publisher, s.logger, events.AggregateVideo, id.String(), events.ActionDeleted)
	return nil
}

// List returns one page of videos.
func (s *Service) List(ctx context.Context, query pagination.SearchQuery) (*pagination.Pagination[VideoListOutput], error) {
	page, err := s.videos.FindAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing videos: %w", err)
	}

	result := pagination.Map(page, toListOutput)
	return &result, nil
}

func (s *Service) validateReferences(ctx context.Context, handler validation.Handler, refs references) error {
	if err := application.ValidateReferences(ctx, handler, "categories", refs.categories, s.categories.ExistsByIDs); err != nil {
		return err
	}
	if err := application.ValidateReferences(ctx, handler, "genres", refs.genres, s.genres.ExistsByIDs); err != nil {
		return err
	}
	return application.ValidateReferences(ctx, handler, "cast members", refs.castMembers, s.castMembers.ExistsByIDs)
}
