package castmember

import (
	"context"
	"fmt"

	"github.com/narwhalmedia/catalog/internal/application"
	"github.com/narwhalmedia/catalog/internal/domain/castmember"
	"github.com/narwhalmedia/catalog/internal/domain/events"
	"github.com/narwhalmedia/catalog/internal/domain/pagination"
	"github.com/narwhalmedia/catalog/internal/domain/validation"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// UseCases is the cast member application surface consumed by transports.
type UseCases interface {
	Create(ctx context.Context, cmd CreateCastMemberCommand) (*CreateCastMemberOutput, error)
	Update(ctx context.Context, cmd UpdateCastMemberCommand) (*UpdateCastMemberOutput, error)
	GetByID(ctx context.Context, id string) (*CastMemberOutput, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context, query pagination.SearchQuery) (*pagination.Pagination[CastMemberListOutput], error)
}

// Service orchestrates cast member use cases.
type Service struct {
	gateway   castmember.Gateway
	publisher events.Publisher
	logger    interfaces.Logger
}

var _ UseCases = (*Service)(nil)

// NewService creates a new cast member service
func NewService(gateway castmember.Gateway, publisher events.Publisher, logger interfaces.Logger) *Service {
	return &Service{
		gateway:   gateway,
		publisher: publisher,
		logger:    logger,
	}
}

// Create validates and stores a new cast member.
func (s *Service) Create(ctx context.Context, cmd CreateCastMemberCommand) (*CreateCastMemberOutput, error) {
	notification := validation.NewNotification()
	m := validation.Build(notification, func() (*castmember.CastMember, error) {
		return castmember.New(cmd.Name, castmember.ParseType(cmd.Type))
	})

	if notification.HasError() {
		return nil, validation.NewNotificationError("Could not create Aggregate CastMember", notification)
	}

	created, err := s.gateway.Create(ctx, m.Clone())
	if err != nil {
		return nil, fmt.Errorf("creating cast member: %w", err)
	}

	s.logger.Info("cast member created",
		interfaces.String("cast_member_id", created.ID().String()),
		interfaces.String("type", string(created.Type())),
	)
	application.Notify(ctx, s.publisher, s.logger, events.AggregateCastMember, created.ID().String(), events.ActionCreated)

	return &CreateCastMemberOutput{ID: created.ID().String()}, nil
}

// Update applies a new name and type to an existing cast member.
func (s *Service) Update(ctx context.Context, cmd UpdateCastMemberCommand) (*UpdateCastMemberOutput, error) {
	id, err := castmember.ParseID(cmd.ID)
	if err != nil {
		return nil, err
	}

	m, err := s.gateway.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading cast member: %w", err)
	}

	notification := validation.NewNotification()
	notification.Validate(func() error {
		return m.Update(cmd.Name, castmember.ParseType(cmd.Type))
	})

	if notification.HasError() {
		return nil, validation.NewNotificationError(
			fmt.Sprintf("Could not update Aggregate CastMember %s", id), notification,
		)
	}

	updated, err := s.gateway.Update(ctx, m.Clone())
	if err != nil {
		return nil, fmt.Errorf("updating cast member: %w", err)
	}

	application.Notify(ctx, s.publisher, s.logger, events.AggregateCastMember, updated.ID().String(), events.ActionUpdated)

	return &UpdateCastMemberOutput{ID: updated.ID().String()}, nil
}

// GetByID returns one cast member.
func (s *Service) GetByID(ctx context.Context, rawID string) (*CastMemberOutput, error) {
	id, err := castmember.ParseID(rawID)
	if err != nil {
		return nil, err
	}

	m, err := s.gateway.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading cast member: %w", err)
	}
	return toOutput(m), nil
}

// DeleteByID removes a cast member. Unknown ids are not an error.
func (s *Service) DeleteByID(ctx context.Context, rawID string) error {
	id, err := castmember.ParseID(rawID)
	if err != nil {
		return err
	}

	if err := s.gateway.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("deleting cast member: %w", err)
	}

	application.Notify(ctx, s.publisher, s.logger, events.AggregateCastMember, id.String(), events.ActionDeleted)
	return nil
}

// List returns one page of cast members.
func (s *Service) List(ctx context.Context, query pagination.SearchQuery) (*pagination.Pagination[CastMemberListOutput], error) {
	page, err := s.gateway.FindAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing cast members: %w", err)
	}

	result := pagination.Map(page, toListOutput)
	return &result, nil
}
