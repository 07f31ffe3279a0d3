// Package mocks holds testify mocks of the catalog ports. Create and Update
// accept either a fixed aggregate or a func(ctx, aggregate) aggregate as return value.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/narwhalmedia/catalog/internal/domain/castmember"
	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/events"
	"github.com/narwhalmedia/catalog/internal/domain/genre"
	"github.com/narwhalmedia/catalog/internal/domain/pagination"
	"github.com/narwhalmedia/catalog/internal/domain/video"
)

// CategoryGateway is a mock for category.Gateway
type CategoryGateway struct {
	mock.Mock
}

func (m *CategoryGateway) Create(ctx context.Context, c *category.Category) (*category.Category, error) {
	args := m.Called(ctx, c)
	if fn, ok := args.Get(0).(func(context.Context, *category.Category) *category.Category); ok {
		return fn(ctx, c), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *CategoryGateway) Update(ctx context.Context, c *category.Category) (*category.Category, error) {
	args := m.Called(ctx, c)
	if fn, ok := args.Get(0).(func(context.Context, *category.Category) *category.Category); ok {
		return fn(ctx, c), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *CategoryGateway) FindByID(ctx context.Context, id category.ID) (*category.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *CategoryGateway) DeleteByID(ctx context.Context, id category.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CategoryGateway) FindAll(ctx context.Context, q pagination.SearchQuery) (pagination.Pagination[*category.Category], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(pagination.Pagination[*category.Category]), args.Error(1)
}

func (m *CategoryGateway) ExistsByIDs(ctx context.Context, ids []category.ID) ([]category.ID, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]category.ID), args.Error(1)
}

// GenreGateway is a mock for genre.Gateway
type GenreGateway struct {
	mock.Mock
}

func (m *GenreGateway) Create(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	args := m.Called(ctx, g)
	if fn, ok := args.Get(0).(func(context.Context, *genre.Genre) *genre.Genre); ok {
		return fn(ctx, g), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*genre.Genre), args.Error(1)
}

func (m *GenreGateway) Update(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	args := m.Called(ctx, g)
	if fn, ok := args.Get(0).(func(context.Context, *genre.Genre) *genre.Genre); ok {
		return fn(ctx, g), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*genre.Genre), args.Error(1)
}

func (m *GenreGateway) FindByID(ctx context.Context, id genre.ID) (*genre.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*genre.Genre), args.Error(1)
}

func (m *GenreGateway) DeleteByID(ctx context.Context, id genre.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *GenreGateway) FindAll(ctx context.Context, q pagination.SearchQuery) (pagination.Pagination[*genre.Genre], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(pagination.Pagination[*genre.Genre]), args.Error(1)
}

func (m *GenreGateway) ExistsByIDs(ctx context.Context, ids []genre.ID) ([]genre.ID, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]genre.ID), args.Error(1)
}

// CastMemberGateway is a mock for castmember.Gateway
type CastMemberGateway struct {
	mock.Mock
}

func (m *CastMemberGateway) Create(ctx context.Context, c *castmember.CastMember) (*castmember.CastMember, error) {
	args := m.Called(ctx, c)
	if fn, ok := args.Get(0).(func(context.Context, *castmember.CastMember) *castmember.CastMember); ok {
		return fn(ctx, c), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*castmember.CastMember), args.Error(1)
}

func (m *CastMemberGateway) Update(ctx context.Context, c *castmember.CastMember) (*castmember.CastMember, error) {
	args := m.Called(ctx, c)
	if fn, ok := args.Get(0).(func(context.Context, *castmember.CastMember) *castmember.CastMember); ok {
		return fn(ctx, c), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*castmember.CastMember), args.Error(1)
}

func (m *CastMemberGateway) FindByID(ctx context.Context, id castmember.ID) (*castmember.CastMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*castmember.CastMember), args.Error(1)
}

func (m *CastMemberGateway) DeleteByID(ctx context.Context, id castmember.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CastMemberGateway) FindAll(ctx context.Context, q pagination.SearchQuery) (pagination.Pagination[*castmember.CastMember], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(pagination.Pagination[*castmember.CastMember]), args.Error(1)
}

func (m *CastMemberGateway) ExistsByIDs(ctx context.Context, ids []castmember.ID) ([]castmember.ID, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]castmember.ID), args.Error(1)
}

// VideoGateway is a mock for video.Gateway
type VideoGateway struct {
	mock.Mock
}

func (m *VideoGateway) Create(ctx context.Context, v *video.Video) (*video.Video, error) {
	args := m.Called(ctx, v)
	if fn, ok := args.Get(0).(func(context.Context, *video.Video) *video.Video); ok {
		return fn(ctx, v), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*video.Video), args.Error(1)
}

func (m *VideoGateway) Update(ctx context.Context, v *video.Video) (*video.Video, error) {
	args := m.Called(ctx, v)
	if fn, ok := args.Get(0).(func(context.Context, *video.Video) *video.Video); ok {
		return fn(ctx, v), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*video.Video), args.Error(1)
}

func (m *VideoGateway) FindByID(ctx context.Context, id video.ID) (*video.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*video.Video), args.Error(1)
}

func (m *VideoGateway) DeleteByID(ctx context.Context, id video.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *VideoGateway) FindAll(ctx context.Context, q pagination.SearchQuery) (pagination.Pagination[*video.Video], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(pagination.Pagination[*video.Video]), args.Error(1)
}

// Publisher is a mock for events.Publisher
type Publisher struct {
	mock.Mock
}

func (m *Publisher) Publish(ctx context.Context, event events.CatalogEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
