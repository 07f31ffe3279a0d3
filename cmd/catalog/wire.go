//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	castmemberapp "github.com/narwhalmedia/catalog/internal/application/castmember"
	categoryapp "github.com/narwhalmedia/catalog/internal/application/category"
	genreapp "github.com/narwhalmedia/catalog/internal/application/genre"
	videoapp "github.com/narwhalmedia/catalog/internal/application/video"
	"github.com/narwhalmedia/catalog/internal/config"
	"github.com/narwhalmedia/catalog/internal/domain/castmember"
	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/genre"
	"github.com/narwhalmedia/catalog/internal/domain/video"
	catalogrpc "github.com/narwhalmedia/catalog/internal/infrastructure/grpc"
	"github.com/narwhalmedia/catalog/internal/infrastructure/messaging"
	"github.com/narwhalmedia/catalog/internal/infrastructure/persistence"
	"github.com/narwhalmedia/catalog/internal/infrastructure/rest"
)

func InitializeApp(cfg *config.Config, logger *zap.Logger) (*App, func(), error) {
	wire.Build(
		wire.FieldsOf(new(*config.Config), "HTTP", "Database", "Events", "Pagination", "Metrics"),
		provideLogger,

		// Infrastructure
		persistence.NewDB,
		messaging.NewPublisher,

		// Gateways
		persistence.NewCategoryGateway,
		wire.Bind(new(category.Gateway), new(*persistence.CategoryGateway)),
		persistence.NewGenreGateway,
		wire.Bind(new(genre.Gateway), new(*persistence.GenreGateway)),
		persistence.NewCastMemberGateway,
		wire.Bind(new(castmember.Gateway), new(*persistence.CastMemberGateway)),
		persistence.NewVideoGateway,
		wire.Bind(new(video.Gateway), new(*persistence.VideoGateway)),

		// Use cases
		categoryapp.NewService,
		wire.Bind(new(categoryapp.UseCases), new(*categoryapp.Service)),
		genreapp.NewService,
		wire.Bind(new(genreapp.UseCases), new(*genreapp.Service)),
		castmemberapp.NewService,
		wire.Bind(new(castmemberapp.UseCases), new(*castmemberapp.Service)),
		videoapp.NewService,
		wire.Bind(new(videoapp.UseCases), new(*videoapp.Service)),

		// REST
		rest.NewMetrics,
		provideListDefaults,
		rest.NewCategoryHandler,
		rest.NewGenreHandler,
		rest.NewCastMemberHandler,
		rest.NewVideoHandler,
		wire.Struct(new(rest.Handlers), "*"),
		providePinger,
		provideRouter,
		rest.NewServer,

		// gRPC
		provideHealthCheck,
		catalogrpc.NewServer,

		wire.Struct(new(App), "*"),
	)

	return nil, nil, nil
}
