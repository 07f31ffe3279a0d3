package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/internal/config"
	catalogrpc "github.com/narwhalmedia/catalog/internal/infrastructure/grpc"
	"github.com/narwhalmedia/catalog/internal/infrastructure/persistence"
	"github.com/narwhalmedia/catalog/internal/infrastructure/rest"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/logger"
)

// App holds the long-running parts of the catalog service.
type App struct {
	DB   *gorm.DB
	HTTP *rest.Server
	GRPC *catalogrpc.Server
}

func provideLogger(log *zap.Logger) interfaces.Logger {
	return logger.NewFromZap(log)
}

func provideListDefaults(cfg config.PaginationConfig) rest.ListDefaults {
	return rest.ListDefaults{PerPage: cfg.DefaultPerPage, MaxPerPage: cfg.MaxPerPage}
}

func providePinger(db *gorm.DB) rest.Pinger {
	return func(ctx context.Context) error { return persistence.Ping(ctx, db) }
}

func provideHealthCheck(db *gorm.DB) catalogrpc.HealthCheck {
	return func(ctx context.Context) error { return persistence.Ping(ctx, db) }
}

func provideRouter(cfg config.MetricsConfig, handlers rest.Handlers, metrics *rest.Metrics, ping rest.Pinger, log interfaces.Logger) http.Handler {
	path := ""
	if cfg.Enabled {
		path = cfg.Path
	}
	return rest.NewRouter(handlers, metrics, path, ping, log)
}
