package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/internal/config"
	"github.com/narwhalmedia/catalog/internal/infrastructure/persistence"
	"github.com/narwhalmedia/catalog/pkg/database"
)

// CatalogTables lists every table created by the migrations, join tables first.
var CatalogTables = []string{
	"videos_cast_members",
	"videos_genres",
	"videos_categories",
	"genres_categories",
	"videos",
	"cast_members",
	"genres",
	"categories",
}

// PostgresContainer wraps a migrated postgres test container
type PostgresContainer struct {
	*tcpostgres.PostgresContainer
	DB *gorm.DB
}

// SetupPostgresContainer starts postgres, connects through the catalog's
// own connection setup and applies every migration.
func SetupPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("catalog_test"),
		tcpostgres.WithUsername("catalog"),
		tcpostgres.WithPassword("catalog"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate postgres container: %v", err)
		}
	})

	host, err := pgContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	logger := zaptest.NewLogger(t)
	db, closeDB, err := persistence.NewDB(config.DatabaseConfig{
		Driver:       "postgres",
		Host:         host,
		Port:         port.Int(),
		User:         "catalog",
		Password:     "catalog",
		Name:         "catalog_test",
		SSLMode:      "disable",
		MaxOpenConns: 5,
		MaxIdleConns: 2,
		MaxLifetime:  time.Minute,
	}, logger)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(closeDB)

	if err := database.RunMigrations(db, logger); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &PostgresContainer{PostgresContainer: pgContainer, DB: db}
}

// TruncateTables empties the given tables, or every catalog table when none are named.
func (pc *PostgresContainer) TruncateTables(tableNames ...string) error {
	if len(tableNames) == 0 {
		tableNames = CatalogTables
	}
	for _, table := range tableNames {
		if err := pc.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			return err
		}
	}
	return nil
}
