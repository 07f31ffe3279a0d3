package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/internal/infrastructure/persistence"
)

// Migration records one applied schema version
type Migration struct {
	ID        uint      `gorm:"primaryKey"`
	Version   string    `gorm:"uniqueIndex;not null"`
	Name      string    `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
}

func (Migration) TableName() string { return "schema_migrations" }

// MigrationFunc is a function that performs a migration
type MigrationFunc func(*gorm.DB) error

// MigrationEntry represents a single migration
type MigrationEntry struct {
	Version string
	Name    string
	Up      MigrationFunc
}

// MigrationStatus pairs a migration with the time it was applied, if ever.
type MigrationStatus struct {
	Version   string
	Name      string
	AppliedAt *time.Time
}

// Migrator handles database migrations
type Migrator struct {
	db         *gorm.DB
	logger     *zap.Logger
	migrations []MigrationEntry
}

// NewMigrator creates a migrator for the catalog schema
func NewMigrator(db *gorm.DB, logger *zap.Logger) *Migrator {
	return &Migrator{
		db:         db,
		logger:     logger.Named("migrator"),
		migrations: catalogMigrations(),
	}
}

// Migrate runs all pending migrations, each in its own transaction
func (m *Migrator) Migrate() error {
	applied, err := m.applied()
	if err != nil {
		return err
	}

	for _, migration := range m.migrations {
		if _, ok := applied[migration.Version]; ok {
			continue
		}

		m.logger.Info("running migration",
			zap.String("version", migration.Version),
			zap.String("name", migration.Name),
		)

		err := m.db.Transaction(func(tx *gorm.DB) error {
			if err := migration.Up(tx); err != nil {
				return err
			}
			return tx.Create(&Migration{
				Version:   migration.Version,
				Name:      migration.Name,
				AppliedAt: time.Now().UTC(),
			}).Error
		})
		if err != nil {
			return fmt.Errorf("failed to run migration %s: %w", migration.Version, err)
		}
	}

	return nil
}

// GetPendingMigrations returns the migrations not yet applied, in order
func (m *Migrator) GetPendingMigrations() ([]MigrationEntry, error) {
	applied, err := m.applied()
	if err != nil {
		return nil, err
	}

	var pending []MigrationEntry
	for _, migration := range m.migrations {
		if _, ok := applied[migration.Version]; !ok {
			pending = append(pending, migration)
		}
	}
	return pending, nil
}

// Status lists every known migration with its application time
func (m *Migrator) Status() ([]MigrationStatus, error) {
	applied, err := m.applied()
	if err != nil {
		return nil, err
	}

	status := make([]MigrationStatus, len(m.migrations))
	for i, migration := range m.migrations {
		status[i] = MigrationStatus{Version: migration.Version, Name: migration.Name}
		if at, ok := applied[migration.Version]; ok {
			status[i].AppliedAt = &at
		}
	}
	return status, nil
}

func (m *Migrator) applied() (map[string]time.Time, error) {
	if err := m.db.AutoMigrate(&Migration{}); err != nil {
		return nil, fmt.Errorf("failed to create migrations table: %w", err)
	}

	var rows []Migration
	if err := m.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get applied migrations: %w", err)
	}

	applied := make(map[string]time.Time, len(rows))
	for _, row := range rows {
		applied[row.Version] = row.AppliedAt
	}
	return applied, nil
}

func catalogMigrations() []MigrationEntry {
	return []MigrationEntry{
		{
			Version: "001",
			Name:    "Create categories",
			Up:      autoMigrate(&persistence.CategoryModel{}),
		},
		{
			Version: "002",
			Name:    "Create genres and their category links",
			Up:      autoMigrate(&persistence.GenreModel{}, &persistence.GenreCategoryModel{}),
		},
		{
			Version: "003",
			Name:    "Create cast members",
			Up:      autoMigrate(&persistence.CastMemberModel{}),
		},
		{
			Version: "004",
			Name:    "Create videos and their reference links",
			Up: autoMigrate(
				&persistence.VideoModel{},
				&persistence.VideoCategoryModel{},
				&persistence.VideoGenreModel{},
				&persistence.VideoCastMemberModel{},
			),
		},
		{
			Version: "005",
			Name:    "Order reference links",
			Up: autoMigrate(
				&persistence.GenreCategoryModel{},
				&persistence.VideoCategoryModel{},
				&persistence.VideoGenreModel{},
				&persistence.VideoCastMemberModel{},
			),
		},
	}
}

func autoMigrate(models ...any) MigrationFunc {
	return func(tx *gorm.DB) error {
		return tx.AutoMigrate(models...)
	}
}

// RunMigrations runs all pending database migrations
func RunMigrations(db *gorm.DB, logger *zap.Logger) error {
	return NewMigrator(db, logger).Migrate()
}
