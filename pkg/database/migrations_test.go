package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/pkg/database"
)

func openSQLite(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestMigrator_AppliesEveryMigrationOnce(t *testing.T) {
	db := openSQLite(t)
	migrator := database.NewMigrator(db, zaptest.NewLogger(t))

	pending, err := migrator.GetPendingMigrations()
	require.NoError(t, err)
	assert.Len(t, pending, 5)

	require.NoError(t, migrator.Migrate())
	require.NoError(t, migrator.Migrate())

	pending, err = migrator.GetPendingMigrations()
	require.NoError(t, err)
	assert.Empty(t, pending)

	for _, table := range []string{
		"categories", "genres", "genres_categories", "cast_members",
		"videos", "videos_categories", "videos_genres", "videos_cast_members",
	} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	for _, table := range []string{"genres_categories", "videos_categories", "videos_genres", "videos_cast_members"} {
		assert.True(t, db.Migrator().HasColumn(table, "position"), table)
	}

	var count int64
	require.NoError(t, db.Model(&database.Migration{}).Count(&count).Error)
	assert.Equal(t, int64(5), count)
}

func TestMigrator_Status(t *testing.T) {
	db := openSQLite(t)
	migrator := database.NewMigrator(db, zaptest.NewLogger(t))

	status, err := migrator.Status()
	require.NoError(t, err)
	require.Len(t, status, 5)
	assert.Equal(t, "001", status[0].Version)
	assert.Nil(t, status[0].AppliedAt)

	require.NoError(t, migrator.Migrate())

	status, err = migrator.Status()
	require.NoError(t, err)
	for _, s := range status {
		assert.NotNil(t, s.AppliedAt, s.Version)
	}
}
