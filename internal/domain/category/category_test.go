package category_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/validation"
)

func ptr(s string) *string { return &s }

func TestNew(t *testing.T) {
	c, err := category.New(ptr("Movies"), "The most watched category", true)
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID())
	assert.Equal(t, strings.ToLower(c.ID().String()), c.ID().String())
	assert.Equal(t, "Movies", c.Name())
	assert.Equal(t, "The most watched category", c.Description())
	assert.True(t, c.IsActive())
	assert.Nil(t, c.DeletedAt())
	assert.Equal(t, c.CreatedAt(), c.UpdatedAt())
}

func TestNew_Inactive(t *testing.T) {
	c, err := category.New(ptr("Movies"), "", false)
	require.NoError(t, err)

	assert.False(t, c.IsActive())
	require.NotNil(t, c.DeletedAt())
	assert.Equal(t, c.CreatedAt(), *c.DeletedAt())
}

func TestNew_InvalidName(t *testing.T) {
	tests := []struct {
		name    string
		input   *string
		message string
	}{
		{"null", nil, "'name' should not be null"},
		{"empty", ptr(""), "'name' should not be empty"},
		{"blank", ptr("   "), "'name' should not be empty"},
		{"too short", ptr(" Fi "), "'name' must be between 3 and 255 characters"},
		{"too long", ptr(strings.Repeat("x", 256)), "'name' must be between 3 and 255 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := category.New(tt.input, "desc", true)

			assert.Nil(t, c)
			var notificationErr *validation.NotificationError
			require.ErrorAs(t, err, &notificationErr)
			assert.Equal(t, "Failed to create an Aggregate Category", notificationErr.Error())
			require.Len(t, notificationErr.Errors(), 1)
			assert.Equal(t, tt.message, notificationErr.Errors()[0].Message)
		})
	}
}

func TestUpdate(t *testing.T) {
	c, err := category.New(ptr("Film"), "", true)
	require.NoError(t, err)
	createdAt, updatedAt := c.CreatedAt(), c.UpdatedAt()

	require.NoError(t, c.Update(ptr("Films"), "Long form", false))

	assert.Equal(t, "Films", c.Name())
	assert.Equal(t, "Long form", c.Description())
	assert.False(t, c.IsActive())
	assert.NotNil(t, c.DeletedAt())
	assert.Equal(t, createdAt, c.CreatedAt())
	assert.True(t, c.UpdatedAt().After(updatedAt))
}

func TestUpdate_InvalidLeavesCategoryUntouched(t *testing.T) {
	c, err := category.New(ptr("Film"), "desc", true)
	require.NoError(t, err)
	before := c.Clone()

	err = c.Update(ptr(""), "changed", false)

	var notificationErr *validation.NotificationError
	require.ErrorAs(t, err, &notificationErr)
	assert.Equal(t, "'name' should not be empty", notificationErr.Errors()[0].Message)
	assert.Equal(t, before, c)
}

func TestActivateDeactivate(t *testing.T) {
	c, err := category.New(ptr("Film"), "", true)
	require.NoError(t, err)

	require.NoError(t, c.Deactivate())
	deletedAt := c.DeletedAt()
	require.NotNil(t, deletedAt)
	afterDeactivate := c.UpdatedAt()

	require.NoError(t, c.Deactivate())
	assert.Equal(t, *deletedAt, *c.DeletedAt())
	assert.True(t, c.UpdatedAt().After(afterDeactivate))

	require.NoError(t, c.Activate())
	assert.True(t, c.IsActive())
	assert.Nil(t, c.DeletedAt())
}

func TestRehydrate(t *testing.T) {
	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	updatedAt := createdAt.Add(time.Hour)

	c := category.Rehydrate(category.IDFrom("ABC"), "Series", "d", true, createdAt, updatedAt, nil)

	assert.Equal(t, category.ID("abc"), c.ID())
	assert.Equal(t, createdAt, c.CreatedAt())
	assert.Equal(t, updatedAt, c.UpdatedAt())

	require.NoError(t, c.Update(ptr("Series"), "d", true))
	assert.True(t, c.UpdatedAt().After(updatedAt))
}

func TestParseID(t *testing.T) {
	id, err := category.ParseID("  ABC123 ")
	require.NoError(t, err)
	assert.Equal(t, category.ID("abc123"), id)

	_, err = category.ParseID("  ")
	assert.Error(t, err)
}
