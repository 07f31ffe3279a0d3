package castmember_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/catalog/internal/domain"
	"github.com/narwhalmedia/catalog/internal/domain/castmember"
	"github.com/narwhalmedia/catalog/internal/domain/validation"
)

func ptr(s string) *string { return &s }

func TestNew(t *testing.T) {
	m, err := castmember.New(ptr("Vin Diesel"), castmember.Actor)
	require.NoError(t, err)

	assert.NotEmpty(t, m.ID())
	assert.Equal(t, "Vin Diesel", m.Name())
	assert.Equal(t, castmember.Actor, m.Type())
	assert.Equal(t, m.CreatedAt(), m.UpdatedAt())
}

func TestNew_AccumulatesNameAndTypeErrors(t *testing.T) {
	_, err := castmember.New(nil, "")

	var notificationErr *validation.NotificationError
	require.ErrorAs(t, err, &notificationErr)
	assert.Equal(t, []validation.Error{
		{Message: "'name' should not be null"},
		{Message: "'type' should not be null"},
	}, notificationErr.Errors())
}

func TestNew_BlankNameWithType(t *testing.T) {
	_, err := castmember.New(ptr(""), castmember.Director)

	var notificationErr *validation.NotificationError
	require.ErrorAs(t, err, &notificationErr)
	require.Len(t, notificationErr.Errors(), 1)
	assert.Equal(t, "'name' should not be empty", notificationErr.Errors()[0].Message)
}

func TestUpdate_BumpsUpdatedAtStrictly(t *testing.T) {
	frozen := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	restore := domain.SetClock(domain.ClockFunc(func() time.Time { return frozen }))
	defer restore()

	m, err := castmember.New(ptr("Vin"), castmember.Actor)
	require.NoError(t, err)
	id, createdAt, updatedAt := m.ID(), m.CreatedAt(), m.UpdatedAt()

	require.NoError(t, m.Update(ptr("Vin Diesel"), castmember.Actor))

	assert.Equal(t, id, m.ID())
	assert.Equal(t, createdAt, m.CreatedAt())
	assert.True(t, m.UpdatedAt().After(updatedAt))
	assert.Equal(t, "Vin Diesel", m.Name())
}

func TestUpdate_InvalidLeavesMemberUntouched(t *testing.T) {
	m, err := castmember.New(ptr("Vin"), castmember.Actor)
	require.NoError(t, err)
	before := m.Clone()

	err = m.Update(ptr(" "), "")

	var notificationErr *validation.NotificationError
	require.ErrorAs(t, err, &notificationErr)
	assert.Len(t, notificationErr.Errors(), 2)
	assert.Equal(t, before, m)
}

func TestParseType(t *testing.T) {
	assert.Equal(t, castmember.Actor, castmember.ParseType("actor"))
	assert.Equal(t, castmember.Director, castmember.ParseType(" DIRECTOR "))
	assert.Equal(t, castmember.Type(""), castmember.ParseType("producer"))
}
