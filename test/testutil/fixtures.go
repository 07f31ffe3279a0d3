package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/catalog/internal/domain/castmember"
	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/genre"
	"github.com/narwhalmedia/catalog/internal/domain/video"
)

// Ptr returns a pointer to s.
func Ptr(s string) *string { return &s }

// NewCategory creates a valid active category.
func NewCategory(t testing.TB, name string) *category.Category {
	t.Helper()
	c, err := category.New(Ptr(name), name+" description", true)
	require.NoError(t, err)
	return c
}

// NewGenre creates a valid active genre linked to categories.
func NewGenre(t testing.TB, name string, categories ...category.ID) *genre.Genre {
	t.Helper()
	g, err := genre.New(Ptr(name), true)
	require.NoError(t, err)
	require.NoError(t, g.AddCategories(categories))
	return g
}

// NewCastMember creates a valid cast member.
func NewCastMember(t testing.TB, name string, memberType castmember.Type) *castmember.CastMember {
	t.Helper()
	m, err := castmember.New(Ptr(name), memberType)
	require.NoError(t, err)
	return m
}

// VideoProps returns valid props for a video titled title.
func VideoProps(title string) video.Props {
	return video.Props{
		Title:       Ptr(title),
		Description: title + " description",
		LaunchedAt:  2022,
		Duration:    90,
		Rating:      video.RatingL,
	}
}

// NewVideo creates a valid video from props.
func NewVideo(t testing.TB, props video.Props) *video.Video {
	t.Helper()
	v, err := video.New(props)
	require.NoError(t, err)
	return v
}
