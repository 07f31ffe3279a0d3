package genre

import (
	"time"

	"github.com/narwhalmedia/catalog/internal/domain/genre"
)

// CreateGenreCommand represents a request to create a genre
type CreateGenreCommand struct {
	Name       *string
	IsActive   bool
	Categories []string
}

// UpdateGenreCommand represents a request to update a genre
type UpdateGenreCommand struct {
	ID         string
	Name       *string
	IsActive   bool
	Categories []string
}

// CreateGenreOutput carries the id of a created genre
type CreateGenreOutput struct {
	ID string
}

// UpdateGenreOutput carries the id of an updated genre
type UpdateGenreOutput struct {
	ID string
}

// GenreOutput is the full view of one genre
type GenreOutput struct {
	ID         string
	Name       string
	IsActive   bool
	Categories []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// GenreListOutput is the listing view of a genre
type GenreListOutput struct {
	ID         string
	Name       string
	IsActive   bool
	Categories []string
	CreatedAt  time.Time
	DeletedAt  *time.Time
}

func categoryStrings(g *genre.Genre) []string {
	ids := g.Categories()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func toOutput(g *genre.Genre) *GenreOutput {
	return &GenreOutput{
		ID:         g.ID().String(),
		Name:       g.Name(),
		IsActive:   g.IsActive(),
		Categories: categoryStrings(g),
		CreatedAt:  g.CreatedAt(),
		UpdatedAt:  g.UpdatedAt(),
		DeletedAt:  g.DeletedAt(),
	}
}

func toListOutput(g *genre.Genre) GenreListOutput {
	return GenreListOutput{
		ID:         g.ID().String(),
		Name:       g.Name(),
		IsActive:   g.IsActive(),
		Categories: categoryStrings(g),
		CreatedAt:  g.CreatedAt(),
		DeletedAt:  g.DeletedAt(),
	}
}
