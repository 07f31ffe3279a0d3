package genre

import (
	"context"

	"github.com/narwhalmedia/catalog/internal/domain/pagination"
)

// Gateway persists genres together with their category references.
type Gateway interface {
	Create(ctx context.Context, genre *Genre) (*Genre, error)
	Update(ctx context.Context, genre *Genre) (*Genre, error)
	// FindByID returns a *domain.NotFoundError when the genre is absent
	FindByID(ctx context.Context, id ID) (*Genre, error)
	DeleteByID(ctx context.Context, id ID) error
	FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Pagination[*Genre], error)
	// ExistsByIDs returns the subset of ids that are stored, in one round trip
	ExistsByIDs(ctx context.Context, ids []ID) ([]ID, error)
}
