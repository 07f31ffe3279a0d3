package category

import (
	"context"

	"github.com/narwhalmedia/catalog/internal/domain/pagination"
)

// Gateway persists categories.
type Gateway interface {
	// Create stores a new category
	Create(ctx context.Context, category *Category) (*Category, error)

	// Update replaces a stored category
	Update(ctx context.Context, category *Category) (*Category, error)

	// FindByID returns a *domain.NotFoundError when the category is absent
	FindByID(ctx context.Context, id ID) (*Category, error)

	// DeleteByID removes a category; absent identifiers are ignored
	DeleteByID(ctx context.Context, id ID) error

	// FindAll returns one page of categories matching the query
	FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Pagination[*Category], error)

	// ExistsByIDs returns the subset of ids that are stored, in one round trip
	ExistsByIDs(ctx context.Context, ids []ID) ([]ID, error)
}
