package castmember

import (
	"context"

	"github.com/narwhalmedia/catalog/internal/domain/pagination"
)

// Gateway persists cast members.
type Gateway interface {
	Create(ctx context.Context, member *CastMember) (*CastMember, error)
	Update(ctx context.Context, member *CastMember) (*CastMember, error)
	// FindByID returns a *domain.NotFoundError when the cast member is absent
	FindByID(ctx context.Context, id ID) (*CastMember, error)
	DeleteByID(ctx context.Context, id ID) error
	FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Pagination[*CastMember], error)
	// ExistsByIDs returns the subset of ids that are stored, in one round trip
	ExistsByIDs(ctx context.Context, ids []ID) ([]ID, error)
}
