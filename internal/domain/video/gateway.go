package video

import (
	"context"

	"github.com/narwhalmedia/catalog/internal/domain/pagination"
)

// Gateway persists videos with their reference sets and media.
type Gateway interface {
	Create(ctx context.Context, video *Video) (*Video, error)
	Update(ctx context.Context, video *Video) (*Video, error)
	// FindByID returns a *domain.NotFoundError when the video is absent
	FindByID(ctx context.Context, id ID) (*Video, error)
	DeleteByID(ctx context.Context, id ID) error
	FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Pagination[*Video], error)
}
