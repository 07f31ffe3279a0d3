package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/narwhalmedia/catalog/internal/domain"
	"github.com/narwhalmedia/catalog/internal/domain/pagination"
	"github.com/narwhalmedia/catalog/internal/domain/video"
)

var videoSearch = searchPlan{
	columns: []string{"title", "description"},
	sortable: map[string]string{
		"title":        "title",
		"launchedAt":   "year_launched",
		"yearLaunched": "year_launched",
		"duration":     "duration",
		"rating":       "rating",
		"createdAt":    "created_at",
		"created_at":   "created_at",
		"updatedAt":    "updated_at",
		"updated_at":   "updated_at",
	},
	defaultSort: "title",
}

var videoAssociations = []string{"Categories", "Genres", "CastMembers"}

// VideoGateway implements video.Gateway
type VideoGateway struct {
	db *gorm.DB
}

var _ video.Gateway = (*VideoGateway)(nil)

// NewVideoGateway creates a new GORM video gateway
func NewVideoGateway(db *gorm.DB) *VideoGateway {
	return &VideoGateway{db: db}
}

func (g *VideoGateway) Create(ctx context.Context, v *video.Video) (*video.Video, error) {
	return g.write(ctx, v, func(tx *gorm.DB, model *VideoModel) error {
		return tx.Omit(clause.Associations).Create(model).Error
	})
}

func (g *VideoGateway) Update(ctx context.Context, v *video.Video) (*video.Video, error) {
	return g.write(ctx, v, func(tx *gorm.DB, model *VideoModel) error {
		return tx.Omit(clause.Associations).Save(model).Error
	})
}

func (g *VideoGateway) write(ctx context.Context, v *video.Video, store func(*gorm.DB, *VideoModel) error) (*video.Video, error) {
	model := &VideoModel{}
	model.FromDomain(v)

	err := WithTransaction(ctx, g.db, func(tx *gorm.DB) error {
		if err := store(tx, model); err != nil {
			return err
		}
		if err := replaceLinks(tx, "video_id", model.ID, model.Categories); err != nil {
			return err
		}
		if err := replaceLinks(tx, "video_id", model.ID, model.Genres); err != nil {
			return err
		}
		return replaceLinks(tx, "video_id", model.ID, model.CastMembers)
	})
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (g *VideoGateway) FindByID(ctx context.Context, id video.ID) (*video.Video, error) {
	query := preloadLinks(g.db.WithContext(ctx), videoAssociations...)

	var model VideoModel
	if err := query.First(&model, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(video.AggregateName, id.String())
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// DeleteByID removes the video with its reference links.
func (g *VideoGateway) DeleteByID(ctx context.Context, id video.ID) error {
	return WithTransaction(ctx, g.db, func(tx *gorm.DB) error {
		for _, link := range []any{&VideoCategoryModel{}, &VideoGenreModel{}, &VideoCastMemberModel{}} {
			if err := tx.Where("video_id = ?", id.String()).Delete(link).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&VideoModel{}, "id = ?", id.String()).Error
	})
}

func (g *VideoGateway) FindAll(ctx context.Context, q pagination.SearchQuery) (pagination.Pagination[*video.Video], error) {
	rows, total, err := findPage[VideoModel](ctx, g.db, q, videoSearch, videoAssociations...)
	if err != nil {
		return pagination.Pagination[*video.Video]{}, err
	}
	return toPage(q, rows, total, (*VideoModel).ToDomain), nil
}
