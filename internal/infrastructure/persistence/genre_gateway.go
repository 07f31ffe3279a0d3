package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/narwhalmedia/catalog/internal/domain"
	"github.com/narwhalmedia/catalog/internal/domain/genre"
	"github.com/narwhalmedia/catalog/internal/domain/pagination"
)

var genreSearch = searchPlan{
	columns: []string{"name"},
	sortable: map[string]string{
		"name":       "name",
		"createdAt":  "created_at",
		"created_at": "created_at",
		"updatedAt":  "updated_at",
		"updated_at": "updated_at",
	},
	defaultSort: "name",
}

// GenreGateway implements genre.Gateway. Category links live in genres_categories.
type GenreGateway struct {
	db *gorm.DB
}

var _ genre.Gateway = (*GenreGateway)(nil)

// NewGenreGateway creates a new GORM genre gateway
func NewGenreGateway(db *gorm.DB) *GenreGateway {
	return &GenreGateway{db: db}
}

func (g *GenreGateway) Create(ctx context.Context, gen *genre.Genre) (*genre.Genre, error) {
	model := &GenreModel{}
	model.FromDomain(gen)

	err := WithTransaction(ctx, g.db, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
			return err
		}
		return replaceLinks(tx, "genre_id", model.ID, model.Categories)
	})
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (g *GenreGateway) Update(ctx context.Context, gen *genre.Genre) (*genre.Genre, error) {
	model := &GenreModel{}
	model.FromDomain(gen)

	err := WithTransaction(ctx, g.db, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(model).Error; err != nil {
			return err
		}
		return replaceLinks(tx, "genre_id", model.ID, model.Categories)
	})
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (g *GenreGateway) FindByID(ctx context.Context, id genre.ID) (*genre.Genre, error) {
	var model GenreModel
	err := preloadLinks(g.db.WithContext(ctx), "Categories").First(&model, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(genre.AggregateName, id.String())
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// DeleteByID removes the genre, its category links and every video link to it.
func (g *GenreGateway) DeleteByID(ctx context.Context, id genre.ID) error {
	return WithTransaction(ctx, g.db, func(tx *gorm.DB) error {
		if err := tx.Where("genre_id = ?", id.String()).Delete(&GenreCategoryModel{}).Error; err != nil {
			return fmt.Errorf("unlinking categories: %w", err)
		}
		if err := tx.Where("genre_id = ?", id.String()).Delete(&VideoGenreModel{}).Error; err != nil {
			return fmt.Errorf("unlinking videos: %w", err)
		}
		return tx.Delete(&GenreModel{}, "id = ?", id.String()).Error
	})
}

func (g *GenreGateway) FindAll(ctx context.Context, q pagination.SearchQuery) (pagination.Pagination[*genre.Genre], error) {
	rows, total, err := findPage[GenreModel](ctx, g.db, q, genreSearch, "Categories")
	if err != nil {
		return pagination.Pagination[*genre.Genre]{}, err
	}
	return toPage(q, rows, total, (*GenreModel).ToDomain), nil
}

func (g *GenreGateway) ExistsByIDs(ctx context.Context, ids []genre.ID) ([]genre.ID, error) {
	return existingIDs[GenreModel](ctx, g.db, ids)
}
