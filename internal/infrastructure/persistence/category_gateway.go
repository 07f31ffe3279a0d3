package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/internal/domain"
	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/pagination"
)

var categorySearch = searchPlan{
	columns: []string{"name", "description"},
	sortable: map[string]string{
		"name":        "name",
		"description": "description",
		"createdAt":   "created_at",
		"created_at":  "created_at",
		"updatedAt":   "updated_at",
		"updated_at":  "updated_at",
	},
	defaultSort: "name",
}

// CategoryGateway implements category.Gateway
type CategoryGateway struct {
	db *gorm.DB
}

var _ category.Gateway = (*CategoryGateway)(nil)

// NewCategoryGateway creates a new GORM category gateway
func NewCategoryGateway(db *gorm.DB) *CategoryGateway {
	return &CategoryGateway{db: db}
}

func (g *CategoryGateway) Create(ctx context.Context, c *category.Category) (*category.Category, error) {
	model := &CategoryModel{}
	model.FromDomain(c)

	if err := g.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (g *CategoryGateway) Update(ctx context.Context, c *category.Category) (*category.Category, error) {
	model := &CategoryModel{}
	model.FromDomain(c)

	if err := g.db.WithContext(ctx).Save(model).Error; err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (g *CategoryGateway) FindByID(ctx context.Context, id category.ID) (*category.Category, error) {
	var model CategoryModel
	err := g.db.WithContext(ctx).First(&model, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(category.AggregateName, id.String())
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// DeleteByID removes the category and every genre or video link to it.
func (g *CategoryGateway) DeleteByID(ctx context.Context, id category.ID) error {
	return WithTransaction(ctx, g.db, func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id.String()).Delete(&GenreCategoryModel{}).Error; err != nil {
			return fmt.Errorf("unlinking genres: %w", err)
		}
		if err := tx.Where("category_id = ?", id.String()).Delete(&VideoCategoryModel{}).Error; err != nil {
			return fmt.Errorf("unlinking videos: %w", err)
		}
		return tx.Delete(&CategoryModel{}, "id = ?", id.String()).Error
	})
}

func (g *CategoryGateway) FindAll(ctx context.Context, q pagination.SearchQuery) (pagination.Pagination[*category.Category], error) {
	rows, total, err := findPage[CategoryModel](ctx, g.db, q, categorySearch)
	if err != nil {
		return pagination.Pagination[*category.Category]{}, err
	}
	return toPage(q, rows, total, (*CategoryModel).ToDomain), nil
}

func (g *CategoryGateway) ExistsByIDs(ctx context.Context, ids []category.ID) ([]category.ID, error) {
	return existingIDs[CategoryModel](ctx, g.db, ids)
}
