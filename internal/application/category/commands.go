package category

import (
	"time"

	"github.com/narwhalmedia/catalog/internal/domain/category"
)

// CreateCategoryCommand represents a request to create a category
type CreateCategoryCommand struct {
	Name        *string
	Description string
	IsActive    bool
}

// UpdateCategoryCommand represents a request to update a category
type UpdateCategoryCommand struct {
	ID          string
	Name        *string
	Description string
	IsActive    bool
}

// CreateCategoryOutput carries the id of a created category
type CreateCategoryOutput struct {
	ID string
}

// UpdateCategoryOutput carries the id of an updated category
type UpdateCategoryOutput struct {
	ID string
}

// CategoryOutput is the full view of one category
type CategoryOutput struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// CategoryListOutput is the listing view of a category
type CategoryListOutput struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	DeletedAt   *time.Time
}

func toOutput(c *category.Category) *CategoryOutput {
	return &CategoryOutput{
		ID:          c.ID().String(),
		Name:        c.Name(),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
		DeletedAt:   c.DeletedAt(),
	}
}

func toListOutput(c *category.Category) CategoryListOutput {
	return CategoryListOutput{
		ID:          c.ID().String(),
		Name:        c.Name(),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
		DeletedAt:   c.DeletedAt(),
	}
}
