package category

import (
	"time"

	"github.com/narwhalmedia/catalog/internal/domain"
	"github.com/narwhalmedia/catalog/internal/domain/validation"
)

// AggregateName is used in failure messages.
const AggregateName = "Category"

// ID identifies a category.
type ID string

// NewID generates a fresh category identifier.
func NewID() ID {
	return ID(domain.NewIdentifier())
}

// IDFrom normalizes an externally supplied identifier.
func IDFrom(raw string) ID {
	return ID(domain.NormalizeIdentifier(raw))
}

// ParseID normalizes raw and rejects blank input.
func ParseID(raw string) (ID, error) {
	id, err := domain.ParseIdentifier(raw)
	return ID(id), err
}

func (id ID) String() string {
	return string(id)
}

// Category groups genres and videos under a named subject.
type Category struct {
	domain.AggregateRoot[ID]
	name        *string
	description string
	active      bool
	deletedAt   *time.Time
}

// New creates a validated category.
func New(name *string, description string, active bool) (*Category, error) {
	c := &Category{
		AggregateRoot: domain.NewAggregateRoot(NewID()),
		name:          name,
		description:   description,
		active:        active,
	}
	if !active {
		deletedAt := c.CreatedAt()
		c.deletedAt = &deletedAt
	}

	if err := validation.Check("Failed to create an Aggregate Category", c.Validate); err != nil {
		return nil, err
	}
	return c, nil
}

// Rehydrate rebuilds a category from stored state without validating it.
func Rehydrate(id ID, name, description string, active bool, createdAt, updatedAt time.Time, deletedAt *time.Time) *Category {
	return &Category{
		AggregateRoot: domain.RestoreAggregateRoot(id, createdAt, updatedAt),
		name:          &name,
		description:   description,
		active:        active,
		deletedAt:     copyTime(deletedAt),
	}
}

// Validate runs the category rules into handler.
func (c *Category) Validate(handler validation.Handler) {
	NewValidator(c, handler).Validate()
}

// Update replaces the mutable fields. On failure the category is left unchanged.
func (c *Category) Update(name *string, description string, active bool) error {
	return c.mutate(func(candidate *Category) {
		candidate.name = name
		candidate.description = description
		if active {
			candidate.activate()
		} else {
			candidate.deactivate()
		}
	})
}

// Activate marks the category active and clears its deletion time.
func (c *Category) Activate() error {
	return c.mutate(func(candidate *Category) {
		candidate.activate()
	})
}

// Deactivate marks the category inactive, keeping the first deletion time.
func (c *Category) Deactivate() error {
	return c.mutate(func(candidate *Category) {
		candidate.deactivate()
	})
}

func (c *Category) activate() {
	c.active = true
	c.deletedAt = nil
}

func (c *Category) deactivate() {
	if c.deletedAt == nil {
		now := domain.Now()
		c.deletedAt = &now
	}
	c.active = false
}

func (c *Category) mutate(apply func(candidate *Category)) error {
	candidate := c.Clone()
	apply(candidate)
	candidate.Touch()

	if err := validation.Check("Failed to update an Aggregate Category", candidate.Validate); err != nil {
		return err
	}
	*c = *candidate
	return nil
}

// Clone returns a deep copy.
func (c *Category) Clone() *Category {
	clone := *c
	clone.deletedAt = copyTime(c.deletedAt)
	return &clone
}

// Name returns the category name
func (c *Category) Name() string {
	if c.name == nil {
		return ""
	}
	return *c.name
}

// Description returns the category description
func (c *Category) Description() string {
	return c.description
}

// IsActive reports whether the category is active
func (c *Category) IsActive() bool {
	return c.active
}

// DeletedAt returns when the category was deactivated, if it is
func (c *Category) DeletedAt() *time.Time {
	return copyTime(c.deletedAt)
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
