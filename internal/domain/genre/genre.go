package genre

import (
	"time"

	"github.com/narwhalmedia/catalog/internal/domain"
	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/validation"
)

// AggregateName is used in failure messages.
const AggregateName = "Genre"

// ID identifies a genre.
type ID string

// NewID generates a fresh genre identifier.
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

// Genre is a named classification that references a set of categories.
type Genre struct {
	domain.AggregateRoot[ID]
	name       *string
	active     bool
	categories []category.ID
	deletedAt  *time.Time
}

// New creates a validated genre without categories.
func New(name *string, active bool) (*Genre, error) {
	g := &Genre{
		AggregateRoot: domain.NewAggregateRoot(NewID()),
		name:          name,
		active:        active,
		categories:    []category.ID{},
	}
	if !active {
		deletedAt := g.CreatedAt()
		g.deletedAt = &deletedAt
	}

	if err := validation.Check("Failed to create an Aggregate Genre", g.Validate); err != nil {
		return nil, err
	}
	return g, nil
}

// Rehydrate rebuilds a genre from stored state without validating it.
func Rehydrate(id ID, name string, active bool, categories []category.ID, createdAt, updatedAt time.Time, deletedAt *time.Time) *Genre {
	g := &Genre{
		AggregateRoot: domain.RestoreAggregateRoot(id, createdAt, updatedAt),
		name:          &name,
		active:        active,
		categories:    distinct(nil, categories),
	}
	if deletedAt != nil {
		t := *deletedAt
		g.deletedAt = &t
	}
	return g
}

// Validate runs the genre rules into handler.
func (g *Genre) Validate(handler validation.Handler) {
	NewValidator(g, handler).Validate()
}

// Update replaces name, state and categories. On failure the genre is left unchanged.
func (g *Genre) Update(name *string, active bool, categories []category.ID) error {
	return g.mutate(func(candidate *Genre) {
		candidate.name = name
		if active {
			candidate.activate()
		} else {
			candidate.deactivate()
		}
		candidate.categories = distinct(nil, categories)
	})
}

// Activate marks the genre active and clears its deletion time.
func (g *Genre) Activate() error {
	return g.mutate(func(candidate *Genre) {
		candidate.activate()
	})
}

// Deactivate marks the genre inactive, keeping the first deletion time.
func (g *Genre) Deactivate() error {
	return g.mutate(func(candidate *Genre) {
		candidate.deactivate()
	})
}

// AddCategory references one more category. A blank id is ignored and a
// known one is not added twice.
func (g *Genre) AddCategory(id category.ID) error {
	if id == "" {
		return nil
	}
	return g.AddCategories([]category.ID{id})
}

// AddCategories references several categories, keeping their order.
func (g *Genre) AddCategories(ids []category.ID) error {
	if len(ids) == 0 {
		return nil
	}
	return g.mutate(func(candidate *Genre) {
		candidate.categories = distinct(candidate.categories, ids)
	})
}

// RemoveCategory drops a category reference.
func (g *Genre) RemoveCategory(id category.ID) error {
	if id == "" {
		return nil
	}
	return g.mutate(func(candidate *Genre) {
		kept := make([]category.ID, 0, len(candidate.categories))
		for _, existing := range candidate.categories {
			if existing != id {
				kept = append(kept, existing)
			}
		}
		candidate.categories = kept
	})
}

func (g *Genre) activate() {
	g.active = true
	g.deletedAt = nil
}

func (g *Genre) deactivate() {
	if g.deletedAt == nil {
		now := domain.Now()
		g.deletedAt = &now
	}
	g.active = false
}

func (g *Genre) mutate(apply func(candidate *Genre)) error {
	candidate := g.Clone()
	apply(candidate)
	candidate.Touch()

	if err := validation.Check("Failed to update an Aggregate Genre", candidate.Validate); err != nil {
		return err
	}
	*g = *candidate
	return nil
}

// Clone returns a deep copy.
func (g *Genre) Clone() *Genre {
	clone := *g
	clone.categories = append([]category.ID{}, g.categories...)
	if g.deletedAt != nil {
		t := *g.deletedAt
		clone.deletedAt = &t
	}
	return &clone
}

// Name returns the genre name
func (g *Genre) Name() string {
	if g.name == nil {
		return ""
	}
	return *g.name
}

// IsActive reports whether the genre is active
func (g *Genre) IsActive() bool {
	return g.active
}

// Categories returns a copy of the referenced category ids
func (g *Genre) Categories() []category.ID {
	return append([]category.ID{}, g.categories...)
}

// DeletedAt returns when the genre was deactivated, if it is
func (g *Genre) DeletedAt() *time.Time {
	if g.deletedAt == nil {
		return nil
	}
	t := *g.deletedAt
	return &t
}

// distinct appends the ids not yet present in base, dropping blanks.
func distinct(base, ids []category.ID) []category.ID {
	out := make([]category.ID, 0, len(base)+len(ids))
	seen := make(map[category.ID]struct{}, len(base)+len(ids))
	for _, list := range [][]category.ID{base, ids} {
		for _, id := range list {
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
