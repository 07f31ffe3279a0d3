package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/internal/domain"
	"github.com/narwhalmedia/catalog/internal/domain/castmember"
	"github.com/narwhalmedia/catalog/internal/domain/pagination"
)

var castMemberSearch = searchPlan{
	columns: []string{"name"},
	sortable: map[string]string{
		"name":       "name",
		"type":       "type",
		"createdAt":  "created_at",
		"created_at": "created_at",
		"updatedAt":  "updated_at",
		"updated_at": "updated_at",
	},
	defaultSort: "name",
}

// CastMemberGateway implements castmember.Gateway
type CastMemberGateway struct {
	db *gorm.DB
}

var _ castmember.Gateway = (*CastMemberGateway)(nil)

// NewCastMemberGateway creates a new GORM cast member gateway
func NewCastMemberGateway(db *gorm.DB) *CastMemberGateway {
	return &CastMemberGateway{db: db}
}

func (g *CastMemberGateway) Create(ctx context.Context, m *castmember.CastMember) (*castmember.CastMember, error) {
	model := &CastMemberModel{}
	model.FromDomain(m)

	if err := g.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (g *CastMemberGateway) Update(ctx context.Context, m *castmember.CastMember) (*castmember.CastMember, error) {
	model := &CastMemberModel{}
	model.FromDomain(m)

	if err := g.db.WithContext(ctx).Save(model).Error; err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (g *CastMemberGateway) FindByID(ctx context.Context, id castmember.ID) (*castmember.CastMember, error) {
	var model CastMemberModel
	err := g.db.WithContext(ctx).First(&model, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(castmember.AggregateName, id.String())
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// DeleteByID removes the cast member and every video link to it.
func (g *CastMemberGateway) DeleteByID(ctx context.Context, id castmember.ID) error {
	return WithTransaction(ctx, g.db, func(tx *gorm.DB) error {
		if err := tx.Where("cast_member_id = ?", id.String()).Delete(&VideoCastMemberModel{}).Error; err != nil {
			return fmt.Errorf("unlinking videos: %w", err)
		}
		return tx.Delete(&CastMemberModel{}, "id = ?", id.String()).Error
	})
}

func (g *CastMemberGateway) FindAll(ctx context.Context, q pagination.SearchQuery) (pagination.Pagination[*castmember.CastMember], error) {
	rows, total, err := findPage[CastMemberModel](ctx, g.db, q, castMemberSearch)
	if err != nil {
		return pagination.Pagination[*castmember.CastMember]{}, err
	}
	return toPage(q, rows, total, (*CastMemberModel).ToDomain), nil
}

func (g *CastMemberGateway) ExistsByIDs(ctx context.Context, ids []castmember.ID) ([]castmember.ID, error) {
	return existingIDs[CastMemberModel](ctx, g.db, ids)
}
