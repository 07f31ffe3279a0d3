package castmember

import (
	"time"

	"github.com/narwhalmedia/catalog/internal/domain/castmember"
)

// CreateCastMemberCommand represents a request to create a cast member
type CreateCastMemberCommand struct {
	Name *string
	Type string
}

// UpdateCastMemberCommand represents a request to update a cast member
type UpdateCastMemberCommand struct {
	ID   string
	Name *string
	Type string
}

// CreateCastMemberOutput carries the id of a created cast member
type CreateCastMemberOutput struct {
	ID string
}

// UpdateCastMemberOutput carries the id of an updated cast member
type UpdateCastMemberOutput struct {
	ID string
}

// CastMemberOutput is the full view of one cast member
type CastMemberOutput struct {
	ID        string
	Name      string
	Type      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CastMemberListOutput is the listing view of a cast member
type CastMemberListOutput struct {
	ID        string
	Name      string
	Type      string
	CreatedAt time.Time
}

func toOutput(m *castmember.CastMember) *CastMemberOutput {
	return &CastMemberOutput{
		ID:        m.ID().String(),
		Name:      m.Name(),
		Type:      string(m.Type()),
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	}
}

func toListOutput(m *castmember.CastMember) CastMemberListOutput {
	return CastMemberListOutput{
		ID:        m.ID().String(),
		Name:      m.Name(),
		Type:      string(m.Type()),
		CreatedAt: m.CreatedAt(),
	}
}
