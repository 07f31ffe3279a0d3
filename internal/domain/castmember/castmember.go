package castmember

import (
	"strings"
	"time"

	"github.com/narwhalmedia/catalog/internal/domain"
	"github.com/narwhalmedia/catalog/internal/domain/validation"
)

// AggregateName is used in failure messages.
const AggregateName = "CastMember"

// ID identifies a cast member.
type ID string

// NewID generates a fresh cast member identifier.
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

// Type is the role a cast member plays. The zero value means unset.
type Type string

const (
	Actor    Type = "ACTOR"
	Director Type = "DIRECTOR"
)

// ParseType maps free text to a Type. Unknown values yield the zero Type.
func ParseType(raw string) Type {
	switch t := Type(strings.ToUpper(strings.TrimSpace(raw))); t {
	case Actor, Director:
		return t
	default:
		return ""
	}
}

// CastMember is a person credited on videos.
type CastMember struct {
	domain.AggregateRoot[ID]
	name       *string
	memberType Type
}

// New creates a validated cast member.
func New(name *string, memberType Type) (*CastMember, error) {
	m := &CastMember{
		AggregateRoot: domain.NewAggregateRoot(NewID()),
		name:          name,
		memberType:    memberType,
	}
	if err := validation.Check("Failed to create an Aggregate CastMember", m.Validate); err != nil {
		return nil, err
	}
	return m, nil
}

// Rehydrate rebuilds a cast member from stored state without validating it.
func Rehydrate(id ID, name string, memberType Type, createdAt, updatedAt time.Time) *CastMember {
	return &CastMember{
		AggregateRoot: domain.RestoreAggregateRoot(id, createdAt, updatedAt),
		name:          &name,
		memberType:    memberType,
	}
}

// Validate runs the cast member rules into handler.
func (m *CastMember) Validate(handler validation.Handler) {
	NewValidator(m, handler).Validate()
}

// Update replaces name and type. On failure the cast member is left unchanged.
func (m *CastMember) Update(name *string, memberType Type) error {
	candidate := m.Clone()
	candidate.name = name
	candidate.memberType = memberType
	candidate.Touch()

	if err := validation.Check("Failed to update an Aggregate CastMember", candidate.Validate); err != nil {
		return err
	}
	*m = *candidate
	return nil
}

// Clone returns a copy.
func (m *CastMember) Clone() *CastMember {
	clone := *m
	return &clone
}

// Name returns the cast member name
func (m *CastMember) Name() string {
	if m.name == nil {
		return ""
	}
	return *m.name
}

// Type returns the cast member role
func (m *CastMember) Type() Type {
	return m.memberType
}
