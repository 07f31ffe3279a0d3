package castmember

import "github.com/narwhalmedia/catalog/internal/domain/validation"

const (
	nameMinLength = 1
	nameMaxLength = 255
)

// Validator checks a cast member's fields: name first, then type.
type Validator struct {
	member  *CastMember
	handler validation.Handler
}

// NewValidator binds a validator to one cast member and one handler.
func NewValidator(member *CastMember, handler validation.Handler) *Validator {
	return &Validator{member: member, handler: handler}
}

// Validate appends every violated rule to the handler.
func (v *Validator) Validate() {
	v.checkNameConstraints()
	v.checkTypeConstraints()
}

func (v *Validator) checkNameConstraints() {
	validation.RequiredText(v.handler, "name", v.member.name, nameMinLength, nameMaxLength)
}

func (v *Validator) checkTypeConstraints() {
	validation.NotNull(v.handler, "type", v.member.memberType != "")
}
