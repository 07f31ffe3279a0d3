package category

import "github.com/narwhalmedia/catalog/internal/domain/validation"

const (
	nameMinLength = 3
	nameMaxLength = 255
)

// Validator checks a category's fields.
type Validator struct {
	category *Category
	handler  validation.Handler
}

// NewValidator binds a validator to one category and one handler.
func NewValidator(category *Category, handler validation.Handler) *Validator {
	return &Validator{category: category, handler: handler}
}

// Validate appends every violated rule to the handler.
func (v *Validator) Validate() {
	v.checkNameConstraints()
}

func (v *Validator) checkNameConstraints() {
	validation.RequiredText(v.handler, "name", v.category.name, nameMinLength, nameMaxLength)
}
