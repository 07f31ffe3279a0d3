package genre

import "github.com/narwhalmedia/catalog/internal/domain/validation"

const (
	nameMinLength = 1
	nameMaxLength = 255
)

// Validator checks a genre's fields.
type Validator struct {
	genre   *Genre
	handler validation.Handler
}

// NewValidator binds a validator to one genre and one handler.
func NewValidator(genre *Genre, handler validation.Handler) *Validator {
	return &Validator{genre: genre, handler: handler}
}

// Validate appends every violated rule to the handler.
func (v *Validator) Validate() {
	validation.RequiredText(v.handler, "name", v.genre.name, nameMinLength, nameMaxLength)
}
