package video

import "github.com/narwhalmedia/catalog/internal/domain/validation"

const (
	titleMaxLength       = 255
	descriptionMaxLength = 4000
)

// Validator checks a video's fields in the order title, description, launchedAt, rating.
type Validator struct {
	video   *Video
	handler validation.Handler
}

// NewValidator binds a validator to one video and one handler.
func NewValidator(video *Video, handler validation.Handler) *Validator {
	return &Validator{video: video, handler: handler}
}

// Validate appends every violated rule to the handler.
func (v *Validator) Validate() {
	validation.RequiredText(v.handler, "title", v.video.props.Title, 1, titleMaxLength)
	validation.Text(v.handler, "description", v.video.props.Description, 1, descriptionMaxLength)
	validation.NotNull(v.handler, "launchedAt", v.video.props.LaunchedAt != 0)
	validation.NotNull(v.handler, "rating", v.video.props.Rating != "")
}
