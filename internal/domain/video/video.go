package video

import (
	"time"

	"github.com/narwhalmedia/catalog/internal/domain"
	"github.com/narwhalmedia/catalog/internal/domain/castmember"
	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/genre"
	"github.com/narwhalmedia/catalog/internal/domain/validation"
)

// AggregateName is used in failure messages.
const AggregateName = "Video"

// ID identifies a video.
type ID string

// NewID generates a fresh video identifier.
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

// Props are the editable attributes of a video.
type Props struct {
	Title       *string
	Description string
	// LaunchedAt is the release year, zero when unknown.
	LaunchedAt  int
	Duration    float64
	Opened      bool
	Published   bool
	Rating      Rating
	Categories  []category.ID
	Genres      []genre.ID
	CastMembers []castmember.ID
}

// Media groups the optional media attached to a video.
type Media struct {
	Banner        *ImageMedia
	Thumbnail     *ImageMedia
	ThumbnailHalf *ImageMedia
	Trailer       *AudioVideoMedia
	Video         *AudioVideoMedia
}

// Video is a catalog title with its references and media.
type Video struct {
	domain.AggregateRoot[ID]
	props Props
	media Media
}

// New creates a validated video without media.
func New(props Props) (*Video, error) {
	v := &Video{
		AggregateRoot: domain.NewAggregateRoot(NewID()),
		props:         normalizeProps(props),
	}
	if err := validation.Check("Failed to create an Aggregate Video", v.Validate); err != nil {
		return nil, err
	}
	return v, nil
}

// Rehydrate rebuilds a video from stored state without validating it.
func Rehydrate(id ID, props Props, media Media, createdAt, updatedAt time.Time) *Video {
	return &Video{
		AggregateRoot: domain.RestoreAggregateRoot(id, createdAt, updatedAt),
		props:         normalizeProps(props),
		media:         media.clone(),
	}
}

// Validate runs the video rules into handler.
func (v *Video) Validate(handler validation.Handler) {
	NewValidator(v, handler).Validate()
}

// Update replaces every editable attribute. Media are kept. On failure the video is left unchanged.
func (v *Video) Update(props Props) error {
	return v.mutate(func(candidate *Video) {
		candidate.props = normalizeProps(props)
	})
}

// SetBanner attaches or clears the banner image.
func (v *Video) SetBanner(media *ImageMedia) error {
	return v.mutate(func(candidate *Video) { candidate.media.Banner = copyImage(media) })
}

// SetThumbnail attaches or clears the thumbnail image.
func (v *Video) SetThumbnail(media *ImageMedia) error {
	return v.mutate(func(candidate *Video) { candidate.media.Thumbnail = copyImage(media) })
}

// SetThumbnailHalf attaches or clears the half-size thumbnail image.
func (v *Video) SetThumbnailHalf(media *ImageMedia) error {
	return v.mutate(func(candidate *Video) { candidate.media.ThumbnailHalf = copyImage(media) })
}

// SetTrailer attaches or clears the trailer.
func (v *Video) SetTrailer(media *AudioVideoMedia) error {
	return v.mutate(func(candidate *Video) { candidate.media.Trailer = copyAudioVideo(media) })
}

// SetVideo attaches or clears the main audio/video file.
func (v *Video) SetVideo(media *AudioVideoMedia) error {
	return v.mutate(func(candidate *Video) { candidate.media.Video = copyAudioVideo(media) })
}

func (v *Video) mutate(apply func(candidate *Video)) error {
	candidate := v.Clone()
	apply(candidate)
	candidate.Touch()

	if err := validation.Check("Failed to update an Aggregate Video", candidate.Validate); err != nil {
		return err
	}
	*v = *candidate
	return nil
}

// Clone returns a deep copy.
func (v *Video) Clone() *Video {
	clone := *v
	clone.props = normalizeProps(v.props)
	clone.media = v.media.clone()
	return &clone
}

// Title returns the video title
func (v *Video) Title() string {
	if v.props.Title == nil {
		return ""
	}
	return *v.props.Title
}

// Description returns the video description
func (v *Video) Description() string { return v.props.Description }

// LaunchedAt returns the release year
func (v *Video) LaunchedAt() int { return v.props.LaunchedAt }

// Duration returns the running time in minutes
func (v *Video) Duration() float64 { return v.props.Duration }

// IsOpened reports whether the video is open to the public
func (v *Video) IsOpened() bool { return v.props.Opened }

// IsPublished reports whether the video is published
func (v *Video) IsPublished() bool { return v.props.Published }

// Rating returns the advisory rating
func (v *Video) Rating() Rating { return v.props.Rating }

// Categories returns a copy of the referenced category ids
func (v *Video) Categories() []category.ID { return append([]category.ID{}, v.props.Categories...) }

// Genres returns a copy of the referenced genre ids
func (v *Video) Genres() []genre.ID { return append([]genre.ID{}, v.props.Genres...) }

// CastMembers returns a copy of the referenced cast member ids
func (v *Video) CastMembers() []castmember.ID {
	return append([]castmember.ID{}, v.props.CastMembers...)
}

// Media returns a copy of the attached media
func (v *Video) Media() Media { return v.media.clone() }

// Props returns a copy of the editable attributes
func (v *Video) Props() Props { return normalizeProps(v.props) }

func normalizeProps(p Props) Props {
	p.Categories = uniqueIDs(p.Categories)
	p.Genres = uniqueIDs(p.Genres)
	p.CastMembers = uniqueIDs(p.CastMembers)
	return p
}

func (m Media) clone() Media {
	return Media{
		Banner:        copyImage(m.Banner),
		Thumbnail:     copyImage(m.Thumbnail),
		ThumbnailHalf: copyImage(m.ThumbnailHalf),
		Trailer:       copyAudioVideo(m.Trailer),
		Video:         copyAudioVideo(m.Video),
	}
}

func copyImage(m *ImageMedia) *ImageMedia {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

func copyAudioVideo(m *AudioVideoMedia) *AudioVideoMedia {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

// uniqueIDs drops blanks and repeats, keeping first occurrences in order.
func uniqueIDs[T ~string](ids []T) []T {
	out := make([]T, 0, len(ids))
	seen := make(map[T]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
