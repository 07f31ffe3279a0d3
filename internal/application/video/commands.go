package video

import (
	"time"

	"github.com/narwhalmedia/catalog/internal/domain/video"
)

// CreateVideoCommand represents a request to create a video
type CreateVideoCommand struct {
	Title       *string
	Description string
	LaunchedAt  int
	Duration    float64
	Opened      bool
	Published   bool
	Rating      string
	Categories  []string
	Genres      []string
	CastMembers []string
}

// UpdateVideoCommand represents a request to update a video
type UpdateVideoCommand struct {
	ID          string
	Title       *string
	Description string
	LaunchedAt  int
	Duration    float64
	Opened      bool
	Published   bool
	Rating      string
	Categories  []string
	Genres      []string
	CastMembers []string
}

// CreateVideoOutput carries the id of a created video
type CreateVideoOutput struct {
	ID string
}

// UpdateVideoOutput carries the id of an updated video
type UpdateVideoOutput struct {
	ID string
}

// VideoOutput is the full view of one video
type VideoOutput struct {
	ID            string
	Title         string
	Description   string
	LaunchedAt    int
	Duration      float64
	Opened        bool
	Published     bool
	Rating        string
	Categories    []string
	Genres        []string
	CastMembers   []string
	Banner        *video.ImageMedia
	Thumbnail     *video.ImageMedia
	ThumbnailHalf *video.ImageMedia
	Trailer       *video.AudioVideoMedia
	Video         *video.AudioVideoMedia
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// VideoListOutput is the listing view of a video
type VideoListOutput struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func idStrings[T ~string](ids []T) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

func toOutput(v *video.Video) *VideoOutput {
	media := v.Media()
	return &VideoOutput{
		ID:            v.ID().String(),
		Title:         v.Title(),
		Description:   v.Description(),
		LaunchedAt:    v.LaunchedAt(),
		Duration:      v.Duration(),
		Opened:        v.IsOpened(),
		Published:     v.IsPublished(),
		Rating:        string(v.Rating()),
		Categories:    idStrings(v.Categories()),
		Genres:        idStrings(v.Genres()),
		CastMembers:   idStrings(v.CastMembers()),
		Banner:        media.Banner,
		Thumbnail:     media.Thumbnail,
		ThumbnailHalf: media.ThumbnailHalf,
		Trailer:       media.Trailer,
		Video:         media.Video,
		CreatedAt:     v.CreatedAt(),
		UpdatedAt:     v.UpdatedAt(),
	}
}

func toListOutput(v *video.Video) VideoListOutput {
	return VideoListOutput{
		ID:          v.ID().String(),
		Title:       v.Title(),
		Description: v.Description(),
		CreatedAt:   v.CreatedAt(),
		UpdatedAt:   v.UpdatedAt(),
	}
}
