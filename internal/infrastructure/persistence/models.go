package persistence

import (
	"time"

	"github.com/narwhalmedia/catalog/internal/domain/castmember"
	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/genre"
	"github.com/narwhalmedia/catalog/internal/domain/video"
)

// Timestamps are set by the aggregates, never by gorm.
type Timestamps struct {
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

// CategoryModel represents a category in the database
type CategoryModel struct {
	ID          string `gorm:"primaryKey;size:32"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"size:4000"`
	Active      bool   `gorm:"not null"`
	Timestamps
	DeletedAt *time.Time
}

func (CategoryModel) TableName() string { return "categories" }

// GenreModel represents a genre in the database
type GenreModel struct {
	ID     string `gorm:"primaryKey;size:32"`
	Name   string `gorm:"size:255;not null"`
	Active bool   `gorm:"not null"`
	Timestamps
	DeletedAt  *time.Time
	Categories []GenreCategoryModel `gorm:"foreignKey:GenreID"`
}

func (GenreModel) TableName() string { return "genres" }

// GenreCategoryModel links a genre to a category. Position keeps the order the genre listed it in.
type GenreCategoryModel struct {
	GenreID    string `gorm:"primaryKey;size:32"`
	CategoryID string `gorm:"primaryKey;size:32;index"`
	Position   int    `gorm:"not null;default:0"`
}

func (GenreCategoryModel) TableName() string { return "genres_categories" }

// CastMemberModel represents a cast member in the database
type CastMemberModel struct {
	ID   string `gorm:"primaryKey;size:32"`
	Name string `gorm:"size:255;not null"`
	Type string `gorm:"size:32"`
	Timestamps
}

func (CastMemberModel) TableName() string { return "cast_members" }

// VideoModel represents a video in the database. Media are stored as JSON.
type VideoModel struct {
	ID            string                 `gorm:"primaryKey;size:32"`
	Title         string                 `gorm:"size:255;not null"`
	Description   string                 `gorm:"size:4000"`
	YearLaunched  int                    `gorm:"not null"`
	Duration      float64                `gorm:"not null"`
	Opened        bool                   `gorm:"not null"`
	Published     bool                   `gorm:"not null"`
	Rating        string                 `gorm:"size:16"`
	Banner        *video.ImageMedia      `gorm:"serializer:json"`
	Thumbnail     *video.ImageMedia      `gorm:"serializer:json"`
	ThumbnailHalf *video.ImageMedia      `gorm:"serializer:json"`
	Trailer       *video.AudioVideoMedia `gorm:"serializer:json"`
	Video         *video.AudioVideoMedia `gorm:"serializer:json"`
	Timestamps
	Categories  []VideoCategoryModel   `gorm:"foreignKey:VideoID"`
	Genres      []VideoGenreModel      `gorm:"foreignKey:VideoID"`
	CastMembers []VideoCastMemberModel `gorm:"foreignKey:VideoID"`
}

func (VideoModel) TableName() string { return "videos" }

// VideoCategoryModel links a video to a category
type VideoCategoryModel struct {
	VideoID    string `gorm:"primaryKey;size:32"`
	CategoryID string `gorm:"primaryKey;size:32;index"`
	Position   int    `gorm:"not null;default:0"`
}

func (VideoCategoryModel) TableName() string { return "videos_categories" }

// VideoGenreModel links a video to a genre
type VideoGenreModel struct {
	VideoID  string `gorm:"primaryKey;size:32"`
	GenreID  string `gorm:"primaryKey;size:32;index"`
	Position int    `gorm:"not null;default:0"`
}

func (VideoGenreModel) TableName() string { return "videos_genres" }

// VideoCastMemberModel links a video to a cast member
type VideoCastMemberModel struct {
	VideoID      string `gorm:"primaryKey;size:32"`
	CastMemberID string `gorm:"primaryKey;size:32;index"`
	Position     int    `gorm:"not null;default:0"`
}

func (VideoCastMemberModel) TableName() string { return "videos_cast_members" }

// FromDomain converts a domain Category to a CategoryModel
func (m *CategoryModel) FromDomain(c *category.Category) {
	m.ID = c.ID().String()
	m.Name = c.Name()
	m.Description = c.Description()
	m.Active = c.IsActive()
	m.CreatedAt = c.CreatedAt()
	m.UpdatedAt = c.UpdatedAt()
	m.DeletedAt = c.DeletedAt()
}

// ToDomain converts a CategoryModel to a domain Category
func (m *CategoryModel) ToDomain() *category.Category {
	return category.Rehydrate(
		category.IDFrom(m.ID), m.Name, m.Description, m.Active,
		m.CreatedAt.UTC(), m.UpdatedAt.UTC(), utc(m.DeletedAt),
	)
}

// FromDomain converts a domain Genre to a GenreModel
func (m *GenreModel) FromDomain(g *genre.Genre) {
	m.ID = g.ID().String()
	m.Name = g.Name()
	m.Active = g.IsActive()
	m.CreatedAt = g.CreatedAt()
	m.UpdatedAt = g.UpdatedAt()
	m.DeletedAt = g.DeletedAt()
	m.Categories = make([]GenreCategoryModel, 0, len(g.Categories()))
	for i, id := range g.Categories() {
		m.Categories = append(m.Categories, GenreCategoryModel{GenreID: m.ID, CategoryID: id.String(), Position: i})
	}
}

// ToDomain converts a GenreModel to a domain Genre
func (m *GenreModel) ToDomain() *genre.Genre {
	categories := make([]category.ID, len(m.Categories))
	for i, c := range m.Categories {
		categories[i] = category.IDFrom(c.CategoryID)
	}
	return genre.Rehydrate(
		genre.IDFrom(m.ID), m.Name, m.Active, categories,
		m.CreatedAt.UTC(), m.UpdatedAt.UTC(), utc(m.DeletedAt),
	)
}

// FromDomain converts a domain CastMember to a CastMemberModel
func (m *CastMemberModel) FromDomain(c *castmember.CastMember) {
	m.ID = c.ID().String()
	m.Name = c.Name()
	m.Type = string(c.Type())
	m.CreatedAt = c.CreatedAt()
	m.UpdatedAt = c.UpdatedAt()
}

// ToDomain converts a CastMemberModel to a domain CastMember
func (m *CastMemberModel) ToDomain() *castmember.CastMember {
	return castmember.Rehydrate(
		castmember.IDFrom(m.ID), m.Name, castmember.Type(m.Type),
		m.CreatedAt.UTC(), m.UpdatedAt.UTC(),
	)
}

// FromDomain converts a domain Video to a VideoModel
func (m *VideoModel) FromDomain(v *video.Video) {
	media := v.Media()
	m.ID = v.ID().String()
	m.Title = v.Title()
	m.Description = v.Description()
	m.YearLaunched = v.LaunchedAt()
	m.Duration = v.Duration()
	m.Opened = v.IsOpened()
	m.Published = v.IsPublished()
	m.Rating = string(v.Rating())
	m.Banner = media.Banner
	m.Thumbnail = media.Thumbnail
	m.ThumbnailHalf = media.ThumbnailHalf
	m.Trailer = media.Trailer
	m.Video = media.Video
	m.CreatedAt = v.CreatedAt()
	m.UpdatedAt = v.UpdatedAt()

	m.Categories = make([]VideoCategoryModel, 0, len(v.Categories()))
	for i, id := range v.Categories() {
		m.Categories = append(m.Categories, VideoCategoryModel{VideoID: m.ID, CategoryID: id.String(), Position: i})
	}
	m.Genres = make([]VideoGenreModel, 0, len(v.Genres()))
	for i, id := range v.Genres() {
		m.Genres = append(m.Genres, VideoGenreModel{VideoID: m.ID, GenreID: id.String(), Position: i})
	}
	m.CastMembers = make([]VideoCastMemberModel, 0, len(v.CastMembers()))
	for i, id := range v.CastMembers() {
		m.CastMembers = append(m.CastMembers, VideoCastMemberModel{VideoID: m.ID, CastMemberID: id.String(), Position: i})
	}
}

// ToDomain converts a VideoModel to a domain Video
func (m *VideoModel) ToDomain() *video.Video {
	title := m.Title
	props := video.Props{
		Title:       &title,
		Description: m.Description,
		LaunchedAt:  m.YearLaunched,
		Duration:    m.Duration,
		Opened:      m.Opened,
		Published:   m.Published,
		Rating:      video.Rating(m.Rating),
		Categories:  make([]category.ID, len(m.Categories)),
		Genres:      make([]genre.ID, len(m.Genres)),
		CastMembers: make([]castmember.ID, len(m.CastMembers)),
	}
	for i, c := range m.Categories {
		props.Categories[i] = category.IDFrom(c.CategoryID)
	}
	for i, g := range m.Genres {
		props.Genres[i] = genre.IDFrom(g.GenreID)
	}
	for i, c := range m.CastMembers {
		props.CastMembers[i] = castmember.IDFrom(c.CastMemberID)
	}

	media := video.Media{
		Banner:        m.Banner,
		Thumbnail:     m.Thumbnail,
		ThumbnailHalf: m.ThumbnailHalf,
		Trailer:       m.Trailer,
		Video:         m.Video,
	}
	return video.Rehydrate(video.IDFrom(m.ID), props, media, m.CreatedAt.UTC(), m.UpdatedAt.UTC())
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// Models lists every table owned by the catalog, parents before join tables.
func Models() []any {
	return []any{
		&CategoryModel{},
		&GenreModel{},
		&GenreCategoryModel{},
		&CastMemberModel{},
		&VideoModel{},
		&VideoCategoryModel{},
		&VideoGenreModel{},
		&VideoCastMemberModel{},
	}
}
