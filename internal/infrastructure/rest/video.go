package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/narwhalmedia/catalog/internal/application/video"
	"github.com/narwhalmedia/catalog/internal/domain/pagination"
	domainvideo "github.com/narwhalmedia/catalog/internal/domain/video"
)

type videoRequest struct {
	Title        *string  `json:"title"`
	Description  string   `json:"description"`
	YearLaunched int      `json:"year_launched"`
	Duration     float64  `json:"duration"`
	Opened       bool     `json:"opened"`
	Published    bool     `json:"published"`
	Rating       string   `json:"rating"`
	Categories   []string `json:"categories_id"`
	Genres       []string `json:"genres_id"`
	CastMembers  []string `json:"cast_members_id"`
}

type videoResponse struct {
	ID            string                       `json:"id"`
	Title         string                       `json:"title"`
	Description   string                       `json:"description"`
	YearLaunched  int                          `json:"year_launched"`
	Duration      float64                      `json:"duration"`
	Opened        bool                         `json:"opened"`
	Published     bool                         `json:"published"`
	Rating        string                       `json:"rating"`
	Categories    []string                     `json:"categories_id"`
	Genres        []string                     `json:"genres_id"`
	CastMembers   []string                     `json:"cast_members_id"`
	Banner        *domainvideo.ImageMedia      `json:"banner"`
	Thumbnail     *domainvideo.ImageMedia      `json:"thumbnail"`
	ThumbnailHalf *domainvideo.ImageMedia      `json:"thumbnail_half"`
	Trailer       *domainvideo.AudioVideoMedia `json:"trailer"`
	Video         *domainvideo.AudioVideoMedia `json:"video"`
	CreatedAt     time.Time                    `json:"created_at"`
	UpdatedAt     time.Time                    `json:"updated_at"`
}

type videoListResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VideoHandler serves /videos.
type VideoHandler struct {
	service  video.UseCases
	defaults ListDefaults
	errors   errorWriter
}

// NewVideoHandler creates the video routes.
func NewVideoHandler(service video.UseCases, defaults ListDefaults, metrics *Metrics) *VideoHandler {
	return &VideoHandler{
		service:  service,
		defaults: defaults,
		errors:   errorWriter{resource: "videos", metrics: metrics},
	}
}

// Routes mounts the handler on a fresh router.
func (h *VideoHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	return r
}

func (h *VideoHandler) create(w http.ResponseWriter, r *http.Request) {
	var req videoRequest
	if err := decode(r, &req); err != nil {
		h.errors.write(w, r, err)
		return
	}

	out, err := h.service.Create(r.Context(), video.CreateVideoCommand{
		Title:       req.Title,
		Description: req.Description,
		LaunchedAt:  req.YearLaunched,
		Duration:    req.Duration,
		Opened:      req.Opened,
		Published:   req.Published,
		Rating:      req.Rating,
		Categories:  req.Categories,
		Genres:      req.Genres,
		CastMembers: req.CastMembers,
	})
	if err != nil {
		h.errors.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: out.ID})
}

func (h *VideoHandler) update(w http.ResponseWriter, r *http.Request) {
	var req videoRequest
	if err := decode(r, &req); err != nil {
		h.errors.write(w, r, err)
		return
	}

	out, err := h.service.Update(r.Context(), video.UpdateVideoCommand{
		ID:          chi.URLParam(r, "id"),
		Title:       req.Title,
		Description: req.Description,
		LaunchedAt:  req.YearLaunched,
		Duration:    req.Duration,
		Opened:      req.Opened,
		Published:   req.Published,
		Rating:      req.Rating,
		Categories:  req.Categories,
		Genres:      req.Genres,
		CastMembers: req.CastMembers,
	})
	if err != nil {
		h.errors.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: out.ID})
}

func (h *VideoHandler) get(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.errors.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, videoResponse{
		ID:            out.ID,
		Title:         out.Title,
		Description:   out.Description,
		YearLaunched:  out.LaunchedAt,
		Duration:      out.Duration,
		Opened:        out.Opened,
		Published:     out.Published,
		Rating:        out.Rating,
		Categories:    out.Categories,
		Genres:        out.Genres,
		CastMembers:   out.CastMembers,
		Banner:        out.Banner,
		Thumbnail:     out.Thumbnail,
		ThumbnailHalf: out.ThumbnailHalf,
		Trailer:       out.Trailer,
		Video:         out.Video,
		CreatedAt:     out.CreatedAt,
		UpdatedAt:     out.UpdatedAt,
	})
}

func (h *VideoHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteByID(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.errors.write(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *VideoHandler) list(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), h.defaults.searchQuery(r, "title"))
	if err != nil {
		h.errors.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pagination.Map(*page, func(v video.VideoListOutput) videoListResponse {
		return videoListResponse(v)
	}))
}
