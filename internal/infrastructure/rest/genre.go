package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/narwhalmedia/catalog/internal/application/genre"
	"github.com/narwhalmedia/catalog/internal/domain/pagination"
)

type genreRequest struct {
	Name       *string  `json:"name"`
	IsActive   *bool    `json:"is_active"`
	Categories []string `json:"categories_id"`
}

type genreResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	IsActive   bool       `json:"is_active"`
	Categories []string   `json:"categories_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	DeletedAt  *time.Time `json:"deleted_at"`
}

// GenreHandler serves /genres.
type GenreHandler struct {
	service  genre.UseCases
	defaults ListDefaults
	errors   errorWriter
}

// NewGenreHandler creates the genre routes.
func NewGenreHandler(service genre.UseCases, defaults ListDefaults, metrics *Metrics) *GenreHandler {
	return &GenreHandler{
		service:  service,
		defaults: defaults,
		errors:   errorWriter{resource: "genres", metrics: metrics},
	}
}

// Routes mounts the handler on a fresh router.
func (h *GenreHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	return r
}

func (h *GenreHandler) create(w http.ResponseWriter, r *http.Request) {
	var req genreRequest
	if err := decode(r, &req); err != nil {
		h.errors.write(w, r, err)
		return
	}

	out, err := h.service.Create(r.Context(), genre.CreateGenreCommand{
		Name:       req.Name,
		IsActive:   activeOrDefault(req.IsActive),
		Categories: req.Categories,
	})
	if err != nil {
		h.errors.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: out.ID})
}

func (h *GenreHandler) update(w http.ResponseWriter, r *http.Request) {
	var req genreRequest
	if err := decode(r, &req); err != nil {
		h.errors.write(w, r, err)
		return
	}

	out, err := h.service.Update(r.Context(), genre.UpdateGenreCommand{
		ID:         chi.URLParam(r, "id"),
		Name:       req.Name,
		IsActive:   activeOrDefault(req.IsActive),
		Categories: req.Categories,
	})
	if err != nil {
		h.errors.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: out.ID})
}

func (h *GenreHandler) get(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.errors.write(w, r, err)
		return
	}
	updatedAt := out.UpdatedAt
	writeJSON(w, http.StatusOK, genreResponse{
		ID:         out.ID,
		Name:       out.Name,
		IsActive:   out.IsActive,
		Categories: out.Categories,
		CreatedAt:  out.CreatedAt,
		UpdatedAt:  &updatedAt,
		DeletedAt:  out.DeletedAt,
	})
}

func (h *GenreHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteByID(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.errors.write(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GenreHandler) list(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), h.defaults.searchQuery(r, "name"))
	if err != nil {
		h.errors.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pagination.Map(*page, func(g genre.GenreListOutput) genreResponse {
		return genreResponse{
			ID:         g.ID,
			Name:       g.Name,
			IsActive:   g.IsActive,
			Categories: g.Categories,
			CreatedAt:  g.CreatedAt,
			DeletedAt:  g.DeletedAt,
		}
	}))
}
