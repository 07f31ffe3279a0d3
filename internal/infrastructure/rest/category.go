package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/narwhalmedia/catalog/internal/application/category"
	"github.com/narwhalmedia/catalog/internal/domain/pagination"
)

type categoryRequest struct {
	Name        *string `json:"name"`
	Description string  `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type categoryResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

// CategoryHandler serves /categories.
type CategoryHandler struct {
	service  category.UseCases
	defaults ListDefaults
	errors   errorWriter
}

// NewCategoryHandler creates the category routes.
func NewCategoryHandler(service category.UseCases, defaults ListDefaults, metrics *Metrics) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		defaults: defaults,
		errors:   errorWriter{resource: "categories", metrics: metrics},
	}
}

// Routes mounts the handler on a fresh router.
func (h *CategoryHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	return r
}

func (h *CategoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decode(r, &req); err != nil {
		h.errors.write(w, r, err)
		return
	}

	out, err := h.service.Create(r.Context(), category.CreateCategoryCommand{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    activeOrDefault(req.IsActive),
	})
	if err != nil {
		h.errors.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: out.ID})
}

func (h *CategoryHandler) update(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decode(r, &req); err != nil {
		h.errors.write(w, r, err)
		return
	}

	out, err := h.service.Update(r.Context(), category.UpdateCategoryCommand{
		ID:          chi.URLParam(r, "id"),
		Name:        req.Name,
		Description: req.Description,
		IsActive:    activeOrDefault(req.IsActive),
	})
	if err != nil {
		h.errors.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: out.ID})
}

func (h *CategoryHandler) get(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.errors.write(w, r, err)
		return
	}
	updatedAt := out.UpdatedAt
	writeJSON(w, http.StatusOK, categoryResponse{
		ID:          out.ID,
		Name:        out.Name,
		Description: out.Description,
		IsActive:    out.IsActive,
		CreatedAt:   out.CreatedAt,
		UpdatedAt:   &updatedAt,
		DeletedAt:   out.DeletedAt,
	})
}

func (h *CategoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteByID(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.errors.write(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) list(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), h.defaults.searchQuery(r, "name"))
	if err != nil {
		h.errors.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pagination.Map(*page, func(c category.CategoryListOutput) categoryResponse {
		return categoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			IsActive:    c.IsActive,
			CreatedAt:   c.CreatedAt,
			DeletedAt:   c.DeletedAt,
		}
	}))
}

// activeOrDefault treats a missing is_active as true.
func activeOrDefault(v *bool) bool {
	return v == nil || *v
}
