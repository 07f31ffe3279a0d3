package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/narwhalmedia/catalog/internal/application/castmember"
	"github.com/narwhalmedia/catalog/internal/domain/pagination"
)

type castMemberRequest struct {
	Name *string `json:"name"`
	Type string  `json:"type"`
}

type castMemberResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// CastMemberHandler serves /cast_members.
type CastMemberHandler struct {
	service  castmember.UseCases
	defaults ListDefaults
	errors   errorWriter
}

// NewCastMemberHandler creates the cast member routes.
func NewCastMemberHandler(service castmember.UseCases, defaults ListDefaults, metrics *Metrics) *CastMemberHandler {
	return &CastMemberHandler{
		service:  service,
		defaults: defaults,
		errors:   errorWriter{resource: "cast_members", metrics: metrics},
	}
}

// Routes mounts the handler on a fresh router.
func (h *CastMemberHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	return r
}

func (h *CastMemberHandler) create(w http.ResponseWriter, r *http.Request) {
	var req castMemberRequest
	if err := decode(r, &req); err != nil {
		h.errors.write(w, r, err)
		return
	}

	out, err := h.service.Create(r.Context(), castmember.CreateCastMemberCommand{Name: req.Name, Type: req.Type})
	if err != nil {
		h.errors.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: out.ID})
}

func (h *CastMemberHandler) update(w http.ResponseWriter, r *http.Request) {
	var req castMemberRequest
	if err := decode(r, &req); err != nil {
		h.errors.write(w, r, err)
		return
	}

	out, err := h.service.Update(r.Context(), castmember.UpdateCastMemberCommand{
		ID:   chi.URLParam(r, "id"),
		Name: req.Name,
		Type: req.Type,
	})
	if err != nil {
		h.errors.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: out.ID})
}

func (h *CastMemberHandler) get(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.errors.write(w, r, err)
		return
	}
	updatedAt := out.UpdatedAt
	writeJSON(w, http.StatusOK, castMemberResponse{
		ID:        out.ID,
		Name:      out.Name,
		Type:      out.Type,
		CreatedAt: out.CreatedAt,
		UpdatedAt: &updatedAt,
	})
}

func (h *CastMemberHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteByID(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.errors.write(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CastMemberHandler) list(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), h.defaults.searchQuery(r, "name"))
	if err != nil {
		h.errors.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pagination.Map(*page, func(m castmember.CastMemberListOutput) castMemberResponse {
		return castMemberResponse{ID: m.ID, Name: m.Name, Type: m.Type, CreatedAt: m.CreatedAt}
	}))
}
