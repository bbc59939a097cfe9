package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/centavo-app/centavo/internal/category"
	"github.com/centavo-app/centavo/internal/http/api"
	"github.com/centavo-app/centavo/internal/http/middleware"
)

type Handler struct {
	repo category.Repository
}

func NewHandler(repo category.Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	categories, err := h.repo.ListVisible(r.Context(), userID)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toResponse(c))
	}

	api.WriteJSON(w, http.StatusOK, out)
}

type categoryResponse struct {
	ID     uuid.UUID     `json:"id"`
	Name   string        `json:"name"`
	Type   category.Type `json:"type"`
	Icon   string        `json:"icon"`
	Color  string        `json:"color"`
	Global bool          `json:"global"`
}

func toResponse(c *category.Category) categoryResponse {
	return categoryResponse{
		ID:     c.ID,
		Name:   c.Name,
		Type:   c.Type,
		Icon:   c.Icon,
		Color:  c.Color,
		Global: c.Global(),
	}
}
