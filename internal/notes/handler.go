package notes

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/notewall/notewall/internal/domain"
	"github.com/notewall/notewall/internal/pkg/httputil"
)

// Handler handles HTTP requests for the notes module.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a new notes handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

// RegisterRoutes registers note routes. The routes must be mounted behind
// the auth middleware.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.CreateNote)
	r.Get("/", h.ListNotes)
}

// CreateNoteRequest represents note creation request body. A tenantId in the
// request body is ignored; the tenant always comes from the token claims.
type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

// CreateNote handles POST /notes.
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	ident, ok := httputil.IdentityFromContext(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "Authorization header required")
		return
	}

	var req CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "title is required")
		return
	}

	note, err := h.service.CreateNote(r.Context(), ident, CreateNoteInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusCreated, note)
}

// ListNotes handles GET /notes.
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	ident, ok := httputil.IdentityFromContext(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "Authorization header required")
		return
	}

	list, err := h.service.ListNotes(r.Context(), ident)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	if list == nil {
		list = []domain.Note{}
	}
	httputil.JSON(w, http.StatusOK, list)
}
