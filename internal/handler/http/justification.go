package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontohub/ponto-backend-go/internal/domain/justification"
	"github.com/pontohub/ponto-backend-go/internal/handler/http/response"
)

type JustificationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Mine(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
}

type JustificationHandlerImpl struct {
	justificationService justification.Service
}

func NewJustificationHandler(justificationService justification.Service) JustificationHandler {
	return &JustificationHandlerImpl{justificationService: justificationService}
}

// Create implements JustificationHandler.
func (h *JustificationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req justification.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.justificationService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create justification service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Justification submitted", resp)
}

// Mine implements JustificationHandler.
func (h *JustificationHandlerImpl) Mine(w http.ResponseWriter, r *http.Request) {
	items, err := h.justificationService.Mine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// Pending implements JustificationHandler.
func (h *JustificationHandlerImpl) Pending(w http.ResponseWriter, r *http.Request) {
	items, err := h.justificationService.Pending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// Review implements JustificationHandler.
func (h *JustificationHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	var req justification.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	id := chi.URLParam(r, "id")
	resp, err := h.justificationService.Review(r.Context(), id, req)
	if err != nil {
		slog.Error("Review justification service error", "error", err, "justification_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Justification reviewed", resp)
}
