package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontohub/ponto-backend-go/internal/domain/hourbank"
	"github.com/pontohub/ponto-backend-go/internal/handler/http/response"
)

type HourBankHandler interface {
	Mine(w http.ResponseWriter, r *http.Request)
	ForUser(w http.ResponseWriter, r *http.Request)
	ForUserMonth(w http.ResponseWriter, r *http.Request)
	Recalculate(w http.ResponseWriter, r *http.Request)
}

type HourBankHandlerImpl struct {
	hourBankService hourbank.Service
}

func NewHourBankHandler(hourBankService hourbank.Service) HourBankHandler {
	return &HourBankHandlerImpl{hourBankService: hourBankService}
}

// Mine implements HourBankHandler.
func (h *HourBankHandlerImpl) Mine(w http.ResponseWriter, r *http.Request) {
	entries, err := h.hourBankService.Mine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// ForUser implements HourBankHandler.
func (h *HourBankHandlerImpl) ForUser(w http.ResponseWriter, r *http.Request) {
	entries, err := h.hourBankService.ForUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// ForUserMonth implements HourBankHandler.
func (h *HourBankHandlerImpl) ForUserMonth(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	month := chi.URLParam(r, "month")

	entry, err := h.hourBankService.ForUserMonth(r.Context(), userID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

// Recalculate implements HourBankHandler. Month comes from the query
// string, e.g. ?month=2024-02.
func (h *HourBankHandlerImpl) Recalculate(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	month := r.URL.Query().Get("month")

	entry, err := h.hourBankService.Recalculate(r.Context(), userID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Hour bank recalculated", entry)
}
