package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontohub/ponto-backend-go/internal/domain/report"
	"github.com/pontohub/ponto-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Mine(w http.ResponseWriter, r *http.Request)
	ForUser(w http.ResponseWriter, r *http.Request)
	Day(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Mine implements ReportHandler.
func (h *ReportHandlerImpl) Mine(w http.ResponseWriter, r *http.Request) {
	rep, err := h.reportService.Mine(r.Context(), chi.URLParam(r, "month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rep)
}

// ForUser implements ReportHandler.
func (h *ReportHandlerImpl) ForUser(w http.ResponseWriter, r *http.Request) {
	rep, err := h.reportService.ForUser(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rep)
}

// Day implements ReportHandler.
func (h *ReportHandlerImpl) Day(w http.ResponseWriter, r *http.Request) {
	overview, err := h.reportService.Day(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}
