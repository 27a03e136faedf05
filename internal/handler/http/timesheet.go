package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontohub/ponto-backend-go/internal/domain/report"
	"github.com/pontohub/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontohub/ponto-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	Punch(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListForUser(w http.ResponseWriter, r *http.Request)
	Adjust(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.Service
}

func NewTimesheetHandler(timesheetService timesheet.Service) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

// Punch implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	var req timesheet.PunchRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	record, err := h.timesheetService.Punch(r.Context(), req)
	if err != nil {
		slog.Error("Punch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch registered", record)
}

// Today implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	record, err := h.timesheetService.Today(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// recordRange resolves the record listing bounds: an explicit
// ?start/?end pair, or ?month= mapped to its reporting period.
func recordRange(r *http.Request) (string, string, error) {
	if month := r.URL.Query().Get("month"); month != "" {
		period, err := report.ResolvePeriod(month)
		if err != nil {
			return "", "", err
		}
		return period.Start.Format("2006-01-02"), period.End.Format("2006-01-02"), nil
	}
	return r.URL.Query().Get("start"), r.URL.Query().Get("end"), nil
}

// ListMine implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	start, end, err := recordRange(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.timesheetService.ListMine(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// ListForUser implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	start, end, err := recordRange(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.timesheetService.ListForUser(r.Context(), userID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Adjust implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Adjust(w http.ResponseWriter, r *http.Request) {
	var req timesheet.AdjustRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	recordID := chi.URLParam(r, "recordID")
	record, err := h.timesheetService.Adjust(r.Context(), recordID, req)
	if err != nil {
		slog.Error("Adjust service error", "error", err, "record_id", recordID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record adjusted", record)
}
