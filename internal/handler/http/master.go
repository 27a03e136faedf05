package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontohub/ponto-backend-go/internal/domain/master/department"
	"github.com/pontohub/ponto-backend-go/internal/domain/master/employmenttype"
	"github.com/pontohub/ponto-backend-go/internal/domain/master/function"
	"github.com/pontohub/ponto-backend-go/internal/handler/http/response"
)

type MasterHandler interface {
	// Department handlers
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)

	// Function handlers
	CreateFunction(w http.ResponseWriter, r *http.Request)
	ListFunctions(w http.ResponseWriter, r *http.Request)
	UpdateFunction(w http.ResponseWriter, r *http.Request)
	DeleteFunction(w http.ResponseWriter, r *http.Request)

	// Employment type handlers
	CreateEmploymentType(w http.ResponseWriter, r *http.Request)
	ListEmploymentTypes(w http.ResponseWriter, r *http.Request)
	UpdateEmploymentType(w http.ResponseWriter, r *http.Request)
	DeleteEmploymentType(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	departmentService     department.Service
	functionService       function.Service
	employmentTypeService employmenttype.Service
}

func NewMasterHandler(
	departmentService department.Service,
	functionService function.Service,
	employmentTypeService employmenttype.Service,
) MasterHandler {
	return &MasterHandlerImpl{
		departmentService:     departmentService,
		functionService:       functionService,
		employmentTypeService: employmentTypeService,
	}
}

// ==================== DEPARTMENT HANDLERS ====================

func (h *MasterHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.departmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created successfully", result)
}

func (h *MasterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	results, err := h.departmentService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *MasterHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req department.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.departmentService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department updated successfully", result)
}

func (h *MasterHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.departmentService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department deleted successfully", nil)
}

// ==================== FUNCTION HANDLERS ====================

func (h *MasterHandlerImpl) CreateFunction(w http.ResponseWriter, r *http.Request) {
	var req function.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.functionService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Function created successfully", result)
}

func (h *MasterHandlerImpl) ListFunctions(w http.ResponseWriter, r *http.Request) {
	results, err := h.functionService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *MasterHandlerImpl) UpdateFunction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req function.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.functionService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Function updated successfully", result)
}

func (h *MasterHandlerImpl) DeleteFunction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.functionService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Function deleted successfully", nil)
}

// ==================== EMPLOYMENT TYPE HANDLERS ====================

func (h *MasterHandlerImpl) CreateEmploymentType(w http.ResponseWriter, r *http.Request) {
	var req employmenttype.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employmentTypeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employment type created successfully", result)
}

func (h *MasterHandlerImpl) ListEmploymentTypes(w http.ResponseWriter, r *http.Request) {
	results, err := h.employmentTypeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *MasterHandlerImpl) UpdateEmploymentType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req employmenttype.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employmentTypeService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employment type updated successfully", result)
}

func (h *MasterHandlerImpl) DeleteEmploymentType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employmentTypeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employment type deleted successfully", nil)
}
