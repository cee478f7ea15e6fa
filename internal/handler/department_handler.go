package handler

import (
	"log/slog"
	"net/http"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
	"github.com/employee-management-api/internal/service"
	"github.com/employee-management-api/internal/validation"
)

// DepartmentBasePath - базовый путь ресурса отделов
const DepartmentBasePath = "/api/DepartmentMaster"

type DepartmentHandler struct {
	deptService service.DepartmentService
	validator   *validation.Validator
	logger      *slog.Logger
}

func NewDepartmentHandler(deptService service.DepartmentService, validator *validation.Validator, logger *slog.Logger) *DepartmentHandler {
	return &DepartmentHandler{
		deptService: deptService,
		validator:   validator,
		logger:      logger,
	}
}

func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := dto.ParseListQuery(r.URL.Query())

	departments, total, err := h.deptService.List(r.Context(), q)
	if err != nil {
		respondServiceError(w, h.logger, err, "")
		return
	}

	if departments == nil {
		departments = []domain.Department{}
	}
	resp := dto.NewResponse(http.StatusOK, departments)
	resp.TotalCount = &total
	respondJSON(w, h.logger, http.StatusOK, resp)
}

func (h *DepartmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, DepartmentBasePath)
	if err != nil {
		respondJSON(w, h.logger, http.StatusBadRequest,
			dto.NewErrorResponse(http.StatusBadRequest, "Invalid department id.", 0))
		return
	}

	dept, err := h.deptService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, dto.NewResponse(http.StatusOK, dept))
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var dept domain.Department
	if err := decodeBody(r, &dept); err != nil {
		respondJSON(w, h.logger, http.StatusBadRequest,
			dto.NewErrorResponse(http.StatusBadRequest, "Invalid request body.", 0))
		return
	}

	if details := h.validator.Struct(dept); details != nil {
		respondValidation(w, h.logger, details)
		return
	}

	created, err := h.deptService.Create(r.Context(), &dept)
	if err != nil {
		respondServiceError(w, h.logger, err, "")
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, dto.NewResponse(http.StatusCreated, created))
}

func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, DepartmentBasePath)
	if err != nil {
		respondJSON(w, h.logger, http.StatusBadRequest,
			dto.NewErrorResponse(http.StatusBadRequest, "Invalid department id.", 0))
		return
	}

	var dept domain.Department
	if err := decodeBody(r, &dept); err != nil {
		respondJSON(w, h.logger, http.StatusBadRequest,
			dto.NewErrorResponse(http.StatusBadRequest, "Invalid request body.", 0))
		return
	}

	if details := h.validator.Struct(dept); details != nil {
		respondValidation(w, h.logger, details)
		return
	}

	updated, err := h.deptService.Update(r.Context(), id, &dept)
	if err != nil {
		respondServiceError(w, h.logger, err, "Department ID mismatch")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, dto.NewResponse(http.StatusOK, updated))
}

func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, DepartmentBasePath)
	if err != nil {
		respondJSON(w, h.logger, http.StatusBadRequest,
			dto.NewErrorResponse(http.StatusBadRequest, "Invalid department id.", 0))
		return
	}

	if err := h.deptService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "")
		return
	}

	resp := dto.Response{StatusCode: http.StatusOK, Message: "Department deleted successfully."}
	respondJSON(w, h.logger, http.StatusOK, resp)
}
