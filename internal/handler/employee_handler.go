package handler

import (
	"log/slog"
	"net/http"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
	"github.com/employee-management-api/internal/service"
	"github.com/employee-management-api/internal/validation"
)

// EmployeeBasePath - базовый путь ресурса сотрудников
const EmployeeBasePath = "/api/EmployeeMaster"

type EmployeeHandler struct {
	empService service.EmployeeService
	validator  *validation.Validator
	logger     *slog.Logger
}

func NewEmployeeHandler(empService service.EmployeeService, validator *validation.Validator, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		empService: empService,
		validator:  validator,
		logger:     logger,
	}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	q := dto.ParseListQuery(r.URL.Query())

	employees, total, err := h.empService.List(r.Context(), q)
	if err != nil {
		respondServiceError(w, h.logger, err, "")
		return
	}

	if employees == nil {
		employees = []domain.Employee{}
	}
	resp := dto.NewResponse(http.StatusOK, employees)
	resp.TotalCount = &total
	respondJSON(w, h.logger, http.StatusOK, resp)
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, EmployeeBasePath)
	if err != nil {
		respondJSON(w, h.logger, http.StatusBadRequest,
			dto.NewErrorResponse(http.StatusBadRequest, "Invalid employee id.", 0))
		return
	}

	emp, err := h.empService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, dto.NewResponse(http.StatusOK, emp))
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var emp domain.Employee
	if err := decodeBody(r, &emp); err != nil {
		respondJSON(w, h.logger, http.StatusBadRequest,
			dto.NewErrorResponse(http.StatusBadRequest, "Invalid request body.", 0))
		return
	}

	if details := h.validator.Struct(emp); details != nil {
		respondValidation(w, h.logger, details)
		return
	}

	created, err := h.empService.Create(r.Context(), &emp)
	if err != nil {
		respondServiceError(w, h.logger, err, "")
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, dto.NewResponse(http.StatusCreated, created))
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, EmployeeBasePath)
	if err != nil {
		respondJSON(w, h.logger, http.StatusBadRequest,
			dto.NewErrorResponse(http.StatusBadRequest, "Invalid employee id.", 0))
		return
	}

	var emp domain.Employee
	if err := decodeBody(r, &emp); err != nil {
		respondJSON(w, h.logger, http.StatusBadRequest,
			dto.NewErrorResponse(http.StatusBadRequest, "Invalid request body.", 0))
		return
	}

	if details := h.validator.Struct(emp); details != nil {
		respondValidation(w, h.logger, details)
		return
	}

	updated, err := h.empService.Update(r.Context(), id, &emp)
	if err != nil {
		respondServiceError(w, h.logger, err, "Employee ID mismatch")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, dto.NewResponse(http.StatusOK, updated))
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, EmployeeBasePath)
	if err != nil {
		respondJSON(w, h.logger, http.StatusBadRequest,
			dto.NewErrorResponse(http.StatusBadRequest, "Invalid employee id.", 0))
		return
	}

	if err := h.empService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "")
		return
	}

	resp := dto.Response{StatusCode: http.StatusOK, Message: "Employee deleted successfully."}
	respondJSON(w, h.logger, http.StatusOK, resp)
}
