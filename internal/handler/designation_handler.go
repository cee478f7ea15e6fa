package handler

import (
	"log/slog"
	"net/http"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
	"github.com/employee-management-api/internal/service"
	"github.com/employee-management-api/internal/validation"
)

// DesignationBasePath - базовый путь ресурса должностей
const DesignationBasePath = "/api/DesignationMaster"

type DesignationHandler struct {
	desService service.DesignationService
	validator  *validation.Validator
	logger     *slog.Logger
}

func NewDesignationHandler(desService service.DesignationService, validator *validation.Validator, logger *slog.Logger) *DesignationHandler {
	return &DesignationHandler{
		desService: desService,
		validator:  validator,
		logger:     logger,
	}
}

func (h *DesignationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := dto.ParseListQuery(r.URL.Query())

	designations, total, err := h.desService.List(r.Context(), q)
	if err != nil {
		respondServiceError(w, h.logger, err, "")
		return
	}

	if designations == nil {
		designations = []domain.Designation{}
	}
	resp := dto.NewResponse(http.StatusOK, designations)
	resp.TotalCount = &total
	respondJSON(w, h.logger, http.StatusOK, resp)
}

func (h *DesignationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, DesignationBasePath)
	if err != nil {
		respondJSON(w, h.logger, http.StatusBadRequest,
			dto.NewErrorResponse(http.StatusBadRequest, "Invalid designation id.", 0))
		return
	}

	des, err := h.desService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, dto.NewResponse(http.StatusOK, des))
}

func (h *DesignationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var des domain.Designation
	if err := decodeBody(r, &des); err != nil {
		respondJSON(w, h.logger, http.StatusBadRequest,
			dto.NewErrorResponse(http.StatusBadRequest, "Invalid request body.", 0))
		return
	}

	if details := h.validator.Struct(des); details != nil {
		respondValidation(w, h.logger, details)
		return
	}

	created, err := h.desService.Create(r.Context(), &des)
	if err != nil {
		respondServiceError(w, h.logger, err, "")
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, dto.NewResponse(http.StatusCreated, created))
}

func (h *DesignationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, DesignationBasePath)
	if err != nil {
		respondJSON(w, h.logger, http.StatusBadRequest,
			dto.NewErrorResponse(http.StatusBadRequest, "Invalid designation id.", 0))
		return
	}

	var des domain.Designation
	if err := decodeBody(r, &des); err != nil {
		respondJSON(w, h.logger, http.StatusBadRequest,
			dto.NewErrorResponse(http.StatusBadRequest, "Invalid request body.", 0))
		return
	}

	if details := h.validator.Struct(des); details != nil {
		respondValidation(w, h.logger, details)
		return
	}

	updated, err := h.desService.Update(r.Context(), id, &des)
	if err != nil {
		respondServiceError(w, h.logger, err, "Designation ID mismatch")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, dto.NewResponse(http.StatusOK, updated))
}

func (h *DesignationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r, DesignationBasePath)
	if err != nil {
		respondJSON(w, h.logger, http.StatusBadRequest,
			dto.NewErrorResponse(http.StatusBadRequest, "Invalid designation id.", 0))
		return
	}

	if err := h.desService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "")
		return
	}

	resp := dto.Response{StatusCode: http.StatusOK, Message: "Designation deleted successfully."}
	respondJSON(w, h.logger, http.StatusOK, resp)
}
