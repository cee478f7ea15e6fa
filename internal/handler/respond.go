package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
)

// respondJSON пишет конверт с указанным HTTP статусом
func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, resp dto.Response) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// respondValidation пишет 400 с перечнем всех нарушенных правил по полям
func respondValidation(w http.ResponseWriter, logger *slog.Logger, details map[string][]string) {
	resp := dto.NewErrorResponse(http.StatusBadRequest, dto.MsgValidationError, dto.ErrCodeValidation)
	resp.Details = details
	respondJSON(w, logger, http.StatusBadRequest, resp)
}

// respondServiceError отображает бизнес-ошибки на HTTP статусы.
// Неожиданные ошибки логируются и превращаются в общий 500,
// внутренние детали наружу не попадают.
func respondServiceError(w http.ResponseWriter, logger *slog.Logger, err error, idMismatchMsg string) {
	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrDepartmentNotFound),
		errors.Is(err, domain.ErrDesignationNotFound):
		respondJSON(w, logger, http.StatusNotFound,
			dto.NewErrorResponse(http.StatusNotFound, dto.MsgNotFound, dto.ErrCodeNotFound))
	case errors.Is(err, domain.ErrIDMismatch):
		respondJSON(w, logger, http.StatusBadRequest,
			dto.NewErrorResponse(http.StatusBadRequest, idMismatchMsg, 0))
	case errors.Is(err, domain.ErrConflict):
		respondJSON(w, logger, http.StatusConflict,
			dto.NewErrorResponse(http.StatusConflict, "The record was modified by another request.", 0))
	case errors.Is(err, domain.ErrInvalidSortField):
		respondJSON(w, logger, http.StatusBadRequest,
			dto.NewErrorResponse(http.StatusBadRequest, "Unknown sort field.", dto.ErrCodeValidation))
	default:
		logger.Error("internal error", slog.Any("error", err))
		respondJSON(w, logger, http.StatusInternalServerError,
			dto.NewErrorResponse(http.StatusInternalServerError, dto.MsgInternalError, dto.ErrCodeInternal))
	}
}

// extractID достаёт числовой id из пути вида /api/{Resource}Master/{id}
func extractID(r *http.Request, basePath string) (int64, error) {
	path := strings.TrimPrefix(r.URL.Path, basePath)
	path = strings.Trim(path, "/")
	if path == "" {
		return 0, errors.New("id is required")
	}
	return strconv.ParseInt(path, 10, 64)
}

// decodeBody разбирает JSON тело запроса
func decodeBody(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
