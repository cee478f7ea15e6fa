package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
	"github.com/employee-management-api/internal/service"
	"github.com/employee-management-api/internal/validation"
)

// AuthBasePath - базовый путь аутентификации
const AuthBasePath = "/api/Auth"

type AuthHandler struct {
	authService service.AuthService
	validator   *validation.Validator
	logger      *slog.Logger
}

func NewAuthHandler(authService service.AuthService, validator *validation.Validator, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
		logger:      logger,
	}
}

// Login обрабатывает POST /api/Auth/login.
// Любая ошибка учётных данных даёт один общий 401 без деталей.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		respondJSON(w, h.logger, http.StatusBadRequest,
			dto.NewErrorResponse(http.StatusBadRequest, "Invalid request body.", 0))
		return
	}

	if details := h.validator.Struct(req); details != nil {
		respondValidation(w, h.logger, details)
		return
	}

	token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondJSON(w, h.logger, http.StatusUnauthorized,
				dto.NewErrorResponse(http.StatusUnauthorized, "Invalid credentials.", dto.ErrCodeValidation))
			return
		}
		h.logger.Error("login failed", slog.Any("error", err))
		respondJSON(w, h.logger, http.StatusInternalServerError,
			dto.NewErrorResponse(http.StatusInternalServerError, dto.MsgInternalError, dto.ErrCodeInternal))
		return
	}

	resp := dto.NewResponse(http.StatusOK, dto.LoginResponse{Token: token})
	resp.Message = "Login successful."
	respondJSON(w, h.logger, http.StatusOK, resp)
}
