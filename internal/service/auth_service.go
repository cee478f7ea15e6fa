package service

import (
	"context"
	"errors"

	"github.com/employee-management-api/internal/auth"
	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/repository"
)

// AuthService определяет интерфейс входа по email и паролю
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	empRepo repository.EmployeeRepository
	issuer  *auth.Issuer
}

// NewAuthService создаёт новый экземпляр сервиса
func NewAuthService(empRepo repository.EmployeeRepository, issuer *auth.Issuer) AuthService {
	return &authService{empRepo: empRepo, issuer: issuer}
}

// Login проверяет учётные данные и выпускает bearer-токен.
// Неизвестный email и неверный пароль дают одну и ту же ошибку,
// чтобы не раскрывать существование учётной записи.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	emp, err := s.empRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.VerifyPassword(emp.Password, password) {
		return "", domain.ErrInvalidCredentials
	}

	return s.issuer.Issue(emp.EmployeeID, emp.Email)
}
