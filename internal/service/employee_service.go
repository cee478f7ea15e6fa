package service

import (
	"context"
	"time"

	"github.com/employee-management-api/internal/auth"
	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
	"github.com/employee-management-api/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	List(ctx context.Context, q dto.ListQuery) ([]domain.Employee, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, emp *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, id int64, emp *domain.Employee) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type employeeService struct {
	empRepo repository.EmployeeRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(empRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{empRepo: empRepo}
}

func (s *employeeService) List(ctx context.Context, q dto.ListQuery) ([]domain.Employee, int64, error) {
	employees, total, err := s.empRepo.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	for i := range employees {
		employees[i].Password = ""
	}
	return employees, total, nil
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	emp.Password = ""
	return emp, nil
}

func (s *employeeService) Create(ctx context.Context, emp *domain.Employee) (*domain.Employee, error) {
	hash, err := auth.HashPassword(emp.Password)
	if err != nil {
		return nil, err
	}

	// Метки времени проставляются только сервером,
	// значения из запроса игнорируются
	now := time.Now().UTC()
	emp.EmployeeID = 0
	emp.Password = hash
	emp.CreateDate = now
	emp.ModifiedDate = now

	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	emp.Password = ""
	return emp, nil
}

func (s *employeeService) Update(ctx context.Context, id int64, emp *domain.Employee) (*domain.Employee, error) {
	if id != emp.EmployeeID {
		return nil, domain.ErrIDMismatch
	}

	existing, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Пустой пароль означает "без изменений" - сохраняем текущий хеш
	if emp.Password == "" {
		emp.Password = existing.Password
	} else {
		hash, err := auth.HashPassword(emp.Password)
		if err != nil {
			return nil, err
		}
		emp.Password = hash
	}

	emp.CreateDate = existing.CreateDate
	emp.ModifiedDate = time.Now().UTC()

	if err := s.empRepo.Update(ctx, emp, existing.ModifiedDate); err != nil {
		return nil, err
	}

	emp.Password = ""
	return emp, nil
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	return s.empRepo.Delete(ctx, id)
}
