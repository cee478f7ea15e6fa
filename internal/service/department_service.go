package service

import (
	"context"
	"strings"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
	"github.com/employee-management-api/internal/repository"
)

// DepartmentService определяет интерфейс бизнес-логики для отделов
type DepartmentService interface {
	List(ctx context.Context, q dto.ListQuery) ([]domain.Department, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	Create(ctx context.Context, dept *domain.Department) (*domain.Department, error)
	Update(ctx context.Context, id int64, dept *domain.Department) (*domain.Department, error)
	Delete(ctx context.Context, id int64) error
}

type departmentService struct {
	deptRepo repository.DepartmentRepository
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(deptRepo repository.DepartmentRepository) DepartmentService {
	return &departmentService{deptRepo: deptRepo}
}

func (s *departmentService) List(ctx context.Context, q dto.ListQuery) ([]domain.Department, int64, error) {
	return s.deptRepo.List(ctx, q)
}

func (s *departmentService) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	return s.deptRepo.GetByID(ctx, id)
}

func (s *departmentService) Create(ctx context.Context, dept *domain.Department) (*domain.Department, error) {
	dept.DepartmentID = 0
	dept.DepartmentName = strings.TrimSpace(dept.DepartmentName)

	if err := s.deptRepo.Create(ctx, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

func (s *departmentService) Update(ctx context.Context, id int64, dept *domain.Department) (*domain.Department, error) {
	if id != dept.DepartmentID {
		return nil, domain.ErrIDMismatch
	}

	dept.DepartmentName = strings.TrimSpace(dept.DepartmentName)

	if err := s.deptRepo.Update(ctx, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

func (s *departmentService) Delete(ctx context.Context, id int64) error {
	return s.deptRepo.Delete(ctx, id)
}
