package service

import (
	"context"
	"strings"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
	"github.com/employee-management-api/internal/repository"
)

// DesignationService определяет интерфейс бизнес-логики для должностей
type DesignationService interface {
	List(ctx context.Context, q dto.ListQuery) ([]domain.Designation, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Designation, error)
	Create(ctx context.Context, des *domain.Designation) (*domain.Designation, error)
	Update(ctx context.Context, id int64, des *domain.Designation) (*domain.Designation, error)
	Delete(ctx context.Context, id int64) error
}

type designationService struct {
	desRepo repository.DesignationRepository
}

// NewDesignationService создаёт новый экземпляр сервиса
func NewDesignationService(desRepo repository.DesignationRepository) DesignationService {
	return &designationService{desRepo: desRepo}
}

func (s *designationService) List(ctx context.Context, q dto.ListQuery) ([]domain.Designation, int64, error) {
	return s.desRepo.List(ctx, q)
}

func (s *designationService) GetByID(ctx context.Context, id int64) (*domain.Designation, error) {
	return s.desRepo.GetByID(ctx, id)
}

func (s *designationService) Create(ctx context.Context, des *domain.Designation) (*domain.Designation, error) {
	des.DesignationID = 0
	des.DesignationName = strings.TrimSpace(des.DesignationName)

	if err := s.desRepo.Create(ctx, des); err != nil {
		return nil, err
	}
	return des, nil
}

func (s *designationService) Update(ctx context.Context, id int64, des *domain.Designation) (*domain.Designation, error) {
	if id != des.DesignationID {
		return nil, domain.ErrIDMismatch
	}

	des.DesignationName = strings.TrimSpace(des.DesignationName)

	if err := s.desRepo.Update(ctx, des); err != nil {
		return nil, err
	}
	return des, nil
}

func (s *designationService) Delete(ctx context.Context, id int64) error {
	return s.desRepo.Delete(ctx, id)
}
