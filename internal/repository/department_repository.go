package repository

import (
	"context"
	"strings"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
	"gorm.io/gorm"
)

// Разрешённые поля сортировки для отделов
var departmentSortColumns = map[string]string{
	"departmentid":   "departmentId",
	"departmentname": "departmentName",
	"isactive":       "isActive",
}

// DepartmentRepository определяет интерфейс для работы с отделами
type DepartmentRepository interface {
	List(ctx context.Context, q dto.ListQuery) ([]domain.Department, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	Create(ctx context.Context, dept *domain.Department) error
	Update(ctx context.Context, dept *domain.Department) error
	Delete(ctx context.Context, id int64) error
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository создаёт новый экземпляр репозитория
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) List(ctx context.Context, q dto.ListQuery) ([]domain.Department, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Department{})

	if q.Filter != "" {
		query = query.Where(`"departmentName" LIKE ?`, "%"+q.Filter+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if q.SortBy != "" {
		column, ok := departmentSortColumns[strings.ToLower(q.SortBy)]
		if !ok {
			return nil, 0, domain.ErrInvalidSortField
		}
		query = query.Order(orderClause(column, q.SortOrder))
	}

	var departments []domain.Department
	err := query.Offset(q.Offset()).Limit(q.PageSize).Find(&departments).Error
	return departments, total, err
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	var dept domain.Department
	err := r.db.WithContext(ctx).First(&dept, `"departmentId" = ?`, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *departmentRepository) Update(ctx context.Context, dept *domain.Department) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Department{}).
		Where(`"departmentId" = ?`, dept.DepartmentID).
		Select("*").
		Omit("departmentId").
		Updates(dept)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Department{}, `"departmentId" = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}
