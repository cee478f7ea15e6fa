package repository

import (
	"context"
	"strings"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
	"gorm.io/gorm"
)

// Разрешённые поля сортировки для должностей
var designationSortColumns = map[string]string{
	"designationid":   "designationId",
	"designationname": "designationName",
	"departmentid":    "departmentId",
}

// DesignationRepository определяет интерфейс для работы с должностями
type DesignationRepository interface {
	List(ctx context.Context, q dto.ListQuery) ([]domain.Designation, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Designation, error)
	Create(ctx context.Context, des *domain.Designation) error
	Update(ctx context.Context, des *domain.Designation) error
	Delete(ctx context.Context, id int64) error
}

type designationRepository struct {
	db *gorm.DB
}

// NewDesignationRepository создаёт новый экземпляр репозитория
func NewDesignationRepository(db *gorm.DB) DesignationRepository {
	return &designationRepository{db: db}
}

func (r *designationRepository) List(ctx context.Context, q dto.ListQuery) ([]domain.Designation, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Designation{})

	if q.Filter != "" {
		query = query.Where(`"designationName" LIKE ?`, "%"+q.Filter+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if q.SortBy != "" {
		column, ok := designationSortColumns[strings.ToLower(q.SortBy)]
		if !ok {
			return nil, 0, domain.ErrInvalidSortField
		}
		query = query.Order(orderClause(column, q.SortOrder))
	}

	var designations []domain.Designation
	err := query.Offset(q.Offset()).Limit(q.PageSize).Find(&designations).Error
	return designations, total, err
}

func (r *designationRepository) GetByID(ctx context.Context, id int64) (*domain.Designation, error) {
	var des domain.Designation
	err := r.db.WithContext(ctx).First(&des, `"designationId" = ?`, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrDesignationNotFound
		}
		return nil, err
	}
	return &des, nil
}

func (r *designationRepository) Create(ctx context.Context, des *domain.Designation) error {
	return r.db.WithContext(ctx).Create(des).Error
}

func (r *designationRepository) Update(ctx context.Context, des *domain.Designation) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Designation{}).
		Where(`"designationId" = ?`, des.DesignationID).
		Select("*").
		Omit("designationId").
		Updates(des)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrDesignationNotFound
	}
	return nil
}

func (r *designationRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Designation{}, `"designationId" = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrDesignationNotFound
	}
	return nil
}
