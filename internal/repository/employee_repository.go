package repository

import (
	"context"
	"strings"
	"time"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
	"gorm.io/gorm"
)

// Разрешённые поля сортировки для сотрудников.
// Произвольные имена полей в ORDER BY не допускаются.
var employeeSortColumns = map[string]string{
	"employeeid":    "employeeId",
	"name":          "name",
	"contactno":     "contactNo",
	"email":         "email",
	"city":          "city",
	"state":         "state",
	"pincode":       "pincode",
	"designationid": "designationId",
	"createdate":    "createDate",
	"modifieddate":  "modifiedDate",
}

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	List(ctx context.Context, q dto.ListQuery) ([]domain.Employee, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	Create(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, emp *domain.Employee, expectedModified time.Time) error
	Delete(ctx context.Context, id int64) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) List(ctx context.Context, q dto.ListQuery) ([]domain.Employee, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Employee{})

	if q.Filter != "" {
		query = query.Where(`"name" LIKE ?`, "%"+q.Filter+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if q.SortBy != "" {
		column, ok := employeeSortColumns[strings.ToLower(q.SortBy)]
		if !ok {
			return nil, 0, domain.ErrInvalidSortField
		}
		query = query.Order(orderClause(column, q.SortOrder))
	}

	var employees []domain.Employee
	err := query.Offset(q.Offset()).Limit(q.PageSize).Find(&employees).Error
	return employees, total, err
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.WithContext(ctx).First(&emp, `"employeeId" = ?`, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.WithContext(ctx).First(&emp, `"email" = ?`, email).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

// Update выполняет полную замену записи с оптимистической проверкой:
// строка должна сохранить modifiedDate, прочитанный перед обновлением.
// Если строка изменилась конкурентно - ErrConflict, если исчезла - ErrEmployeeNotFound.
func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee, expectedModified time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where(`"employeeId" = ? AND "modifiedDate" = ?`, emp.EmployeeID, expectedModified).
		Select("*").
		Omit("employeeId").
		Updates(emp)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, emp.EmployeeID); err != nil {
			return err
		}
		return domain.ErrConflict
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Employee{}, `"employeeId" = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

// orderClause строит выражение сортировки из проверенного имени колонки
func orderClause(column, direction string) string {
	if direction == "desc" {
		return `"` + column + `" DESC`
	}
	return `"` + column + `" ASC`
}
