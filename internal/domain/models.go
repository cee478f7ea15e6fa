package domain

import (
	"time"
)

// Employee представляет сотрудника организации.
// Поле Password хранит bcrypt-хеш и очищается перед отправкой клиенту.
type Employee struct {
	EmployeeID    int64     `json:"employeeId" gorm:"column:employeeId;primaryKey;autoIncrement" validate:"-"`
	Name          string    `json:"name" gorm:"column:name;type:varchar(50);not null" validate:"required,max=50"`
	ContactNo     string    `json:"contactNo" gorm:"column:contactNo;type:varchar(10);not null" validate:"required,len=10,numeric"`
	AltContactNo  string    `json:"altContactNo" gorm:"column:altContactNo;type:varchar(10)" validate:"omitempty,len=10,numeric"`
	Email         string    `json:"email" gorm:"column:email;type:varchar(100)" validate:"omitempty,email"`
	City          string    `json:"city" gorm:"column:city;type:varchar(50);not null" validate:"required,max=50"`
	State         string    `json:"state" gorm:"column:state;type:varchar(50);not null" validate:"required,max=50"`
	Pincode       string    `json:"pincode" gorm:"column:pincode;type:varchar(6);not null" validate:"required,len=6,numeric"`
	Address       string    `json:"address" gorm:"column:address;type:varchar(2000);not null" validate:"required,max=2000"`
	DesignationID int64     `json:"designationId" gorm:"column:designationId;not null;index" validate:"required"`
	Password      string    `json:"password" gorm:"column:password;type:varchar(100)" validate:"-"`
	CreateDate    time.Time `json:"createDate" gorm:"column:createDate" validate:"-"`
	ModifiedDate  time.Time `json:"modifiedDate" gorm:"column:modifiedDate" validate:"-"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employeeTbl"
}

// Department представляет отдел
type Department struct {
	DepartmentID   int64  `json:"departmentId" gorm:"column:departmentId;primaryKey;autoIncrement" validate:"-"`
	DepartmentName string `json:"departmentName" gorm:"column:departmentName;type:varchar(50);not null" validate:"required,max=50"`
	IsActive       bool   `json:"isActive" gorm:"column:isActive" validate:"-"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departmentTbl"
}

// Designation представляет должность, привязанную к отделу
type Designation struct {
	DesignationID   int64  `json:"designationId" gorm:"column:designationId;primaryKey;autoIncrement" validate:"-"`
	DesignationName string `json:"designationName" gorm:"column:designationName;type:varchar(50);not null" validate:"required,max=50"`
	DepartmentID    int64  `json:"departmentId" gorm:"column:departmentId;not null;index" validate:"required"`
}

// TableName задаёт имя таблицы для GORM
func (Designation) TableName() string {
	return "designationTbl"
}
