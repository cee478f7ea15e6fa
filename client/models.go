package client

import "time"

// Employee - клиентское представление сотрудника.
// Поле Password заполняется только при создании/смене пароля,
// сервер никогда не возвращает его заполненным.
type Employee struct {
	EmployeeID    int64     `json:"employeeId"`
	Name          string    `json:"name"`
	ContactNo     string    `json:"contactNo"`
	AltContactNo  string    `json:"altContactNo"`
	Email         string    `json:"email"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	Pincode       string    `json:"pincode"`
	Address       string    `json:"address"`
	DesignationID int64     `json:"designationId"`
	Password      string    `json:"password"`
	CreateDate    time.Time `json:"createDate"`
	ModifiedDate  time.Time `json:"modifiedDate"`
}

// Department - клиентское представление отдела
type Department struct {
	DepartmentID   int64  `json:"departmentId"`
	DepartmentName string `json:"departmentName"`
	IsActive       bool   `json:"isActive"`
}

// Designation - клиентское представление должности
type Designation struct {
	DesignationID   int64  `json:"designationId"`
	DesignationName string `json:"designationName"`
	DepartmentID    int64  `json:"departmentId"`
}

// envelope - единый конверт ответов сервера
type envelope[T any] struct {
	StatusCode int                 `json:"statusCode"`
	ErrorCode  int                 `json:"errorCode"`
	Message    string              `json:"message"`
	Data       T                   `json:"data"`
	TotalCount *int64              `json:"totalCount"`
	Details    map[string][]string `json:"details"`
}

// loginData - полезная нагрузка успешного входа
type loginData struct {
	Token string `json:"token"`
}
