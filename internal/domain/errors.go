package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrDepartmentNotFound  = errors.New("department not found")
	ErrDesignationNotFound = errors.New("designation not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrIDMismatch          = errors.New("path id does not match body id")
	ErrConflict            = errors.New("record was modified concurrently")
	ErrInvalidSortField    = errors.New("unknown sort field")
)
