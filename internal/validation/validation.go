package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/employee-management-api/internal/domain"
	"github.com/go-playground/validator/v10"
)

// Validator проверяет сущности по декларативным правилам перед сохранением
type Validator struct {
	validate *validator.Validate
}

// New создаёт валидатор с правилами для всех сущностей.
// Имена полей в ошибках берутся из json-тегов.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Условное правило для пароля: обязателен только при создании
	// (employeeId == 0), при обновлении проверяется только если не пуст
	v.RegisterStructValidation(employeePasswordRule, domain.Employee{})

	return &Validator{validate: v}
}

func employeePasswordRule(sl validator.StructLevel) {
	emp := sl.Current().Interface().(domain.Employee)

	if emp.EmployeeID == 0 && emp.Password == "" {
		sl.ReportError(emp.Password, "password", "Password", "required", "")
		return
	}
	if emp.Password != "" {
		if len(emp.Password) < 8 {
			sl.ReportError(emp.Password, "password", "Password", "min", "8")
		}
		if len(emp.Password) > 100 {
			sl.ReportError(emp.Password, "password", "Password", "max", "100")
		}
	}
}

// Struct проверяет сущность и возвращает все нарушения, сгруппированные
// по именам полей. Пустая карта означает отсутствие ошибок.
func (v *Validator) Struct(s any) map[string][]string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string][]string{"_": {err.Error()}}
	}

	details := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if field == "" {
			field = fe.StructField()
		}
		details[field] = append(details[field], message(field, fe))
	}
	return details
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "numeric":
		return fmt.Sprintf("%s must contain only digits", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
