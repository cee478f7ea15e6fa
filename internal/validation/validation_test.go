package validation_test

import (
	"strings"
	"testing"

	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/validation"
)

func validEmployee() domain.Employee {
	return domain.Employee{
		Name:          "John Doe",
		ContactNo:     "9123456780",
		Email:         "john@example.com",
		City:          "Mumbai",
		State:         "Maharashtra",
		Pincode:       "400001",
		Address:       "42 Marine Drive",
		DesignationID: 1,
		Password:      "password-123",
	}
}

func TestEmployee_Valid(t *testing.T) {
	v := validation.New()

	details := v.Struct(validEmployee())
	if len(details) != 0 {
		t.Errorf("expected no violations, got %v", details)
	}
}

func TestEmployee_MissingRequiredFields(t *testing.T) {
	v := validation.New()

	details := v.Struct(domain.Employee{})
	for _, field := range []string{"name", "contactNo", "city", "state", "pincode", "address", "designationId", "password"} {
		if len(details[field]) == 0 {
			t.Errorf("expected a violation for %q, got %v", field, details)
		}
	}
	if len(details["email"]) != 0 {
		t.Errorf("email is optional, got %v", details["email"])
	}
	if len(details["altContactNo"]) != 0 {
		t.Errorf("altContactNo is optional, got %v", details["altContactNo"])
	}
}

func TestEmployee_ContactNoLengthAndDigits(t *testing.T) {
	v := validation.New()

	emp := validEmployee()
	emp.ContactNo = "12345"
	if details := v.Struct(emp); len(details["contactNo"]) == 0 {
		t.Error("expected a violation for short contactNo")
	}

	emp.ContactNo = "12345abcde"
	if details := v.Struct(emp); len(details["contactNo"]) == 0 {
		t.Error("expected a violation for non-numeric contactNo")
	}
}

func TestEmployee_PincodeExactLength(t *testing.T) {
	v := validation.New()

	emp := validEmployee()
	emp.Pincode = "40001"
	if details := v.Struct(emp); len(details["pincode"]) == 0 {
		t.Error("expected a violation for 5-digit pincode")
	}

	emp.Pincode = "4000011"
	if details := v.Struct(emp); len(details["pincode"]) == 0 {
		t.Error("expected a violation for 7-digit pincode")
	}
}

func TestEmployee_InvalidEmail(t *testing.T) {
	v := validation.New()

	emp := validEmployee()
	emp.Email = "not-an-email"
	if details := v.Struct(emp); len(details["email"]) == 0 {
		t.Error("expected a violation for malformed email")
	}
}

func TestEmployee_NameTooLong(t *testing.T) {
	v := validation.New()

	emp := validEmployee()
	emp.Name = strings.Repeat("x", 51)
	if details := v.Struct(emp); len(details["name"]) == 0 {
		t.Error("expected a violation for name over 50 characters")
	}
}

func TestEmployee_PasswordRequiredOnlyOnCreate(t *testing.T) {
	v := validation.New()

	emp := validEmployee()
	emp.Password = ""
	if details := v.Struct(emp); len(details["password"]) == 0 {
		t.Error("expected a violation: password required when employeeId is zero")
	}

	// Существующая запись: пустой пароль означает "не менять"
	emp.EmployeeID = 7
	if details := v.Struct(emp); len(details["password"]) != 0 {
		t.Errorf("blank password on existing employee must pass, got %v", details["password"])
	}
}

func TestEmployee_PasswordBounds(t *testing.T) {
	v := validation.New()

	emp := validEmployee()
	emp.Password = "short"
	if details := v.Struct(emp); len(details["password"]) == 0 {
		t.Error("expected a violation for password under 8 characters")
	}

	emp.EmployeeID = 7
	emp.Password = strings.Repeat("x", 101)
	if details := v.Struct(emp); len(details["password"]) == 0 {
		t.Error("expected a violation for password over 100 characters")
	}
}

func TestEmployee_MultipleViolationsReported(t *testing.T) {
	v := validation.New()

	emp := validEmployee()
	emp.Name = ""
	emp.Pincode = "1"
	emp.Email = "bad"

	details := v.Struct(emp)
	if len(details) < 3 {
		t.Errorf("expected all violations reported together, got %v", details)
	}
}

func TestDepartment_RequiredName(t *testing.T) {
	v := validation.New()

	if details := v.Struct(domain.Department{}); len(details["departmentName"]) == 0 {
		t.Error("expected a violation for empty departmentName")
	}

	dept := domain.Department{DepartmentName: "Engineering", IsActive: true}
	if details := v.Struct(dept); len(details) != 0 {
		t.Errorf("expected no violations, got %v", details)
	}
}

func TestDesignation_RequiredFields(t *testing.T) {
	v := validation.New()

	details := v.Struct(domain.Designation{})
	if len(details["designationName"]) == 0 {
		t.Error("expected a violation for empty designationName")
	}
	if len(details["departmentId"]) == 0 {
		t.Error("expected a violation for zero departmentId")
	}

	des := domain.Designation{DesignationName: "Engineer", DepartmentID: 1}
	if d := v.Struct(des); len(d) != 0 {
		t.Errorf("expected no violations, got %v", d)
	}
}
