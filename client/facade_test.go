package client_test

import (
	"context"
	"sync"
	"testing"

	"github.com/employee-management-api/client"
)

func employeeID(e client.Employee) int64       { return e.EmployeeID }
func designationID(d client.Designation) int64 { return d.DesignationID }

func TestEmployeeFacade_ListViewResolvesDesignations(t *testing.T) {
	empAPI := &fakeAPI[client.Employee]{
		list: func(q client.Query) ([]client.Employee, int64, error) {
			return []client.Employee{
				{EmployeeID: 1, Name: "Alice", DesignationID: 10},
				{EmployeeID: 2, Name: "Bob", DesignationID: 99},
			}, 2, nil
		},
	}
	desAPI := &fakeAPI[client.Designation]{
		list: func(q client.Query) ([]client.Designation, int64, error) {
			return []client.Designation{
				{DesignationID: 10, DesignationName: "Engineer", DepartmentID: 1},
			}, 1, nil
		},
	}
	deptAPI := &fakeAPI[client.Department]{
		list: func(q client.Query) ([]client.Department, int64, error) {
			return []client.Department{{DepartmentID: 1, DepartmentName: "Engineering"}}, 1, nil
		},
	}

	notifier := &recordingNotifier{}
	employees := client.NewStore[client.Employee](empAPI, notifier, "Employee", employeeID)
	departments := client.NewStore[client.Department](deptAPI, notifier, "Department", departmentID)
	designations := client.NewStore[client.Designation](desAPI, notifier, "Designation", designationID)

	facade := client.NewEmployeeFacade(employees, departments, designations)
	facade.LoadMasterData(context.Background())
	if err := facade.LoadEmployees(context.Background(), 1, 10); err != nil {
		t.Fatalf("failed to load employees: %v", err)
	}

	view := facade.ListView()
	if len(view.Employees) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(view.Employees))
	}
	if view.Employees[0].DesignationName != "Engineer" {
		t.Errorf("expected resolved designation name, got %q", view.Employees[0].DesignationName)
	}
	// Неизвестная должность остаётся пустой, а не падает
	if view.Employees[1].DesignationName != "" {
		t.Errorf("expected empty name for unknown designation, got %q", view.Employees[1].DesignationName)
	}
	if view.TotalCount != 2 {
		t.Errorf("expected totalCount 2, got %d", view.TotalCount)
	}
}

func TestEmployeeFacade_LoadMasterDataOnlyWhenEmpty(t *testing.T) {
	var mu sync.Mutex
	deptCalls := 0
	desCalls := 0

	deptAPI := &fakeAPI[client.Department]{
		list: func(q client.Query) ([]client.Department, int64, error) {
			mu.Lock()
			deptCalls++
			mu.Unlock()
			return []client.Department{{DepartmentID: 1, DepartmentName: "Engineering"}}, 1, nil
		},
	}
	desAPI := &fakeAPI[client.Designation]{
		list: func(q client.Query) ([]client.Designation, int64, error) {
			mu.Lock()
			desCalls++
			mu.Unlock()
			return []client.Designation{{DesignationID: 1, DesignationName: "Engineer", DepartmentID: 1}}, 1, nil
		},
	}
	empAPI := &fakeAPI[client.Employee]{
		list: func(q client.Query) ([]client.Employee, int64, error) {
			return nil, 0, nil
		},
	}

	notifier := &recordingNotifier{}
	employees := client.NewStore[client.Employee](empAPI, notifier, "Employee", employeeID)
	departments := client.NewStore[client.Department](deptAPI, notifier, "Department", departmentID)
	designations := client.NewStore[client.Designation](desAPI, notifier, "Designation", designationID)

	facade := client.NewEmployeeFacade(employees, departments, designations)
	facade.LoadMasterData(context.Background())
	facade.LoadMasterData(context.Background())

	if deptCalls != 1 || desCalls != 1 {
		t.Errorf("expected master data fetched once, got dept=%d des=%d", deptCalls, desCalls)
	}
}

func TestEmployeeFacade_SearchResetsToFirstPage(t *testing.T) {
	var lastQuery client.Query
	empAPI := &fakeAPI[client.Employee]{
		list: func(q client.Query) ([]client.Employee, int64, error) {
			lastQuery = q
			return nil, 0, nil
		},
	}

	notifier := &recordingNotifier{}
	employees := client.NewStore[client.Employee](empAPI, notifier, "Employee", employeeID)
	departments := client.NewStore[client.Department](&fakeAPI[client.Department]{}, notifier, "Department", departmentID)
	designations := client.NewStore[client.Designation](&fakeAPI[client.Designation]{}, notifier, "Designation", designationID)

	facade := client.NewEmployeeFacade(employees, departments, designations)
	facade.LoadEmployees(context.Background(), 3, 10)

	if err := facade.Search(context.Background(), "John"); err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if lastQuery.Filter != "John" {
		t.Errorf("expected filter 'John', got %q", lastQuery.Filter)
	}
	if lastQuery.PageNumber != 1 {
		t.Errorf("search must reset to page 1, got %d", lastQuery.PageNumber)
	}

	view := facade.ListView()
	if view.PageIndex != 1 {
		t.Errorf("expected view page 1, got %d", view.PageIndex)
	}
}

func TestDesignationFacade_ResolvesDepartments(t *testing.T) {
	desAPI := &fakeAPI[client.Designation]{
		list: func(q client.Query) ([]client.Designation, int64, error) {
			return []client.Designation{
				{DesignationID: 1, DesignationName: "Engineer", DepartmentID: 5},
			}, 1, nil
		},
	}
	deptAPI := &fakeAPI[client.Department]{
		list: func(q client.Query) ([]client.Department, int64, error) {
			return []client.Department{{DepartmentID: 5, DepartmentName: "Engineering"}}, 1, nil
		},
	}

	notifier := &recordingNotifier{}
	designations := client.NewStore[client.Designation](desAPI, notifier, "Designation", designationID)
	departments := client.NewStore[client.Department](deptAPI, notifier, "Department", departmentID)
	designations.Load(context.Background(), client.Query{})
	departments.Load(context.Background(), client.Query{})

	facade := client.NewDesignationFacade(designations, departments)
	view := facade.ListView()

	if len(view) != 1 {
		t.Fatalf("expected 1 row, got %d", len(view))
	}
	if view[0].DepartmentName != "Engineering" {
		t.Errorf("expected resolved department name, got %q", view[0].DepartmentName)
	}
}
