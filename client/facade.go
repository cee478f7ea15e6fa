package client

import (
	"context"
	"sync"
)

// NewEmployeeStore создаёт хранилище сотрудников
func NewEmployeeStore(c *Client) *Store[Employee] {
	return NewStore(c.Employees, c.notifier, "Employee", func(e Employee) int64 { return e.EmployeeID })
}

// NewDepartmentStore создаёт хранилище отделов
func NewDepartmentStore(c *Client) *Store[Department] {
	return NewStore(c.Departments, c.notifier, "Department", func(d Department) int64 { return d.DepartmentID })
}

// NewDesignationStore создаёт хранилище должностей
func NewDesignationStore(c *Client) *Store[Designation] {
	return NewStore(c.Designations, c.notifier, "Designation", func(d Designation) int64 { return d.DesignationID })
}

// EmployeeViewModel - сотрудник с разрешённым названием должности.
// Производная модель, никогда не сохраняется - пересчитывается из
// сырой записи и загруженных справочников при каждом чтении.
type EmployeeViewModel struct {
	Employee
	DesignationName string
}

// EmployeeListView - готовые данные для страницы списка сотрудников
type EmployeeListView struct {
	Employees  []EmployeeViewModel
	TotalCount int64
	PageIndex  int
	PageSize   int
	Loading    bool
	Err        *AppError
}

// EmployeeFormView - готовые данные для формы сотрудника
type EmployeeFormView struct {
	Selected     *Employee
	Departments  []Department
	Designations []Designation
	Loading      bool
	Err          *AppError
}

// EmployeeFacade собирает view-модели страниц из хранилищ сотрудников
// и справочников
type EmployeeFacade struct {
	mu         sync.Mutex
	pageIndex  int
	pageSize   int
	searchTerm string

	employees    *Store[Employee]
	departments  *Store[Department]
	designations *Store[Designation]
}

// NewEmployeeFacade создаёт фасад поверх трёх хранилищ
func NewEmployeeFacade(employees *Store[Employee], departments *Store[Department], designations *Store[Designation]) *EmployeeFacade {
	return &EmployeeFacade{
		pageIndex:    1,
		pageSize:     10,
		employees:    employees,
		departments:  departments,
		designations: designations,
	}
}

// LoadEmployees загружает страницу сотрудников
func (f *EmployeeFacade) LoadEmployees(ctx context.Context, pageIndex, pageSize int) error {
	f.mu.Lock()
	f.pageIndex = pageIndex
	f.pageSize = pageSize
	term := f.searchTerm
	f.mu.Unlock()

	return f.employees.Load(ctx, Query{
		Filter:     term,
		SortBy:     "name",
		SortOrder:  "asc",
		PageNumber: pageIndex,
		PageSize:   pageSize,
	})
}

// Search фильтрует список по подстроке имени и возвращает на первую страницу
func (f *EmployeeFacade) Search(ctx context.Context, term string) error {
	f.mu.Lock()
	f.searchTerm = term
	f.pageIndex = 1
	pageSize := f.pageSize
	f.mu.Unlock()

	return f.employees.Load(ctx, Query{
		Filter:     term,
		SortBy:     "name",
		SortOrder:  "asc",
		PageNumber: 1,
		PageSize:   pageSize,
	})
}

// LoadMasterData загружает справочники отделов и должностей параллельно.
// Уже загруженные справочники повторно не запрашиваются.
func (f *EmployeeFacade) LoadMasterData(ctx context.Context) {
	var wg sync.WaitGroup

	if len(f.departments.State().Items) == 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = f.departments.Load(ctx, Query{PageSize: 50})
		}()
	}
	if len(f.designations.State().Items) == 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = f.designations.Load(ctx, Query{PageSize: 50})
		}()
	}

	wg.Wait()
}

// ListView собирает view-модель списка, разрешая designationId в название
func (f *EmployeeFacade) ListView() EmployeeListView {
	f.mu.Lock()
	pageIndex, pageSize := f.pageIndex, f.pageSize
	f.mu.Unlock()

	empState := f.employees.State()
	desState := f.designations.State()

	names := make(map[int64]string, len(desState.Items))
	for _, des := range desState.Items {
		names[des.DesignationID] = des.DesignationName
	}

	viewModels := make([]EmployeeViewModel, len(empState.Items))
	for i, emp := range empState.Items {
		viewModels[i] = EmployeeViewModel{
			Employee:        emp,
			DesignationName: names[emp.DesignationID],
		}
	}

	return EmployeeListView{
		Employees:  viewModels,
		TotalCount: empState.TotalCount,
		PageIndex:  pageIndex,
		PageSize:   pageSize,
		Loading:    empState.Loading,
		Err:        empState.Err,
	}
}

// FormView собирает view-модель формы: выбор плюс справочники
func (f *EmployeeFacade) FormView() EmployeeFormView {
	empState := f.employees.State()

	return EmployeeFormView{
		Selected:     empState.Selected,
		Departments:  f.departments.State().Items,
		Designations: f.designations.State().Items,
		Loading:      empState.Loading,
		Err:          empState.Err,
	}
}

// Select запоминает сотрудника для формы редактирования
func (f *EmployeeFacade) Select(emp *Employee) {
	if emp != nil {
		f.employees.Select(*emp)
	} else {
		f.employees.Deselect()
	}
}

// Create создаёт сотрудника через хранилище
func (f *EmployeeFacade) Create(ctx context.Context, emp Employee) error {
	return f.employees.Create(ctx, emp)
}

// Update обновляет сотрудника через хранилище
func (f *EmployeeFacade) Update(ctx context.Context, id int64, emp Employee) error {
	return f.employees.Update(ctx, id, emp)
}

// Delete удаляет сотрудника через хранилище
func (f *EmployeeFacade) Delete(ctx context.Context, id int64) error {
	return f.employees.Delete(ctx, id)
}

// ClearError очищает ошибку хранилища сотрудников
func (f *EmployeeFacade) ClearError() {
	f.employees.ClearError()
}

// DesignationViewModel - должность с разрешённым названием отдела
type DesignationViewModel struct {
	Designation
	DepartmentName string
}

// DesignationFacade собирает view-модели должностей со справочником отделов
type DesignationFacade struct {
	designations *Store[Designation]
	departments  *Store[Department]
}

// NewDesignationFacade создаёт фасад должностей
func NewDesignationFacade(designations *Store[Designation], departments *Store[Department]) *DesignationFacade {
	return &DesignationFacade{designations: designations, departments: departments}
}

// ListView возвращает должности с названиями отделов
func (f *DesignationFacade) ListView() []DesignationViewModel {
	desState := f.designations.State()
	deptState := f.departments.State()

	names := make(map[int64]string, len(deptState.Items))
	for _, dept := range deptState.Items {
		names[dept.DepartmentID] = dept.DepartmentName
	}

	viewModels := make([]DesignationViewModel, len(desState.Items))
	for i, des := range desState.Items {
		viewModels[i] = DesignationViewModel{
			Designation:    des,
			DepartmentName: names[des.DepartmentID],
		}
	}
	return viewModels
}
