package handler

import (
	"log/slog"
	"net/http"

	"github.com/employee-management-api/internal/auth"
	"github.com/employee-management-api/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	issuer      *auth.Issuer
	empHandler  *EmployeeHandler
	deptHandler *DepartmentHandler
	desHandler  *DesignationHandler
	authHandler *AuthHandler
}

// NewRouter создаёт новый роутер
func NewRouter(
	empHandler *EmployeeHandler,
	deptHandler *DepartmentHandler,
	desHandler *DesignationHandler,
	authHandler *AuthHandler,
	issuer *auth.Issuer,
	logger *slog.Logger,
) *Router {
	return &Router{
		mux:         http.NewServeMux(),
		logger:      logger,
		issuer:      issuer,
		empHandler:  empHandler,
		deptHandler: deptHandler,
		desHandler:  desHandler,
		authHandler: authHandler,
	}
}

// Setup настраивает все маршруты.
// Ресурсные маршруты требуют bearer-токен, вход и health-check открыты.
func (r *Router) Setup() http.Handler {
	authenticate := middleware.Authenticate(r.issuer)

	r.registerResource(EmployeeBasePath, authenticate(http.HandlerFunc(r.employeesRouter)))
	r.registerResource(DepartmentBasePath, authenticate(http.HandlerFunc(r.departmentsRouter)))
	r.registerResource(DesignationBasePath, authenticate(http.HandlerFunc(r.designationsRouter)))

	r.mux.HandleFunc(AuthBasePath+"/login", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		r.authHandler.Login(w, req)
	})

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

func (r *Router) registerResource(basePath string, h http.Handler) {
	r.mux.Handle(basePath, h)
	r.mux.Handle(basePath+"/", h)
}

// employeesRouter обрабатывает все запросы к /api/EmployeeMaster
func (r *Router) employeesRouter(w http.ResponseWriter, req *http.Request) {
	routeResource(w, req, EmployeeBasePath, resourceHandlers{
		list:    r.empHandler.List,
		getByID: r.empHandler.GetByID,
		create:  r.empHandler.Create,
		update:  r.empHandler.Update,
		delete:  r.empHandler.Delete,
	})
}

// departmentsRouter обрабатывает все запросы к /api/DepartmentMaster
func (r *Router) departmentsRouter(w http.ResponseWriter, req *http.Request) {
	routeResource(w, req, DepartmentBasePath, resourceHandlers{
		list:    r.deptHandler.List,
		getByID: r.deptHandler.GetByID,
		create:  r.deptHandler.Create,
		update:  r.deptHandler.Update,
		delete:  r.deptHandler.Delete,
	})
}

// designationsRouter обрабатывает все запросы к /api/DesignationMaster
func (r *Router) designationsRouter(w http.ResponseWriter, req *http.Request) {
	routeResource(w, req, DesignationBasePath, resourceHandlers{
		list:    r.desHandler.List,
		getByID: r.desHandler.GetByID,
		create:  r.desHandler.Create,
		update:  r.desHandler.Update,
		delete:  r.desHandler.Delete,
	})
}

type resourceHandlers struct {
	list    http.HandlerFunc
	getByID http.HandlerFunc
	create  http.HandlerFunc
	update  http.HandlerFunc
	delete  http.HandlerFunc
}

// routeResource разбирает путь и метод ресурсного запроса.
// Все пять операций имеют одинаковую форму для каждой сущности.
func routeResource(w http.ResponseWriter, req *http.Request, basePath string, h resourceHandlers) {
	hasID := len(req.URL.Path) > len(basePath)+1

	if !hasID {
		switch req.Method {
		case http.MethodGet:
			h.list(w, req)
		case http.MethodPost:
			h.create(w, req)
		default:
			methodNotAllowed(w)
		}
		return
	}

	switch req.Method {
	case http.MethodGet:
		h.getByID(w, req)
	case http.MethodPut:
		h.update(w, req)
	case http.MethodDelete:
		h.delete(w, req)
	default:
		methodNotAllowed(w)
	}
}

func methodNotAllowed(w http.ResponseWriter) {
	http.Error(w, `{"statusCode":405,"message":"Method Not Allowed","data":null}`, http.StatusMethodNotAllowed)
}
