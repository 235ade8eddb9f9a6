package http

import (
	"net/http"

	"github.com/worknest-hq/worknest-backend-go/internal/domain/department"
	"github.com/worknest-hq/worknest-backend-go/internal/domain/employee"
	"github.com/worknest-hq/worknest-backend-go/internal/handler/http/response"
)

// DirectoryHandler serves the read-only employee and department lookups
// the admin filter dropdowns are populated from.
type DirectoryHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	GetDepartment(w http.ResponseWriter, r *http.Request)
}

type directoryHandlerImpl struct {
	employeeRepo   employee.Repository
	departmentRepo department.Repository
}

func NewDirectoryHandler(employeeRepo employee.Repository, departmentRepo department.Repository) DirectoryHandler {
	return &directoryHandlerImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

// ListEmployees implements DirectoryHandler.
func (h *directoryHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeRepo.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.NewViews(employees))
}

// GetEmployee implements DirectoryHandler.
func (h *directoryHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	emp, err := h.employeeRepo.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.NewView(emp))
}

// ListDepartments implements DirectoryHandler.
func (h *directoryHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departmentRepo.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, department.NewViews(departments))
}

// GetDepartment implements DirectoryHandler.
func (h *directoryHandlerImpl) GetDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	dep, err := h.departmentRepo.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, department.NewView(dep))
}
