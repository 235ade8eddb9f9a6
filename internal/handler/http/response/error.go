package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/worknest-hq/worknest-backend-go/internal/domain/account"
	"github.com/worknest-hq/worknest-backend-go/internal/domain/announcement"
	"github.com/worknest-hq/worknest-backend-go/internal/domain/attendance"
	"github.com/worknest-hq/worknest-backend-go/internal/domain/department"
	"github.com/worknest-hq/worknest-backend-go/internal/domain/employee"
	"github.com/worknest-hq/worknest-backend-go/internal/domain/leave"
	"github.com/worknest-hq/worknest-backend-go/internal/domain/payroll"
	"github.com/worknest-hq/worknest-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Caller-supplied field problems
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, validationErrs.Error())
		return
	}

	switch {
	// Missing id-addressed resources
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, announcement.ErrAnnouncementNotFound):
		NotFound(w, "Announcement not found")

	// Account errors
	case errors.Is(err, account.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, account.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Store and infrastructure failures: log the detail, return a
	// generic message instead of leaking it
	default:
		slog.Error("request failed", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
