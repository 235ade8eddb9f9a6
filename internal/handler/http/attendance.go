package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/worknest-hq/worknest-backend-go/internal/domain/attendance"
	"github.com/worknest-hq/worknest-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
	AdminStats(w http.ResponseWriter, r *http.Request)
	AdminRecords(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Replace(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Record implements AttendanceHandler.
func (h *attendanceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("failed to decode attendance record request", "error", err)
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.attendanceService.Record(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Summary implements AttendanceHandler.
func (h *attendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	employeeID, err := queryInt64(r, "employee_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	month, err := queryInt(r, "month")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	year, err := queryInt(r, "year")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.attendanceService.MonthlySummary(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Monthly implements AttendanceHandler.
func (h *attendanceHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	employeeID, err := queryInt64(r, "employee_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	month, err := queryInt(r, "month")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	year, err := queryInt(r, "year")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	entries, err := h.attendanceService.MonthlyEntries(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// AdminStats implements AttendanceHandler.
func (h *attendanceHandlerImpl) AdminStats(w http.ResponseWriter, r *http.Request) {
	filter, err := adminFilterFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	stats, err := h.attendanceService.AdminStats(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// AdminRecords implements AttendanceHandler.
func (h *attendanceHandlerImpl) AdminRecords(w http.ResponseWriter, r *http.Request) {
	filter, err := adminFilterFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	limit, err := queryLimit(r, "limit")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.attendanceService.AdminRecords(r.Context(), filter, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter attendance.SelfFilter

	employeeID, err := queryInt64(r, "employee_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if employeeID != 0 {
		filter.EmployeeID = &employeeID
	}

	if filter.StartDate, err = queryDate(r, "start_date"); err != nil {
		response.HandleError(w, err)
		return
	}
	if filter.EndDate, err = queryDate(r, "end_date"); err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.attendanceService.ListByFilters(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Get implements AttendanceHandler.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// Replace implements AttendanceHandler.
func (h *attendanceHandlerImpl) Replace(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("failed to decode attendance replace request", "error", err)
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.attendanceService.Replace(r.Context(), id, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Attendance updated"})
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.attendanceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Attendance deleted"})
}

func adminFilterFromQuery(r *http.Request) (attendance.Filter, error) {
	var filter attendance.Filter

	employeeID, err := queryInt64(r, "employee_id")
	if err != nil {
		return attendance.Filter{}, err
	}
	if employeeID != 0 {
		filter.EmployeeID = &employeeID
	}

	filter.Status = queryString(r, "status")
	filter.Department = queryString(r, "department")

	if filter.StartDate, err = queryDate(r, "start_date"); err != nil {
		return attendance.Filter{}, err
	}
	if filter.EndDate, err = queryDate(r, "end_date"); err != nil {
		return attendance.Filter{}, err
	}

	return filter, nil
}
