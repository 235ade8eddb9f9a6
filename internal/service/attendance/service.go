package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/worknest-hq/worknest-backend-go/internal/domain/attendance"
	"github.com/worknest-hq/worknest-backend-go/internal/pkg/database"
	"github.com/worknest-hq/worknest-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.Repository
}

func NewAttendanceService(db *database.DB, attendanceRepo attendance.Repository) attendance.Service {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
	}
}

// Record implements attendance.Service.
func (s *AttendanceServiceImpl) Record(ctx context.Context, req attendance.RecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := recordFromRequest(req)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	created, err := s.attendanceRepo.Create(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	// Snapshot of the submitting employee's current calendar month.
	now := time.Now()
	summary, err := s.attendanceRepo.MonthlySummary(ctx, created.EmployeeID, int(now.Month()), now.Year())
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.RecordResponse{
		Record:  attendance.NewRecordView(created),
		Summary: summary,
	}, nil
}

// MonthlySummary implements attendance.Service.
func (s *AttendanceServiceImpl) MonthlySummary(ctx context.Context, employeeID int64, month, year int) (attendance.MonthlySummary, error) {
	if employeeID == 0 {
		return attendance.MonthlySummary{}, validator.ValidationErrors{
			{Field: "employee_id", Message: "is required"},
		}
	}

	month, year = defaultMonthYear(month, year)
	return s.attendanceRepo.MonthlySummary(ctx, employeeID, month, year)
}

// MonthlyEntries implements attendance.Service.
func (s *AttendanceServiceImpl) MonthlyEntries(ctx context.Context, employeeID int64, month, year int) ([]attendance.RecordView, error) {
	if employeeID == 0 {
		return nil, validator.ValidationErrors{
			{Field: "employee_id", Message: "is required"},
		}
	}

	month, year = defaultMonthYear(month, year)
	records, err := s.attendanceRepo.MonthlyEntries(ctx, employeeID, month, year)
	if err != nil {
		return nil, err
	}

	return recordViews(records), nil
}

// AdminStats implements attendance.Service.
func (s *AttendanceServiceImpl) AdminStats(ctx context.Context, filter attendance.Filter) (attendance.AdminStats, error) {
	counts, err := s.attendanceRepo.CountByStatus(ctx, filter)
	if err != nil {
		return attendance.AdminStats{}, err
	}

	return attendance.AdminStats{
		TotalPresent:   counts.Present,
		TotalAbsent:    counts.Absent,
		TotalLates:     counts.Late,
		AttendanceRate: counts.AttendanceRate(),
	}, nil
}

// AdminRecords implements attendance.Service.
func (s *AttendanceServiceImpl) AdminRecords(ctx context.Context, filter attendance.Filter, limit int) ([]attendance.EnrichedRecordView, error) {
	records, err := s.attendanceRepo.ListEnriched(ctx, filter, ClampLimit(limit))
	if err != nil {
		return nil, err
	}

	views := make([]attendance.EnrichedRecordView, 0, len(records))
	for _, rec := range records {
		views = append(views, attendance.NewEnrichedRecordView(rec))
	}
	return views, nil
}

// ListByFilters implements attendance.Service.
func (s *AttendanceServiceImpl) ListByFilters(ctx context.Context, filter attendance.SelfFilter) ([]attendance.RecordView, error) {
	records, err := s.attendanceRepo.ListByFilters(ctx, filter)
	if err != nil {
		return nil, err
	}

	return recordViews(records), nil
}

// Get implements attendance.Service.
func (s *AttendanceServiceImpl) Get(ctx context.Context, id int64) (attendance.RecordView, error) {
	rec, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.RecordView{}, err
	}
	return attendance.NewRecordView(rec), nil
}

// Replace implements attendance.Service.
func (s *AttendanceServiceImpl) Replace(ctx context.Context, id int64, req attendance.RecordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	rec, err := recordFromRequest(req)
	if err != nil {
		return err
	}
	rec.ID = id

	return s.attendanceRepo.Replace(ctx, rec)
}

// Delete implements attendance.Service.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.attendanceRepo.Delete(ctx, id)
}

// ClampLimit applies the default when limit is unset and the hard cap
// otherwise. Out-of-range values clamp rather than error.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return attendance.DefaultRecordLimit
	}
	if limit > attendance.MaxRecordLimit {
		return attendance.MaxRecordLimit
	}
	return limit
}

func defaultMonthYear(month, year int) (int, int) {
	now := time.Now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	return month, year
}

func recordFromRequest(req attendance.RecordRequest) (attendance.Record, error) {
	date, ok := validator.IsValidDate(req.Date)
	if !ok {
		return attendance.Record{}, fmt.Errorf("invalid date %q after validation", req.Date)
	}

	status, ok := attendance.ParseStatus(req.Status)
	if !ok {
		return attendance.Record{}, fmt.Errorf("invalid status %q after validation", req.Status)
	}

	return attendance.Record{
		EmployeeID: req.EmployeeID,
		Date:       date,
		TimeIn:     req.TimeIn,
		TimeOut:    req.TimeOut,
		Status:     status,
		TotalHours: req.TotalHours,
		Remarks:    req.Remarks,
	}, nil
}

func recordViews(records []attendance.Record) []attendance.RecordView {
	views := make([]attendance.RecordView, 0, len(records))
	for _, rec := range records {
		views = append(views, attendance.NewRecordView(rec))
	}
	return views
}
