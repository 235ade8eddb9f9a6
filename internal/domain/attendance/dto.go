package attendance

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/worknest-hq/worknest-backend-go/internal/pkg/validator"
)

const (
	// DefaultRecordLimit applies when the caller omits limit.
	DefaultRecordLimit = 150
	// MaxRecordLimit is the hard cap; larger requests are clamped, not rejected.
	MaxRecordLimit = 500
)

// RecordRequest is the body of POST /attendance.
type RecordRequest struct {
	EmployeeID int64    `json:"employee_id"`
	Date       string   `json:"date"`
	TimeIn     string   `json:"time_in"`
	TimeOut    string   `json:"time_out"`
	Status     string   `json:"status"`
	TotalHours *float64 `json:"total_hours,omitempty"`
	Remarks    *string  `json:"remarks,omitempty"`
}

// UnmarshalJSON accepts total_hours as a JSON number or a numeric string.
// The browser clients format the value with toFixed and send "8.00".
func (r *RecordRequest) UnmarshalJSON(data []byte) error {
	type recordRequest RecordRequest
	aux := struct {
		TotalHours json.RawMessage `json:"total_hours"`
		*recordRequest
	}{recordRequest: (*recordRequest)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	hours, err := parseTotalHours(aux.TotalHours)
	if err != nil {
		return err
	}
	r.TotalHours = hours
	return nil
}

func parseTotalHours(raw json.RawMessage) (*float64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("total_hours must be numeric: %w", err)
		}
		return &v, nil
	}

	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r RecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.TimeIn) {
		errs = append(errs, validator.ValidationError{Field: "time_in", Message: "is required"})
	} else if !validator.IsValidTimeOfDay(r.TimeIn) {
		errs = append(errs, validator.ValidationError{Field: "time_in", Message: "must be HH:MM"})
	}
	if validator.IsEmpty(r.TimeOut) {
		errs = append(errs, validator.ValidationError{Field: "time_out", Message: "is required"})
	} else if !validator.IsValidTimeOfDay(r.TimeOut) {
		errs = append(errs, validator.ValidationError{Field: "time_out", Message: "must be HH:MM"})
	}
	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "is required"})
	} else if _, ok := ParseStatus(r.Status); !ok {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of Present, Late, Absent, Leave, Weekend"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthlySummary is the per-employee month snapshot.
type MonthlySummary struct {
	TotalPresent  int `json:"total_present"`
	TotalLates    int `json:"total_lates"`
	TotalAbsences int `json:"total_absences"`
}

// StatusCounts holds the raw organization-wide counters behind AdminStats.
type StatusCounts struct {
	Present int
	Absent  int
	Late    int
}

// AttendanceRate computes present / (present + absent + late) * 100,
// reporting 0 when the denominator is 0.
func (c StatusCounts) AttendanceRate() float64 {
	denominator := c.Present + c.Absent + c.Late
	if denominator == 0 {
		return 0
	}
	return float64(c.Present) / float64(denominator) * 100
}

// AdminStats is the response of GET /attendance/admin/stats.
type AdminStats struct {
	TotalPresent   int     `json:"total_present"`
	TotalAbsent    int     `json:"total_absent"`
	TotalLates     int     `json:"total_lates"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// Filter carries the optional admin predicates. A nil field contributes
// no predicate; there is no implicit defaulting to "all".
type Filter struct {
	EmployeeID *int64
	Status     *string
	Department *string
	StartDate  *string
	EndDate    *string
}

// SelfFilter is the non-joined employee self-service variant.
type SelfFilter struct {
	EmployeeID *int64
	StartDate  *string
	EndDate    *string
}

// RecordView is the JSON shape of a single attendance record. TotalHours
// carries the derived value when no total was stored.
type RecordView struct {
	ID         int64    `json:"id"`
	EmployeeID int64    `json:"employee_id"`
	Date       string   `json:"date"`
	TimeIn     string   `json:"time_in"`
	TimeOut    string   `json:"time_out"`
	Status     Status   `json:"status"`
	TotalHours *float64 `json:"total_hours"`
	Remarks    *string  `json:"remarks"`
}

// EnrichedRecordView adds the display-only admin fields.
type EnrichedRecordView struct {
	RecordView
	EmployeeName   string `json:"employee_name"`
	DepartmentName string `json:"department_name"`
}

// RecordResponse echoes the inserted record together with the submitting
// employee's recomputed current-month summary.
type RecordResponse struct {
	Record  RecordView     `json:"record"`
	Summary MonthlySummary `json:"summary"`
}

func NewRecordView(r Record) RecordView {
	return RecordView{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Date:       r.Date.Format("2006-01-02"),
		TimeIn:     r.TimeIn,
		TimeOut:    r.TimeOut,
		Status:     r.Status,
		TotalHours: r.DerivedTotalHours(),
		Remarks:    r.Remarks,
	}
}

func NewEnrichedRecordView(r EnrichedRecord) EnrichedRecordView {
	return EnrichedRecordView{
		RecordView:     NewRecordView(r.Record),
		EmployeeName:   r.EmployeeName,
		DepartmentName: r.DepartmentName,
	}
}
