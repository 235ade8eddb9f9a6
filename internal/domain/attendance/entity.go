package attendance

import (
	"strings"
	"time"
)

// Status is the closed set of attendance states. Values are stored in their
// canonical capitalized form; comparisons are case-insensitive everywhere.
type Status string

const (
	StatusPresent Status = "Present"
	StatusLate    Status = "Late"
	StatusAbsent  Status = "Absent"
	StatusLeave   Status = "Leave"
	StatusWeekend Status = "Weekend"
)

// ParseStatus canonicalizes a caller-supplied status string.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "present":
		return StatusPresent, true
	case "late":
		return StatusLate, true
	case "absent":
		return StatusAbsent, true
	case "leave":
		return StatusLeave, true
	case "weekend":
		return StatusWeekend, true
	}
	return "", false
}

type Record struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	TimeIn     string
	TimeOut    string
	Status     Status
	TotalHours *float64
	Remarks    *string
	CreatedAt  time.Time
}

// EnrichedRecord is a Record joined with display-only employee and
// department fields for the admin views.
type EnrichedRecord struct {
	Record
	EmployeeName   string
	DepartmentName string
}

// DerivedTotalHours returns the stored total-hours value when present,
// otherwise (timeOut - timeIn) in hours. Nil when time-out does not
// strictly exceed time-in.
func (r Record) DerivedTotalHours() *float64 {
	if r.TotalHours != nil {
		return r.TotalHours
	}

	in, okIn := timeOfDayToMinutes(r.TimeIn)
	out, okOut := timeOfDayToMinutes(r.TimeOut)
	if !okIn || !okOut || out <= in {
		return nil
	}

	hours := float64(out-in) / 60
	return &hours
}

func timeOfDayToMinutes(s string) (int, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		t, err = time.Parse("15:04:05", s)
		if err != nil {
			return 0, false
		}
	}
	return t.Hour()*60 + t.Minute(), true
}
