package leave

import (
	"strings"
	"time"
)

// Status is the closed leave-request lifecycle set. Values are stored
// canonically; caller input is matched case-insensitively.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusDeclined Status = "Declined"
)

// ParseStatus canonicalizes a caller-supplied status string.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, true
	case "approved":
		return StatusApproved, true
	case "declined":
		return StatusDeclined, true
	}
	return "", false
}

// Category classifies free-form leave types for reporting. The stored
// leave type is kept exactly as entered.
type Category string

const (
	CategoryVacation  Category = "Vacation"
	CategorySick      Category = "Sick"
	CategoryEmergency Category = "Emergency"
	CategoryMaternity Category = "Maternity"
	CategoryOther     Category = "Other"
)

// Classify maps a leave type to its category by case-insensitive
// substring match.
func Classify(leaveType string) Category {
	lt := strings.ToLower(leaveType)
	switch {
	case strings.Contains(lt, "vacation"):
		return CategoryVacation
	case strings.Contains(lt, "sick"):
		return CategorySick
	case strings.Contains(lt, "emergency"):
		return CategoryEmergency
	case strings.Contains(lt, "maternity"):
		return CategoryMaternity
	}
	return CategoryOther
}

// CountsTowardEntitlement reports whether a leave type draws from the
// entitlement pool. Emergency and Maternity leave are unlimited.
func CountsTowardEntitlement(leaveType string) bool {
	lt := strings.ToLower(leaveType)
	return !strings.Contains(lt, "emergency") && !strings.Contains(lt, "maternity")
}

type Request struct {
	ID         int64
	EmployeeID int64
	LeaveType  string
	StartDate  time.Time
	EndDate    time.Time
	Reason     *string
	Status     Status
	CreatedAt  time.Time
}

// DaySpan returns the inclusive day count of the request's date range.
func (r Request) DaySpan() int {
	return DaySpan(r.StartDate, r.EndDate)
}

// DaySpan counts calendar days between two dates, both ends included.
func DaySpan(start, end time.Time) int {
	start = truncateToDay(start)
	end = truncateToDay(end)
	return int(end.Sub(start)/(24*time.Hour)) + 1
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Balance is the derived entitlement figure; it is recomputed from the
// request ledger on every read and never stored.
type Balance struct {
	Total     int `json:"total"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

// ComputeBalance sums the inclusive day-spans of the approved requests
// that draw from the entitlement pool. Remaining never goes negative.
func ComputeBalance(total int, approved []Request) Balance {
	used := 0
	for _, req := range approved {
		if req.Status != StatusApproved {
			continue
		}
		if !CountsTowardEntitlement(req.LeaveType) {
			continue
		}
		used += req.DaySpan()
	}

	remaining := total - used
	if remaining < 0 {
		remaining = 0
	}

	return Balance{Total: total, Used: used, Remaining: remaining}
}
