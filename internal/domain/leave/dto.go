package leave

import (
	"github.com/worknest-hq/worknest-backend-go/internal/pkg/validator"
)

// FileRequestBody is the body of POST /api/leave-requests.
type FileRequestBody struct {
	EmployeeID int64   `json:"employee_id"`
	LeaveType  string  `json:"leave_type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Reason     *string `json:"reason,omitempty"`
}

// Validate checks required fields and rejects inverted date ranges, so a
// request with fewer than one day never reaches the ledger.
func (b FileRequestBody) Validate() error {
	var errs validator.ValidationErrors

	if b.EmployeeID == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(b.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "is required"})
	}

	start, startOK := validator.IsValidDate(b.StartDate)
	if validator.IsEmpty(b.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "is required"})
	} else if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}

	end, endOK := validator.IsValidDate(b.EndDate)
	if validator.IsEmpty(b.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "is required"})
	} else if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be on or after start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetStatusBody is the body of PUT /api/leave-requests/{id}.
type SetStatusBody struct {
	Status string `json:"status"`
}

// RequestView is the JSON shape of a leave request.
type RequestView struct {
	ID         int64    `json:"id"`
	EmployeeID int64    `json:"employee_id"`
	LeaveType  string   `json:"leave_type"`
	Category   Category `json:"category"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	Days       int      `json:"days"`
	Reason     *string  `json:"reason"`
	Status     Status   `json:"status"`
	CreatedAt  string   `json:"created_at"`
}

// SetStatusResponse is the PUT response shape.
type SetStatusResponse struct {
	Message string `json:"message"`
	Status  Status `json:"status"`
}

func NewRequestView(r Request) RequestView {
	return RequestView{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		LeaveType:  r.LeaveType,
		Category:   Classify(r.LeaveType),
		StartDate:  r.StartDate.Format("2006-01-02"),
		EndDate:    r.EndDate.Format("2006-01-02"),
		Days:       r.DaySpan(),
		Reason:     r.Reason,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func NewRequestViews(requests []Request) []RequestView {
	views := make([]RequestView, 0, len(requests))
	for _, r := range requests {
		views = append(views, NewRequestView(r))
	}
	return views
}
