package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/worknest-hq/worknest-backend-go/internal/pkg/validator"
)

// UpsertRequest is the body of POST /payroll and PUT /payroll/{id}.
// NetSalary is recomputed server-side when omitted.
type UpsertRequest struct {
	EmployeeID  int64            `json:"employee_id"`
	Month       int              `json:"month"`
	Year        int              `json:"year"`
	BasicSalary decimal.Decimal  `json:"basic_salary"`
	Deductions  decimal.Decimal  `json:"deductions"`
	Bonus       decimal.Decimal  `json:"bonus"`
	NetSalary   *decimal.Decimal `json:"net_salary,omitempty"`
}

func (r UpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year == 0 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is required"})
	}
	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type View struct {
	ID          int64           `json:"id"`
	EmployeeID  int64           `json:"employee_id"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	BasicSalary decimal.Decimal `json:"basic_salary"`
	Deductions  decimal.Decimal `json:"deductions"`
	Bonus       decimal.Decimal `json:"bonus"`
	NetSalary   decimal.Decimal `json:"net_salary"`
}

func NewView(p Payroll) View {
	return View{
		ID:          p.ID,
		EmployeeID:  p.EmployeeID,
		Month:       p.Month,
		Year:        p.Year,
		BasicSalary: p.BasicSalary,
		Deductions:  p.Deductions,
		Bonus:       p.Bonus,
		NetSalary:   p.NetSalary,
	}
}

func NewViews(payrolls []Payroll) []View {
	views := make([]View, 0, len(payrolls))
	for _, p := range payrolls {
		views = append(views, NewView(p))
	}
	return views
}
