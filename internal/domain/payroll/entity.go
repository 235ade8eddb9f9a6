package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payroll struct {
	ID          int64
	EmployeeID  int64
	Month       int
	Year        int
	BasicSalary decimal.Decimal
	Deductions  decimal.Decimal
	Bonus       decimal.Decimal
	NetSalary   decimal.Decimal
	CreatedAt   time.Time
}

// ComputeNet returns basic - deductions + bonus.
func (p Payroll) ComputeNet() decimal.Decimal {
	return p.BasicSalary.Sub(p.Deductions).Add(p.Bonus)
}
